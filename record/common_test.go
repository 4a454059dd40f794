// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bitmark-inc/contractd/account"
	"github.com/bitmark-inc/contractd/record"
	"github.com/bitmark-inc/contractd/storage"
	"github.com/bitmark-inc/logger"
)

// fixed creation time for tests
var testTime = time.Unix(1580000000, 0)

func testClock() time.Time {
	return testTime
}

// collects published events
type eventRecorder struct {
	sync.Mutex
	events []record.Event
}

func (r *eventRecorder) Publish(e record.Event) {
	r.Lock()
	r.events = append(r.events, e)
	r.Unlock()
}

func (r *eventRecorder) Events() []record.Event {
	r.Lock()
	defer r.Unlock()
	events := make([]record.Event, len(r.events))
	copy(events, r.events)
	return events
}

func newAccount(t *testing.T) *account.Account {
	key, err := account.NewPrivateKey(true, nil)
	if nil != err {
		t.Fatalf("new private key error: %s", err)
	}
	return key.Account()
}

// test environment holding a fresh database
type environment struct {
	dir       string
	admin     *account.Account
	store     *record.Store
	publisher *eventRecorder
}

func setup(t *testing.T) *environment {
	dir, err := ioutil.TempDir("", "record")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}

	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	err = storage.Initialise(filepath.Join(dir, "test.leveldb"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	env := &environment{
		dir:       dir,
		admin:     newAccount(t),
		publisher: &eventRecorder{},
	}

	env.store, err = record.New(env.admin, record.DefaultHandles(), env.publisher, testClock)
	if nil != err {
		t.Fatalf("new store error: %s", err)
	}
	return env
}

func (env *environment) teardown() {
	storage.Finalise()
	logger.Finalise()
	os.RemoveAll(env.dir)
}
