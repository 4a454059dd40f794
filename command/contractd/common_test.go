// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/contractd/account"
	"github.com/bitmark-inc/logger"
)

// scratch directory with logging started inside it
func setupTest(t *testing.T) string {
	dir, err := ioutil.TempDir("", "contractd")
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
	return dir
}

func teardownTest(dir string) {
	logger.Finalise()
	_ = os.RemoveAll(dir)
}

func writeTestFile(t *testing.T, dir string, name string, content string) string {
	fileName := filepath.Join(dir, name)
	err := ioutil.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write file error: %s", err)
	}
	return fileName
}

func newTestAccount(t *testing.T) *account.Account {
	key, err := account.NewPrivateKey(true, nil)
	if nil != err {
		t.Fatalf("new private key error: %s", err)
	}
	return key.Account()
}
