// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
)

func setupTestLogger(t *testing.T) string {
	dir, err := ioutil.TempDir("", "publish")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	_ = logger.Initialise(logging)
	return dir
}

func teardownTestLogger(dir string) {
	logger.Finalise()
	os.RemoveAll(dir)
}
