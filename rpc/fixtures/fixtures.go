// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the rpc tests
package fixtures

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/contractd/account"
	"github.com/bitmark-inc/contractd/rpc/certificate"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - start logging into a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

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

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

// Certificate - create a self signed pair in the scratch directory
//
// must be called after SetupTestLogger
func Certificate() (string, string, error) {
	certificateFileName := filepath.Join(dir, "rpc.crt")
	keyFileName := filepath.Join(dir, "rpc.key")
	err := certificate.MakeSelfSigned("testing", certificateFileName, keyFileName, true, []string{"127.0.0.1"})
	return certificateFileName, keyFileName, err
}

// PrivateKey - a repeatable testnet key, distinct for each n
func PrivateKey(n byte) *account.PrivateKey {
	seed := bytes.Repeat([]byte{n}, 32)
	key, err := account.NewPrivateKey(true, bytes.NewReader(seed))
	if nil != err {
		panic(err)
	}
	return key
}
