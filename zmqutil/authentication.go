// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"sync"

	zmq "github.com/pebbe/zmq4"
)

// ZAP handler state, started at most once per process
var authentication struct {
	sync.Mutex
	started bool
}

// StartAuthentication - initialise the ZMQ security subsystem
//
// required before any CURVE server socket is bound
func StartAuthentication() error {
	authentication.Lock()
	defer authentication.Unlock()

	if authentication.started {
		return nil
	}

	zmq.AuthSetVerbose(false)
	err := zmq.AuthStart()
	if nil != err {
		return err
	}
	authentication.started = true
	return nil
}

// StopAuthentication - shut down the ZAP handler
//
// called after all CURVE sockets are closed
func StopAuthentication() {
	authentication.Lock()
	defer authentication.Unlock()

	if authentication.started {
		zmq.AuthStop()
		authentication.started = false
	}
}
