// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"sync"

	"github.com/bitmark-inc/contractd/background"
	"github.com/bitmark-inc/contractd/fault"
	"github.com/bitmark-inc/contractd/messagebus"
	"github.com/bitmark-inc/contractd/record"
	"github.com/bitmark-inc/contractd/util"
	"github.com/bitmark-inc/contractd/zmqutil"
	"github.com/bitmark-inc/logger"
)

// Configuration - a block of configuration data
// this is read from a Lua configuration file
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// globals for background proccess
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	brdc broadcaster // for broadcasting record events

	publicKey []byte

	// false if no broadcast addresses were configured
	enabled bool

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - start the broadcaster
//
// an empty broadcast list leaves publishing disabled
func Initialise(configuration *Configuration) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("publish")
	if nil == globalData.log {
		return fault.InvalidLoggerChannel
	}
	globalData.log.Info("starting…")

	listens, err := util.ParseListens(configuration.Broadcast)
	if nil != err {
		globalData.log.Errorf("broadcast: %q  error: %s", configuration.Broadcast, err)
		return err
	}

	if 0 == len(listens) {
		globalData.log.Info("no broadcast addresses: publishing disabled")
		globalData.enabled = false
		globalData.initialised = true
		return nil
	}

	// read the keys
	privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
	if nil != err {
		globalData.log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
		return err
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
	if nil != err {
		globalData.log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
		return err
	}
	globalData.log.Tracef("public key:  %x", publicKey)

	globalData.publicKey = publicKey

	if err := globalData.brdc.initialise(privateKey, publicKey, listens, messagebus.Bus.Events); nil != err {
		return err
	}

	// all data initialised
	globalData.enabled = true
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background
	globalData.background.Stop()
	globalData.background = nil

	// finally...
	globalData.enabled = false
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// Publisher - the record event sink for the store
//
// nil when publishing is disabled so that nothing fills the queue
func Publisher() record.Publisher {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.enabled {
		return nil
	}
	return messagebus.NewPublisher()
}

// PublicKey - the broadcaster's CURVE public key
func PublicKey() []byte {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.publicKey
}

// PublishedCount - number of events sent so far
func PublishedCount() uint64 {
	return globalData.brdc.count.Uint64()
}
