// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"

	"github.com/bitmark-inc/contractd/counter"
	"github.com/bitmark-inc/contractd/fault"
	"github.com/bitmark-inc/contractd/record"
	"github.com/bitmark-inc/contractd/rpc/certificate"
	"github.com/bitmark-inc/contractd/rpc/contract"
	"github.com/bitmark-inc/contractd/rpc/listeners"
	"github.com/bitmark-inc/contractd/rpc/node"
	"github.com/bitmark-inc/contractd/rpc/ratelimit"
	"github.com/bitmark-inc/contractd/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	tlsName = "client_rpc"

	// defaults when the configuration leaves them unset
	defaultRequestRate  = 200
	defaultRequestBurst = 100
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener listeners.Listener
	limits   *ratelimit.Group

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of connected clients
var connectionCountRPC counter.Counter

// Initialise - start the client RPC listener
func Initialise(configuration *listeners.RPCConfiguration, store *record.Store, publishing node.Publishing, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	if nil == log {
		return fault.InvalidLoggerChannel
	}
	globalData.log = log
	log.Info("starting…")

	if nil == store {
		return fault.StorageNotInitialised
	}

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	requestRate, requestBurst := requestLimits(configuration)
	globalData.limits = ratelimit.NewGroup(requestRate, requestBurst)
	log.Infof("request rate: %g/s  burst: %d", requestRate, requestBurst)
	if requestBurst <= contract.MaximumFieldCount {
		log.Warnf("request burst: %d rate limits creates with more than %d fields", requestBurst, requestBurst-1)
	}

	// servers
	rpcListener, err := listeners.NewRPC(
		configuration,
		log,
		&connectionCountRPC,
		server.Create(log, version, store, globalData.limits, publishing, &connectionCountRPC),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listener = rpcListener

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop accepting connections
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	if err := globalData.listener.Close(); nil != err {
		globalData.log.Errorf("close error: %s", err)
	}
	globalData.listener = nil

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// SetRequestRate - change the request rate of every handler
func SetRequestRate(configuration *listeners.RPCConfiguration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	requestRate, requestBurst := requestLimits(configuration)
	_, currentBurst := globalData.limits.Rate()
	if requestBurst != currentBurst {
		globalData.log.Warnf("request burst: %d ignored until restart", requestBurst)
	}
	globalData.limits.Set(requestRate)
	globalData.log.Infof("request rate changed to: %g/s", requestRate)
	return nil
}

// ConnectionCount - number of connected clients
func ConnectionCount() uint64 {
	return connectionCountRPC.Uint64()
}

func requestLimits(configuration *listeners.RPCConfiguration) (float64, int) {
	requestRate := configuration.RequestRate
	if requestRate <= 0 {
		requestRate = defaultRequestRate
	}
	requestBurst := configuration.RequestBurst
	if requestBurst <= 0 {
		requestBurst = defaultRequestBurst
	}
	return requestRate, requestBurst
}
