// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/contractd/counter"
	"github.com/bitmark-inc/contractd/record"
	"github.com/bitmark-inc/contractd/rpc/contract"
	"github.com/bitmark-inc/contractd/rpc/node"
	"github.com/bitmark-inc/contractd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Create - register all handlers on a new RPC server
func Create(log *logger.L, version string, store *record.Store, limits *ratelimit.Group, publishing node.Publishing, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(contract.New(log, store, limits.New()))
	_ = server.Register(node.New(log, limits.New(), start, version, store, publishing, rpcCount))

	return server
}
