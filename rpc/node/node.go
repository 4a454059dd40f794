// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/hex"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/contractd/account"
	"github.com/bitmark-inc/contractd/counter"
	"github.com/bitmark-inc/contractd/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

// Status - the store values reported by Node.Info
type Status interface {
	Admin() *account.Account
	NextId() uint64
}

// Publishing - notification state reported by Node.Info
type Publishing struct {
	PublicKey []byte
	Count     func() uint64
}

// Node - type for RPC calls
type Node struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Start      time.Time
	Version    string
	Status     Status
	Publishing Publishing
	counter    *counter.Counter
}

// New - create the node handlers
func New(log *logger.L, limiter *rate.Limiter, start time.Time, version string, status Status, publishing Publishing, counter *counter.Counter) *Node {
	return &Node{
		Log:        log,
		Limiter:    limiter,
		Start:      start,
		Version:    version,
		Status:     status,
		Publishing: publishing,
		counter:    counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version   string           `json:"version"`
	Uptime    string           `json:"uptime"`
	Admin     *account.Account `json:"admin"`
	NextId    uint64           `json:"nextId,string"`
	RPCs      uint64           `json:"rpcs"`
	Published uint64           `json:"published"`
	PublicKey string           `json:"publicKey"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.Admin = node.Status.Admin()
	reply.NextId = node.Status.NextId()
	reply.RPCs = node.counter.Uint64()
	if nil != node.Publishing.Count {
		reply.Published = node.Publishing.Count()
	}
	if 0 != len(node.Publishing.PublicKey) {
		reply.PublicKey = hex.EncodeToString(node.Publishing.PublicKey)
	}
	return nil
}
