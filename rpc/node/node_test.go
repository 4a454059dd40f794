// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/contractd/counter"
	"github.com/bitmark-inc/contractd/fault"
	"github.com/bitmark-inc/contractd/rpc/fixtures"
	"github.com/bitmark-inc/contractd/rpc/mocks"
	"github.com/bitmark-inc/contractd/rpc/node"
	"github.com/bitmark-inc/logger"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockStatus(ctl)
	admin := fixtures.PrivateKey(1).Account()

	s.EXPECT().Admin().Return(admin).Times(1)
	s.EXPECT().NextId().Return(uint64(42)).Times(1)

	ctr := counter.Counter(3)
	n := node.New(
		logger.New(fixtures.LogCategory),
		rate.NewLimiter(100, 10),
		time.Now().Add(-time.Minute),
		"1.2",
		s,
		node.Publishing{
			PublicKey: []byte{0x01, 0xab},
			Count: func() uint64 {
				return 7
			},
		},
		&ctr,
	)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "1.2", reply.Version, "wrong version")
	assert.Equal(t, admin, reply.Admin, "wrong admin")
	assert.Equal(t, uint64(42), reply.NextId, "wrong next id")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong rpc count")
	assert.Equal(t, uint64(7), reply.Published, "wrong published count")
	assert.Equal(t, "01ab", reply.PublicKey, "wrong public key")
	assert.NotEqual(t, "", reply.Uptime, "missing uptime")
}

func TestNodeInfoWithoutPublishing(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockStatus(ctl)
	s.EXPECT().Admin().Return(fixtures.PrivateKey(1).Account()).Times(1)
	s.EXPECT().NextId().Return(uint64(1)).Times(1)

	ctr := counter.Counter(0)
	n := node.New(logger.New(fixtures.LogCategory), rate.NewLimiter(100, 10), time.Now(), "1", s, node.Publishing{}, &ctr)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, uint64(0), reply.Published, "published while disabled")
	assert.Equal(t, "", reply.PublicKey, "public key while disabled")
}

func TestNodeInfoRateLimited(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := mocks.NewMockStatus(ctl)
	ctr := counter.Counter(0)
	n := node.New(logger.New(fixtures.LogCategory), rate.NewLimiter(0, 0), time.Now(), "1", s, node.Publishing{}, &ctr)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Equal(t, fault.RateLimiting, err, "wrong error")
}
