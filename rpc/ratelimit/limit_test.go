// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/contractd/fault"
	"github.com/bitmark-inc/contractd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	l := rate.NewLimiter(100, 10)
	assert.Nil(t, ratelimit.Limit(l), "single request")

	zero := rate.NewLimiter(0, 0)
	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(zero), "zero burst")
}

func TestLimitN(t *testing.T) {
	l := rate.NewLimiter(100, 10)

	assert.Nil(t, ratelimit.LimitN(l, 5, 10), "within maximum")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(l, 0, 10), "zero count")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(l, 11, 10), "above maximum")

	small := rate.NewLimiter(100, 2)
	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(small, 5, 10), "count above burst")
}

func TestGroupSet(t *testing.T) {
	g := ratelimit.NewGroup(10, 5)
	a := g.New()
	b := g.New()

	assert.Equal(t, rate.Limit(10), a.Limit(), "initial limit")
	assert.Equal(t, 5, b.Burst(), "initial burst")

	g.Set(20)
	for i, l := range []*rate.Limiter{a, b} {
		assert.Equal(t, rate.Limit(20), l.Limit(), "limit %d", i)
		assert.Equal(t, 5, l.Burst(), "burst %d", i)
	}

	c := g.New()
	assert.Equal(t, rate.Limit(20), c.Limit(), "late limiter")

	limit, burst := g.Rate()
	assert.Equal(t, 20.0, limit, "rate")
	assert.Equal(t, 5, burst, "burst")
}
