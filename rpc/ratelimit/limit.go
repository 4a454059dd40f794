// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/contractd/fault"
)

// limiting for a single request
func Limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// limiting for a multiple request
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	// invalid count gets limited as a single request
	if count <= 0 || count > maximumCount {

		r := limiter.Reserve()
		if !r.OK() {
			return fault.RateLimiting
		}
		time.Sleep(r.Delay())

		return fault.InvalidCount
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())

	return nil
}

// Group - limiters whose rate can be changed together at runtime
//
// burst is fixed when a limiter is created
type Group struct {
	sync.Mutex
	limit    rate.Limit
	burst    int
	limiters []*rate.Limiter
}

// NewGroup - empty group with the initial rate
func NewGroup(limit float64, burst int) *Group {
	return &Group{
		limit: rate.Limit(limit),
		burst: burst,
	}
}

// New - create a limiter that follows the group rate
func (g *Group) New() *rate.Limiter {
	g.Lock()
	defer g.Unlock()

	l := rate.NewLimiter(g.limit, g.burst)
	g.limiters = append(g.limiters, l)
	return l
}

// Set - change the rate of every limiter in the group
func (g *Group) Set(limit float64) {
	g.Lock()
	defer g.Unlock()

	g.limit = rate.Limit(limit)
	now := time.Now()
	for _, l := range g.limiters {
		l.SetLimitAt(now, g.limit)
	}
}

// Rate - current limit and burst
func (g *Group) Rate() (float64, int) {
	g.Lock()
	defer g.Unlock()

	return float64(g.limit), g.burst
}
