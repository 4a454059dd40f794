// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/contractd/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if !c1.IsZero() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	c1.Increment()
	c1.Increment()
	c1.Increment()
	c1.Increment()
	c1.Increment()

	if 5 != c1.Uint64() {
		t.Errorf("counter is not 5 after iincrementing: %d", c1.Uint64())
	}

	c1.Decrement()

	if 4 != c1.Uint64() {
		t.Errorf("counter is not 5 after decrementing: %d", c1.Uint64())
	}

	c1.Decrement()
	c1.Decrement()
	c1.Decrement()
	c1.Decrement()

	if !c1.IsZero() {
		t.Errorf("counter did not return to zero: %d", c1.Uint64())
	}

	c1.Decrement()

	// check against underflow, i.e. twos complement -1
	if ^uint64(0) != c1.Uint64() {
		t.Errorf("counter did not underflow: %d", c1.Uint64())
	}
}

// limited increments stop at the limit even when raced
func TestIncrementBelow(t *testing.T) {
	const limit = 10
	var c counter.Counter
	var accepted counter.Counter

	var wg sync.WaitGroup
	for i := 0; i < 50; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := c.IncrementBelow(limit); ok {
				accepted.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(limit), c.Uint64(), "counter value")
	assert.Equal(t, uint64(limit), accepted.Uint64(), "accepted count")

	n, ok := c.IncrementBelow(limit)
	assert.False(t, ok, "over limit")
	assert.Equal(t, uint64(limit), n, "value unchanged")

	c.Decrement()
	n, ok = c.IncrementBelow(limit)
	assert.True(t, ok, "room after decrement")
	assert.Equal(t, uint64(limit), n, "value after increment")
}
