// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/avlgrid/counter"
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
		t.Errorf("counter is not 5 after incrementing: %d", c1.Uint64())
	}

	c1.Decrement()

	if 4 != c1.Int() {
		t.Errorf("counter is not 4 after decrementing: %d", c1.Uint64())
	}

	if 4 != c1.Reset() {
		t.Errorf("reset did not return previous value")
	}
	if !c1.IsZero() {
		t.Errorf("counter is not zero after reset: %d", c1.Uint64())
	}
}

func TestConcurrentIncrement(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	for i := 0; i < 8; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	if 8000 != c.Uint64() {
		t.Errorf("expected 8000, actual: %d", c.Uint64())
	}
}
