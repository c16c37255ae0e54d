// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - delay callers so that work proceeds no faster
// than a rate.Limiter allows
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avlgrid/fault"
)

// Limit - block until a single event is permitted
func Limit(limiter *rate.Limiter) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// LimitN - block until count events are permitted
//
// an invalid count is limited as a single event and reported as an
// invalid value
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count <= 0 || count > maximumCount {
		if err := Limit(limiter); nil != err {
			return err
		}
		return fault.ErrInvalidValue
	}

	r := limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())

	return nil
}

// LimitOrCancel - as Limit, but give up when shutdown is closed
// first, returning the reservation to the limiter
func LimitOrCancel(limiter *rate.Limiter, shutdown <-chan struct{}) error {
	r := limiter.Reserve()
	if !r.OK() {
		return fault.ErrRateLimiting
	}

	delay := r.Delay()
	if 0 == delay {
		return nil
	}

	t := time.NewTimer(delay)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-shutdown:
		r.Cancel()
		return fault.ErrCancelled
	}
}
