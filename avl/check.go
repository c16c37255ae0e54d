// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"math"

	"github.com/bitmark-inc/avlgrid/fault"
)

// CheckError - an invariant failure at a particular node
type CheckError struct {
	Value int32 // value of the failing node
	Err   error // one of the fault invariant errors
}

// Error - the error interface
func (e *CheckError) Error() string {
	return fmt.Sprintf("node: %d: %s", e.Value, e.Err)
}

// Unwrap - allow errors.Is and the fault.IsErrXxx tests
func (e *CheckError) Unwrap() error {
	return e.Err
}

// Check - verify search order, stored heights and balance of every
// node, returns the first failure found
func Check(root *Node) error {
	_, err := check(root, math.MinInt64, math.MaxInt64)
	return err
}

// internal: consistency checker, all values must be in (low, high)
// returns the computed height
func check(p *Node, low int64, high int64) (int, error) {
	if nil == p {
		return 0, nil
	}
	v := int64(p.value)
	if v <= low || v >= high {
		return 0, &CheckError{Value: p.value, Err: fault.ErrOrderViolation}
	}
	if p.height < 1 {
		return 0, &CheckError{Value: p.value, Err: fault.ErrInvariantViolation}
	}

	hl, err := check(p.left, low, v)
	if nil != err {
		return 0, err
	}
	hr, err := check(p.right, v, high)
	if nil != err {
		return 0, err
	}

	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		return 0, &CheckError{Value: p.value, Err: fault.ErrHeightMismatch}
	}
	if b := hl - hr; b > 1 || b < -1 {
		return 0, &CheckError{Value: p.value, Err: fault.ErrUnbalanced}
	}
	return h, nil
}
