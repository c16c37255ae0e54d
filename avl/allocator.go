// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/avlgrid/counter"
	"github.com/bitmark-inc/avlgrid/fault"
)

// Allocator - source of nodes, reclaimed nodes are kept in a pool
// for reuse
//
// A non-zero limit bounds the number of nodes that can be live at
// the same time, an allocation beyond it fails with
// fault.ErrAllocationFailure.
type Allocator struct {
	sync.Mutex
	pool  *Node // linked list of reclaimed nodes through right
	limit int

	total counter.Counter // nodes created
	live  counter.Counter // nodes handed out and not yet freed
	free  counter.Counter // nodes in the pool
}

// used by the package level functions
var defaultAllocator = NewAllocator(0)

// NewAllocator - create an allocator, zero limit means unlimited
func NewAllocator(limit int) *Allocator {
	if limit < 0 {
		limit = 0
	}
	return &Allocator{
		limit: limit,
	}
}

// DefaultAllocator - the allocator behind Insert and Destroy
func DefaultAllocator() *Allocator {
	return defaultAllocator
}

// Limit - maximum live nodes, zero if unlimited
func (a *Allocator) Limit() int {
	return a.limit
}

// Total - number of nodes ever created
func (a *Allocator) Total() int {
	return a.total.Int()
}

// Live - number of nodes currently in use by trees
func (a *Allocator) Live() int {
	return a.live.Int()
}

// Free - number of nodes waiting in the pool
func (a *Allocator) Free() int {
	return a.free.Int()
}

// allocate a new node, reuses reclaimed nodes if any are available
func (a *Allocator) newNode(value int32) (*Node, error) {
	a.Lock()
	defer a.Unlock()

	if 0 != a.limit && a.live.Int() >= a.limit {
		return nil, fault.ErrAllocationFailure
	}
	a.live.Increment()

	if nil == a.pool {
		if !a.free.IsZero() {
			fault.Panic("pool corrupt")
		}
		a.total.Increment()
		return &Node{
			value:  value,
			height: 1,
		}, nil
	}
	p := a.pool
	a.pool = p.right
	p.value = value
	p.height = 1
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	a.free.Decrement()
	return p, nil
}

// reclaim a node and keep it in the pool
func (a *Allocator) freeNode(node *Node) {
	a.Lock()
	defer a.Unlock()

	node.left = nil
	node.right = a.pool // use as free list pointer
	node.value = 0
	node.height = 0

	a.pool = node
	a.free.Increment()
	a.live.Decrement()
}

// Trim - drop every node in the pool so the memory can be reclaimed,
// returns the number of nodes dropped
func (a *Allocator) Trim() int {
	a.Lock()
	defer a.Unlock()

	a.pool = nil
	return int(a.free.Reset())
}
