// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a value into the tree rooted at root using the
// default allocator
//
// returns the possibly updated root, which must replace the caller's
// root reference.  On error the tree is unchanged and root is
// returned as is.
func Insert(root *Node, value int32) (*Node, error) {
	root, _, err := defaultAllocator.Insert(root, value)
	return root, err
}

// Insert - insert a value into the tree rooted at root
//
// returns the possibly updated root and true if a node was added,
// false for a duplicate value
func (a *Allocator) Insert(root *Node, value int32) (*Node, bool, error) {
	return a.insert(root, value)
}

// internal routine for insert
func (a *Allocator) insert(p *Node, value int32) (*Node, bool, error) {
	if nil == p { // insert new node
		n, err := a.newNode(value)
		if nil != err {
			return nil, false, err
		}
		return n, true, nil
	}

	var child *Node
	added := false
	var err error

	switch {
	case value < p.value:
		child, added, err = a.insert(p.left, value)
		if nil != err {
			return p, false, err
		}
		p.left = child
	case value > p.value:
		child, added, err = a.insert(p.right, value)
		if nil != err {
			return p, false, err
		}
		p.right = child
	default:
		return p, false, nil // duplicate
	}

	if !added {
		return p, false, nil
	}
	return rebalance(p, value), true, nil
}

// restore the height and balance of p after value was added below it
// returns the new top of the sub-tree
func rebalance(p *Node, value int32) *Node {
	p.fixHeight()

	balance := BalanceFactor(p)
	switch {
	case balance > 1 && value < p.left.value:
		// single LL rotation
		return rotateRight(p)

	case balance > 1:
		// double LR rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p)

	case balance < -1 && value > p.right.value:
		// single RR rotation
		return rotateLeft(p)

	case balance < -1:
		// double RL rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p)
	}
	return p
}
