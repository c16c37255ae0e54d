// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"io"

	"github.com/bitmark-inc/avlgrid/fault"
)

// Tree - type to hold the root node of a tree
type Tree struct {
	root      *Node
	count     int
	allocator *Allocator
}

// New - create an initially empty tree using the default allocator
func New() *Tree {
	return NewWithAllocator(defaultAllocator)
}

// NewWithAllocator - create an initially empty tree whose nodes come
// from a specific allocator
func NewWithAllocator(a *Allocator) *Tree {
	if nil == a {
		a = defaultAllocator
	}
	return &Tree{
		root:      nil,
		count:     0,
		allocator: a,
	}
}

// Insert - insert a new value into the tree
// returns true if a node was added, false for a duplicate
func (tree *Tree) Insert(value int32) (bool, error) {
	root, added, err := tree.allocator.Insert(tree.root, value)
	if nil != err {
		return false, err
	}
	tree.root = root
	if added {
		tree.count += 1
	}
	return added, nil
}

// Search - find a specific value
func (tree *Tree) Search(value int32) *Node {
	return Search(tree.root, value)
}

// Contains - true if value is in the tree
func (tree *Tree) Contains(value int32) bool {
	return Contains(tree.root, value)
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Height - height of the root, zero for an empty tree
func (tree *Tree) Height() int {
	return tree.root.Height()
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Values - all values in ascending order
func (tree *Tree) Values() []int32 {
	return Values(tree.root)
}

// Check - verify the tree invariants and the node count
func (tree *Tree) Check() error {
	if err := Check(tree.root); nil != err {
		return err
	}
	if n := Size(tree.root); n != tree.count {
		return fault.ErrInvariantViolation
	}
	return nil
}

// Print - display an ASCII graphic representation of the tree
func (tree *Tree) Print(w io.Writer, details bool) int {
	return Print(w, tree.root, details)
}

// Destroy - release all nodes, the tree is empty afterwards
func (tree *Tree) Destroy() {
	tree.allocator.Destroy(tree.root)
	tree.root = nil
	tree.count = 0
}

// ChildrenByDepth - returns all nodes at a specific depth below p,
// left to right, absent nodes are skipped
func (p *Node) ChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}
	if nil == p {
		return nodes
	}

	if 0 == depth {
		nodes = []*Node{p}
	} else {
		if nil != p.left {
			nodes = append(nodes, p.left.ChildrenByDepth(depth-1)...)
		}
		if nil != p.right {
			nodes = append(nodes, p.right.ChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}
