// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Destroy - release every node of a tree created through Insert
// returns the number of nodes released
//
// the caller must set its root reference to nil afterwards
func Destroy(root *Node) int {
	return defaultAllocator.Destroy(root)
}

// Destroy - return every node of the tree to this allocator's pool
//
// all the nodes must have come from this allocator
func (a *Allocator) Destroy(root *Node) int {
	if nil == root {
		return 0
	}
	n := 0
	stack := []*Node{root}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if nil != p.left {
			stack = append(stack, p.left)
		}
		if nil != p.right {
			stack = append(stack, p.right)
		}
		a.freeNode(p)
		n += 1
	}
	return n
}
