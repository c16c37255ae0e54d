// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest value
func First(root *Node) *Node {
	if nil == root {
		return nil
	}
	for nil != root.left {
		root = root.left
	}
	return root
}

// Last - return the node with the highest value
func Last(root *Node) *Node {
	if nil == root {
		return nil
	}
	for nil != root.right {
		root = root.right
	}
	return root
}

// Walk - visit the nodes in ascending order until f returns false
//
// uses an explicit stack so the depth of the tree does not affect
// the call stack
func Walk(root *Node, f func(*Node) bool) {
	stack := make([]*Node, 0, root.Height())
	p := root
	for nil != p || len(stack) > 0 {
		for nil != p {
			stack = append(stack, p)
			p = p.left
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(p) {
			return
		}
		p = p.right
	}
}

// Values - all values in ascending order
func Values(root *Node) []int32 {
	values := make([]int32, 0, 16)
	Walk(root, func(p *Node) bool {
		values = append(values, p.value)
		return true
	})
	return values
}

// Size - count the nodes by traversal
func Size(root *Node) int {
	n := 0
	Walk(root, func(*Node) bool {
		n += 1
		return true
	})
	return n
}
