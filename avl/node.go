// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree, all values less than value
	right  *Node // right sub-tree, all values greater than value
	value  int32 // key and payload
	height int   // 1 for a leaf, 0 is only used for nil
}

// Value - read the value from a node
func (p *Node) Value() int32 {
	return p.value
}

// Left - the left sub-tree, nil if absent
func (p *Node) Left() *Node {
	if nil == p {
		return nil
	}
	return p.left
}

// Right - the right sub-tree, nil if absent
func (p *Node) Right() *Node {
	if nil == p {
		return nil
	}
	return p.right
}

// Height - stored height of a sub-tree, zero for nil
func (p *Node) Height() int {
	if nil == p {
		return 0
	}
	return p.height
}

// Height - stored height of a sub-tree, zero for nil
func Height(p *Node) int {
	return p.Height()
}

// BalanceFactor - height(left) - height(right)
func BalanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return p.left.Height() - p.right.Height()
}

// recompute the height from the children
func (p *Node) fixHeight() {
	hl := p.left.Height()
	hr := p.right.Height()
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}
