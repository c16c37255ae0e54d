// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific value, nil if not present
func Search(root *Node, value int32) *Node {
	p := root
	for nil != p {
		switch {
		case value < p.value:
			p = p.left
		case value > p.value:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Contains - true if value is in the tree
func Contains(root *Node, value int32) bool {
	return nil != Search(root, value)
}
