// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - write a sideways ASCII graphic of the tree, the right
// sub-tree is above its parent and the left is below
//
// each node shows value, height and balance factor when details is
// set; returns the depth of the tree
func Print(w io.Writer, tree *Node, details bool) int {
	return printTree(w, tree, "", root, details)
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, tree *Node, prefix string, br branch, details bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, details)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if details {
		fmt.Fprintf(w, "%d h:%d %+d\n", tree.value, tree.height, BalanceFactor(tree))
	} else {
		fmt.Fprintf(w, "%d\n", tree.value)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, details)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
