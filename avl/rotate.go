// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotate y down to the right, its left child x becomes the top
//
//        y          x
//       / \        / \
//      x   c  ->  a   y
//     / \            / \
//    a   b          b   c
//
// y is now lower so its height must be fixed before that of x
func rotateRight(y *Node) *Node {
	x := y.left
	y.left = x.right
	x.right = y

	y.fixHeight()
	x.fixHeight()
	return x
}

// mirror of rotateRight
//
//      x              y
//     / \            / \
//    a   y    ->    x   c
//       / \        / \
//      b   c      a   b
func rotateLeft(x *Node) *Node {
	y := x.right
	x.right = y.left
	y.left = x

	x.fixHeight()
	y.fixHeight()
	return y
}
