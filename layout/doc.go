// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package layout - draw the shape of an AVL tree as a grid of
// characters
//
// A tree of height h is drawn on 2h-1 rows.  Level n of the tree is
// on row 2n and the rows between levels are either filler or hold
// the edges.  The grid is the smallest odd number of columns that is
// at least 2^h wide, so every split has a centre column.
//
// Each level is divided into 2^n equal slots whether the nodes exist
// or not, so a label can never collide with another label on the
// same row:
//
//   span   = 2^(h-n)
//   column = index*span + span/2
//
// The label is written starting at that column.
package layout
