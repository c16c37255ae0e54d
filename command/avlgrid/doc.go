// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlgrid - build an AVL tree from a list of values and show it
//
// values come from the command arguments or from a file given by
// --file, in either case separated by spaces or commas.
//
//   avlgrid render 3 2 1
//   avlgrid --edges render --file values.txt
//   avlgrid lookup --value 17 19 18 17 20 21
//   avlgrid check 0 1 2 3 4 5 6 7 8 9
package main
