// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height balanced binary search tree of int32 values
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Rendering and searching only read the tree and may
//       run together, but never while an insert is in progress.
//
// Every node stores its own height and the balance factor is derived
// from the heights of the two children.  An insert that leaves a node
// with a balance factor outside [-1, +1] is corrected by exactly one
// single or double rotation before the insert returns.
//
// The tree is identified only by its root node.  Any operation that
// can change the root returns the new root and the caller must store
// it back into the reference it passed in:
//
//   root, err = avl.Insert(root, 42)
//
// The Tree type wraps a root and does this automatically.
//
// Duplicate values are ignored.  There is no delete; a whole tree is
// released with Destroy.
package avl
