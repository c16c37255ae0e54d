// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlgrid/avl"
)

type lookupResult struct {
	Value  int32 `json:"value"`
	Found  bool  `json:"found"`
	Height int   `json:"height,omitempty"`
	Depth  int   `json:"depth,omitempty"`
}

func runLookup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !c.IsSet("value") {
		return ErrRequiredValue
	}
	value := int32(c.Int("value"))

	tree, err := buildTree(c, m)
	if nil != err {
		return err
	}
	defer tree.Destroy()

	result := lookupResult{
		Value: value,
	}
	if node := tree.Search(value); nil != node {
		result.Found = true
		result.Height = node.Height()
		result.Depth = depthOf(tree.Root(), value)
	}

	return printJson(m.w, result)
}

// number of edges from the root to the value, which must be present
func depthOf(root *avl.Node, value int32) int {
	depth := 0
	for p := root; nil != p && p.Value() != value; depth += 1 {
		if value < p.Value() {
			p = p.Left()
		} else {
			p = p.Right()
		}
	}
	return depth
}
