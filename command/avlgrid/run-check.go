// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlgrid/avl"
)

type checkResult struct {
	Count   int    `json:"count"`
	Height  int    `json:"height"`
	Levels  []int  `json:"levels"`
	Balance int    `json:"balance"`
	Valid   bool   `json:"valid"`
	Error   string `json:"error,omitempty"`
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := buildTree(c, m)
	if nil != err {
		return err
	}
	defer tree.Destroy()

	result := checkResult{
		Count:  tree.Count(),
		Height: tree.Height(),
		Levels: make([]int, tree.Height()),
		Valid:  true,
	}
	if !tree.IsEmpty() {
		root := tree.Root()
		result.Balance = avl.BalanceFactor(root)
		for depth := range result.Levels {
			result.Levels[depth] = len(root.ChildrenByDepth(uint(depth)))
		}
	}
	if err := tree.Check(); nil != err {
		result.Valid = false
		result.Error = err.Error()
	}

	return printJson(m.w, result)
}
