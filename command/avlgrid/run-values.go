// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlgrid/values"
)

func runValues(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := buildTree(c, m)
	if nil != err {
		return err
	}
	defer tree.Destroy()

	fmt.Fprintf(m.w, "%s\n", values.Key(tree.Values()))
	return nil
}
