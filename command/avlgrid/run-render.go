// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlgrid/layout"
)

func runRender(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := buildTree(c, m)
	if nil != err {
		return err
	}
	defer tree.Destroy()

	g, err := layout.Layout(tree.Root(), m.options)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "height: %d  rows: %d  columns: %d\n", tree.Height(), g.Rows, g.Width)
	}

	_, err = m.w.Write(g.Bytes())
	return err
}
