// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlgrid/avl"
	"github.com/bitmark-inc/avlgrid/values"
)

// build the tree from --file or the remaining arguments
func buildTree(c *cli.Context, m *metadata) (*avl.Tree, error) {

	var list []int32
	var err error

	if file := c.String("file"); "" != file {
		if c.NArg() > 0 {
			return nil, ErrFileAndArguments
		}
		if m.verbose {
			fmt.Fprintf(m.e, "reading values from: %s\n", file)
		}
		list, err = values.ReadFile(file)
	} else {
		list, err = values.ParseArguments(c.Args())
	}
	if nil != err {
		return nil, err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "inserting %d values\n", len(list))
	}

	return values.Build(avl.NewAllocator(m.limit), list)
}

// indented JSON followed by a newline
func printJson(handle io.Writer, message interface{}) error {
	encoder := json.NewEncoder(handle)
	encoder.SetIndent("", "  ")
	return encoder.Encode(message)
}
