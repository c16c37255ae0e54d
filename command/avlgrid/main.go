// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlgrid/fault"
	"github.com/bitmark-inc/avlgrid/layout"
)

type metadata struct {
	options layout.Options
	limit   int
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avlgrid"
	app.Usage = "build an AVL tree and draw it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	valueFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "file, f",
			Value: "",
			Usage: " read values from `FILE` instead of the arguments",
		},
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "labels, l",
			Value: "auto",
			Usage: " label `MODE` [auto|digit|full]",
		},
		cli.BoolFlag{
			Name:  "edges, e",
			Usage: " draw edges between levels",
		},
		cli.StringFlag{
			Name:  "filler",
			Value: " ",
			Usage: " `CHAR` for empty cells",
		},
		cli.IntFlag{
			Name:  "maximum-height, m",
			Value: layout.DefaultMaximumHeight,
			Usage: " refuse to render trees taller than `HEIGHT`",
		},
		cli.IntFlag{
			Name:  "limit",
			Value: 0,
			Usage: " maximum number of nodes `COUNT` (0 = unlimited)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "render",
			Usage:     "draw the tree as a grid",
			ArgsUsage: "VALUES...",
			Flags:     valueFlags,
			Action:    runRender,
		},
		{
			Name:      "lookup",
			Usage:     "search the tree for a value",
			ArgsUsage: "VALUES...\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "value, n",
					Usage: "*value to search for `N`",
				},
			}, valueFlags...),
			Action: runLookup,
		},
		{
			Name:      "print",
			Usage:     "sideways view of the tree with heights and balance",
			ArgsUsage: "VALUES...",
			Flags:     valueFlags,
			Action:    runPrint,
		},
		{
			Name:      "check",
			Usage:     "verify the tree invariants and show statistics",
			ArgsUsage: "VALUES...",
			Flags:     valueFlags,
			Action:    runCheck,
		},
		{
			Name:      "values",
			Usage:     "list the distinct values in order",
			ArgsUsage: "VALUES...",
			Flags:     valueFlags,
			Action:    runValues,
		},
		{
			Name:   "version",
			Usage:  "display avlgrid version",
			Action: runVersion,
		},
	}

	// set up the common options
	app.Before = func(c *cli.Context) error {

		mode, err := layout.ParseLabelMode(c.GlobalString("labels"))
		if nil != err {
			return err
		}

		filler := c.GlobalString("filler")
		if 1 != len(filler) || filler[0] < ' ' || filler[0] > '~' {
			return fault.ErrInvalidFiller
		}

		c.App.Metadata["config"] = &metadata{
			options: layout.Options{
				Filler:        filler[0],
				Labels:        mode,
				Edges:         c.GlobalBool("edges"),
				MaximumHeight: c.GlobalInt("maximum-height"),
			},
			limit:   c.GlobalInt("limit"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
