// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

import (
	"github.com/bitmark-inc/avlgrid/avl"
	"github.com/bitmark-inc/avlgrid/fault"
)

// limits on the grid size
const (
	DefaultMaximumHeight = 16 // 65537 columns
	HardMaximumHeight    = 24
	DefaultFiller        = ' '
)

// Options - control the rendering
type Options struct {
	Filler        byte      // character for unused cells, zero means DefaultFiller
	Labels        LabelMode // how values are written
	Edges         bool      // draw '/' and '\' on the rows between levels
	MaximumHeight int       // refuse taller trees, zero means DefaultMaximumHeight
}

// DefaultOptions - space filler, automatic labels, no edges
func DefaultOptions() Options {
	return Options{
		Filler:        DefaultFiller,
		Labels:        LabelAuto,
		Edges:         false,
		MaximumHeight: DefaultMaximumHeight,
	}
}

// Render - draw the tree with the default options
func Render(root *avl.Node) (string, error) {
	return RenderWithOptions(root, DefaultOptions())
}

// RenderWithOptions - draw the tree as text
func RenderWithOptions(root *avl.Node, options Options) (string, error) {
	g, err := Layout(root, options)
	if nil != err {
		return "", err
	}
	return g.String(), nil
}

// Layout - compute the grid for a tree
//
// the tree is read breadth first from a queue seeded with the root,
// an absent node still occupies its slot and queues two absent
// children so deeper nodes stay in position
func Layout(root *avl.Node, options Options) (*Grid, error) {
	if 0 == options.Filler {
		options.Filler = DefaultFiller
	}
	maximumHeight := options.MaximumHeight
	if maximumHeight <= 0 {
		maximumHeight = DefaultMaximumHeight
	}
	if maximumHeight > HardMaximumHeight {
		maximumHeight = HardMaximumHeight
	}

	h := avl.Height(root)
	if 0 == h {
		return &Grid{}, nil
	}
	if h > maximumHeight {
		return nil, fault.ErrTreeTooTall
	}

	// smallest odd width not less than 2^h
	width := 1 << uint(h)
	if 0 == width%2 {
		width += 1
	}

	g := newGrid(2*h-1, width, options.Filler)
	g.Labels = make([]Label, 0, avl.Size(root))

	queue := make([]*avl.Node, 1, 1<<uint(h))
	queue[0] = root
	head := 0

	for level := 0; level < h; level += 1 {
		span := 1 << uint(h-level)
		row := 2 * level
		last := level == h-1

		for index := 0; index < 1<<uint(level); index += 1 {
			p := queue[head]
			head += 1

			if !last {
				queue = append(queue, p.Left(), p.Right())
			}
			if nil == p {
				continue
			}

			column := index*span + span/2
			text, err := labelText(p.Value(), span, options.Labels)
			if nil != err {
				return nil, err
			}
			g.write(row, column, text)
			g.Labels = append(g.Labels, Label{
				Row:    row,
				Column: column,
				Value:  p.Value(),
				Text:   text,
			})

			if options.Edges && !last {
				drawEdges(g, row+1, column, span, p)
			}
		}
	}
	return g, nil
}

// mark the edges from a node to its children on the row between
// their levels, half way between the parent and child columns
func drawEdges(g *Grid, row int, column int, span int, p *avl.Node) {
	quarter := span / 4
	if nil != p.Left() {
		child := column - quarter
		g.set(row, (column+child)/2, '/')
	}
	if nil != p.Right() {
		child := column + quarter
		g.set(row, (column+child)/2, '\\')
	}
}
