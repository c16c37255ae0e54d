// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout

// EmptyTree - the text rendered for a tree with no nodes
const EmptyTree = "(empty tree)\n"

// Label - one node value placed on the grid
type Label struct {
	Row    int    // grid row, twice the tree level
	Column int    // first column of the text
	Value  int32  // value of the node
	Text   string // characters actually written
}

// Grid - the rendered tree
type Grid struct {
	Rows   int     // number of rows
	Width  int     // columns in a row, not counting the newline
	Labels []Label // in breadth first order

	cells []byte // Rows * (Width + 1), each row ends in '\n'
}

// create a grid with every cell set to filler
func newGrid(rows int, width int, filler byte) *Grid {
	cells := make([]byte, rows*(width+1))
	for r := 0; r < rows; r += 1 {
		start := r * (width + 1)
		for c := 0; c < width; c += 1 {
			cells[start+c] = filler
		}
		cells[start+width] = '\n'
	}
	return &Grid{
		Rows:  rows,
		Width: width,
		cells: cells,
	}
}

// IsEmpty - true if the grid came from an empty tree
func (g *Grid) IsEmpty() bool {
	return 0 == g.Rows
}

// String - the whole grid, rows separated by newlines
func (g *Grid) String() string {
	if g.IsEmpty() {
		return EmptyTree
	}
	return string(g.cells)
}

// Bytes - the whole grid as bytes, the caller must not modify them
func (g *Grid) Bytes() []byte {
	if g.IsEmpty() {
		return []byte(EmptyTree)
	}
	return g.cells
}

// Row - one row without its newline, empty string if out of range
func (g *Grid) Row(row int) string {
	if row < 0 || row >= g.Rows {
		return ""
	}
	start := row * (g.Width + 1)
	return string(g.cells[start : start+g.Width])
}

// At - the character at a cell, zero if out of range
func (g *Grid) At(row int, column int) byte {
	if row < 0 || row >= g.Rows || column < 0 || column >= g.Width {
		return 0
	}
	return g.cells[row*(g.Width+1)+column]
}

// set a single cell, the caller ensures it is in range
func (g *Grid) set(row int, column int, c byte) {
	g.cells[row*(g.Width+1)+column] = c
}

// write text starting at a cell
func (g *Grid) write(row int, column int, text string) {
	copy(g.cells[row*(g.Width+1)+column:], text)
}
