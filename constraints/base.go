// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package constraints implements the reference constraint library:
// concrete Constraint types exercising the full engine interface
// (diagonals, chess moves, lines, arrows, indexers, skyscraper, X-sum,
// palindromes, difference/sum/ratio markers, entropic/modular lines,
// disjoint groups, self-taxicab). Every constraint type registers
// itself with the shared registry from a package-level func init().
package constraints

import "github.com/cpmech/gosudoku/engine"

// Base embeds engine.NopConstraint so concrete constraints only
// implement the handful of operations they actually use.
type Base struct {
	engine.NopConstraint
}

// orthogonalOffsets are the four edge-adjacency deltas.
var orthogonalOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// kingOffsets are the eight chess-king move deltas.
var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// knightOffsets are the eight chess-knight move deltas.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// offsetCells applies a fixed set of (dr,dc) offsets to cell and
// returns those landing inside the board.
func offsetCells(cell engine.Cell, height, width int, offsets [][2]int) []engine.Cell {
	out := make([]engine.Cell, 0, len(offsets))
	for _, o := range offsets {
		r, c := cell.Row+o[0], cell.Col+o[1]
		if r >= 0 && r < height && c >= 0 && c < width {
			out = append(out, engine.Cell{Row: r, Col: c})
		}
	}
	return out
}

func fixedOffsets(offs [8][2]int) [][2]int {
	out := make([][2]int, len(offs))
	for i, o := range offs {
		out[i] = o
	}
	return out
}

// orthogonalNeighbors returns the edge-adjacent cells of cell that lie
// on the board.
func orthogonalNeighbors(cell engine.Cell, height, width int) []engine.Cell {
	offs := make([][2]int, len(orthogonalOffsets))
	for i, o := range orthogonalOffsets {
		offs[i] = o
	}
	return offsetCells(cell, height, width, offs)
}

// taxicabDistance returns the L1 distance between two cells.
func taxicabDistance(a, b engine.Cell) int {
	return absInt(a.Row-b.Row) + absInt(a.Col-b.Col)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// minInt and maxInt are small helpers used throughout the constraint
// library's mask/range arithmetic.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
