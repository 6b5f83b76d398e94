// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import "github.com/cpmech/gosudoku/engine"

// Diagonal is a Group-only constraint covering one of the board's two
// main diagonals; otherwise inert. "dpos" is the rising
// diagonal (bottom-left to top-right), "dneg" the falling diagonal
// (top-left to bottom-right), matching classic X-Sudoku notation.
type Diagonal struct {
	Base
	cells []engine.Cell
}

// Group implements engine.Constraint.
func (d *Diagonal) Group() ([]engine.Cell, bool) {
	return d.cells, true
}

func negativeDiagonal(n int) []engine.Cell {
	cells := make([]engine.Cell, n)
	for i := 0; i < n; i++ {
		cells[i] = engine.Cell{Row: i, Col: i}
	}
	return cells
}

func positiveDiagonal(height, n int) []engine.Cell {
	cells := make([]engine.Cell, n)
	for i := 0; i < n; i++ {
		cells[i] = engine.Cell{Row: height - 1 - i, Col: i}
	}
	return cells
}

func init() {
	Register("dneg", "Diagonal \\", func(options string, height, width, maxValue int) (engine.Constraint, error) {
		n := minInt(height, width)
		return &Diagonal{cells: negativeDiagonal(n)}, nil
	})
	Register("dpos", "Diagonal /", func(options string, height, width, maxValue int) (engine.Constraint, error) {
		n := minInt(height, width)
		return &Diagonal{cells: positiveDiagonal(height, n)}, nil
	})
}
