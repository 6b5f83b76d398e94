// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import "github.com/cpmech/gosudoku/engine"

// DisjointGroups is a constraint *group* that expands, via
// SplitToPrimitives, to MaxValue constraints: one per within-region
// offset, each collecting the k-th cell of every region into one
// all-distinct group: one constraint per within-region offset,
// MaxValue total.
type DisjointGroups struct {
	Base
}

// SplitToPrimitives implements engine.Constraint.
func (d *DisjointGroups) SplitToPrimitives(e *engine.Engine) []engine.Constraint {
	b := e.Board
	n := b.MaxValue
	prims := make([]engine.Constraint, n)
	for k := 0; k < n; k++ {
		prims[k] = &disjointGroupOffset{offset: k, cells: cellsAtOffset(b, k)}
	}
	return prims
}

// cellsAtOffset returns the k-th cell (scanning within-region rows then
// columns) of every region on the board.
func cellsAtOffset(b *engine.Board, k int) []engine.Cell {
	if b.BoxHeight == 0 || b.BoxWidth == 0 {
		return nil
	}
	dr, dc := k/b.BoxWidth, k%b.BoxWidth
	numBoxesRow := b.Height / b.BoxHeight
	numBoxesCol := b.Width / b.BoxWidth
	cells := make([]engine.Cell, 0, numBoxesRow*numBoxesCol)
	for br := 0; br < numBoxesRow; br++ {
		for bc := 0; bc < numBoxesCol; bc++ {
			cells = append(cells, engine.Cell{
				Row: br*b.BoxHeight + dr,
				Col: bc*b.BoxWidth + dc,
			})
		}
	}
	return cells
}

// disjointGroupOffset is one primitive produced by DisjointGroups: the
// all-distinct group of every region's cell at a fixed offset.
type disjointGroupOffset struct {
	Base
	offset int
	cells  []engine.Cell
}

// Group implements engine.Constraint.
func (p *disjointGroupOffset) Group() ([]engine.Cell, bool) {
	return p.cells, true
}

func init() {
	Register("djg", "Disjoint Groups", func(options string, height, width, maxValue int) (engine.Constraint, error) {
		return &DisjointGroups{}, nil
	})
}
