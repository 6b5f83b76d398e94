// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

// SeenCells returns the union of every cell that must not also hold
// whatever value cell ends up with: fellow members of every group cell
// belongs to, plus each constraint's own SeenCells contribution. The
// cell itself is never included.
func (e *Engine) SeenCells(cell Cell) []Cell {
	seen := make(map[Cell]bool)
	for _, g := range e.Groups.GroupsOf(e.Board, cell.Row, cell.Col) {
		for _, c := range g.Cells {
			if c != cell {
				seen[c] = true
			}
		}
	}
	for _, c := range e.constraints {
		for _, sc := range c.SeenCells(cell) {
			if sc != cell {
				seen[sc] = true
			}
		}
	}
	out := make([]Cell, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	return out
}

// SeenCellsByValueMask is the masked variant of SeenCells: on top of
// group membership and the value-independent per-constraint
// contributions, it collects each constraint's
// SeenCellsByValueMask(cell, mask), which may return a different (or
// empty) set depending on which values are in play. This is the
// aggregation SetValue uses once the committed value is known.
func (e *Engine) SeenCellsByValueMask(cell Cell, mask Mask) []Cell {
	seen := make(map[Cell]bool)
	for _, g := range e.Groups.GroupsOf(e.Board, cell.Row, cell.Col) {
		for _, c := range g.Cells {
			if c != cell {
				seen[c] = true
			}
		}
	}
	for _, c := range e.constraints {
		for _, sc := range c.SeenCells(cell) {
			if sc != cell {
				seen[sc] = true
			}
		}
		for _, sc := range c.SeenCellsByValueMask(cell, mask) {
			if sc != cell {
				seen[sc] = true
			}
		}
	}
	out := make([]Cell, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	return out
}
