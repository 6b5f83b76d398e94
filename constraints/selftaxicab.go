// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import "github.com/cpmech/gosudoku/engine"

// SelfTaxicab forbids a cell holding value v from sharing v with any
// cell exactly v taxicab-steps away. The distance bound depends on the
// cell's own value, so contribution to the "seen by" relation can only
// happen once that value is known: this is the textbook
// SeenCellsByValueMask use case.
type SelfTaxicab struct {
	Base
	height, width int
}

// SeenCellsByValueMask implements engine.Constraint: for each candidate
// value v still live in mask, include every cell at taxicab distance
// exactly v from cell (clamped to the board).
func (s *SelfTaxicab) SeenCellsByValueMask(cell engine.Cell, mask engine.Mask) []engine.Cell {
	var out []engine.Cell
	seen := map[engine.Cell]bool{}
	engine.ForEachValue(mask, func(v int) bool {
		for dr := -v; dr <= v; dr++ {
			dc := v - absInt(dr)
			for _, sign := range []int{-1, 1} {
				r, c := cell.Row+dr, cell.Col+dc*sign
				if dc == 0 && sign == -1 {
					continue // dc==0 already covered once
				}
				if r < 0 || r >= s.height || c < 0 || c >= s.width {
					continue
				}
				if r == cell.Row && c == cell.Col {
					continue
				}
				target := engine.Cell{Row: r, Col: c}
				if !seen[target] {
					seen[target] = true
					out = append(out, target)
				}
			}
		}
		return true
	})
	return out
}

func init() {
	Register("selftaxi", "Self-Taxicab", func(options string, height, width, maxValue int) (engine.Constraint, error) {
		return &SelfTaxicab{height: height, width: width}, nil
	})
}
