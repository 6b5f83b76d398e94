// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import "github.com/cpmech/gosudoku/engine"

// sumAssignments reports whether some assignment of pairwise distinct
// values (one per cell, drawn from each cell's current candidates
// minus excludeValue) sums exactly to target, and if so returns, per
// cell, the union of every value that appeared in some successful
// assignment. Used by X-Sum (first-cell-determined leading sum).
func sumAssignments(e *engine.Engine, cells []engine.Cell, excludeValue, target int) (feasible bool, survivors []engine.Mask) {
	n := len(cells)
	survivors = make([]engine.Mask, n)
	if n == 0 {
		return target == 0, survivors
	}
	if n > maxEnumeratedSlots {
		// Too large to enumerate exhaustively; stay conservative and
		// report feasible without narrowing any candidate, rather
		// than risk a false elimination.
		return true, nil
	}

	masks := make([]engine.Mask, n)
	exclude := engine.ValueMask(excludeValue)
	for i, c := range cells {
		masks[i] = engine.CandidateBits(e.Board.AtCell(c)) &^ exclude
	}

	enumerateAssignments(masks, func(values []int) bool {
		sum := 0
		for _, v := range values {
			sum += v
		}
		if sum != target {
			return true
		}
		if !e.CanPlaceDigits(cells, values) {
			return true
		}
		feasible = true
		for i, v := range values {
			survivors[i] |= engine.ValueMask(v)
		}
		return true
	})
	return feasible, survivors
}
