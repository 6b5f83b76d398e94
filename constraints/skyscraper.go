// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import (
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosudoku/engine"
)

// Skyscraper encodes a row/column visibility clue: scanning the line
// from the clue end, the clue is the count of strictly increasing
// maxima seen.
type Skyscraper struct {
	Base
	clue  int
	cells []engine.Cell
}

// InitCandidates applies the two clue-shape special cases directly
// (clue 1 and clue MaxValue); any other clue gets the general per-cell
// upper bound.
func (s *Skyscraper) InitCandidates(e *engine.Engine) engine.LogicResult {
	maxValue := e.Board.MaxValue
	n := len(s.cells)
	switch {
	case s.clue == 1:
		if m := e.Board.AtCell(s.cells[0]); engine.IsValueSet(m) && engine.GetValue(m) == maxValue {
			return engine.ResultNone
		}
		if !e.SetValue(s.cells[0].Row, s.cells[0].Col, maxValue) {
			return engine.ResultInvalid
		}
		return engine.ResultChanged
	case s.clue == maxValue:
		result := engine.ResultNone
		for k := 0; k < n; k++ {
			if m := e.Board.AtCell(s.cells[k]); engine.IsValueSet(m) && engine.GetValue(m) == k+1 {
				continue
			}
			if !e.SetValue(s.cells[k].Row, s.cells[k].Col, k+1) {
				return engine.ResultInvalid
			}
			result = engine.ResultChanged
		}
		return result
	default:
		result := engine.ResultNone
		for k := 0; k < n; k++ {
			bound := maxValue - s.clue + 1 + k
			if bound >= maxValue {
				continue
			}
			r := e.KeepMask(s.cells[k].Row, s.cells[k].Col, engine.MaskValAndLower(bound))
			result = result.Combine(r)
			if result == engine.ResultInvalid {
				return engine.ResultInvalid
			}
		}
		return result
	}
}

// skyscraperSeenCount counts strictly increasing maxima scanning left
// to right (i.e. from the clue end, since cells are already ordered
// that way).
func skyscraperSeenCount(values []int) int {
	count, max := 0, 0
	for _, v := range values {
		if v > max {
			max = v
			count++
		}
	}
	return count
}

// StepLogic enumerates permutations of the remaining unset values over
// the unset slots, keeps those matching the clue's visibility count
// and consistent with the rest of the board (engine.CanPlaceDigits),
// and restricts each unset cell to the union of its surviving values.
// Results are memoized; the key captures the clue, the line's cells
// and every candidate mask the computation reads, so entries never go
// stale across backtracking branches.
func (s *Skyscraper) StepLogic(e *engine.Engine, sink engine.ExplainSink, isBruteForcing bool) engine.LogicResult {
	n := len(s.cells)
	values := make([]int, n)
	unsetIdx := make([]int, 0, n)
	masks := make([]engine.Mask, 0, n)
	for k, c := range s.cells {
		m := e.Board.AtCell(c)
		if engine.IsValueSet(m) {
			values[k] = engine.GetValue(m)
		} else {
			unsetIdx = append(unsetIdx, k)
			masks = append(masks, engine.CandidateBits(m))
		}
	}
	if len(unsetIdx) == 0 {
		return engine.ResultNone
	}
	if len(unsetIdx) > maxEnumeratedSlots {
		return engine.ResultNone
	}

	key := s.memoKey(values, unsetIdx, masks)
	survivors, ok := engine.GetMemo[[]engine.Mask](e.Memo, key)
	if !ok {
		survivors = make([]engine.Mask, len(unsetIdx))
		unsetCells := make([]engine.Cell, len(unsetIdx))
		for i, idx := range unsetIdx {
			unsetCells[i] = s.cells[idx]
		}
		enumerateAssignments(masks, func(assignment []int) bool {
			for i, idx := range unsetIdx {
				values[idx] = assignment[i]
			}
			if skyscraperSeenCount(values) != s.clue {
				return true
			}
			if !e.CanPlaceDigits(unsetCells, assignment) {
				return true
			}
			for i := range assignment {
				survivors[i] |= engine.ValueMask(assignment[i])
			}
			return true
		})
		engine.StoreMemo(e.Memo, key, survivors)
	}

	result := engine.ResultNone
	for i, idx := range unsetIdx {
		if survivors[i] == 0 {
			return engine.ResultInvalid
		}
		r := e.KeepMask(s.cells[idx].Row, s.cells[idx].Col, survivors[i])
		if r == engine.ResultChanged && sink != nil {
			sink.Explain("skyscraper clue %d: %s narrowed to %s", s.clue, cellName(s.cells[idx]), survivors[i].String())
			return engine.ResultChanged
		}
		result = result.Combine(r)
		if result == engine.ResultInvalid {
			return engine.ResultInvalid
		}
	}
	return result
}

// memoKey folds in everything the enumeration reads: the clue, the
// line's cells (their identity fixes which weak links apply), the
// already-set values and the unset cells' candidate masks.
func (s *Skyscraper) memoKey(values []int, unsetIdx []int, masks []engine.Mask) string {
	key := io.Sf("skyscraper:%d", s.clue)
	for _, c := range s.cells {
		key += io.Sf(":%s", cellName(c))
	}
	for _, v := range values {
		key += io.Sf(":%d", v)
	}
	for i, idx := range unsetIdx {
		key += io.Sf(":%d=%d", idx, masks[i])
	}
	return key
}

func cellName(c engine.Cell) string {
	return io.Sf("r%dc%d", c.Row+1, c.Col+1)
}

func init() {
	Register("skyscraper", "Skyscraper", func(options string, height, width, maxValue int) (engine.Constraint, error) {
		clue, line, err := ParseClueAndLine(options)
		if err != nil {
			return nil, err
		}
		return &Skyscraper{clue: clue, cells: line}, nil
	})
}
