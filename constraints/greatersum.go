// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosudoku/engine"
)

// GreaterSum maintains sum(G) > sum(S) for two disjoint cell groups.
// Enforcement only ever narrows candidates, and only when the gap
// between G's maximum and S's minimum is tight enough to matter.
type GreaterSum struct {
	Base
	g, s []engine.Cell
}

// StepLogic implements the bound from the case study this constraint
// is drawn from: tightening only fires when max(G) - min(S) <= MaxValue-1,
// in which case S's candidates above minValue+(max(G)-min(S)) are
// dead, and symmetrically for G's candidates below maxValue-(max(G)-min(S)).
//
// When the gap test does not hold nothing is written. When it holds,
// both loops below issue a KeepMask for every cell even if the bound
// leaves that cell's mask unchanged: a same-mask KeepMask is defined to
// report None, so it costs nothing.
func (g *GreaterSum) StepLogic(e *engine.Engine, sink engine.ExplainSink, isBruteForcing bool) engine.LogicResult {
	maxValue := e.Board.MaxValue
	maxG := groupMax(e, g.g)
	minS := groupMin(e, g.s, maxValue)
	gap := maxG - minS
	result := engine.ResultNone
	if gap <= maxValue-1 {
		sBound := 1 + gap
		for _, c := range g.s {
			r := e.KeepMask(c.Row, c.Col, engine.MaskValAndLower(sBound))
			if r == engine.ResultChanged && sink != nil {
				sink.Explain("greater-sum: %s bounded to <= %d", cellName(c), sBound)
				return engine.ResultChanged
			}
			result = result.Combine(r)
			if result == engine.ResultInvalid {
				return engine.ResultInvalid
			}
		}
		gBound := maxValue - gap
		for _, c := range g.g {
			cur := engine.CandidateBits(e.Board.AtCell(c))
			keep := cur &^ engine.MaskValAndLower(gBound - 1)
			r := e.KeepMask(c.Row, c.Col, keep)
			if r == engine.ResultChanged && sink != nil {
				sink.Explain("greater-sum: %s bounded to >= %d", cellName(c), gBound)
				return engine.ResultChanged
			}
			result = result.Combine(r)
			if result == engine.ResultInvalid {
				return engine.ResultInvalid
			}
		}
	}
	return result
}

func groupMax(e *engine.Engine, cells []engine.Cell) int {
	max := 0
	for _, c := range cells {
		max = maxInt(max, engine.MaxValue(engine.CandidateBits(e.Board.AtCell(c))))
	}
	return max
}

func groupMin(e *engine.Engine, cells []engine.Cell, maxValue int) int {
	min := maxValue + 1
	for _, c := range cells {
		min = minInt(min, engine.MinValue(engine.CandidateBits(e.Board.AtCell(c))))
	}
	return min
}

func init() {
	Register("gtsum", "Greater Sum", func(options string, height, width, maxValue int) (engine.Constraint, error) {
		groups, err := ParseCellGroups(options)
		if err != nil {
			return nil, err
		}
		if len(groups) != 2 {
			return nil, chk.Err("gtsum options must name exactly 2 groups separated by ';', got %d", len(groups))
		}
		return &GreaterSum{g: groups[0], s: groups[1]}, nil
	})
}
