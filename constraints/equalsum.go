// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import "github.com/cpmech/gosudoku/engine"

// EqualSumsConstraint is the shared base for the equal-sum line
// families (Zipper, Double Arrow): a line is partitioned into groups
// whose sums must all come out equal, and enforcement works by
// emitting one pairwise-equality constraint per adjacent pair of
// groups rather than any direct logic of its own.
type EqualSumsConstraint struct {
	Base
	groups [][]engine.Cell
}

// SplitToPrimitives implements engine.Constraint: the equal-sum family
// itself contributes no logic; instead it decomposes into one
// groupSumEquality per adjacent pair of groups, a transitive chain that
// forces every group's sum equal.
func (c *EqualSumsConstraint) SplitToPrimitives(e *engine.Engine) []engine.Constraint {
	if len(c.groups) < 2 {
		return nil
	}
	prims := make([]engine.Constraint, 0, len(c.groups)-1)
	for k := 0; k+1 < len(c.groups); k++ {
		prims = append(prims, &groupSumEquality{a: c.groups[k], b: c.groups[k+1]})
	}
	return prims
}

// groupSumEquality enforces sum(a) == sum(b) for two cell groups, which
// may differ in length, by brute-force enumeration (no memo is used).
type groupSumEquality struct {
	Base
	a, b []engine.Cell
}

// StepLogic enumerates every pairwise-distinct assignment of a's cells
// (set or not) and, independently, b's, and keeps only the values that appear
// in some pair of assignments whose sums match.
func (g *groupSumEquality) StepLogic(e *engine.Engine, sink engine.ExplainSink, isBruteForcing bool) engine.LogicResult {
	if len(g.a)+len(g.b) > maxEnumeratedSlots {
		return engine.ResultNone
	}
	sumsA, survivorsA := possibleSums(e, g.a)
	sumsB, survivorsB := possibleSums(e, g.b)

	keptA := make([]engine.Mask, len(g.a))
	keptB := make([]engine.Mask, len(g.b))
	any := false
	for sum, idxA := range sumsA {
		idxB, ok := sumsB[sum]
		if !ok {
			continue
		}
		any = true
		for i := range keptA {
			keptA[i] |= survivorsA[idxA][i]
		}
		for i := range keptB {
			keptB[i] |= survivorsB[idxB][i]
		}
	}
	if !any {
		return engine.ResultInvalid
	}

	result := engine.ResultNone
	for i, c := range g.a {
		r := e.KeepMask(c.Row, c.Col, keptA[i])
		if r == engine.ResultChanged && sink != nil {
			sink.Explain("equal sums: %s narrowed to %s", cellName(c), keptA[i].String())
			return engine.ResultChanged
		}
		result = result.Combine(r)
		if result == engine.ResultInvalid {
			return engine.ResultInvalid
		}
	}
	for i, c := range g.b {
		r := e.KeepMask(c.Row, c.Col, keptB[i])
		if r == engine.ResultChanged && sink != nil {
			sink.Explain("equal sums: %s narrowed to %s", cellName(c), keptB[i].String())
			return engine.ResultChanged
		}
		result = result.Combine(r)
		if result == engine.ResultInvalid {
			return engine.ResultInvalid
		}
	}
	return result
}

// possibleSums enumerates every achievable distinct-valued assignment
// of cells and groups the survivor masks by sum, so a caller can
// intersect two groups' achievable sums without a cross-product scan.
func possibleSums(e *engine.Engine, cells []engine.Cell) (bySum map[int]int, survivorSets [][]engine.Mask) {
	bySum = map[int]int{}
	masks := make([]engine.Mask, len(cells))
	for i, c := range cells {
		masks[i] = engine.CandidateBits(e.Board.AtCell(c))
	}
	enumerateAssignments(masks, func(values []int) bool {
		if !e.CanPlaceDigits(cells, values) {
			return true
		}
		sum := 0
		for _, v := range values {
			sum += v
		}
		idx, ok := bySum[sum]
		if !ok {
			idx = len(survivorSets)
			bySum[sum] = idx
			survivorSets = append(survivorSets, make([]engine.Mask, len(cells)))
		}
		for i, v := range values {
			survivorSets[idx][i] |= engine.ValueMask(v)
		}
		return true
	})
	return bySum, survivorSets
}

func init() {
	Register("zipper", "Zipper Line", func(options string, height, width, maxValue int) (engine.Constraint, error) {
		groups, err := zipperGroups(options)
		if err != nil {
			return nil, err
		}
		return &EqualSumsConstraint{groups: groups}, nil
	})
	Register("doublearrow", "Double Arrow", func(options string, height, width, maxValue int) (engine.Constraint, error) {
		groups, err := ParseCellGroups(options)
		if err != nil {
			return nil, err
		}
		return &EqualSumsConstraint{groups: groups}, nil
	})
}

// zipperGroups mirrors a zipper line's cells around its center into
// symmetric pairs, each pair one "group" whose sum must equal the rest.
func zipperGroups(options string) ([][]engine.Cell, error) {
	cells, err := ParseCellSequence(options)
	if err != nil {
		return nil, err
	}
	n := len(cells)
	groups := make([][]engine.Cell, 0, n/2+1)
	for k := 0; k < n/2; k++ {
		groups = append(groups, []engine.Cell{cells[k], cells[n-1-k]})
	}
	if n%2 == 1 {
		groups = append(groups, []engine.Cell{cells[n/2]})
	}
	return groups, nil
}
