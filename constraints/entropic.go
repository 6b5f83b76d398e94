// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import "github.com/cpmech/gosudoku/engine"

// classifier partitions values 1..maxValue into three classes.
type classifier func(v, maxValue int) int

// entropicClass groups values by (v-1)/ceil(maxValue/3): {low,mid,high}.
func entropicClass(v, maxValue int) int {
	groupSize := (maxValue + 2) / 3 // ceil(maxValue/3)
	return (v - 1) / groupSize
}

// modularClass groups values by (v-1) mod 3.
func modularClass(v, maxValue int) int {
	return (v - 1) % 3
}

// ThreeClassLine is the shared implementation of the Entropic and
// Modular line constraints: every pair of line cells gets
// weak links forbidding the value combinations inconsistent with the
// class cycle. All enforcement is carried entirely by the weak-link
// graph; EnforceConstraint is the inherited Base no-op.
type ThreeClassLine struct {
	Base
	cells   []engine.Cell
	classOf classifier
}

// InitLinks implements engine.Constraint.
func (l *ThreeClassLine) InitLinks(e *engine.Engine) engine.LogicResult {
	maxValue := e.Board.MaxValue
	n := len(l.cells)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			cellDist := (j - i) % 3
			a, b := l.cells[i], l.cells[j]
			for v0 := 1; v0 <= maxValue; v0++ {
				for v1 := 1; v1 <= maxValue; v1++ {
					sameClass := l.classOf(v0, maxValue) == l.classOf(v1, maxValue)
					forbidden := (cellDist == 0) != sameClass
					if forbidden {
						e.AddWeakLink(e.Board.CandidateIndex(a.Row, a.Col, v0), e.Board.CandidateIndex(b.Row, b.Col, v1))
					}
				}
			}
		}
	}
	return engine.ResultNone
}

// SplitToPrimitives splits a line longer than 3 cells into overlapping
// length-3 constraints, each independently sufficient to enforce the
// local class cycle.
func (l *ThreeClassLine) SplitToPrimitives(e *engine.Engine) []engine.Constraint {
	n := len(l.cells)
	if n <= 3 {
		return nil
	}
	prims := make([]engine.Constraint, 0, n-2)
	for start := 0; start+3 <= n; start++ {
		window := append([]engine.Cell(nil), l.cells[start:start+3]...)
		prims = append(prims, &ThreeClassLine{cells: window, classOf: l.classOf})
	}
	return prims
}

func init() {
	Register("entrol", "Entropic Line", func(options string, height, width, maxValue int) (engine.Constraint, error) {
		cells, err := ParseCellSequence(options)
		if err != nil {
			return nil, err
		}
		return &ThreeClassLine{cells: cells, classOf: entropicClass}, nil
	})
	Register("modl", "Modular Line", func(options string, height, width, maxValue int) (engine.Constraint, error) {
		cells, err := ParseCellSequence(options)
		if err != nil {
			return nil, err
		}
		return &ThreeClassLine{cells: cells, classOf: modularClass}, nil
	})
}
