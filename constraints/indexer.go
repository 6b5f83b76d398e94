// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import "github.com/cpmech/gosudoku/engine"

// indexTarget maps an indexer cell (i,j) and a candidate value iv to
// the (target row, target column, target value) triple iv indexes
// into: a Row
// Indexer's cell (i,j)=iv means "the iv-th cell of row i holds the
// value that column j would otherwise need to supply", and similarly
// for Column and Box.
type indexTarget func(b *engine.Board, i, j, iv int) (ti, tj, tv int)

// Indexer is the shared implementation of the Row/Column/Box Indexer
// constraints: a bijection on candidate triples (i,j,v) <-> (ti,tj,tv)
// built from a per-kind target function.
type Indexer struct {
	Base
	cells  []engine.Cell
	target indexTarget
}

func rowIndexTarget(b *engine.Board, i, j, iv int) (ti, tj, tv int) {
	return i, iv - 1, j + 1
}

func colIndexTarget(b *engine.Board, i, j, iv int) (ti, tj, tv int) {
	return iv - 1, j, i + 1
}

func boxIndexTarget(b *engine.Board, i, j, iv int) (ti, tj, tv int) {
	boxRow, boxCol := (i/b.BoxHeight)*b.BoxHeight, (j/b.BoxWidth)*b.BoxWidth
	offset := iv - 1
	tr, tc := boxRow+offset/b.BoxWidth, boxCol+offset%b.BoxWidth
	return tr, tc, b.BoxOffset(i, j) + 1
}

// EnforceConstraint propagates setting the indexer cell to its target,
// and vice versa: the triple (i,j,v) <-> (ti,tj,tv) is a bijection, so
// deciding either side forces the other.
func (x *Indexer) EnforceConstraint(e *engine.Engine, i, j, v int) bool {
	for _, c := range x.cells {
		if c.Row == i && c.Col == j {
			ti, tj, tv := x.target(e.Board, i, j, v)
			if !e.SetValue(ti, tj, tv) {
				return false
			}
		}
		for iv := 1; iv <= e.Board.MaxValue; iv++ {
			ti, tj, tv := x.target(e.Board, c.Row, c.Col, iv)
			if ti == i && tj == j && tv == v && !e.SetValue(c.Row, c.Col, iv) {
				return false
			}
		}
	}
	return true
}

// StepLogic checks, for each indexer cell and each of its candidate
// values iv, whether the corresponding target cell still admits tv; if
// not, iv is eliminated from the indexer cell.
func (x *Indexer) StepLogic(e *engine.Engine, sink engine.ExplainSink, isBruteForcing bool) engine.LogicResult {
	result := engine.ResultNone
	for _, c := range x.cells {
		mask := engine.CandidateBits(e.Board.AtCell(c))
		survivor := engine.Mask(0)
		engine.ForEachValue(mask, func(iv int) bool {
			ti, tj, tv := x.target(e.Board, c.Row, c.Col, iv)
			if engine.HasValue(engine.CandidateBits(e.Board.At(ti, tj)), tv) {
				survivor |= engine.ValueMask(iv)
			}
			return true
		})
		if survivor == mask {
			continue
		}
		r := e.KeepMask(c.Row, c.Col, survivor)
		if r == engine.ResultChanged && sink != nil {
			sink.Explain("indexer: %s narrowed to %s", cellName(c), survivor.String())
			return engine.ResultChanged
		}
		result = result.Combine(r)
		if result == engine.ResultInvalid {
			return engine.ResultInvalid
		}
	}
	return result
}

// NeedsEnforceConstraint implements engine.Constraint.
func (x *Indexer) NeedsEnforceConstraint() bool { return true }

func init() {
	Register("rowindexer", "Row Indexer", func(options string, height, width, maxValue int) (engine.Constraint, error) {
		cells, err := ParseCellSequence(options)
		if err != nil {
			return nil, err
		}
		return &Indexer{cells: cells, target: rowIndexTarget}, nil
	})
	Register("colindexer", "Column Indexer", func(options string, height, width, maxValue int) (engine.Constraint, error) {
		cells, err := ParseCellSequence(options)
		if err != nil {
			return nil, err
		}
		return &Indexer{cells: cells, target: colIndexTarget}, nil
	})
	Register("boxindexer", "Box Indexer", func(options string, height, width, maxValue int) (engine.Constraint, error) {
		cells, err := ParseCellSequence(options)
		if err != nil {
			return nil, err
		}
		return &Indexer{cells: cells, target: boxIndexTarget}, nil
	})
}
