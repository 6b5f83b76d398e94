// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func newClassicEngine() *Engine {
	e := NewEngine(9, 9, 9, 3, 3)
	e.FinalizeConstraints()
	return e
}

func Test_write01(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("write01. SetValue eliminates from row, column and box")

	e := newClassicEngine()
	if !e.SetValue(0, 0, 5) {
		tst.Errorf("SetValue r1c1=5 failed\n")
		return
	}
	if HasValue(CandidateBits(e.Board.At(0, 3)), 5) {
		tst.Errorf("5 must be eliminated from the rest of row 1\n")
	}
	if HasValue(CandidateBits(e.Board.At(3, 0)), 5) {
		tst.Errorf("5 must be eliminated from the rest of column 1\n")
	}
	if HasValue(CandidateBits(e.Board.At(1, 1)), 5) {
		tst.Errorf("5 must be eliminated from the rest of box 1\n")
	}
	if !HasValue(CandidateBits(e.Board.At(4, 4)), 5) {
		tst.Errorf("5 must survive in an unrelated cell\n")
	}
}

func Test_write02(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("write02. SetValue repeat and conflict")

	e := newClassicEngine()
	if !e.SetValue(0, 0, 5) {
		tst.Errorf("first SetValue failed\n")
		return
	}
	if !e.SetValue(0, 0, 5) {
		tst.Errorf("re-setting the same value must be a no-op success\n")
	}
	if e.SetValue(0, 0, 6) {
		tst.Errorf("setting a different value on a decided cell must fail\n")
	}
}

func Test_write03(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("write03. SetValue cascades a naked single")

	e := newClassicEngine()
	// fill row 1 except the last cell with 8 distinct values so the
	// 9th is forced to a naked single and SetValue must cascade into
	// it without an explicit call
	for j, v := 0, 1; j < 8; j, v = j+1, v+1 {
		if !e.SetValue(0, j, v) {
			tst.Errorf("seeding r1c%d=%d failed\n", j+1, v)
			return
		}
	}
	last := e.Board.At(0, 8)
	if !IsValueSet(last) {
		tst.Errorf("r1c9 must be decided by cascade, got %v\n", last)
		return
	}
	chk.IntAssert(GetValue(last), 9)
}

func Test_write04(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("write04. KeepMask narrows, repeats and empties")

	e := newClassicEngine()
	keep := ValueMask(1) | ValueMask(2) | ValueMask(3)
	chk.IntAssert(int(e.KeepMask(4, 4, keep)), int(ResultChanged))
	chk.IntAssert(int(e.KeepMask(4, 4, keep)), int(ResultNone))
	chk.IntAssert(int(e.KeepMask(0, 0, 0)), int(ResultInvalid))
}

func Test_write05(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("write05. KeepMask collapse and decided-cell checks")

	e := newClassicEngine()
	chk.IntAssert(int(e.KeepMask(0, 0, ValueMask(7))), int(ResultChanged))
	m := e.Board.At(0, 0)
	if !IsValueSet(m) {
		tst.Errorf("r1c1 must be decided after single-bit KeepMask\n")
		return
	}
	chk.IntAssert(GetValue(m), 7)

	chk.IntAssert(int(e.KeepMask(0, 0, ValueMask(7))), int(ResultNone))
	chk.IntAssert(int(e.KeepMask(0, 0, ValueMask(4))), int(ResultInvalid))
}

func Test_write06(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("write06. ClearValue and ClearCandidates")

	e := newClassicEngine()
	chk.IntAssert(int(e.ClearValue(0, 0, 5)), int(ResultChanged))
	if HasValue(CandidateBits(e.Board.At(0, 0)), 5) {
		tst.Errorf("5 must be gone from r1c1\n")
	}

	cands := []Candidate{{Row: 1, Col: 0, Value: 5}, {Row: 1, Col: 0, Value: 5}}
	chk.IntAssert(int(e.ClearCandidates(cands)), int(ResultChanged))
}

func Test_canplace01(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("canplace01. masks, groups and weak links")

	e := newClassicEngine()
	cells := []Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}
	if !e.CanPlaceDigits(cells, []int{1, 2}) {
		tst.Errorf("two distinct values on an empty row must be placeable\n")
	}
	if e.CanPlaceDigits(cells, []int{1, 1}) {
		tst.Errorf("repeating a value across row mates must be rejected\n")
	}
	if !e.SetValue(0, 0, 9) {
		tst.Errorf("SetValue failed\n")
		return
	}
	if e.CanPlaceDigits(cells, []int{1, 2}) {
		tst.Errorf("assigning 1 where the cell is decided to 9 must be rejected\n")
	}
}

func Test_snapshot01(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("snapshot01. Clone and Restore round trip")

	e := newClassicEngine()
	snap := e.Clone()
	if !e.SetValue(0, 0, 1) {
		tst.Errorf("SetValue failed\n")
		return
	}
	if ValueCount(CandidateBits(e.Board.At(0, 1))) == 9 {
		tst.Errorf("row mate kept all candidates before Restore\n")
	}
	e.Restore(snap)
	if IsValueSet(e.Board.At(0, 0)) {
		tst.Errorf("Restore must undo the SetValue\n")
	}
	chk.IntAssert(ValueCount(CandidateBits(e.Board.At(0, 1))), 9)
}
