// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosudoku/engine"
)

func Test_gtsum01(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("gtsum01. exactly two groups required")

	if _, err := New("gtsum", "r1c1r1c2", 9, 9, 9); err == nil {
		tst.Errorf("one group must fail\n")
	}
	if _, err := New("gtsum", "r1c1;r1c2;r1c3", 9, 9, 9); err == nil {
		tst.Errorf("three groups must fail\n")
	}
}

func Test_gtsum02(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("gtsum02. tight gap bounds both groups")

	c, err := New("gtsum", "r1c1;r1c2", 9, 9, 9)
	if err != nil {
		tst.Errorf("New(gtsum) failed: %v\n", err)
		return
	}
	e := engine.NewEngine(9, 9, 9, 3, 3)
	e.AddConstraint(c)
	e.FinalizeConstraints()

	// force max(G) to 5 by collapsing r1c1's candidates to {1..5}.
	// with S (r1c2) unrestricted (min=1), gap = 5-1 = 4 <= maxValue-1,
	// so S gets bounded to <= 1+gap = 5 and G gets bounded to
	// >= maxValue-gap = 5, which (intersected with G's existing {1..5})
	// collapses G to exactly 5; setting G=5 then clears 5 from its row
	// mate r1c2, so S ends with maximum 4
	if got := e.KeepMask(0, 0, engine.MaskValAndLower(5)); got == engine.ResultInvalid {
		tst.Errorf("KeepMask on r1c1 reported Invalid\n")
		return
	}

	gs := engine.Constraints[*GreaterSum](e)[0]
	if result := gs.StepLogic(e, nil, false); result == engine.ResultInvalid {
		tst.Errorf("StepLogic reported Invalid on a satisfiable bound\n")
		return
	}

	sMask := engine.CandidateBits(e.Board.At(0, 1))
	chk.IntAssert(engine.MaxValue(sMask), 4)
	gMask := e.Board.At(0, 0)
	if !engine.IsValueSet(gMask) {
		tst.Errorf("G must collapse to exactly 5, got %v\n", gMask)
		return
	}
	chk.IntAssert(engine.GetValue(gMask), 5)
}

func Test_gtsum03(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("gtsum03. boundary gap changes nothing")

	c, err := New("gtsum", "r1c1;r1c2", 9, 9, 9)
	if err != nil {
		tst.Errorf("New(gtsum) failed: %v\n", err)
		return
	}
	e := engine.NewEngine(9, 9, 9, 3, 3)
	e.AddConstraint(c)
	e.FinalizeConstraints()

	gs := engine.Constraints[*GreaterSum](e)[0]
	// on a fully unrestricted board, max(G)=9, min(S)=1, gap=8 which
	// equals maxValue-1: the bound is active but vacuous (sBound=9,
	// gBound=1), so the same-mask writes must report no change
	before0 := engine.CandidateBits(e.Board.At(0, 0))
	before1 := engine.CandidateBits(e.Board.At(0, 1))
	chk.IntAssert(int(gs.StepLogic(e, nil, false)), int(engine.ResultNone))
	chk.IntAssert(int(engine.CandidateBits(e.Board.At(0, 0))), int(before0))
	chk.IntAssert(int(engine.CandidateBits(e.Board.At(0, 1))), int(before1))
}
