// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosudoku/engine"
)

func Test_selftaxi01(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("selftaxi01. seen cells track the candidate value")

	c, err := New("selftaxi", "", 9, 9, 9)
	if err != nil {
		tst.Errorf("New(selftaxi) failed: %v\n", err)
		return
	}
	st := c.(*SelfTaxicab)

	// value 1 from the middle of the board reaches the four orthogonal
	// neighbors exactly
	seen := st.SeenCellsByValueMask(engine.Cell{Row: 4, Col: 4}, engine.ValueMask(1))
	chk.IntAssert(len(seen), 4)

	// value 2 reaches the 8 cells of the L1 circle of radius 2
	seen = st.SeenCellsByValueMask(engine.Cell{Row: 4, Col: 4}, engine.ValueMask(2))
	chk.IntAssert(len(seen), 8)

	// in a corner most of the circle falls off the board
	seen = st.SeenCellsByValueMask(engine.Cell{Row: 0, Col: 0}, engine.ValueMask(1))
	chk.IntAssert(len(seen), 2)

	// the unmasked variant contributes nothing
	chk.IntAssert(len(st.SeenCells(engine.Cell{Row: 4, Col: 4})), 0)
}

func Test_selftaxi02(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("selftaxi02. SetValue eliminates at the committed distance")

	c, err := New("selftaxi", "", 9, 9, 9)
	if err != nil {
		tst.Errorf("New(selftaxi) failed: %v\n", err)
		return
	}
	e := engine.NewEngine(9, 9, 9, 3, 3)
	e.AddConstraint(c)
	e.FinalizeConstraints()

	if !e.SetValue(4, 4, 4) {
		tst.Errorf("SetValue r5c5=4 failed\n")
		return
	}
	// r3c3 is taxicab distance 4 from r5c5 and shares no row, column
	// or box with it, so only this constraint can clear the 4 there
	if engine.HasValue(engine.CandidateBits(e.Board.At(2, 2)), 4) {
		tst.Errorf("4 must be eliminated at taxicab distance 4\n")
	}
	// r3c4 sits at distance 3 off the seen lines and must keep its 4
	if !engine.HasValue(engine.CandidateBits(e.Board.At(2, 3)), 4) {
		tst.Errorf("4 must survive at taxicab distance 3 off the seen lines\n")
	}
}
