// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosudoku/engine"
)

func Test_djg01(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("djg01. splits into one group per within-region offset")

	c, err := New("djg", "", 9, 9, 9)
	if err != nil {
		tst.Errorf("New(djg) failed: %v\n", err)
		return
	}
	e := engine.NewEngine(9, 9, 9, 3, 3)
	prims := c.(*DisjointGroups).SplitToPrimitives(e)
	chk.IntAssert(len(prims), 9)

	// offset 0 collects the top-left cell of all nine boxes
	cells, ok := prims[0].(*disjointGroupOffset).Group()
	if !ok {
		tst.Errorf("primitive must contribute a group\n")
		return
	}
	chk.IntAssert(len(cells), 9)
	chk.IntAssert(cells[0].Row, 0)
	chk.IntAssert(cells[0].Col, 0)
	chk.IntAssert(cells[4].Row, 3)
	chk.IntAssert(cells[4].Col, 3)
	chk.IntAssert(cells[8].Row, 6)
	chk.IntAssert(cells[8].Col, 6)
}

func Test_djg02(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("djg02. same-offset cells see each other")

	c, err := New("djg", "", 9, 9, 9)
	if err != nil {
		tst.Errorf("New(djg) failed: %v\n", err)
		return
	}
	e := engine.NewEngine(9, 9, 9, 3, 3)
	e.AddConstraint(c)
	e.FinalizeConstraints()

	// r1c1 and r4c4 share only the disjoint-group at offset 0
	if !e.SetValue(0, 0, 7) {
		tst.Errorf("SetValue r1c1=7 failed\n")
		return
	}
	if engine.HasValue(engine.CandidateBits(e.Board.At(3, 3)), 7) {
		tst.Errorf("7 must be eliminated from the same box offset of another region\n")
	}
	if !engine.HasValue(engine.CandidateBits(e.Board.At(3, 4)), 7) {
		tst.Errorf("7 must survive at a different box offset\n")
	}
}
