// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_board01(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("board01. fresh board is unrestricted")

	b := NewBoard(9, 9, 9, 3, 3)
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			chk.IntAssert(ValueCount(b.At(i, j)), 9)
		}
	}
}

func Test_board02(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("board02. candidate index round trip")

	b := NewBoard(9, 9, 9, 3, 3)
	got := b.CandidateOf(b.CandidateIndex(4, 6, 3))
	chk.IntAssert(got.Row, 4)
	chk.IntAssert(got.Col, 6)
	chk.IntAssert(got.Value, 3)
	chk.IntAssert(b.NumCandidates(), 9*9*9)
}

func Test_board03(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("board03. box index and offset")

	b := NewBoard(9, 9, 9, 3, 3)
	chk.IntAssert(b.BoxOf(0, 0), 0)
	chk.IntAssert(b.BoxOf(4, 4), 4)
	chk.IntAssert(b.BoxOf(8, 8), 8)
	chk.IntAssert(b.BoxOffset(3, 3), 0)
	chk.IntAssert(b.BoxOffset(5, 5), 8)

	// boards without box regions report -1
	nb := NewBoard(6, 6, 6, 0, 0)
	chk.IntAssert(nb.BoxOf(2, 2), -1)
}

func Test_board04(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("board04. clone independence and restore")

	b := NewBoard(9, 9, 9, 3, 3)
	cp := b.clone()
	b.set(0, 0, SetBit|ValueMask(4))
	if IsValueSet(cp.At(0, 0)) {
		tst.Errorf("mutating the original board mutated its clone\n")
	}
	cp.restore(b)
	if !IsValueSet(cp.At(0, 0)) {
		tst.Errorf("restore did not pull the original's state back in\n")
	}
}
