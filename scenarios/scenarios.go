// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package scenarios builds small, self-contained engine fixtures used
// by the end-to-end tests: a handful of named puzzles exercising the
// core propagation loop together with one or two reference constraints
// at a time, in the same spirit as the small worked FE models the
// original material-model tests build by hand.
package scenarios

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gosudoku/constraints"
	"github.com/cpmech/gosudoku/engine"
)

// ClassicSudoku builds a 9x9 engine with the standard row/column/box
// groups and no extra constraints, seeding any non-zero clue from
// digits (an 81-character string, '0' for empty) before returning.
// FinalizeConstraints has already been called; the caller still owns
// calling Propagate.
func ClassicSudoku(digits string) (*engine.Engine, error) {
	if len(digits) != 81 {
		return nil, chk.Err("classic sudoku needs 81 digits, got %d", len(digits))
	}
	e := engine.NewEngine(9, 9, 9, 3, 3)
	e.FinalizeConstraints()
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			d := digits[i*9+j]
			if d == '0' {
				continue
			}
			if !e.SetValue(i, j, int(d-'0')) {
				return nil, chk.Err("clue at r%dc%d contradicts an earlier clue", i+1, j+1)
			}
		}
	}
	return e, nil
}

// mustBuild panics on a registry or parse error: every scenario below
// uses a fixed, known-good options string, so a failure here is a
// programming error in the fixture, not a runtime condition.
func mustBuild(consoleName, options string, height, width, maxValue int) engine.Constraint {
	c, err := constraints.New(consoleName, options, height, width, maxValue)
	if err != nil {
		chk.Panic("%s: %v", consoleName, err)
	}
	return c
}

// PalindromeLoop builds a 9x9 empty grid with a palindrome running
// around an 8-cell loop centered on the top-left box.
func PalindromeLoop() *engine.Engine {
	e := engine.NewEngine(9, 9, 9, 3, 3)
	e.AddConstraint(mustBuild("palindrome", "r1c1r1c2r1c3r2c3r3c3r3c2r3c1r2c1", 9, 9, 9))
	e.FinalizeConstraints()
	return e
}

// AntiKingClassicSudoku builds a 9x9 classic sudoku with an Anti-King
// constraint layered on top, and a single clue of 1 at r1c1.
func AntiKingClassicSudoku() (*engine.Engine, error) {
	e := engine.NewEngine(9, 9, 9, 3, 3)
	e.AddConstraint(mustBuild("king", "", 9, 9, 9))
	e.FinalizeConstraints()
	if !e.SetValue(0, 0, 1) {
		return nil, chk.Err("anti-king clue contradicted immediately")
	}
	return e, nil
}

// XSumColumn builds a 9x9 empty grid with a single X-Sum constraint
// reading down column 1 (cells r1c1..r9c1), clued by sum.
func XSumColumn(sum int) *engine.Engine {
	e := engine.NewEngine(9, 9, 9, 3, 3)
	options := io.Sf("%d;r1c1r2c1r3c1r4c1r5c1r6c1r7c1r8c1r9c1", sum)
	e.AddConstraint(mustBuild("xsum", options, 9, 9, 9))
	e.FinalizeConstraints()
	return e
}

// SkyscraperColumn builds a 9x9 empty grid with a single Skyscraper
// constraint reading down column 1, clued by clue.
func SkyscraperColumn(clue int) *engine.Engine {
	e := engine.NewEngine(9, 9, 9, 3, 3)
	options := io.Sf("%d;r1c1r2c1r3c1r4c1r5c1r6c1r7c1r8c1r9c1", clue)
	e.AddConstraint(mustBuild("skyscraper", options, 9, 9, 9))
	e.FinalizeConstraints()
	return e
}

// EntropicLine builds a 9x9 empty grid with a length-4 Entropic Line
// on r1c1..r1c4.
func EntropicLine() *engine.Engine {
	e := engine.NewEngine(9, 9, 9, 3, 3)
	e.AddConstraint(mustBuild("entrol", "r1c1r1c2r1c3r1c4", 9, 9, 9))
	e.FinalizeConstraints()
	return e
}
