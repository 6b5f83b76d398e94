// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_weaklink01(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("weaklink01. queries before Compact")

	g := NewWeakLinkGraph(10)
	g.AddWeakLink(1, 2)
	if g.Neighbors(1) != nil {
		tst.Errorf("Neighbors before Compact must be nil\n")
	}
	if g.HasLink(1, 2) {
		tst.Errorf("HasLink must be false before Compact\n")
	}
}

func Test_weaklink02(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("weaklink02. symmetry and dedup after Compact")

	g := NewWeakLinkGraph(10)
	g.AddWeakLink(1, 2)
	g.AddWeakLink(2, 1) // same edge, reversed
	g.AddWeakLink(1, 3)
	g.Compact()

	if !g.HasLink(1, 2) || !g.HasLink(2, 1) {
		tst.Errorf("edge 1-2 must be visible from both endpoints\n")
	}
	if !g.HasLink(1, 3) || g.HasLink(2, 3) {
		tst.Errorf("wrong adjacency\n")
	}
	chk.Ints(tst, "Neighbors(1)", g.Neighbors(1), []int{2, 3})

	g.Compact() // idempotent
	if !g.HasLink(1, 2) {
		tst.Errorf("second Compact call lost the edge\n")
	}
}

func Test_weaklink03(tst *testing.T) {

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("AddWeakLink after Compact must panic\n")
		}
	}()

	chk.PrintTitle("weaklink03. add after Compact panics")

	g := NewWeakLinkGraph(10)
	g.Compact()
	g.AddWeakLink(1, 2)
}

func Test_weaklink04(tst *testing.T) {

	defer func() {
		if err := recover(); err == nil {
			tst.Errorf("self-loop AddWeakLink must panic\n")
		}
	}()

	chk.PrintTitle("weaklink04. self loop panics")

	g := NewWeakLinkGraph(10)
	g.AddWeakLink(5, 5)
}

func Test_weaklink05(tst *testing.T) {

	prevTs := chk.Verbose
	defer func() {
		chk.Verbose = prevTs
		if err := recover(); err != nil {
			tst.Error("[1;31mERROR:", err, "[0m\n")
		}
	}()

	//chk.Verbose = false
	chk.PrintTitle("weaklink05. clone independence")

	g := NewWeakLinkGraph(10)
	g.AddWeakLink(1, 2)
	g.Compact()
	cp := g.clone()
	if !cp.HasLink(1, 2) {
		tst.Errorf("clone missing edge present in source\n")
	}
	// mutate the clone's adjacency directly to verify independence
	cp.adj[1] = append(cp.adj[1], 9)
	if g.HasLink(1, 9) {
		tst.Errorf("mutating the clone leaked back into the source graph\n")
	}
}
