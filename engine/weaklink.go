// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// WeakLinkGraph is the symmetric mutual-exclusion graph over candidate
// indices: an edge (a,b) means at most one of candidates a, b may hold.
//
// Construction follows a build-then-compact idiom: edges are appended as unordered
// pairs during the InitLinks phase, then Compact sorts and dedups them
// into per-node adjacency lists for O(log n) Neighbors/HasLink queries
// during propagation. Adding an edge after Compact is a programming
// error and panics.
type WeakLinkGraph struct {
	numCandidates int
	entries       [][2]int
	adj           [][]int
	compacted     bool
}

// NewWeakLinkGraph allocates a graph over a fixed candidate-index space.
func NewWeakLinkGraph(numCandidates int) *WeakLinkGraph {
	return &WeakLinkGraph{numCandidates: numCandidates}
}

// AddWeakLink records an edge between candidate indices a and b. Self
// loops are rejected; duplicates are tolerated and removed at Compact
// time, so callers may add the same link from multiple constraints
// without tracking what has already been added.
func (g *WeakLinkGraph) AddWeakLink(a, b int) {
	if g.compacted {
		chk.Panic("AddWeakLink called after the graph was compacted")
	}
	if a == b {
		chk.Panic("weak link self-loop is forbidden: candidate %d", a)
	}
	g.entries = append(g.entries, [2]int{a, b})
}

// Compact finalizes the graph, building sorted, deduplicated adjacency
// lists from the accumulated entries. Idempotent: calling it more than
// once without intervening AddWeakLink calls is a no-op.
func (g *WeakLinkGraph) Compact() {
	if g.compacted {
		return
	}
	g.adj = make([][]int, g.numCandidates)
	for _, e := range g.entries {
		a, b := e[0], e[1]
		g.adj[a] = append(g.adj[a], b)
		g.adj[b] = append(g.adj[b], a)
	}
	for i := range g.adj {
		if len(g.adj[i]) == 0 {
			continue
		}
		sort.Ints(g.adj[i])
		g.adj[i] = dedupSorted(g.adj[i])
	}
	g.entries = nil
	g.compacted = true
}

func dedupSorted(s []int) []int {
	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Neighbors returns the candidate indices weak-linked to a. Valid only
// after Compact; returns nil beforehand.
func (g *WeakLinkGraph) Neighbors(a int) []int {
	if !g.compacted {
		return nil
	}
	return g.adj[a]
}

// HasLink reports whether a and b are weak-linked.
func (g *WeakLinkGraph) HasLink(a, b int) bool {
	if !g.compacted || a >= len(g.adj) {
		return false
	}
	n := g.adj[a]
	idx := sort.SearchInts(n, b)
	return idx < len(n) && n[idx] == b
}

// Compacted reports whether Compact has run.
func (g *WeakLinkGraph) Compacted() bool {
	return g.compacted
}

// clone deep-copies the compacted adjacency (weak links never change
// shape after setup, so cloning before Compact is not supported).
func (g *WeakLinkGraph) clone() *WeakLinkGraph {
	cp := &WeakLinkGraph{numCandidates: g.numCandidates, compacted: g.compacted}
	if g.compacted {
		cp.adj = make([][]int, len(g.adj))
		for i, n := range g.adj {
			if n != nil {
				cp.adj[i] = append([]int(nil), n...)
			}
		}
	}
	return cp
}
