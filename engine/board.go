// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "github.com/cpmech/gosl/chk"

// Cell identifies a board position by zero-based row and column.
type Cell struct {
	Row, Col int
}

// Candidate identifies a single (cell, value) pair.
type Candidate struct {
	Row, Col, Value int
}

// Board is the 2-D array of per-cell candidate masks. It is the single
// process-wide grid during a solve and is cloned wholesale on
// backtracking checkpoints (see Engine.Clone).
type Board struct {
	Height    int
	Width     int
	MaxValue  int
	BoxHeight int
	BoxWidth  int

	cells []Mask
}

// NewBoard allocates a board with every cell set to AllValuesMask. A
// region tiling of boxHeight x boxWidth is assumed where boxHeight *
// boxWidth == maxValue; pass 0,0 for irregular boards with no box
// regions (only row/column groups then apply).
func NewBoard(height, width, maxValue, boxHeight, boxWidth int) *Board {
	b := &Board{
		Height:    height,
		Width:     width,
		MaxValue:  maxValue,
		BoxHeight: boxHeight,
		BoxWidth:  boxWidth,
		cells:     make([]Mask, height*width),
	}
	all := AllValuesMask(maxValue)
	for i := range b.cells {
		b.cells[i] = all
	}
	return b
}

// Index returns the flat index of cell (i,j).
func (b *Board) Index(i, j int) int {
	return i*b.Width + j
}

// RowCol is the inverse of Index.
func (b *Board) RowCol(index int) (i, j int) {
	return index / b.Width, index % b.Width
}

// CandidateIndex returns the flat candidate-index of (i,j,v), the node
// id used in the weak-link graph: (i*Width+j)*MaxValue + (v-1).
func (b *Board) CandidateIndex(i, j, v int) int {
	return b.Index(i, j)*b.MaxValue + (v - 1)
}

// NumCandidates is the size of the candidate-index space.
func (b *Board) NumCandidates() int {
	return b.Height * b.Width * b.MaxValue
}

// CandidateOf is the inverse of CandidateIndex.
func (b *Board) CandidateOf(index int) Candidate {
	cellIdx := index / b.MaxValue
	v := index%b.MaxValue + 1
	i, j := b.RowCol(cellIdx)
	return Candidate{Row: i, Col: j, Value: v}
}

// At returns the current mask of cell (i,j).
func (b *Board) At(i, j int) Mask {
	return b.cells[b.Index(i, j)]
}

// AtCell is the Cell-argument form of At.
func (b *Board) AtCell(c Cell) Mask {
	return b.At(c.Row, c.Col)
}

// set is the only mutation primitive on a Board; unexported because
// every write must flow through the engine's write API so that
// downstream constraint reactions are triggered.
func (b *Board) set(i, j int, m Mask) {
	b.cells[b.Index(i, j)] = m
}

// BoxOf returns the box index (0-based, row-major over the region
// tiling) of cell (i,j), or -1 if the board has no box regions.
func (b *Board) BoxOf(i, j int) int {
	if b.BoxHeight == 0 || b.BoxWidth == 0 {
		return -1
	}
	boxRow := i / b.BoxHeight
	boxCol := j / b.BoxWidth
	boxesPerRow := b.Width / b.BoxWidth
	return boxRow*boxesPerRow + boxCol
}

// BoxOffset returns the cell's 0-based offset within its box, scanning
// box-internal rows then columns. Used by Box Indexer to resolve "the
// k-th cell of a region".
func (b *Board) BoxOffset(i, j int) int {
	return (i%b.BoxHeight)*b.BoxWidth + j%b.BoxWidth
}

// clone returns a deep copy of the cell masks, used by Engine.Clone.
func (b *Board) clone() *Board {
	cp := *b
	cp.cells = make([]Mask, len(b.cells))
	copy(cp.cells, b.cells)
	return &cp
}

// restore overwrites this board's masks with a previously cloned copy.
// Panics if the dimensions differ, which would indicate a programming
// error (snapshots are only ever taken and restored on the same board).
func (b *Board) restore(snap *Board) {
	if len(b.cells) != len(snap.cells) {
		chk.Panic("snapshot board size mismatch: %d != %d", len(b.cells), len(snap.cells))
	}
	copy(b.cells, snap.cells)
}
