// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package engine implements the board representation, weak-link graph,
// group registry and propagation loop of a variant-Sudoku constraint
// satisfaction engine. Constraints (diagonals, arrows, skyscraper, ...)
// are built on top of the Constraint interface defined here; see the
// sibling constraints package for the reference library.
package engine

import (
	"math/bits"
	"strings"

	"github.com/cpmech/gosl/io"
)

// Mask is a per-cell candidate bitmask. Bit v (1 <= v <= MaxValue) set
// means value v is still a possible candidate for the cell. SetBit, a
// single high bit outside the candidate range, marks the cell as
// decided: when SetBit is set the mask additionally carries exactly one
// candidate bit, the cell's committed value.
type Mask uint32

// SetBit marks a cell as decided (its value has been committed).
const SetBit Mask = 1 << 31

// MaxSupportedValue is the largest value a Mask can represent; bit 0 is
// never used and bit 31 is reserved for SetBit.
const MaxSupportedValue = 30

// ValueMask returns the mask containing only the candidate bit for v.
func ValueMask(v int) Mask {
	return Mask(1) << uint(v)
}

// AllValuesMask returns a mask with every candidate bit 1..maxValue set.
func AllValuesMask(maxValue int) Mask {
	return MaskValAndLower(maxValue)
}

// MaskValAndLower returns the mask of candidate bits 1..n.
func MaskValAndLower(n int) Mask {
	if n <= 0 {
		return 0
	}
	return (Mask(1)<<uint(n+1) - 1) &^ 1
}

// candidateBits strips SetBit, leaving only the candidate bits.
func candidateBits(m Mask) Mask {
	return m &^ SetBit
}

// CandidateBits is the exported form of candidateBits, for constraints
// that need to read a cell's raw candidate bits (e.g. to intersect two
// cells' masks directly, as Palindrome does during InitCandidates).
func CandidateBits(m Mask) Mask {
	return candidateBits(m)
}

// HasValue reports whether v is a candidate in m (decided or not).
func HasValue(m Mask, v int) bool {
	return m&ValueMask(v) != 0
}

// ValueCount returns the number of candidate bits set in m.
func ValueCount(m Mask) int {
	return bits.OnesCount32(uint32(candidateBits(m)))
}

// MinValue returns the smallest candidate value set in m, or 0 if none.
func MinValue(m Mask) int {
	c := candidateBits(m)
	if c == 0 {
		return 0
	}
	return bits.TrailingZeros32(uint32(c))
}

// MaxValue returns the largest candidate value set in m, or 0 if none.
func MaxValue(m Mask) int {
	c := candidateBits(m)
	if c == 0 {
		return 0
	}
	return 31 - bits.LeadingZeros32(uint32(c))
}

// IsValueSet reports whether the cell holding m is decided.
func IsValueSet(m Mask) bool {
	return m&SetBit != 0
}

// GetValue returns the committed value of a decided mask. The result is
// unspecified if m is not decided; callers must check IsValueSet first.
func GetValue(m Mask) int {
	return MinValue(m)
}

// ForEachValue calls f for every candidate value set in m, low to high.
// Iteration stops early if f returns false.
func ForEachValue(m Mask, f func(v int) bool) {
	c := candidateBits(m)
	for c != 0 {
		v := bits.TrailingZeros32(uint32(c))
		if !f(v) {
			return
		}
		c &^= Mask(1) << uint(v)
	}
}

// Values returns every candidate value set in m, low to high.
func Values(m Mask) []int {
	vals := make([]int, 0, ValueCount(m))
	ForEachValue(m, func(v int) bool {
		vals = append(vals, v)
		return true
	})
	return vals
}

// String renders m the way explanation lines do: "{1,3,7}" for
// undecided cells, "5!" for a decided cell.
func (m Mask) String() string {
	if IsValueSet(m) {
		return io.Sf("%d!", GetValue(m))
	}
	parts := make([]string, 0, ValueCount(m))
	ForEachValue(m, func(v int) bool {
		parts = append(parts, io.Sf("%d", v))
		return true
	})
	return "{" + strings.Join(parts, ",") + "}"
}
