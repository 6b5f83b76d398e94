// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import "github.com/cpmech/gosudoku/engine"

// maxEnumeratedSlots bounds the brute-force permutation enumeration
// StepLogic falls back to for Skyscraper-shaped constraints. Lines
// longer than this are left alone (the constraint still holds via
// InitCandidates' bound and whatever weak links apply elsewhere); this
// keeps the reference implementation's worst case bounded without
// ever reporting a false elimination.
const maxEnumeratedSlots = 9

// enumerateAssignments calls visit with every way of assigning pairwise
// distinct values to slots such that slot k's value lies in masks[k].
// visit is called only on complete assignments and records them for
// the caller through its own side effects; it returns true to keep
// enumerating, or false to stop the whole enumeration at once.
func enumerateAssignments(masks []engine.Mask, visit func(values []int) bool) {
	n := len(masks)
	values := make([]int, n)
	used := engine.Mask(0)
	var rec func(k int) bool
	rec = func(k int) bool {
		if k == n {
			return visit(values)
		}
		keep := true
		engine.ForEachValue(masks[k], func(v int) bool {
			vm := engine.ValueMask(v)
			if used&vm != 0 {
				return true
			}
			values[k] = v
			used |= vm
			keep = rec(k + 1)
			used &^= vm
			return keep
		})
		return keep
	}
	rec(0)
}
