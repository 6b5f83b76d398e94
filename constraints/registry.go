// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraints

import (
	"sort"
	"sync"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gosudoku/engine"
)

// Allocator builds one constraint instance from its options string and
// the board's dimensions (chess-move constraints need Height/Width to
// bound their offsets; no current allocator reads maxValue).
type Allocator func(options string, height, width, maxValue int) (engine.Constraint, error)

// entry is one registered constraint kind: a (console-name,
// display-name) pairing.
type entry struct {
	consoleName string
	displayName string
	alloc       Allocator
}

var (
	registryMu sync.RWMutex
	registry   = map[string]entry{}
)

// Register adds a constraint kind to the registry. Called from
// func init() in each constraint's source file; panics on a duplicate
// console name since that indicates a programming error, not a runtime
// condition callers can recover from.
func Register(consoleName, displayName string, alloc Allocator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[consoleName]; exists {
		chk.Panic("console name %q registered twice", consoleName)
	}
	registry[consoleName] = entry{consoleName: consoleName, displayName: displayName, alloc: alloc}
}

// New constructs a constraint instance from a (console-name,
// options-string) pair, the contract an external driver uses to build
// a puzzle's constraint set from its textual description. It returns
// an error (never panics) when the console name is unknown or
// the options fail to parse, so that option-parsing failures surface
// at construction, never during propagation.
func New(consoleName, options string, height, width, maxValue int) (engine.Constraint, error) {
	registryMu.RLock()
	e, ok := registry[consoleName]
	registryMu.RUnlock()
	if !ok {
		return nil, chk.Err("unknown console name %q", consoleName)
	}
	c, err := e.alloc(options, height, width, maxValue)
	if err != nil {
		return nil, chk.Err("%s: %v", consoleName, err)
	}
	return c, nil
}

// Descriptor is the public, read-only view of a registered constraint
// kind, used by tools/listconstraints and by tests asserting the full
// registry is populated.
type Descriptor struct {
	ConsoleName string
	DisplayName string
}

// Registered returns every registered constraint kind, sorted by
// console name for deterministic listing.
func Registered() []Descriptor {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Descriptor, 0, len(registry))
	for _, e := range registry {
		out = append(out, Descriptor{ConsoleName: e.consoleName, DisplayName: e.displayName})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ConsoleName < out[j].ConsoleName })
	return out
}
