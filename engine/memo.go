// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import "sync"

// MemoStore is a process-local, key-safe cache for expensive per-
// constraint subresults. Entries are never mutated after insertion,
// only ever added, so concurrent reads from independent backtracking
// branches are safe without per-read locking beyond what sync.Map
// already provides.
//
// Keys must encode every input the cached computation reads; this
// store does not and cannot enforce that, it only guarantees safe
// sharing of whatever key space the caller constructs.
type MemoStore struct {
	data sync.Map
}

// NewMemoStore allocates an empty store.
func NewMemoStore() *MemoStore {
	return &MemoStore{}
}

// GetMemo looks up key, type-asserting the stored value to T. ok is
// false both when the key is absent and when the stored value is not
// of type T (a programming error callers should treat as a miss).
func GetMemo[T any](s *MemoStore, key string) (value T, ok bool) {
	raw, found := s.data.Load(key)
	if !found {
		return value, false
	}
	v, isT := raw.(T)
	return v, isT
}

// StoreMemo inserts value under key, overwriting any existing entry.
// Constraints should only ever store once per (logically) distinct
// key; overwriting a key with a different value for the same inputs
// would indicate the key is missing part of its input signature.
func StoreMemo[T any](s *MemoStore, key string, value T) {
	s.data.Store(key, value)
}
