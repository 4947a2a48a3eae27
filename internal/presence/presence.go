// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package presence implements the bitset a record uses to track which
// optional and required fields have been explicitly set. The
// MissingRequired check reads it through the record's Has method.
//
// The bitset technique — a fixed-width word for the common case, falling
// back to a map only once a field number exceeds the word width — collapses
// what is elsewhere a family of separate Int32s/Int64s/Strings set types
// into the one shape package proto actually needs.
package presence

import "math/bits"

// Set tracks a sparse collection of small, non-negative field indices. Most
// messages have well under 64 fields, so the common case never allocates;
// only a message with a field index past 63 touches the overflow map.
type Set struct {
	lo  uint64
	hi  map[uint32]struct{}
}

// Len reports how many indices are present.
func (s *Set) Len() int {
	return bits.OnesCount64(s.lo) + len(s.hi)
}

// Has reports whether index i has been set.
func (s *Set) Has(i uint32) bool {
	if i < 64 {
		return s.lo&(uint64(1)<<i) != 0
	}
	_, ok := s.hi[i]
	return ok
}

// Set marks index i present.
func (s *Set) Set(i uint32) {
	if i < 64 {
		s.lo |= uint64(1) << i
		return
	}
	if s.hi == nil {
		s.hi = make(map[uint32]struct{})
	}
	s.hi[i] = struct{}{}
}

// Clear marks index i absent.
func (s *Set) Clear(i uint32) {
	if i < 64 {
		s.lo &^= uint64(1) << i
		return
	}
	delete(s.hi, i)
}

// Range calls f once for every index present in the set: indices below 64
// in ascending order, then the overflow indices in no particular order.
func (s *Set) Range(f func(i uint32)) {
	for i := 0; i < 64; i++ {
		if s.lo&(uint64(1)<<i) != 0 {
			f(uint32(i))
		}
	}
	for i := range s.hi {
		f(i)
	}
}
