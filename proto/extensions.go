// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Extension Store support.

package proto

import (
	"github.com/golang/proto2/descriptor"
	"github.com/golang/proto2/internal/mapsort"
)

// ExtensionStore holds a record's extension field values, keyed by field
// number, separately from its statically declared fields.
//
// Every value here is already a decoded descriptor.Value rather than a
// lazily retained raw-bytes blob, and the store is scoped to singular
// values only — repeated extension fields are out of scope.
type ExtensionStore struct {
	host   *descriptor.Message
	values map[descriptor.Number]descriptor.Value
}

func newExtensionStore(host *descriptor.Message) *ExtensionStore {
	return &ExtensionStore{host: host}
}

// Len reports how many extension fields are set. Always 0 on a host with no
// extension ranges at all, since Set is the only entry point that writes
// into values and it rejects every number on such a host.
func (es *ExtensionStore) Len() int { return len(es.values) }

// Has reports whether extension field num is set. False for any num on a
// host with no extension ranges, for the same reason Len is always 0 there.
func (es *ExtensionStore) Has(num descriptor.Number) bool {
	_, ok := es.values[num]
	return ok
}

// Get returns the value of extension field num and whether it was set. It
// does not itself check num against the host's extension ranges: nothing
// can ever be stored at an out-of-range num, since Set already rejects it,
// so Get simply reports "not set" (ok == false) for it like any other
// absent number, rather than duplicating Set's range check.
func (es *ExtensionStore) Get(num descriptor.Number) (descriptor.Value, bool) {
	v, ok := es.values[num]
	return v, ok
}

// Set assigns the value of extension field num, rejecting a number outside
// every extension range the host Message declares. This is the only method
// on ExtensionStore that validates num against the host's ranges; Get/Has/
// Clear all operate on the values map directly, which Set's check keeps
// free of out-of-range entries in the first place.
func (es *ExtensionStore) Set(num descriptor.Number, v descriptor.Value) error {
	if !es.host.IsExtendable(num) {
		return &ExtensionNotFoundError{Host: es.host.FullName(), Number: num}
	}
	if es.values == nil {
		es.values = make(map[descriptor.Number]descriptor.Value)
	}
	es.values[num] = v
	return nil
}

// Clear removes extension field num, a no-op if it was never set (in
// particular, for any num outside the host's extension ranges, which Set
// would have rejected had a caller tried to put it there).
func (es *ExtensionStore) Clear(num descriptor.Number) {
	delete(es.values, num)
}

// Range visits every set extension field in ascending field-number order,
// stopping early if f returns false.
func (es *ExtensionStore) Range(f func(num descriptor.Number, v descriptor.Value) bool) {
	mapsort.RangeOrdered(es.values, f)
}
