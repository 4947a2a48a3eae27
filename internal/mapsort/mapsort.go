// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mapsort ranges over a Go map in a deterministic, sorted key order.
// package proto's ExtensionStore.Range uses it to visit an Extension Store's
// entries by field number, so marshaling always produces byte-identical
// output whether or not MarshalOptions.Deterministic is set.
//
// This uses ordinary Go generics rather than reflecting into a
// protoreflect.Kind-dispatched concrete map type, since nothing here needs
// to interoperate with generated-struct map fields.
package mapsort

import "sort"

type ordered interface {
	~int32 | ~int64 | ~uint32 | ~uint64 | ~string
}

// RangeOrdered visits m in ascending key order. K covers every protobuf map
// key kind except bool (int32, sint32, uint32, int64, sint64, uint64,
// fixed32, sfixed32, fixed64, sfixed64, string all share Go's int32, int64,
// uint32, uint64, or string representation) as well as descriptor.Number,
// used for Extension Store iteration.
func RangeOrdered[K ordered, V any](m map[K]V, f func(k K, v V) bool) {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		if !f(k, m[k]) {
			return
		}
	}
}

// RangeBool visits m with the false key before the true key, the only
// possible order for a bool-keyed map.
func RangeBool[V any](m map[bool]V, f func(k bool, v V) bool) {
	if v, ok := m[false]; ok {
		if !f(false, v) {
			return
		}
	}
	if v, ok := m[true]; ok {
		f(true, v)
	}
}
