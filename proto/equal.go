// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Protocol buffer comparison.

package proto

import (
	"bytes"

	"github.com/golang/proto2/descriptor"
)

// Equal reports whether a and b are equal: built against the same
// descriptor, with equal values for every known field, equal extension
// sets, and byte-identical unknown-field blobs.
//
// Two unset fields are equal; an unset field is never equal to one
// explicitly set to its zero value, since presence is tracked separately
// from value. Message-typed fields compare structurally via a recursive
// Equal rather than by the boxed-pointer identity descriptor.Value.Equal
// uses for its own MessageKind case.
func Equal(a, b *Message) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.desc != b.desc {
		return false
	}
	for _, f := range a.desc.Fields() {
		num := f.Number()
		if a.Has(num) != b.Has(num) {
			return false
		}
		if !a.Has(num) {
			continue
		}
		if f.IsRepeated() {
			if !equalLists(f, a.List(num), b.List(num)) {
				return false
			}
			continue
		}
		if !equalValues(f, a.Get(num), b.Get(num)) {
			return false
		}
	}

	if a.HasExtensions() != b.HasExtensions() {
		return false
	}
	if a.ext != nil {
		if a.ext.Len() != b.Extensions().Len() {
			return false
		}
		equal := true
		a.ext.Range(func(num descriptor.Number, av descriptor.Value) bool {
			bv, ok := b.ext.Get(num)
			if !ok {
				equal = false
				return false
			}
			f, _ := descriptor.LookupExtension(a.desc.FullName(), num)
			if !equalValues(f, av, bv) {
				equal = false
				return false
			}
			return true
		})
		if !equal {
			return false
		}
	}

	return bytes.Equal(a.unknown, b.unknown)
}

func equalLists(f *descriptor.Field, as, bs []descriptor.Value) bool {
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if !equalValues(f, as[i], bs[i]) {
			return false
		}
	}
	return true
}

func equalValues(f *descriptor.Field, a, b descriptor.Value) bool {
	if f != nil && (f.Kind() == descriptor.MessageKind || f.Kind() == descriptor.GroupKind) {
		am, _ := a.Message().(*Message)
		bm, _ := b.Message().(*Message)
		return Equal(am, bm)
	}
	return a.Equal(b)
}
