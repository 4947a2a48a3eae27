// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"github.com/golang/proto2/descriptor"
	"github.com/golang/proto2/wire"
)

// sizeMessage computes the wire-format size of m without encoding it,
// mirroring appendMessage's traversal.
func sizeMessage(m *Message) int {
	if m.desc.Kind() == descriptor.MessageSetMessage {
		return sizeMessageSet(m)
	}

	n := 0
	for _, f := range m.desc.Fields() {
		num := f.Number()
		if !m.Has(num) {
			continue
		}
		if f.IsRepeated() {
			n += sizeRepeated(f, m.List(num))
			continue
		}
		n += sizeField(f, m.Get(num))
	}

	if m.ext != nil {
		m.ext.Range(func(num descriptor.Number, v descriptor.Value) bool {
			if f, ok := descriptor.LookupExtension(m.desc.FullName(), num); ok {
				n += sizeField(f, v)
			}
			return true
		})
	}

	n += len(m.unknown)
	return n
}

func sizeRepeated(f *descriptor.Field, vs []descriptor.Value) int {
	if len(vs) == 0 {
		return 0
	}
	if f.IsPacked() {
		payload := 0
		for _, v := range vs {
			if f.Kind() == descriptor.EnumKind {
				idx := v.Enum()
				if _, ok := f.EnumType().ByNumber(idx); !ok && f.EnumType().IsOpen() {
					idx = 0
				}
				payload += wire.SizeVarint(uint64(uint32(idx)))
				continue
			}
			payload += sizeScalar(f.Kind(), v)
		}
		return wire.SizeTag(f.Number()) + wire.SizeBytes(payload)
	}
	n := 0
	for _, v := range vs {
		n += sizeField(f, v)
	}
	return n
}

// sizeField computes the size of one element of field f: its tag(s) plus
// payload.
func sizeField(f *descriptor.Field, v descriptor.Value) int {
	num := f.Number()
	switch {
	case f.Kind() == descriptor.GroupKind:
		return 2*wire.SizeTag(num) + sizeMessage(v.Message().(*Message))

	case f.Kind() == descriptor.MessageKind:
		return wire.SizeTag(num) + wire.SizeBytes(sizeMessage(v.Message().(*Message)))

	case f.Alias() != nil:
		return wire.SizeTag(num) + f.Alias().Size(v)

	case f.Kind() == descriptor.EnumKind:
		idx := v.Enum()
		if _, ok := f.EnumType().ByNumber(idx); !ok && f.EnumType().IsOpen() {
			idx = 0
		}
		return wire.SizeTag(num) + wire.SizeVarint(uint64(uint32(idx)))

	default:
		return wire.SizeTag(num) + sizeScalar(f.Kind(), v)
	}
}
