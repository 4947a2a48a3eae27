// Copyright 2011 Google Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import "github.com/golang/proto2/descriptor"

// Clone returns a deep copy of m: submessages are cloned recursively and
// byte slices are copied defensively; everything else (numbers, strings,
// which are already immutable in Go) is shared by value.
func Clone(m *Message) *Message {
	if m == nil {
		return nil
	}
	out := NewMessage(m.desc)
	for num, v := range m.scalars {
		out.Set(num, cloneValue(m.desc.ByNumber(num), v))
	}
	for num, vs := range m.lists {
		f := m.desc.ByNumber(num)
		cp := make([]descriptor.Value, len(vs))
		for i, v := range vs {
			cp[i] = cloneValue(f, v)
		}
		out.SetList(num, cp)
	}
	if len(m.unknown) > 0 {
		out.unknown = append([]byte(nil), m.unknown...)
	}
	if m.ext != nil {
		m.ext.Range(func(num descriptor.Number, v descriptor.Value) bool {
			f, _ := descriptor.LookupExtension(m.desc.FullName(), num)
			out.Extensions().Set(num, cloneValue(f, v))
			return true
		})
	}
	return out
}

func cloneValue(f *descriptor.Field, v descriptor.Value) descriptor.Value {
	if f == nil {
		return v
	}
	switch f.Kind() {
	case descriptor.MessageKind, descriptor.GroupKind:
		if sub, ok := v.Message().(*Message); ok {
			return descriptor.ValueOfMessage(Clone(sub))
		}
		return v
	case descriptor.BytesKind:
		return descriptor.ValueOfBytes(append([]byte(nil), v.Bytes()...))
	default:
		return v
	}
}
