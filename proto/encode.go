// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"unicode/utf8"

	"github.com/golang/proto2/descriptor"
	"github.com/golang/proto2/internal/errors"
	"github.com/golang/proto2/internal/pragma"
	"github.com/golang/proto2/wire"
)

// MarshalOptions configures the serializer.
type MarshalOptions struct {
	pragma.NoUnkeyedLiterals

	// AllowPartial permits Marshal to succeed even though some required
	// field is absent, instead of reporting MissingRequired.
	AllowPartial bool

	// Deterministic has no effect beyond what this package already
	// guarantees unconditionally: known fields are always emitted in
	// ascending field-number order and the Extension Store is always
	// ranged in ascending order. Elsewhere this flag exists to make
	// map-field iteration order reproducible, but map-like semantics are
	// out of scope here, so the field is retained for API familiarity
	// rather than because it changes behavior.
	Deterministic bool
}

// Marshal returns the wire-format encoding of m.
func Marshal(m *Message) ([]byte, error) {
	return MarshalOptions{}.Marshal(m)
}

// Marshal returns the wire-format encoding of m.
func (o MarshalOptions) Marshal(m *Message) ([]byte, error) {
	return o.MarshalAppend(nil, m)
}

// MarshalAppend appends the wire-format encoding of m to b, returning the
// grown buffer.
func (o MarshalOptions) MarshalAppend(b []byte, m *Message) ([]byte, error) {
	buf := wire.Buffer{B: b}
	err := o.appendMessage(&buf, m)
	return buf.B, err
}

// Size returns the size in bytes of the wire-format encoding of m.
func Size(m *Message) int {
	return MarshalOptions{}.Size(m)
}

// Size returns the size in bytes of the wire-format encoding of m.
func (o MarshalOptions) Size(m *Message) int {
	return sizeMessage(m)
}

func (o MarshalOptions) appendMessage(buf *wire.Buffer, m *Message) error {
	if m.desc.Kind() == descriptor.MessageSetMessage {
		return marshalMessageSet(buf, m)
	}

	var nerr errors.NonFatal
	for _, f := range m.desc.Fields() {
		num := f.Number()
		if !m.Has(num) {
			if f.IsRequired() && !o.AllowPartial {
				nerr.AppendRequiredNotSet(string(f.FullName()))
			}
			continue
		}
		if f.IsRepeated() {
			if err := o.appendRepeated(buf, f, m.List(num)); !nerr.Merge(err) {
				return err
			}
			continue
		}
		if err := o.appendField(buf, f, m.Get(num)); !nerr.Merge(err) {
			return err
		}
	}

	if m.ext != nil {
		var extErr error
		m.ext.Range(func(num descriptor.Number, v descriptor.Value) bool {
			f, ok := descriptor.LookupExtension(m.desc.FullName(), num)
			if !ok {
				return true
			}
			if err := o.appendField(buf, f, v); !nerr.Merge(err) {
				extErr = err
				return false
			}
			return true
		})
		if extErr != nil {
			return extErr
		}
	}

	buf.B = append(buf.B, m.unknown...)
	return nerr.E
}

func (o MarshalOptions) appendRepeated(buf *wire.Buffer, f *descriptor.Field, vs []descriptor.Value) error {
	if f.IsPacked() {
		buf.B = wire.AppendTag(buf.B, f.Number(), wire.BytesType)
		mark := buf.Reserve()
		for _, v := range vs {
			if f.Kind() == descriptor.EnumKind {
				idx := v.Enum()
				if _, ok := f.EnumType().ByNumber(idx); !ok {
					if !f.EnumType().IsOpen() {
						return &UnknownEnumValueError{Field: f.Name(), Value: idx}
					}
					idx = 0
				}
				buf.B = wire.AppendVarint(buf.B, uint64(uint32(idx)))
				continue
			}
			buf.B = appendScalar(buf.B, f.Kind(), v)
		}
		buf.Patch(mark)
		return nil
	}
	var nerr errors.NonFatal
	for _, v := range vs {
		if err := o.appendField(buf, f, v); !nerr.Merge(err) {
			return err
		}
	}
	return nerr.E
}

// appendField writes the tag(s) and payload for one element of field f
// (singular, or one element of a non-packed repeated field).
func (o MarshalOptions) appendField(buf *wire.Buffer, f *descriptor.Field, v descriptor.Value) error {
	num := f.Number()
	switch {
	case f.Kind() == descriptor.GroupKind:
		buf.B = wire.AppendTag(buf.B, num, wire.StartGroupType)
		if err := o.appendMessage(buf, v.Message().(*Message)); err != nil {
			return err
		}
		buf.B = wire.AppendTag(buf.B, num, wire.EndGroupType)
		return nil

	case f.Kind() == descriptor.MessageKind:
		buf.B = wire.AppendTag(buf.B, num, wire.BytesType)
		mark := buf.Reserve()
		if err := o.appendMessage(buf, v.Message().(*Message)); err != nil {
			return err
		}
		buf.Patch(mark)
		return nil

	case f.Alias() != nil:
		buf.B = wire.AppendTag(buf.B, num, f.Alias().WireType)
		buf.B = f.Alias().Marshal(buf.B, v)
		return nil

	case f.Kind() == descriptor.EnumKind:
		idx := v.Enum()
		if _, ok := f.EnumType().ByNumber(idx); !ok {
			if f.EnumType().IsOpen() {
				idx = 0
			} else {
				return &UnknownEnumValueError{Field: f.Name(), Value: idx}
			}
		}
		buf.B = wire.AppendTag(buf.B, num, wire.VarintType)
		buf.B = wire.AppendVarint(buf.B, uint64(uint32(idx)))
		return nil

	default:
		buf.B = wire.AppendTag(buf.B, num, f.Kind().WireType())
		buf.B = appendScalar(buf.B, f.Kind(), v)
		if f.Kind() == descriptor.StringKind && !utf8.ValidString(v.String()) {
			var nerr errors.NonFatal
			nerr.AppendInvalidUTF8(string(f.FullName()))
			return nerr.E
		}
		return nil
	}
}
