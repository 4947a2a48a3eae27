// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style.
// license that can be found in the LICENSE file.

package proto

import (
	"unicode/utf8"

	"github.com/golang/proto2/descriptor"
	"github.com/golang/proto2/internal/errors"
	"github.com/golang/proto2/internal/pragma"
	"github.com/golang/proto2/wire"
)

// UnmarshalOptions configures the parser.
type UnmarshalOptions struct {
	pragma.NoUnkeyedLiterals

	// AllowPartial permits Unmarshal to succeed even though some required
	// field is missing from the wire data.
	AllowPartial bool

	// DiscardUnknown drops bytes for fields the descriptor does not
	// recognize instead of retaining them.
	DiscardUnknown bool
}

// Unmarshal parses the wire-format encoding of b into a new record built
// against desc.
func Unmarshal(b []byte, desc *descriptor.Message) (*Message, error) {
	return UnmarshalOptions{}.Unmarshal(b, desc)
}

// Unmarshal parses the wire-format encoding of b into a new record built
// against desc.
func (o UnmarshalOptions) Unmarshal(b []byte, desc *descriptor.Message) (*Message, error) {
	m := NewMessage(desc)
	if err := o.UnmarshalInto(b, m); err != nil {
		return nil, err
	}
	return m, nil
}

// UnmarshalInto parses b into an existing record, merging onto whatever it
// already holds: a scalar field is overwritten by the last occurrence on
// the wire, a repeated field has each element appended.
func (o UnmarshalOptions) UnmarshalInto(b []byte, m *Message) error {
	var nerr errors.NonFatal
	if _, err := o.unmarshalFields(b, m, -1); !nerr.Merge(err) {
		return err
	}
	if !o.AllowPartial {
		nerr.Merge(m.checkRequired())
	}
	return nerr.E
}

// unmarshalFields parses a sequence of tag/value pairs from b into m. When
// groupNum is non-negative, b is understood to be the remainder of an
// enclosing START_GROUP and parsing stops at the matching END_GROUP rather
// than at end-of-slice.
func (o UnmarshalOptions) unmarshalFields(b []byte, m *Message, groupNum descriptor.Number) (int, error) {
	if groupNum < 0 && m.desc.Kind() == descriptor.MessageSetMessage {
		return len(b), o.unmarshalMessageSet(b, m)
	}

	desc := m.desc
	var nerr errors.NonFatal
	total := 0
	for len(b) > 0 {
		num, wtyp, tagLen := wire.ConsumeTag(b)
		if tagLen < 0 {
			return total, wire.AsParseError(tagLen)
		}
		if wtyp == wire.EndGroupType {
			if groupNum < 0 || num != groupNum {
				return total + tagLen, &GroupMismatchError{Number: num}
			}
			return total + tagLen, nerr.E
		}

		field := desc.ByNumber(num)
		if field == nil {
			if ext, ok := descriptor.LookupExtension(desc.FullName(), num); ok {
				field = ext
			}
		}

		var valLen int
		var err error
		if field == nil {
			err = errUnknownField
		} else {
			valLen, err = o.unmarshalField(b[tagLen:], wtyp, field, m)
		}

		if err == errUnknownField {
			valLen = wire.ConsumeFieldValue(num, wtyp, b[tagLen:])
			if valLen < 0 {
				return total, wire.AsParseError(valLen)
			}
			if !o.DiscardUnknown {
				m.unknown = append(m.unknown, b[:tagLen+valLen]...)
			}
		} else if !nerr.Merge(err) {
			return total, err
		}

		b = b[tagLen+valLen:]
		total += tagLen + valLen
	}
	if groupNum >= 0 {
		// Ran out of bytes before finding the matching END_GROUP.
		return total, &GroupMismatchError{Number: groupNum}
	}
	return total, nerr.E
}

// checkSubRequired reports sub's missing required fields as a non-fatal
// error, unless AllowPartial is set. Called for every nested message and
// group, not just the outermost one.
func (o UnmarshalOptions) checkSubRequired(sub *Message) error {
	if o.AllowPartial {
		return nil
	}
	return sub.checkRequired()
}

// assign stores v into field f of m, appending if f is repeated.
func assign(f *descriptor.Field, m *Message, v descriptor.Value) {
	if f.IsRepeated() {
		m.Append(f.Number(), v)
	} else {
		m.Set(f.Number(), v)
	}
}

// unmarshalField parses one element's worth of field f's payload (the tag
// has already been consumed) and stores it into m. It returns errUnknownField
// when an enum's wire value (open or closed) has no matching EnumValue, which
// the caller retains the same way as a genuinely unrecognized field number.
func (o UnmarshalOptions) unmarshalField(b []byte, wtyp wire.Type, f *descriptor.Field, m *Message) (int, error) {
	if f.Kind() == descriptor.GroupKind {
		if wtyp != wire.StartGroupType {
			return 0, &WireTypeMismatchError{Field: f.Name(), Got: wtyp, Want: wire.StartGroupType}
		}
		sub := NewMessage(f.MessageType())
		n, err := o.unmarshalFields(b, sub, f.Number())
		if err != nil {
			return n, err
		}
		assign(f, m, descriptor.ValueOfMessage(sub))
		return n, o.checkSubRequired(sub)
	}

	expect := f.WireType()
	if wtyp != expect {
		// A LENGTH_DELIMITED payload for a declared repeated scalar field
		// is always accepted as packed, regardless of whether the field
		// was itself declared packed.
		if f.IsRepeated() && f.Kind().IsScalar() && wtyp == wire.BytesType {
			return o.unmarshalPacked(b, f, m)
		}
		return 0, &WireTypeMismatchError{Field: f.Name(), Got: wtyp, Want: expect}
	}

	switch {
	case f.Alias() != nil:
		v, n := f.Alias().Unmarshal(b, wtyp)
		if n < 0 {
			return 0, wire.AsParseError(n)
		}
		assign(f, m, v)
		return n, nil

	case f.Kind() == descriptor.MessageKind:
		payload, n := wire.ConsumeBytes(b)
		if n < 0 {
			return 0, &TruncatedSubmessageError{Field: f.Name()}
		}
		sub := NewMessage(f.MessageType())
		if _, err := o.unmarshalFields(payload, sub, -1); err != nil {
			return n, err
		}
		assign(f, m, descriptor.ValueOfMessage(sub))
		return n, o.checkSubRequired(sub)

	case f.Kind() == descriptor.EnumKind:
		x, n := wire.ConsumeVarint(b)
		if n < 0 {
			return 0, wire.AsParseError(n)
		}
		idx := int32(uint32(x))
		if _, ok := f.EnumType().ByNumber(idx); !ok {
			return 0, errUnknownField
		}
		assign(f, m, descriptor.ValueOfEnum(idx))
		return n, nil

	default:
		v, n, err := consumeScalar(b, wtyp, f.Kind())
		if err == errWireTypeMismatch {
			return 0, &WireTypeMismatchError{Field: f.Name(), Got: wtyp, Want: expect}
		}
		if err != nil {
			return 0, err
		}
		if f.Kind() == descriptor.StringKind && !utf8.ValidString(v.String()) {
			assign(f, m, v)
			var nerr errors.NonFatal
			nerr.AppendInvalidUTF8(string(f.FullName()))
			return n, nerr.E
		}
		assign(f, m, v)
		return n, nil
	}
}

// unmarshalPacked parses a LENGTH_DELIMITED payload as a run of back-to-back
// scalar elements, appending each to field f.
func (o UnmarshalOptions) unmarshalPacked(b []byte, f *descriptor.Field, m *Message) (int, error) {
	payload, n := wire.ConsumeBytes(b)
	if n < 0 {
		return 0, &TruncatedSubmessageError{Field: f.Name()}
	}
	wtyp := f.Kind().WireType()
	for len(payload) > 0 {
		if f.Kind() == descriptor.EnumKind {
			x, ln := wire.ConsumeVarint(payload)
			if ln < 0 {
				return n, wire.AsParseError(ln)
			}
			// An out-of-range packed enum element is simply dropped: there is
			// no per-element tag to retain as an unknown field inside a
			// packed run, unlike the non-packed case.
			if _, ok := f.EnumType().ByNumber(int32(uint32(x))); ok {
				m.Append(f.Number(), descriptor.ValueOfEnum(int32(uint32(x))))
			}
			payload = payload[ln:]
			continue
		}
		v, ln, err := consumeScalar(payload, wtyp, f.Kind())
		if err != nil {
			return n, err
		}
		m.Append(f.Number(), v)
		payload = payload[ln:]
	}
	return n, nil
}
