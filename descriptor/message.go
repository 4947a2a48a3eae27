// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descriptor

import "sort"

// MessageKind distinguishes a Message's wire-format role.
type MessageKind int8

const (
	// RegularMessage is an ordinary LENGTH_DELIMITED nested message.
	RegularMessage MessageKind = iota
	// GroupMessage is a deprecated START_GROUP/END_GROUP delimited message.
	GroupMessage
	// ExtensionBlockMessage exists only to declare extension Fields that
	// target another Message's extension ranges; it has no instances of
	// its own.
	ExtensionBlockMessage
	// MessageSetMessage uses the legacy proto2 "message set" wire encoding,
	// where every field is an extension carried as a repeated group of
	// (type_id, message) pairs.
	MessageSetMessage
)

// ExtensionRange is an inclusive [From, To] span of field numbers reserved
// within a Message for fields declared elsewhere.
type ExtensionRange struct {
	From, To Number
}

// Contains reports whether num falls within the range.
func (r ExtensionRange) Contains(num Number) bool {
	return r.From <= num && num <= r.To
}

// Message is an ordered set of Fields plus extension ranges.
type Message struct {
	name       Name
	parent     Descriptor
	kind       MessageKind
	fields     []*Field        // ascending field-number order, sorted once by setFields
	byNumber   map[Number]*Field
	vector     []*Field        // dense field-vector indexed by number when the number
	vectorBase Number          // space is small and contiguous enough
	extRanges  []ExtensionRange
}

// denseVectorLimit bounds how large a dense field-vector we are willing to
// allocate for a message whose field numbers are sparse; beyond this the
// fallback map-based lookup (byNumber) is used exclusively, keeping a
// message with one field numbered 1 and another numbered 1,000,000 from
// allocating a million-entry slice.
const denseVectorLimit = 4096

// newMessageShell creates an empty Message descriptor, used by Builder's
// phase 1 (declare-by-name) so that other messages' Fields can reference it
// before its own Fields are known.
func newMessageShell(name Name, parent Descriptor, kind MessageKind) *Message {
	return &Message{name: name, parent: parent, kind: kind, byNumber: make(map[Number]*Field)}
}

// setFields finalizes a Message's Fields and ExtensionRanges (Builder's
// phase 2, after all type references have been resolved). It validates that
// field numbers are in range, outside the reserved band, and unique within
// the message and its extension ranges.
func (m *Message) setFields(fields []*Field, extRanges []ExtensionRange) error {
	seen := make(map[Number]bool, len(fields))
	minNum, maxNum := Number(0), Number(0)
	for _, f := range fields {
		if !f.number.IsValid() {
			return &FieldNumberOutOfRangeError{Message: m.name, Field: f.name, Number: f.number}
		}
		if seen[f.number] {
			return &DuplicateFieldNumberError{Message: m.name, Number: f.number}
		}
		seen[f.number] = true
		f.parent = m
		if minNum == 0 || f.number < minNum {
			minNum = f.number
		}
		if f.number > maxNum {
			maxNum = f.number
		}
	}
	for _, r := range extRanges {
		if !r.From.IsValid() || !r.To.IsValid() || r.From > r.To {
			return &FieldNumberOutOfRangeError{Message: m.name, Field: "<extensions>", Number: r.From}
		}
		for num := range seen {
			if r.Contains(num) {
				return &DuplicateFieldNumberError{Message: m.name, Number: num}
			}
		}
	}

	sorted := append([]*Field(nil), fields...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].number < sorted[j].number })

	m.fields = sorted
	m.extRanges = extRanges
	m.byNumber = make(map[Number]*Field, len(fields))
	for _, f := range fields {
		m.byNumber[f.number] = f
	}

	// Build the dense field-vector only when the number space is compact
	// enough to be worth the extra allocation; a sparse number space falls
	// back to the associative map exclusively.
	if len(fields) > 0 && int(maxNum-minNum) < denseVectorLimit {
		m.vectorBase = minNum
		m.vector = make([]*Field, int(maxNum-minNum)+1)
		for _, f := range fields {
			m.vector[f.number-minNum] = f
		}
	} else {
		m.vector = nil
	}
	return nil
}

func (m *Message) Name() Name         { return m.name }
func (m *Message) FullName() FullName { return fullName(m.parent, m.name) }
func (m *Message) Parent() Descriptor { return m.parent }
func (m *Message) Kind() MessageKind  { return m.kind }

// Fields returns the Message's fields in ascending field-number order —
// this is also serialization order.
func (m *Message) Fields() []*Field { return m.fields }

// ExtensionRanges returns the Message's declared extension ranges.
func (m *Message) ExtensionRanges() []ExtensionRange { return m.extRanges }

// IsExtendable reports whether num falls inside one of the Message's
// extension ranges.
func (m *Message) IsExtendable(num Number) bool {
	for _, r := range m.extRanges {
		if r.Contains(num) {
			return true
		}
	}
	return false
}

// ByNumber looks up a Field by its wire number, preferring the dense
// field-vector when available and falling back to the associative map
// lookup otherwise.
func (m *Message) ByNumber(num Number) *Field {
	if m.vector != nil {
		idx := num - m.vectorBase
		if idx >= 0 && int(idx) < len(m.vector) {
			return m.vector[idx]
		}
		return nil
	}
	return m.byNumber[num]
}

// ByName looks up a Field by its declared name; this is an O(n) scan since
// number- and qualified-name-based lookup are the primary access patterns,
// with by-name lookup used rarely (by a code generator, out of scope here).
func (m *Message) ByName(name Name) *Field {
	for _, f := range m.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}
