// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"github.com/golang/proto2/descriptor"
	"github.com/golang/proto2/internal/errors"
	"github.com/golang/proto2/internal/presence"
)

// Message is a record instance: a mutable bag of field values conforming to
// a *descriptor.Message, plus its unknown-field bytes and (if the message
// declares extension ranges) its Extension Store.
//
// There is no generated-struct layer here and no code generator: a single
// concrete type that operates directly against a *descriptor.Message is
// the most direct rendition of "record instance."
type Message struct {
	desc     *descriptor.Message
	scalars  map[descriptor.Number]descriptor.Value
	lists    map[descriptor.Number][]descriptor.Value
	presence presence.Set
	unknown  []byte
	ext      *ExtensionStore
}

// NewMessage allocates an empty record instance of desc, with every field
// absent.
func NewMessage(desc *descriptor.Message) *Message {
	return &Message{desc: desc}
}

// Descriptor returns the schema this record was built against.
func (m *Message) Descriptor() *descriptor.Message { return m.desc }

// Has reports whether field num is present: a nonzero-length list for a
// repeated field, or an explicitly set value for a singular one.
func (m *Message) Has(num descriptor.Number) bool {
	f := m.desc.ByNumber(num)
	if f == nil {
		return false
	}
	if f.IsRepeated() {
		return len(m.lists[num]) > 0
	}
	return m.presence.Has(uint32(num))
}

// Get returns the current value of singular field num, or the zero Value if
// absent.
func (m *Message) Get(num descriptor.Number) descriptor.Value {
	return m.scalars[num]
}

// Set assigns the value of singular field num, marking it present.
func (m *Message) Set(num descriptor.Number, v descriptor.Value) {
	if m.scalars == nil {
		m.scalars = make(map[descriptor.Number]descriptor.Value)
	}
	m.scalars[num] = v
	m.presence.Set(uint32(num))
}

// List returns the current elements of repeated field num, or nil if absent.
func (m *Message) List(num descriptor.Number) []descriptor.Value {
	return m.lists[num]
}

// SetList replaces the elements of repeated field num.
func (m *Message) SetList(num descriptor.Number, vs []descriptor.Value) {
	if m.lists == nil {
		m.lists = make(map[descriptor.Number][]descriptor.Value)
	}
	m.lists[num] = vs
	m.presence.Set(uint32(num))
}

// Append adds one element to repeated field num.
func (m *Message) Append(num descriptor.Number, v descriptor.Value) {
	if m.lists == nil {
		m.lists = make(map[descriptor.Number][]descriptor.Value)
	}
	m.lists[num] = append(m.lists[num], v)
	m.presence.Set(uint32(num))
}

// Clear removes field num entirely, known or extension.
func (m *Message) Clear(num descriptor.Number) {
	delete(m.scalars, num)
	delete(m.lists, num)
	m.presence.Clear(uint32(num))
	if m.ext != nil {
		m.ext.Clear(num)
	}
}

// UnknownFields returns the raw bytes of every field this record's
// descriptor did not recognize at decode time, verbatim and in original
// wire order.
func (m *Message) UnknownFields() []byte { return m.unknown }

// SetUnknownFields replaces the unknown-field byte blob.
func (m *Message) SetUnknownFields(b []byte) { m.unknown = b }

// Extensions returns this record's Extension Store, allocating it on first
// use.
func (m *Message) Extensions() *ExtensionStore {
	if m.ext == nil {
		m.ext = newExtensionStore(m.desc)
	}
	return m.ext
}

// HasExtensions reports whether any extension field has been set, without
// allocating a Store as a side effect.
func (m *Message) HasExtensions() bool {
	return m.ext != nil && m.ext.Len() > 0
}

// checkRequired reports every declared required field
// that is absent, as a non-fatal errors.NonFatalErrors built from
// AppendRequiredNotSet — the same accumulation pattern both Marshal and
// Unmarshal use to report RequiredNotSet without aborting at the
// first missing field.
func (m *Message) checkRequired() error {
	var nerr errors.NonFatal
	for _, f := range m.desc.Fields() {
		if f.IsRequired() && !m.Has(f.Number()) {
			nerr.AppendRequiredNotSet(string(f.FullName()))
		}
	}
	return nerr.E
}
