// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descriptor

import "github.com/golang/proto2/wire"

// Kind enumerates the primitive protobuf type keywords, plus the two
// reference kinds (Message, Enum) and the deprecated Group kind: a tagged
// variant in place of keyword-driven dynamic dispatch.
type Kind int8

const (
	InvalidKind Kind = iota
	BoolKind
	Int32Kind
	Sint32Kind
	Uint32Kind
	Int64Kind
	Sint64Kind
	Uint64Kind
	Sfixed32Kind
	Fixed32Kind
	FloatKind
	Sfixed64Kind
	Fixed64Kind
	DoubleKind
	StringKind
	BytesKind
	MessageKind
	GroupKind
	EnumKind
)

func (k Kind) String() string {
	switch k {
	case BoolKind:
		return "bool"
	case Int32Kind:
		return "int32"
	case Sint32Kind:
		return "sint32"
	case Uint32Kind:
		return "uint32"
	case Int64Kind:
		return "int64"
	case Sint64Kind:
		return "sint64"
	case Uint64Kind:
		return "uint64"
	case Sfixed32Kind:
		return "sfixed32"
	case Fixed32Kind:
		return "fixed32"
	case FloatKind:
		return "float"
	case Sfixed64Kind:
		return "sfixed64"
	case Fixed64Kind:
		return "fixed64"
	case DoubleKind:
		return "double"
	case StringKind:
		return "string"
	case BytesKind:
		return "bytes"
	case MessageKind:
		return "message"
	case GroupKind:
		return "group"
	case EnumKind:
		return "enum"
	default:
		return "invalid"
	}
}

// IsScalar reports whether k is encoded directly as a VARINT/FIXED32/FIXED64
// value rather than as a LENGTH_DELIMITED payload or a nested message.
// Only scalar kinds may set a Field's Packed flag.
func (k Kind) IsScalar() bool {
	switch k {
	case MessageKind, GroupKind, StringKind, BytesKind:
		return false
	default:
		return true
	}
}

// wireTypes maps every primitive keyword to its wire type. Group is
// intentionally absent: a group's wire type alternates between START_GROUP
// and END_GROUP and is not a single fixed value.
var wireTypes = map[Kind]wire.Type{
	BoolKind:     wire.VarintType,
	Int32Kind:    wire.VarintType,
	Sint32Kind:   wire.VarintType,
	Uint32Kind:   wire.VarintType,
	Int64Kind:    wire.VarintType,
	Sint64Kind:   wire.VarintType,
	Uint64Kind:   wire.VarintType,
	EnumKind:     wire.VarintType,
	Sfixed32Kind: wire.Fixed32Type,
	Fixed32Kind:  wire.Fixed32Type,
	FloatKind:    wire.Fixed32Type,
	Sfixed64Kind: wire.Fixed64Type,
	Fixed64Kind:  wire.Fixed64Type,
	DoubleKind:   wire.Fixed64Type,
	StringKind:   wire.BytesType,
	BytesKind:    wire.BytesType,
	MessageKind:  wire.BytesType,
}

// WireType returns the wire type a Field of kind k is encoded with when not
// packed. It panics for GroupKind, which has no single wire type.
func (k Kind) WireType() wire.Type {
	typ, ok := wireTypes[k]
	if !ok {
		panic("descriptor: " + k.String() + " has no singular wire type")
	}
	return typ
}

// MakeTag composes the wire tag for a Field of kind k and number num (spec
// §4.E make_tag). Groups use StartGroupType; callers needing the matching
// END_GROUP tag use EndGroupTag instead.
func MakeTag(kind Kind, num wire.Number) uint64 {
	if kind == GroupKind {
		return wire.Tag(num, wire.StartGroupType)
	}
	return wire.Tag(num, kind.WireType())
}

// EndGroupTag composes the END_GROUP tag closing a group field of number num.
func EndGroupTag(num wire.Number) uint64 {
	return wire.Tag(num, wire.EndGroupType)
}

// PackedTag always returns a LENGTH_DELIMITED tag for num, regardless of the
// element kind's own wire type.
func PackedTag(num wire.Number) uint64 {
	return wire.Tag(num, wire.BytesType)
}
