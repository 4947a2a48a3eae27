// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descriptor

import "github.com/golang/proto2/wire"

// Label is a Field's cardinality: required, optional, or repeated.
type Label int8

const (
	Optional Label = iota
	Required
	Repeated
)

func (l Label) String() string {
	switch l {
	case Required:
		return "required"
	case Repeated:
		return "repeated"
	default:
		return "optional"
	}
}

// StorageHint tells the codec whether a repeated Field's values are held in
// a plain Go slice ("list") or, for generated accessors that need index-
// stable mutation handles, a "vector" wrapper. The wire encoding is
// identical either way; this only affects how package proto's generic
// record stores the slot.
type StorageHint int8

const (
	ListStorage StorageHint = iota
	VectorStorage
)

// Field describes one member of a Message.
type Field struct {
	name       Name
	number     Number
	label      Label
	kind       Kind
	message    *Message // set when Kind == MessageKind or GroupKind
	enum       *Enum    // set when Kind == EnumKind
	alias      *TypeAlias
	def        Value // sentinel Value{} ("empty") when no default was provided
	packed     bool
	lazy       bool
	storage    StorageHint
	jsonName   string
	parent     *Message
}

// FieldOpts is the set of optional attributes a caller may supply when
// constructing a Field; the zero value means "use the default for this kind."
type FieldOpts struct {
	Default  Value
	Packed   bool
	Lazy     bool
	Storage  StorageHint
	JSONName string
}

// NewField constructs a Field. kind, message, and enum must be mutually
// consistent: message is non-nil iff kind is MessageKind or GroupKind, enum
// is non-nil iff kind is EnumKind. Use NewAliasField for a TypeAlias kind.
func NewField(name Name, number Number, label Label, kind Kind, message *Message, enum *Enum, opts FieldOpts) *Field {
	return &Field{
		name:     name,
		number:   number,
		label:    label,
		kind:     kind,
		message:  message,
		enum:     enum,
		def:      opts.Default,
		packed:   opts.Packed,
		lazy:     opts.Lazy,
		storage:  opts.Storage,
		jsonName: opts.JSONName,
	}
}

// NewAliasField constructs a Field whose wire representation is governed by
// a registered TypeAlias rather than a built-in Kind.
func NewAliasField(name Name, number Number, label Label, alias *TypeAlias, opts FieldOpts) *Field {
	f := NewField(name, number, label, InvalidKind, nil, nil, opts)
	f.alias = alias
	return f
}

func (f *Field) Name() Name           { return f.name }
func (f *Field) FullName() FullName   { return fullName(f.parent, Name(f.name)) }
func (f *Field) Parent() Descriptor {
	if f.parent == nil {
		return nil
	}
	return f.parent
}
func (f *Field) Number() Number         { return f.number }
func (f *Field) Label() Label           { return f.label }
func (f *Field) Kind() Kind             { return f.kind }
func (f *Field) MessageType() *Message  { return f.message }
func (f *Field) EnumType() *Enum        { return f.enum }
func (f *Field) Alias() *TypeAlias      { return f.alias }
func (f *Field) Default() Value         { return f.def }
func (f *Field) HasDefault() bool       { return !f.def.isEmpty() }
func (f *Field) Storage() StorageHint   { return f.storage }
func (f *Field) IsLazy() bool           { return f.lazy }

// IsRepeated, IsRequired, IsOptional read more naturally than Label() at
// call sites throughout package proto.
func (f *Field) IsRepeated() bool { return f.label == Repeated }
func (f *Field) IsRequired() bool { return f.label == Required }
func (f *Field) IsOptional() bool { return f.label == Optional }

// IsPacked reports whether f should use the packed encoding. Only scalar,
// repeated fields may be packed; a non-repeated or non-scalar Field's packed
// bit, if somehow set, is simply ignored by the codec.
func (f *Field) IsPacked() bool {
	return f.packed && f.label == Repeated && f.kind.IsScalar() && f.alias == nil
}

// WireType returns the wire type used to encode a single (unpacked) element
// of this field.
func (f *Field) WireType() wire.Type {
	if f.alias != nil {
		return f.alias.WireType
	}
	if f.kind == GroupKind {
		return wire.StartGroupType
	}
	return f.kind.WireType()
}

// Tag returns the non-packed wire tag for this field.
func (f *Field) Tag() uint64 {
	return wire.Tag(f.number, f.WireType())
}

// PackedTag returns the tag this field would use if packed (always
// LENGTH_DELIMITED), regardless of IsPacked.
func (f *Field) PackedTag() uint64 {
	return PackedTag(f.number)
}
