// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descriptor

// Builder assembles a Schema in two phases: first every Message and Enum
// is declared by name (an empty shell, in the Message case), so that a
// sibling declaration occurring earlier in traversal order can still
// reference it; only once every shell exists are a Message's Fields
// resolved against the now-complete set of type references. This mirrors
// reflect/protodesc-style batch resolution of mutually referencing
// descriptors via placeholder substitution before returning fully linked
// descriptors.
type Builder struct {
	schema *Schema
}

// NewBuilder starts building a Schema; this is register_schema.
func NewBuilder(name FullName, syntax Syntax, pkg string) *Builder {
	return &Builder{schema: NewSchema(name, syntax, pkg)}
}

// Schema returns the Schema under construction. Callers typically call this
// once after all declarations and field definitions are complete, then pass
// the result to RegisterSchema to publish it process-wide.
func (b *Builder) Schema() *Schema { return b.schema }

// DeclareMessage is phase 1 for a Message: it creates and registers an empty
// shell under the Schema so other declarations may reference it by pointer
// before its own Fields are known. Call DefineFields once every sibling
// shell this Message's Fields need exists.
func (b *Builder) DeclareMessage(name Name, parent Descriptor, kind MessageKind) (*Message, error) {
	if parent == nil {
		parent = b.schema
	}
	m := newMessageShell(name, parent, kind)
	if err := b.schema.register(m.FullName(), m); err != nil {
		return nil, err
	}
	if parent == Descriptor(b.schema) {
		b.schema.messages = append(b.schema.messages, m)
	}
	return m, nil
}

// DefineFields is phase 2 for a Message: it finalizes fields and extension
// ranges once every Message/Enum this Message's Fields reference has been
// declared (though not necessarily itself finalized — only the Message
// pointer is needed to build a Field, not its own completed field list).
func (b *Builder) DefineFields(m *Message, fields []*Field, extRanges []ExtensionRange) error {
	return m.setFields(fields, extRanges)
}

// DeclareEnum is register_enum. Unlike messages, an Enum has no forward
// references to resolve — its values are plain (name, number) pairs — so
// declaration and completion happen in one step.
func (b *Builder) DeclareEnum(name Name, parent Descriptor, values []EnumValueDef, aliasFor *Enum, open bool) (*Enum, error) {
	if parent == nil {
		parent = b.schema
	}
	e, err := NewEnum(name, parent, values, aliasFor, open)
	if err != nil {
		return nil, err
	}
	if err := b.schema.register(e.FullName(), e); err != nil {
		return nil, err
	}
	if parent == Descriptor(b.schema) {
		b.schema.enums = append(b.schema.enums, e)
	}
	return e, nil
}

// DeclareService registers a new, empty Service; call Service.AddMethod to
// populate its RPCs once their input/output Messages are declared.
func (b *Builder) DeclareService(name Name) (*Service, error) {
	s := NewService(name, b.schema)
	if err := b.schema.register(s.FullName(), s); err != nil {
		return nil, err
	}
	b.schema.services = append(b.schema.services, s)
	return s, nil
}

// DeclareExtension is register_extension: it validates that field's number
// falls inside one of target's declared extension ranges, then publishes
// the (target, field) pair into the process-wide extension registry so the
// Extension Store (package proto) can resolve a wire number encountered on
// an extendable host back to its Field descriptor at decode time.
func (b *Builder) DeclareExtension(target *Message, field *Field) error {
	if !target.IsExtendable(field.number) {
		return &FieldNumberOutOfRangeError{Message: target.name, Field: field.name, Number: field.number}
	}
	field.parent = target
	return RegisterExtension(target.FullName(), field)
}

// DeclareTypeAlias is register_type_alias: it publishes alias into the
// process-wide type-alias registry, from which NewAliasField's callers
// typically look it up by name.
func (b *Builder) DeclareTypeAlias(alias *TypeAlias) error {
	return RegisterTypeAlias(alias)
}
