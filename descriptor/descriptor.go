// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package descriptor is the schema model the wire codec (package proto)
// dispatches against: Schema, Message, Field, Enum, EnumValue, Extension
// ranges, type aliases, and the Service/Method pair the RPC layer consumes
// but the codec itself treats as ordinary messages.
//
// Descriptors are plain data built the way reflect/protodesc-style
// "Standalone" constructors work: a caller builds up a value describing the
// declaration and hands it to a constructor that validates invariants and
// links references. Unlike a .proto-source-driven descriptor, nothing here
// parses wire bytes or text; construction is direct Go function calls.
package descriptor

import (
	"fmt"

	"github.com/golang/proto2/wire"
)

// Number is a field's wire number; re-exported from package wire so callers
// of package descriptor rarely need to import wire directly.
type Number = wire.Number

// Name is the unqualified (last-component) name of a declaration.
type Name string

// FullName is the dotted, fully-qualified name of a declaration, e.g.
// "my.pkg.Outer.Inner".
type FullName string

// Syntax identifies the proto syntax a Schema was written against. Only
// Proto2 is a supported target for the codec.
type Syntax int8

const (
	Proto2 Syntax = iota
	Proto3
)

func (s Syntax) String() string {
	if s == Proto3 {
		return "proto3"
	}
	return "proto2"
}

// Descriptor is the common surface every descriptor entity implements: a
// name, a qualified name, and a parent used to build the qualified name
// recursively.
type Descriptor interface {
	Name() Name
	FullName() FullName
	Parent() Descriptor
}

func fullName(parent Descriptor, name Name) FullName {
	if parent == nil || parent.FullName() == "" {
		return FullName(name)
	}
	return FullName(fmt.Sprintf("%s.%s", parent.FullName(), name))
}
