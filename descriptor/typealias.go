// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descriptor

import "github.com/golang/proto2/wire"

// MarshalFunc appends the wire-format encoding of v to b.
type MarshalFunc func(b []byte, v Value) []byte

// UnmarshalFunc parses a TypeAlias payload of the given wire type out of b,
// returning the decoded Value and the number of bytes consumed, or a
// negative count on failure (same convention as the wire package's Consume
// functions).
type UnmarshalFunc func(b []byte, typ wire.Type) (Value, int)

// SizeFunc returns the number of bytes MarshalFunc would append for v,
// without actually encoding it — used by the packed-size two-pass strategy.
type SizeFunc func(v Value) int

// TypeAlias behaves as a first-class field type for codec purposes: a name,
// a wire type it rides on, and serialize/deserialize closures. GoType names
// the Go type a language binding maps the wire bytes to at runtime; the
// codec itself never inspects GoType, it is purely descriptive metadata
// callers can use to pick an accessor shape.
//
// Builder.DeclareTypeAlias is the entry point that registers one.
type TypeAlias struct {
	Name     Name
	GoType   string // descriptive only, e.g. "string", "time.Duration"
	WireType wire.Type
	Marshal  MarshalFunc
	Unmarshal UnmarshalFunc
	Size     SizeFunc
}
