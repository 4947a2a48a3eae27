// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"math"

	"github.com/golang/proto2/descriptor"
	"github.com/golang/proto2/wire"
)

// appendScalar appends the wire-format payload (not the tag) of a scalar
// Value of the given Kind. Enum and Message/Group kinds are handled by their
// own call sites, since they need descriptor lookups appendScalar has no
// access to.
func appendScalar(b []byte, kind descriptor.Kind, v descriptor.Value) []byte {
	switch kind {
	case descriptor.BoolKind:
		n := uint64(0)
		if v.Bool() {
			n = 1
		}
		return wire.AppendVarint(b, n)
	case descriptor.Int32Kind:
		return wire.AppendVarint(b, uint64(int64(v.Int32())))
	case descriptor.Int64Kind:
		return wire.AppendVarint(b, uint64(v.Int64()))
	case descriptor.Uint32Kind:
		return wire.AppendVarint(b, uint64(v.Uint32()))
	case descriptor.Uint64Kind:
		return wire.AppendVarint(b, v.Uint64())
	case descriptor.Sint32Kind:
		return wire.AppendVarint(b, wire.EncodeZigZag32(v.Int32()))
	case descriptor.Sint64Kind:
		return wire.AppendVarint(b, wire.EncodeZigZag64(v.Int64()))
	case descriptor.Fixed32Kind:
		return wire.AppendFixed32(b, v.Uint32())
	case descriptor.Sfixed32Kind:
		return wire.AppendFixed32(b, uint32(v.Int32()))
	case descriptor.FloatKind:
		return wire.AppendFixed32(b, math.Float32bits(v.Float32()))
	case descriptor.Fixed64Kind:
		return wire.AppendFixed64(b, v.Uint64())
	case descriptor.Sfixed64Kind:
		return wire.AppendFixed64(b, uint64(v.Int64()))
	case descriptor.DoubleKind:
		return wire.AppendFixed64(b, math.Float64bits(v.Float64()))
	case descriptor.StringKind:
		return wire.AppendString(b, v.String())
	case descriptor.BytesKind:
		return wire.AppendBytes(b, v.Bytes())
	default:
		panic("proto: not a scalar kind: " + kind.String())
	}
}

// consumeScalar parses the wire-format payload of a scalar field, reporting
// the number of bytes consumed or a negative-turned-error on failure.
// errWireTypeMismatch is returned when wtyp is not what kind requires; the
// caller attaches the field name.
func consumeScalar(b []byte, wtyp wire.Type, kind descriptor.Kind) (descriptor.Value, int, error) {
	switch kind {
	case descriptor.BoolKind, descriptor.Int32Kind, descriptor.Int64Kind,
		descriptor.Uint32Kind, descriptor.Uint64Kind, descriptor.Sint32Kind, descriptor.Sint64Kind:
		if wtyp != wire.VarintType {
			return descriptor.Value{}, 0, errWireTypeMismatch
		}
		x, n := wire.ConsumeVarint(b)
		if n < 0 {
			return descriptor.Value{}, 0, wire.AsParseError(n)
		}
		switch kind {
		case descriptor.BoolKind:
			return descriptor.ValueOfBool(x != 0), n, nil
		case descriptor.Int32Kind:
			return descriptor.ValueOfInt32(int32(x)), n, nil
		case descriptor.Int64Kind:
			return descriptor.ValueOfInt64(int64(x)), n, nil
		case descriptor.Uint32Kind:
			return descriptor.ValueOfUint32(uint32(x)), n, nil
		case descriptor.Uint64Kind:
			return descriptor.ValueOfUint64(x), n, nil
		case descriptor.Sint32Kind:
			return descriptor.ValueOfInt32(wire.DecodeZigZag32(x)), n, nil
		default: // Sint64Kind
			return descriptor.ValueOfInt64(wire.DecodeZigZag64(x)), n, nil
		}
	case descriptor.Fixed32Kind, descriptor.Sfixed32Kind, descriptor.FloatKind:
		if wtyp != wire.Fixed32Type {
			return descriptor.Value{}, 0, errWireTypeMismatch
		}
		x, n := wire.ConsumeFixed32(b)
		if n < 0 {
			return descriptor.Value{}, 0, wire.AsParseError(n)
		}
		switch kind {
		case descriptor.Fixed32Kind:
			return descriptor.ValueOfUint32(x), n, nil
		case descriptor.Sfixed32Kind:
			return descriptor.ValueOfInt32(int32(x)), n, nil
		default: // FloatKind
			return descriptor.ValueOfFloat32(math.Float32frombits(x)), n, nil
		}
	case descriptor.Fixed64Kind, descriptor.Sfixed64Kind, descriptor.DoubleKind:
		if wtyp != wire.Fixed64Type {
			return descriptor.Value{}, 0, errWireTypeMismatch
		}
		x, n := wire.ConsumeFixed64(b)
		if n < 0 {
			return descriptor.Value{}, 0, wire.AsParseError(n)
		}
		switch kind {
		case descriptor.Fixed64Kind:
			return descriptor.ValueOfUint64(x), n, nil
		case descriptor.Sfixed64Kind:
			return descriptor.ValueOfInt64(int64(x)), n, nil
		default: // DoubleKind
			return descriptor.ValueOfFloat64(math.Float64frombits(x)), n, nil
		}
	case descriptor.StringKind:
		if wtyp != wire.BytesType {
			return descriptor.Value{}, 0, errWireTypeMismatch
		}
		s, n := wire.ConsumeString(b)
		if n < 0 {
			return descriptor.Value{}, 0, wire.AsParseError(n)
		}
		return descriptor.ValueOfString(s), n, nil
	case descriptor.BytesKind:
		if wtyp != wire.BytesType {
			return descriptor.Value{}, 0, errWireTypeMismatch
		}
		// Borrowed slice: a view over the input rather than a copy.
		buf, n := wire.ConsumeBytes(b)
		if n < 0 {
			return descriptor.Value{}, 0, wire.AsParseError(n)
		}
		return descriptor.ValueOfBytes(buf), n, nil
	default:
		panic("proto: not a scalar kind: " + kind.String())
	}
}

// sizeScalar mirrors appendScalar without writing anything, for Size and for
// the packed-field two-pass length computation.
func sizeScalar(kind descriptor.Kind, v descriptor.Value) int {
	switch kind {
	case descriptor.BoolKind:
		return 1
	case descriptor.Int32Kind:
		return wire.SizeVarint(uint64(int64(v.Int32())))
	case descriptor.Int64Kind:
		return wire.SizeVarint(uint64(v.Int64()))
	case descriptor.Uint32Kind:
		return wire.SizeVarint(uint64(v.Uint32()))
	case descriptor.Uint64Kind:
		return wire.SizeVarint(v.Uint64())
	case descriptor.Sint32Kind:
		return wire.SizeVarint(wire.EncodeZigZag32(v.Int32()))
	case descriptor.Sint64Kind:
		return wire.SizeVarint(wire.EncodeZigZag64(v.Int64()))
	case descriptor.Fixed32Kind, descriptor.Sfixed32Kind, descriptor.FloatKind:
		return 4
	case descriptor.Fixed64Kind, descriptor.Sfixed64Kind, descriptor.DoubleKind:
		return 8
	case descriptor.StringKind:
		return wire.SizeBytes(len(v.String()))
	case descriptor.BytesKind:
		return wire.SizeBytes(len(v.Bytes()))
	default:
		panic("proto: not a scalar kind: " + kind.String())
	}
}
