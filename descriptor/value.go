// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descriptor

import "math"

// Value is a generic container for a single scalar, enum, string, bytes, or
// message value — used both for a Field's default value and, by package
// proto, as the boxed representation of a record's scalar slots. The zero
// Value means "no default provided."
//
// This plays a role similar to protoreflect.Value, trimmed to what the wire
// codec actually needs: there is no Value for maps or lists here, since
// repeated storage is handled directly as a Go slice of Value in package
// proto rather than through an abstract List interface.
type Value struct {
	kind Kind
	num  uint64 // bool/int32/int64/uint32/uint64/sint32/sint64/enum/float32/float64 bits
	str  string
	buf  []byte
	msg  interface{} // *proto.Message, boxed as interface{} to avoid an import cycle
	set  bool
}

func (v Value) isEmpty() bool { return !v.set }

// IsValid reports whether v holds a value at all (as opposed to the zero
// Value, used as the "no default" / "not set" sentinel).
func (v Value) IsValid() bool { return v.set }

func ValueOfBool(x bool) Value {
	var n uint64
	if x {
		n = 1
	}
	return Value{kind: BoolKind, num: n, set: true}
}
func ValueOfInt32(x int32) Value  { return Value{kind: Int32Kind, num: uint64(uint32(x)), set: true} }
func ValueOfInt64(x int64) Value  { return Value{kind: Int64Kind, num: uint64(x), set: true} }
func ValueOfUint32(x uint32) Value { return Value{kind: Uint32Kind, num: uint64(x), set: true} }
func ValueOfUint64(x uint64) Value { return Value{kind: Uint64Kind, num: x, set: true} }
func ValueOfFloat32(x float32) Value {
	return Value{kind: FloatKind, num: uint64(math.Float32bits(x)), set: true}
}
func ValueOfFloat64(x float64) Value {
	return Value{kind: DoubleKind, num: math.Float64bits(x), set: true}
}
func ValueOfString(x string) Value { return Value{kind: StringKind, str: x, set: true} }
func ValueOfBytes(x []byte) Value  { return Value{kind: BytesKind, buf: x, set: true} }
func ValueOfEnum(x int32) Value    { return Value{kind: EnumKind, num: uint64(uint32(x)), set: true} }
func ValueOfMessage(x interface{}) Value {
	return Value{kind: MessageKind, msg: x, set: true}
}

func (v Value) Bool() bool       { return v.num != 0 }
func (v Value) Int32() int32     { return int32(uint32(v.num)) }
func (v Value) Int64() int64     { return int64(v.num) }
func (v Value) Uint32() uint32   { return uint32(v.num) }
func (v Value) Uint64() uint64   { return v.num }
func (v Value) Float32() float32 { return math.Float32frombits(uint32(v.num)) }
func (v Value) Float64() float64 { return math.Float64frombits(v.num) }
func (v Value) String() string   { return v.str }
func (v Value) Bytes() []byte    { return v.buf }
func (v Value) Enum() int32      { return int32(uint32(v.num)) }
func (v Value) Message() interface{} { return v.msg }
func (v Value) Kind() Kind        { return v.kind }

// Equal reports whether v and o hold the same value. Message values compare
// by interface equality of the boxed pointer only; package proto provides
// deep message equality (proto.Equal) separately.
func (v Value) Equal(o Value) bool {
	if v.set != o.set {
		return false
	}
	if !v.set {
		return true
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case StringKind:
		return v.str == o.str
	case BytesKind:
		return string(v.buf) == string(o.buf)
	case MessageKind:
		return v.msg == o.msg
	default:
		return v.num == o.num
	}
}
