// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proto implements a proto2 wire-format codec against a
// descriptor-driven record type, independent of any generated code.
package proto

import (
	"fmt"

	"github.com/golang/proto2/wire"
)

/*
 * Helper routines for simplifying the creation of optional fields of basic type.
 */

// Bool is a helper routine that allocates a new bool value
// to store v and returns a pointer to it.
func Bool(v bool) *bool {
	return &v
}

// Int32 is a helper routine that allocates a new int32 value
// to store v and returns a pointer to it.
func Int32(v int32) *int32 {
	return &v
}

// Int is a helper routine that allocates a new int32 value
// to store v and returns a pointer to it, but unlike Int32
// its argument value is an int.
func Int(v int) *int32 {
	p := new(int32)
	*p = int32(v)
	return p
}

// Int64 is a helper routine that allocates a new int64 value
// to store v and returns a pointer to it.
func Int64(v int64) *int64 {
	return &v
}

// Float32 is a helper routine that allocates a new float32 value
// to store v and returns a pointer to it.
func Float32(v float32) *float32 {
	return &v
}

// Float64 is a helper routine that allocates a new float64 value
// to store v and returns a pointer to it.
func Float64(v float64) *float64 {
	return &v
}

// Uint32 is a helper routine that allocates a new uint32 value
// to store v and returns a pointer to it.
func Uint32(v uint32) *uint32 {
	return &v
}

// Uint64 is a helper routine that allocates a new uint64 value
// to store v and returns a pointer to it.
func Uint64(v uint64) *uint64 {
	return &v
}

// String is a helper routine that allocates a new string value
// to store v and returns a pointer to it.
func String(v string) *string {
	return &v
}

// DebugPrint dumps the raw tag/wiretype/value structure of an encoded
// message to stdout, without any descriptor: a last-resort tool for staring
// at bytes that won't otherwise parse, made available for general
// debugging.
func DebugPrint(s string, b []byte) {
	fmt.Printf("\n--- %s ---\n", s)
	debugPrintFields(b, 0)
	fmt.Printf("\n")
}

// debugPrintFields prints the tag/wiretype/value structure of b at the
// given indent depth, stopping early at an END_GROUP (whose matching
// START_GROUP, if any, was printed by the caller). It returns the number of
// bytes consumed.
func debugPrintFields(b []byte, depth int) int {
	indent := func() { fmt.Printf("%*s", depth*2, "") }
	total := 0
	for len(b) > 0 {
		num, typ, n := wire.ConsumeTag(b)
		if n < 0 {
			indent()
			fmt.Printf("fetching tag err %v\n", wire.AsParseError(n))
			return total
		}
		b = b[n:]
		total += n

		if typ == wire.EndGroupType {
			indent()
			fmt.Printf("t=%3d end\n", num)
			return total
		}

		switch typ {
		case wire.VarintType:
			x, n := wire.ConsumeVarint(b)
			if n < 0 {
				indent()
				fmt.Printf("t=%3d varint err %v\n", num, wire.AsParseError(n))
				return total
			}
			indent()
			fmt.Printf("t=%3d varint %d\n", num, x)
			b, total = b[n:], total+n
		case wire.Fixed32Type:
			x, n := wire.ConsumeFixed32(b)
			if n < 0 {
				indent()
				fmt.Printf("t=%3d fix32 err %v\n", num, wire.AsParseError(n))
				return total
			}
			indent()
			fmt.Printf("t=%3d fix32 %d\n", num, x)
			b, total = b[n:], total+n
		case wire.Fixed64Type:
			x, n := wire.ConsumeFixed64(b)
			if n < 0 {
				indent()
				fmt.Printf("t=%3d fix64 err %v\n", num, wire.AsParseError(n))
				return total
			}
			indent()
			fmt.Printf("t=%3d fix64 %d\n", num, x)
			b, total = b[n:], total+n
		case wire.BytesType:
			r, n := wire.ConsumeBytes(b)
			if n < 0 {
				indent()
				fmt.Printf("t=%3d bytes err %v\n", num, wire.AsParseError(n))
				return total
			}
			indent()
			fmt.Printf("t=%3d bytes [%d]\n", num, len(r))
			b, total = b[n:], total+n
		case wire.StartGroupType:
			indent()
			fmt.Printf("t=%3d start\n", num)
			n := debugPrintFields(b, depth+1)
			b, total = b[n:], total+n
		default:
			indent()
			fmt.Printf("t=%3d unknown wire=%d\n", num, typ)
			return total
		}
	}
	return total
}
