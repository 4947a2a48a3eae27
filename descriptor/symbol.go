// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descriptor

import "github.com/golang/proto2/wire"

// SymbolAlias is a non-standard type that transmits a qualified identifier
// as a UTF-8 string. It is not part of the canonical wire format — nothing
// in package proto registers it automatically — but is provided here, ready
// to pass to Builder.DeclareTypeAlias, as an example TypeAlias plugin
// rather than a built-in primitive keyword.
var SymbolAlias = &TypeAlias{
	Name:     "symbol",
	GoType:   "string",
	WireType: wire.BytesType,
	Marshal: func(b []byte, v Value) []byte {
		return wire.AppendString(b, v.String())
	},
	Unmarshal: func(b []byte, typ wire.Type) (Value, int) {
		if typ != wire.BytesType {
			return Value{}, -1
		}
		s, n := wire.ConsumeString(b)
		if n < 0 {
			return Value{}, n
		}
		return ValueOfString(s), n
	},
	Size: func(v Value) int {
		return wire.SizeBytes(len(v.String()))
	},
}
