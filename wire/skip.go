// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

// maxRecursionDepth bounds how many nested START_GROUP markers ConsumeFieldValue
// will follow, guarding against a maliciously deep or cyclic group nesting.
const maxRecursionDepth = 10000

// ConsumeFieldValue parses and returns the length of the value of a field
// with the given number and wire type, so the caller can skip over it
// verbatim. num is only used to match a START_GROUP with its closing
// END_GROUP; a mismatch fails with errCodeEndGroup.
func ConsumeFieldValue(num Number, typ Type, b []byte) (n int) {
	return consumeFieldValue(num, typ, b, 0)
}

func consumeFieldValue(num Number, typ Type, b []byte, depth int) (n int) {
	switch typ {
	case VarintType:
		_, n = ConsumeVarint(b)
		return n
	case Fixed32Type:
		_, n = ConsumeFixed32(b)
		return n
	case Fixed64Type:
		_, n = ConsumeFixed64(b)
		return n
	case BytesType:
		_, n = ConsumeBytes(b)
		return n
	case StartGroupType:
		if depth >= maxRecursionDepth {
			return errCodeRecursionDepth
		}
		n0 := 0
		for {
			num2, typ2, n2 := ConsumeTag(b)
			if n2 < 0 {
				return n2
			}
			b = b[n2:]
			n0 += n2
			if typ2 == EndGroupType {
				if num2 != num {
					return errCodeEndGroup
				}
				return n0
			}
			n3 := consumeFieldValue(num2, typ2, b, depth+1)
			if n3 < 0 {
				return n3
			}
			b = b[n3:]
			n0 += n3
		}
	case EndGroupType:
		return errCodeReserved
	default:
		return errCodeReserved
	}
}
