// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import "unicode/utf8"

// AppendString appends a length-prefixed UTF-8 string: varint(len) ∥ bytes.
// The common case of an all-ASCII string is written directly without going
// through the UTF-8 encoder, since every ASCII byte is already its own valid
// UTF-8 encoding.
func AppendString(b []byte, s string) []byte {
	if isASCII(s) {
		b = AppendVarint(b, uint64(len(s)))
		return append(b, s...)
	}
	b = AppendVarint(b, uint64(len(s)))
	return append(b, s...) // Go strings are already UTF-8; no re-encoding needed.
}

// isASCII reports whether every byte of s is < 0x80.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// ConsumeString parses b as a length-prefixed string and returns it as a
// freshly allocated Go string (strings are immutable, so unlike bytes they
// cannot be returned as a view over the input).
func ConsumeString(b []byte) (v string, n int) {
	bb, n := ConsumeBytes(b)
	if n < 0 {
		return "", n
	}
	return string(bb), n
}

// ValidString reports whether s holds well-formed UTF-8. Deserializers that
// must enforce the InvalidUtf8 error kind call this after ConsumeString.
func ValidString(s string) bool {
	return utf8.ValidString(s)
}

// AppendBytes appends a length-prefixed byte sequence: varint(len) ∥ raw.
func AppendBytes(b, v []byte) []byte {
	b = AppendVarint(b, uint64(len(v)))
	return append(b, v...)
}

// ConsumeBytes parses b as a length-prefixed byte sequence and returns a
// slice aliasing the input (no copy) together with the number of bytes
// consumed including the length prefix.
func ConsumeBytes(b []byte) (v []byte, n int) {
	m, n := ConsumeVarint(b)
	if n < 0 {
		return nil, n
	}
	if m > uint64(len(b[n:])) {
		return nil, errCodeTruncated
	}
	return b[n : n+int(m)], n + int(m)
}

// SizeBytes returns the size of a length-delimited field carrying n bytes of
// payload: the varint length prefix plus n.
func SizeBytes(n int) int {
	return SizeVarint(uint64(n)) + n
}
