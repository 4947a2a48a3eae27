// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipEachWireType(t *testing.T) {
	t.Run("varint", func(t *testing.T) {
		payload := AppendVarint(nil, 123456)
		n := ConsumeFieldValue(1, VarintType, payload)
		assert.Equal(t, len(payload), n)
	})
	t.Run("fixed32", func(t *testing.T) {
		payload := AppendFixed32(nil, 7)
		n := ConsumeFieldValue(1, Fixed32Type, payload)
		assert.Equal(t, 4, n)
	})
	t.Run("fixed64", func(t *testing.T) {
		payload := AppendFixed64(nil, 7)
		n := ConsumeFieldValue(1, Fixed64Type, payload)
		assert.Equal(t, 8, n)
	})
	t.Run("length_delimited", func(t *testing.T) {
		payload := AppendBytes(nil, []byte("hello"))
		n := ConsumeFieldValue(1, BytesType, payload)
		assert.Equal(t, len(payload), n)
	})
}

func TestSkipGroup(t *testing.T) {
	// START_GROUP(5) containing one varint field(1)=9, then END_GROUP(5),
	// followed by a sibling byte that must not be consumed.
	var b []byte
	b = AppendTag(b, 1, VarintType)
	b = AppendVarint(b, 9)
	b = AppendTag(b, 5, EndGroupType)
	b = append(b, 0xFF) // sentinel trailing byte

	n := ConsumeFieldValue(5, StartGroupType, b)
	require.Positive(t, n)
	assert.Equal(t, len(b)-1, n) // everything except the sentinel
}

func TestSkipGroupMismatch(t *testing.T) {
	var b []byte
	b = AppendTag(b, 6, EndGroupType) // wrong field number closes the group
	n := ConsumeFieldValue(5, StartGroupType, b)
	require.Negative(t, n)
	err := AsParseError(n).(*ParseError)
	assert.True(t, err.IsEndGroupMismatch())
}

func TestReaderSkip(t *testing.T) {
	var b []byte
	b = AppendTag(b, 99, VarintType)
	b = AppendVarint(b, 42)
	b = AppendTag(b, 1, VarintType)
	b = AppendVarint(b, 7)

	r := &Reader{B: b}
	num, typ, err := r.Tag()
	require.NoError(t, err)
	assert.Equal(t, Number(99), num)
	require.NoError(t, r.Skip(num, typ))

	num, typ, err = r.Tag()
	require.NoError(t, err)
	assert.Equal(t, Number(1), num)
	assert.Equal(t, VarintType, typ)
	assert.Equal(t, 1, r.Len())
}
