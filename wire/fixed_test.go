// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixed32RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 1 << 31, math.MaxUint32} {
		b := AppendFixed32(nil, v)
		require.Len(t, b, 4)
		got, n := ConsumeFixed32(b)
		assert.Equal(t, 4, n)
		assert.Equal(t, v, got)
	}
}

func TestFixed64RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 1 << 63, math.MaxUint64} {
		b := AppendFixed64(nil, v)
		require.Len(t, b, 8)
		got, n := ConsumeFixed64(b)
		assert.Equal(t, 8, n)
		assert.Equal(t, v, got)
	}
}

func TestFixedTruncated(t *testing.T) {
	_, n := ConsumeFixed32([]byte{1, 2})
	assert.Negative(t, n)
	_, n = ConsumeFixed64([]byte{1, 2, 3})
	assert.Negative(t, n)
}

func TestFloatBitReinterpretation(t *testing.T) {
	f := float32(3.14159)
	b := AppendFixed32(nil, math.Float32bits(f))
	got, _ := ConsumeFixed32(b)
	assert.Equal(t, f, math.Float32frombits(got))

	d := 2.71828182845904523536
	b8 := AppendFixed64(nil, math.Float64bits(d))
	got8, _ := ConsumeFixed64(b8)
	assert.Equal(t, d, math.Float64frombits(got8))
}
