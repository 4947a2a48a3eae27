// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapsort_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golang/proto2/descriptor"
	"github.com/golang/proto2/internal/mapsort"
)

func TestRangeOrderedInt32(t *testing.T) {
	m := map[int32]string{3: "c", 1: "a", 2: "b"}
	var got []int32
	mapsort.RangeOrdered(m, func(k int32, v string) bool {
		got = append(got, k)
		return true
	})
	assert.Equal(t, []int32{1, 2, 3}, got)
}

func TestRangeOrderedStopsEarly(t *testing.T) {
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	var got []string
	mapsort.RangeOrdered(m, func(k string, v int) bool {
		got = append(got, k)
		return k != "b"
	})
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestRangeBool(t *testing.T) {
	m := map[bool]int{true: 1, false: 0}
	var got []bool
	mapsort.RangeBool(m, func(k bool, v int) bool {
		got = append(got, k)
		return true
	})
	assert.Equal(t, []bool{false, true}, got)
}

func TestRangeOrderedExtensionNumbers(t *testing.T) {
	m := map[descriptor.Number]string{200: "x", 100: "y", 150: "z"}
	var got []descriptor.Number
	mapsort.RangeOrdered(m, func(k descriptor.Number, v string) bool {
		got = append(got, k)
		return true
	})
	assert.Equal(t, []descriptor.Number{100, 150, 200}, got)
}
