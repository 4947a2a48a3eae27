// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"testing"

	"github.com/golang/proto2/descriptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneDeepCopiesBytesAndSubmessages(t *testing.T) {
	fx := buildFixture(t)

	leaf := NewMessage(fx.Leaf)
	leaf.Set(1, descriptor.ValueOfString("orig"))
	leaf.Set(3, descriptor.ValueOfBytes([]byte{1, 2, 3}))

	inner := NewMessage(fx.Inner)
	inner.Set(1, descriptor.ValueOfMessage(leaf))
	inner.Set(2, descriptor.ValueOfInt32(7))

	clone := Clone(inner)
	require.True(t, Equal(inner, clone))

	// Mutating the clone's nested bytes must not reach the original.
	cloneLeaf := clone.Get(1).Message().(*Message)
	cloneLeaf.Get(3).Bytes()[0] = 0xff
	origLeaf := inner.Get(1).Message().(*Message)
	assert.Equal(t, byte(1), origLeaf.Get(3).Bytes()[0])

	// Mutating the clone's nested submessage must not reach the original.
	cloneLeaf.Set(1, descriptor.ValueOfString("changed"))
	assert.Equal(t, "orig", origLeaf.Get(1).String())
}

func TestCloneDeepCopiesRepeatedFields(t *testing.T) {
	fx := buildFixture(t)
	root := NewMessage(fx.Root)
	root.Set(1, descriptor.ValueOfMessage(newInner(fx, "x", 1)))
	root.Append(3, descriptor.ValueOfInt32(1))
	root.Append(3, descriptor.ValueOfInt32(2))

	clone := Clone(root)
	clone.Append(3, descriptor.ValueOfInt32(3))

	assert.Equal(t, []int32{1, 2}, int32List(root.List(3)))
	assert.Equal(t, []int32{1, 2, 3}, int32List(clone.List(3)))
}

func int32List(vs []descriptor.Value) []int32 {
	out := make([]int32, len(vs))
	for i, v := range vs {
		out[i] = v.Int32()
	}
	return out
}

func TestCloneCopiesUnknownFieldsAndExtensions(t *testing.T) {
	fx := buildFixture(t)
	root := NewMessage(fx.Root)
	root.Set(1, descriptor.ValueOfMessage(newInner(fx, "x", 1)))
	root.SetUnknownFields([]byte{0xAB, 0xCD})
	require.NoError(t, root.Extensions().Set(fx.ExtField.Number(), descriptor.ValueOfString("tagged")))

	clone := Clone(root)
	assert.True(t, Equal(root, clone))

	clone.UnknownFields()[0] = 0x00
	assert.Equal(t, byte(0xAB), root.UnknownFields()[0])

	clone.Extensions().Set(fx.ExtField.Number(), descriptor.ValueOfString("changed"))
	v, _ := root.Extensions().Get(fx.ExtField.Number())
	assert.Equal(t, "tagged", v.String())
}

func TestCloneNil(t *testing.T) {
	assert.Nil(t, Clone(nil))
}

func TestEqualUnsetVersusZeroValue(t *testing.T) {
	fx := buildFixture(t)
	a := NewMessage(fx.Inner)
	b := NewMessage(fx.Inner)
	b.Set(2, descriptor.ValueOfInt32(0))

	assert.False(t, Equal(a, b), "an unset field must never equal one explicitly set to its zero value")
}

func TestEqualRecursesIntoSubmessages(t *testing.T) {
	fx := buildFixture(t)
	a := newInner(fx, "same", 1)
	b := newInner(fx, "same", 1)
	assert.True(t, Equal(a, b))

	c := newInner(fx, "different", 1)
	assert.False(t, Equal(a, c))
}

func TestEqualComparesExtensionsAndUnknownBytes(t *testing.T) {
	fx := buildFixture(t)
	a := NewMessage(fx.Root)
	a.Set(1, descriptor.ValueOfMessage(newInner(fx, "x", 1)))
	b := Clone(a)

	require.NoError(t, a.Extensions().Set(fx.ExtField.Number(), descriptor.ValueOfString("v")))
	assert.False(t, Equal(a, b))
	require.NoError(t, b.Extensions().Set(fx.ExtField.Number(), descriptor.ValueOfString("v")))
	assert.True(t, Equal(a, b))

	a.SetUnknownFields([]byte{1, 2})
	assert.False(t, Equal(a, b))
	b.SetUnknownFields([]byte{1, 2})
	assert.True(t, Equal(a, b))
}

func TestEqualNilHandling(t *testing.T) {
	fx := buildFixture(t)
	m := NewMessage(fx.Leaf)
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(m, nil))
	assert.False(t, Equal(nil, m))
	assert.True(t, Equal(m, m))
}

func TestMergeOverwritesScalarsAndAppendsRepeated(t *testing.T) {
	fx := buildFixture(t)
	dst := NewMessage(fx.Root)
	dst.Set(1, descriptor.ValueOfMessage(newInner(fx, "x", 1)))
	dst.Append(3, descriptor.ValueOfInt32(1))

	src := NewMessage(fx.Root)
	src.Set(1, descriptor.ValueOfMessage(newInner(fx, "y", 2)))
	src.Append(3, descriptor.ValueOfInt32(2))

	Merge(dst, src)

	assert.Equal(t, []int32{1, 2}, int32List(dst.List(3)))
	sub := dst.Get(1).Message().(*Message)
	assert.Equal(t, int32(2), sub.Get(2).Int32())
	leaf := sub.Get(1).Message().(*Message)
	assert.Equal(t, "y", leaf.Get(1).String())
}

func TestMergeRecursesIntoSubmessageRatherThanReplacing(t *testing.T) {
	fx := buildFixture(t)
	dstInner := NewMessage(fx.Inner)
	dstInner.Set(2, descriptor.ValueOfInt32(9))
	dst := NewMessage(fx.Root)
	dst.Set(1, descriptor.ValueOfMessage(dstInner))

	srcLeaf := NewMessage(fx.Leaf)
	srcLeaf.Set(1, descriptor.ValueOfString("from src"))
	srcInner := NewMessage(fx.Inner)
	srcInner.Set(1, descriptor.ValueOfMessage(srcLeaf))
	src := NewMessage(fx.Root)
	src.Set(1, descriptor.ValueOfMessage(srcInner))

	Merge(dst, src)

	merged := dst.Get(1).Message().(*Message)
	// count was only set in dst and must survive the recursive merge.
	assert.Equal(t, int32(9), merged.Get(2).Int32())
	leaf := merged.Get(1).Message().(*Message)
	assert.Equal(t, "from src", leaf.Get(1).String())
}

func TestMergeAppendsUnknownBytesAndMergesExtensions(t *testing.T) {
	fx := buildFixture(t)
	dst := NewMessage(fx.Root)
	dst.SetUnknownFields([]byte{1, 2})
	require.NoError(t, dst.Extensions().Set(fx.ExtField.Number(), descriptor.ValueOfString("dst")))

	src := NewMessage(fx.Root)
	src.SetUnknownFields([]byte{3, 4})

	Merge(dst, src)

	assert.Equal(t, []byte{1, 2, 3, 4}, dst.UnknownFields())
	v, ok := dst.Extensions().Get(fx.ExtField.Number())
	require.True(t, ok)
	assert.Equal(t, "dst", v.String(), "an extension only set in dst must survive a merge from a src without it")
}

func TestMergePanicsOnMismatchedDescriptors(t *testing.T) {
	fx := buildFixture(t)
	dst := NewMessage(fx.Root)
	src := NewMessage(fx.Leaf)
	assert.Panics(t, func() { Merge(dst, src) })
}

func TestResetZeroesWhilePreservingDescriptor(t *testing.T) {
	fx := buildFixture(t)
	m := NewMessage(fx.Root)
	m.Set(1, descriptor.ValueOfMessage(newInner(fx, "x", 1)))
	m.Append(3, descriptor.ValueOfInt32(1))
	m.SetUnknownFields([]byte{9})
	require.NoError(t, m.Extensions().Set(fx.ExtField.Number(), descriptor.ValueOfString("v")))

	Reset(m)

	assert.Same(t, fx.Root, m.Descriptor())
	assert.False(t, m.Has(1))
	assert.False(t, m.Has(3))
	assert.Empty(t, m.UnknownFields())
	assert.False(t, m.HasExtensions())
	assert.True(t, Equal(m, NewMessage(fx.Root)))
}
