// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"sync"
	"testing"

	"github.com/golang/proto2/descriptor"
	"github.com/golang/proto2/wire"
	"github.com/stretchr/testify/require"
)

// testFixture bundles the descriptors exercised across this package's
// tests: a leaf message, an Inner message that nests it as a regular
// submessage, a Root that nests Inner as a submessage and a separate Group
// message as a deprecated group, a closed and an open enum, a type
// alias, an extendable host with one registered extension, and a
// MessageSet-kind host with one registered item type.
type testFixture struct {
	Leaf     *descriptor.Message
	Inner    *descriptor.Message
	Group    *descriptor.Message
	Root     *descriptor.Message
	Color    *descriptor.Enum
	OpenHue  *descriptor.Enum
	Seconds  *descriptor.TypeAlias
	ExtField *descriptor.Field
	MSet     *descriptor.Message
	Payload  *descriptor.Message
	ItemExt  *descriptor.Field
}

// The fixture registers a type alias and extensions in the process-wide
// descriptor registry, which rejects a second registration of the same name
// or number, so it is built once and shared by every test.
var (
	fixtureOnce sync.Once
	fixture     *testFixture
)

func buildFixture(t *testing.T) *testFixture {
	t.Helper()
	fixtureOnce.Do(func() { fixture = newFixture(t) })
	if fixture == nil {
		t.Fatal("test fixture could not be built")
	}
	return fixture
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()
	b := descriptor.NewBuilder("fixturetest.Schema", descriptor.Proto2, "fixturetest")

	color, err := b.DeclareEnum("Color", nil, []descriptor.EnumValueDef{
		{Name: "RED", Number: 0},
		{Name: "GREEN", Number: 1},
		{Name: "BLUE", Number: 2},
	}, nil, false)
	require.NoError(t, err)

	openHue, err := b.DeclareEnum("OpenHue", nil, []descriptor.EnumValueDef{
		{Name: "HUE_UNSET", Number: 0},
		{Name: "HUE_A", Number: 5},
	}, nil, true)
	require.NoError(t, err)

	leaf, err := b.DeclareMessage("Leaf", nil, descriptor.RegularMessage)
	require.NoError(t, err)
	require.NoError(t, b.DefineFields(leaf, []*descriptor.Field{
		descriptor.NewField("name", 1, descriptor.Required, descriptor.StringKind, nil, nil, descriptor.FieldOpts{}),
		descriptor.NewField("tags", 2, descriptor.Repeated, descriptor.StringKind, nil, nil, descriptor.FieldOpts{}),
		descriptor.NewField("data", 3, descriptor.Optional, descriptor.BytesKind, nil, nil, descriptor.FieldOpts{}),
	}, nil))

	group, err := b.DeclareMessage("Group", nil, descriptor.GroupMessage)
	require.NoError(t, err)
	require.NoError(t, b.DefineFields(group, []*descriptor.Field{
		descriptor.NewField("gval", 1, descriptor.Optional, descriptor.Int32Kind, nil, nil, descriptor.FieldOpts{}),
		descriptor.NewField("glabel", 2, descriptor.Required, descriptor.StringKind, nil, nil, descriptor.FieldOpts{}),
	}, nil))

	inner, err := b.DeclareMessage("Inner", nil, descriptor.RegularMessage)
	require.NoError(t, err)
	require.NoError(t, b.DefineFields(inner, []*descriptor.Field{
		descriptor.NewField("leaf", 1, descriptor.Optional, descriptor.MessageKind, leaf, nil, descriptor.FieldOpts{}),
		descriptor.NewField("count", 2, descriptor.Required, descriptor.Int32Kind, nil, nil, descriptor.FieldOpts{}),
	}, nil))

	seconds := &descriptor.TypeAlias{
		Name:     "fixturetest.Seconds",
		GoType:   "time.Duration",
		WireType: wire.VarintType,
		Marshal: func(b []byte, v descriptor.Value) []byte {
			return wire.AppendVarint(b, uint64(v.Int64()))
		},
		Unmarshal: func(b []byte, typ wire.Type) (descriptor.Value, int) {
			x, n := wire.ConsumeVarint(b)
			if n < 0 {
				return descriptor.Value{}, n
			}
			return descriptor.ValueOfInt64(int64(x)), n
		},
		Size: func(v descriptor.Value) int {
			return wire.SizeVarint(uint64(v.Int64()))
		},
	}
	require.NoError(t, b.DeclareTypeAlias(seconds))

	root, err := b.DeclareMessage("Root", nil, descriptor.RegularMessage)
	require.NoError(t, err)
	require.NoError(t, b.DefineFields(root, []*descriptor.Field{
		descriptor.NewField("inner", 1, descriptor.Optional, descriptor.MessageKind, inner, nil, descriptor.FieldOpts{}),
		descriptor.NewField("grp", 2, descriptor.Optional, descriptor.GroupKind, group, nil, descriptor.FieldOpts{}),
		descriptor.NewField("nums", 3, descriptor.Repeated, descriptor.Int32Kind, nil, nil, descriptor.FieldOpts{Packed: true}),
		descriptor.NewField("color", 4, descriptor.Optional, descriptor.EnumKind, nil, color, descriptor.FieldOpts{}),
		descriptor.NewField("hue", 6, descriptor.Optional, descriptor.EnumKind, nil, openHue, descriptor.FieldOpts{}),
		descriptor.NewAliasField("ttl", 7, descriptor.Optional, seconds, descriptor.FieldOpts{}),
		descriptor.NewField("colors", 8, descriptor.Repeated, descriptor.EnumKind, nil, color, descriptor.FieldOpts{Packed: true}),
	}, []descriptor.ExtensionRange{{From: 100, To: 199}}))

	extField := descriptor.NewField("ext_tag", 150, descriptor.Optional, descriptor.StringKind, nil, nil, descriptor.FieldOpts{})
	require.NoError(t, b.DeclareExtension(root, extField))

	payload, err := b.DeclareMessage("Payload", nil, descriptor.RegularMessage)
	require.NoError(t, err)
	require.NoError(t, b.DefineFields(payload, []*descriptor.Field{
		descriptor.NewField("value", 1, descriptor.Required, descriptor.StringKind, nil, nil, descriptor.FieldOpts{}),
	}, nil))

	mset, err := b.DeclareMessage("MSet", nil, descriptor.MessageSetMessage)
	require.NoError(t, err)
	require.NoError(t, b.DefineFields(mset, nil, []descriptor.ExtensionRange{{From: 1, To: wire.MaxValidNumber}}))

	itemExt := descriptor.NewField("payload_ext", 1000, descriptor.Optional, descriptor.MessageKind, payload, nil, descriptor.FieldOpts{})
	require.NoError(t, b.DeclareExtension(mset, itemExt))

	return &testFixture{
		Leaf: leaf, Inner: inner, Group: group, Root: root,
		Color: color, OpenHue: openHue, Seconds: seconds, ExtField: extField,
		MSet: mset, Payload: payload, ItemExt: itemExt,
	}
}
