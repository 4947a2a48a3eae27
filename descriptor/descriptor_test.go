// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderTwoPhaseCyclicReference(t *testing.T) {
	// A references B and B references A; neither Message can be fully
	// defined until both shells exist.
	b := NewBuilder("test.Cyclic", Proto2, "test")

	a, err := b.DeclareMessage("A", nil, RegularMessage)
	require.NoError(t, err)
	bm, err := b.DeclareMessage("B", nil, RegularMessage)
	require.NoError(t, err)

	require.NoError(t, b.DefineFields(a, []*Field{
		NewField("b", 1, Optional, MessageKind, bm, nil, FieldOpts{}),
	}, nil))
	require.NoError(t, b.DefineFields(bm, []*Field{
		NewField("a", 1, Optional, MessageKind, a, nil, FieldOpts{}),
	}, nil))

	assert.Same(t, bm, a.ByNumber(1).MessageType())
	assert.Same(t, a, bm.ByNumber(1).MessageType())
	assert.Equal(t, FullName("test.Cyclic.A"), a.FullName())
}

func TestMessageSetFieldsRejectsOutOfRangeNumber(t *testing.T) {
	b := NewBuilder("test.Range", Proto2, "test")
	m, err := b.DeclareMessage("M", nil, RegularMessage)
	require.NoError(t, err)

	err = b.DefineFields(m, []*Field{
		NewField("x", 0, Optional, Int32Kind, nil, nil, FieldOpts{}),
	}, nil)
	var rangeErr *FieldNumberOutOfRangeError
	assert.ErrorAs(t, err, &rangeErr)

	err = b.DefineFields(m, []*Field{
		NewField("x", 19500, Optional, Int32Kind, nil, nil, FieldOpts{}),
	}, nil)
	assert.ErrorAs(t, err, &rangeErr)
}

func TestMessageSetFieldsRejectsDuplicateNumber(t *testing.T) {
	b := NewBuilder("test.Dup", Proto2, "test")
	m, err := b.DeclareMessage("M", nil, RegularMessage)
	require.NoError(t, err)

	err = b.DefineFields(m, []*Field{
		NewField("x", 1, Optional, Int32Kind, nil, nil, FieldOpts{}),
		NewField("y", 1, Optional, Int32Kind, nil, nil, FieldOpts{}),
	}, nil)
	var dupErr *DuplicateFieldNumberError
	assert.ErrorAs(t, err, &dupErr)
}

func TestMessageByNumberDenseVectorAndFallback(t *testing.T) {
	b := NewBuilder("test.Vec", Proto2, "test")
	m, err := b.DeclareMessage("M", nil, RegularMessage)
	require.NoError(t, err)
	require.NoError(t, b.DefineFields(m, []*Field{
		NewField("a", 1, Optional, Int32Kind, nil, nil, FieldOpts{}),
		NewField("b", 3, Optional, Int32Kind, nil, nil, FieldOpts{}),
	}, nil))

	assert.Equal(t, Name("a"), m.ByNumber(1).Name())
	assert.Nil(t, m.ByNumber(2))
	assert.Equal(t, Name("b"), m.ByNumber(3).Name())
	assert.Nil(t, m.ByNumber(999))

	// Sparse: field numbers far enough apart that a dense vector would be
	// wasteful fall back to the map exclusively.
	b2 := NewBuilder("test.Sparse", Proto2, "test")
	m2, _ := b2.DeclareMessage("S", nil, RegularMessage)
	require.NoError(t, b2.DefineFields(m2, []*Field{
		NewField("a", 1, Optional, Int32Kind, nil, nil, FieldOpts{}),
		NewField("b", 100000, Optional, Int32Kind, nil, nil, FieldOpts{}),
	}, nil))
	assert.Nil(t, m2.vector)
	assert.Equal(t, Name("b"), m2.ByNumber(100000).Name())
}

func TestExtensionRangeContainsAndIsExtendable(t *testing.T) {
	b := NewBuilder("test.Ext", Proto2, "test")
	m, err := b.DeclareMessage("M", nil, ExtensionBlockMessage)
	require.NoError(t, err)
	require.NoError(t, b.DefineFields(m, nil, []ExtensionRange{{From: 100, To: 200}}))

	assert.True(t, m.IsExtendable(150))
	assert.False(t, m.IsExtendable(99))
	assert.False(t, m.IsExtendable(201))
}

func TestDeclareExtensionRegistersAndValidatesRange(t *testing.T) {
	b := NewBuilder("test.ExtDecl", Proto2, "test")
	host, err := b.DeclareMessage("Host", nil, ExtensionBlockMessage)
	require.NoError(t, err)
	require.NoError(t, b.DefineFields(host, nil, []ExtensionRange{{From: 100, To: 200}}))

	f := NewField("ext_field", 150, Optional, StringKind, nil, nil, FieldOpts{})
	require.NoError(t, b.DeclareExtension(host, f))

	got, ok := LookupExtension(host.FullName(), 150)
	require.True(t, ok)
	assert.Same(t, f, got)

	badField := NewField("bad", 5, Optional, StringKind, nil, nil, FieldOpts{})
	err = b.DeclareExtension(host, badField)
	var rangeErr *FieldNumberOutOfRangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestEnumByNameByNumberAndAlias(t *testing.T) {
	b := NewBuilder("test.Enum", Proto2, "test")
	e, err := b.DeclareEnum("Color", nil, []EnumValueDef{
		{Name: "RED", Number: 0},
		{Name: "GREEN", Number: 1},
	}, nil, false)
	require.NoError(t, err)

	v, ok := e.ByName("GREEN")
	require.True(t, ok)
	assert.Equal(t, int32(1), v.Number())

	_, ok = e.ByNumber(99)
	assert.False(t, ok)

	aliasE, err := b.DeclareEnum("ColorAlias", nil, []EnumValueDef{
		{Name: "R", Number: 0},
		{Name: "ALSO_R", Number: 0},
	}, e, true)
	require.NoError(t, err)
	assert.Same(t, e, aliasE.AliasFor())
	assert.True(t, aliasE.IsOpen())
}

func TestEnumDuplicateNameRejected(t *testing.T) {
	b := NewBuilder("test.EnumDup", Proto2, "test")
	_, err := b.DeclareEnum("Color", nil, []EnumValueDef{
		{Name: "RED", Number: 0},
		{Name: "RED", Number: 1},
	}, nil, false)
	var dupErr *DuplicateNameError
	assert.ErrorAs(t, err, &dupErr)
}

func TestServiceAddMethod(t *testing.T) {
	b := NewBuilder("test.Svc", Proto2, "test")
	req, _ := b.DeclareMessage("Req", nil, RegularMessage)
	resp, _ := b.DeclareMessage("Resp", nil, RegularMessage)

	svc, err := b.DeclareService("Greeter")
	require.NoError(t, err)
	m, err := svc.AddMethod("Greet", 0, req, resp, false, false)
	require.NoError(t, err)
	assert.Same(t, req, m.Input())
	assert.Same(t, resp, m.Output())

	_, err = svc.AddMethod("Greet", 1, req, resp, false, false)
	var dupErr *DuplicateNameError
	assert.ErrorAs(t, err, &dupErr)
}

func TestSchemaRegistryRoundTrip(t *testing.T) {
	name := FullName("test.registry.Unique")
	b := NewBuilder(name, Proto2, "registrytest")
	require.NoError(t, RegisterSchema(b.Schema()))
	defer func() {
		registryMu.Lock()
		delete(schemas, name)
		registryMu.Unlock()
	}()

	got, ok := LookupSchema(name)
	require.True(t, ok)
	assert.Same(t, b.Schema(), got)

	assert.Error(t, RegisterSchema(b.Schema()))
}

func TestValueEqualAndKind(t *testing.T) {
	assert.True(t, ValueOfInt32(5).Equal(ValueOfInt32(5)))
	assert.False(t, ValueOfInt32(5).Equal(ValueOfInt32(6)))
	assert.False(t, ValueOfInt32(5).Equal(ValueOfInt64(5)))
	assert.True(t, ValueOfString("a").Equal(ValueOfString("a")))
	assert.True(t, Value{}.Equal(Value{}))
	assert.False(t, Value{}.IsValid())
	assert.True(t, ValueOfBool(true).IsValid())

	f := ValueOfFloat64(3.25)
	assert.Equal(t, 3.25, f.Float64())
}

func TestFieldIsPacked(t *testing.T) {
	scalarRepeated := NewField("r", 1, Repeated, Int32Kind, nil, nil, FieldOpts{Packed: true})
	assert.True(t, scalarRepeated.IsPacked())

	notRepeated := NewField("s", 2, Optional, Int32Kind, nil, nil, FieldOpts{Packed: true})
	assert.False(t, notRepeated.IsPacked())

	messageRepeated := NewField("m", 3, Repeated, MessageKind, &Message{}, nil, FieldOpts{Packed: true})
	assert.False(t, messageRepeated.IsPacked())
}

func TestSymbolAliasRoundTrip(t *testing.T) {
	v := ValueOfString("my.pkg.Symbol")
	b := SymbolAlias.Marshal(nil, v)
	got, n := SymbolAlias.Unmarshal(b, SymbolAlias.WireType)
	require.Greater(t, n, 0)
	assert.Equal(t, v.String(), got.String())
	assert.Equal(t, len(b), SymbolAlias.Size(v))
}
