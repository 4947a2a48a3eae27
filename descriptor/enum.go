// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descriptor

// EnumValue is one (symbolic value, wire index) pair of an Enum.
type EnumValue struct {
	name   Name
	number int32
	parent *Enum
}

func (v *EnumValue) Name() Name         { return v.name }
func (v *EnumValue) FullName() FullName { return fullName(v.parent, v.name) }
func (v *EnumValue) Parent() Descriptor {
	if v.parent == nil {
		return nil
	}
	return v.parent
}
func (v *EnumValue) Number() int32 { return v.number }

// Enum is a named, ordered list of EnumValues, optionally sharing its
// values with another Enum via AliasFor.
type Enum struct {
	name      Name
	parent    Descriptor
	values    []*EnumValue
	byName    map[Name]*EnumValue
	byNumber  map[int32]*EnumValue // first EnumValue registered for a number
	aliasFor  *Enum
	open      bool // unknown wire indices coerce to index 0 on serialize rather than erroring
}

// NewEnum constructs an Enum from an ordered list of (name, number) pairs.
// It returns a *DuplicateNameError if two values share a symbolic name.
// Repeated numbers are permitted only when aliasFor is non-nil: wire
// indices may repeat only when the Enum declares alias-for.
func NewEnum(name Name, parent Descriptor, valueDefs []EnumValueDef, aliasFor *Enum, open bool) (*Enum, error) {
	e := &Enum{
		name:     name,
		parent:   parent,
		byName:   make(map[Name]*EnumValue, len(valueDefs)),
		byNumber: make(map[int32]*EnumValue, len(valueDefs)),
		aliasFor: aliasFor,
		open:     open,
	}
	for _, d := range valueDefs {
		if _, dup := e.byName[d.Name]; dup {
			return nil, &DuplicateNameError{FullName: fullName(e, d.Name)}
		}
		ev := &EnumValue{name: d.Name, number: d.Number, parent: e}
		e.values = append(e.values, ev)
		e.byName[d.Name] = ev
		if _, ok := e.byNumber[d.Number]; !ok {
			e.byNumber[d.Number] = ev
		} else if aliasFor == nil {
			return nil, &DuplicateNameError{FullName: fullName(e, d.Name)}
		}
	}
	return e, nil
}

// EnumValueDef is the (name, number) pair a caller supplies to NewEnum.
type EnumValueDef struct {
	Name   Name
	Number int32
}

func (e *Enum) Name() Name           { return e.name }
func (e *Enum) FullName() FullName   { return fullName(e.parent, e.name) }
func (e *Enum) Parent() Descriptor   { return e.parent }
func (e *Enum) Values() []*EnumValue { return e.values }
func (e *Enum) AliasFor() *Enum      { return e.aliasFor }
func (e *Enum) IsOpen() bool         { return e.open }

// ByName looks up an EnumValue by its symbolic name.
func (e *Enum) ByName(name Name) (*EnumValue, bool) {
	v, ok := e.byName[name]
	return v, ok
}

// ByNumber looks up an EnumValue by its wire index. The second return is
// false for an index with no matching value; callers on the deserialize
// path retain the raw number as an unknown field rather than erroring.
func (e *Enum) ByNumber(n int32) (*EnumValue, bool) {
	v, ok := e.byNumber[n]
	return v, ok
}
