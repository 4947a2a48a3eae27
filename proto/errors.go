// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import (
	"github.com/golang/proto2/descriptor"
	"github.com/golang/proto2/internal/errors"
	"github.com/golang/proto2/wire"
)

// WireTypeMismatchError reports a field whose wire type on the wire does not
// match what its descriptor declares, and is not the packed-encoding
// exception for a repeated scalar.
type WireTypeMismatchError struct {
	Field descriptor.Name
	Got   wire.Type
	Want  wire.Type
}

func (e *WireTypeMismatchError) Error() string {
	return errors.New("field %v has wire type mismatch: got %d, want %d", e.Field, e.Got, e.Want).Error()
}

// TruncatedSubmessageError reports a length-delimited field (a submessage or
// a packed repeated field) whose declared length exceeds the bytes actually
// remaining.
type TruncatedSubmessageError struct {
	Field descriptor.Name
}

func (e *TruncatedSubmessageError) Error() string {
	return errors.New("field %v: truncated submessage", e.Field).Error()
}

// GroupMismatchError reports a START_GROUP whose closing END_GROUP carries a
// different field number, or whose END_GROUP is missing entirely.
type GroupMismatchError struct {
	Number descriptor.Number
}

func (e *GroupMismatchError) Error() string {
	return errors.New("mismatched START_GROUP/END_GROUP for field %d", e.Number).Error()
}

// UnknownEnumValueError reports a closed enum field whose value has no
// matching EnumValue at serialize time: rather than silently writing wire
// index 0, a closed enum's out-of-range value is a hard error. An Enum
// marked IsOpen coerces to 0 instead of reaching this path.
type UnknownEnumValueError struct {
	Field descriptor.Name
	Value int32
}

func (e *UnknownEnumValueError) Error() string {
	return errors.New("field %v has unknown enum value %d", e.Field, e.Value).Error()
}

// ExtensionNotFoundError reports an attempt to set an extension field number
// outside of every extension range its host Message declares.
type ExtensionNotFoundError struct {
	Host   descriptor.FullName
	Number descriptor.Number
}

func (e *ExtensionNotFoundError) Error() string {
	return errors.New("%v has no extension range covering field %d", e.Host, e.Number).Error()
}

// sentinel is a trivial comparable error used for internal control flow
// between the decode loop and its field dispatchers; it is never returned
// to a caller of this package.
type sentinel string

func (e sentinel) Error() string { return string(e) }

// errUnknownField signals that the tag just read does not name a field this
// descriptor recognizes (or names an enum's out-of-range value, which is
// retained the same way): the caller re-derives the skip length via
// wire.ConsumeFieldValue and appends the raw bytes to the unknown-field set.
const errUnknownField sentinel = "unknown field"

// errWireTypeMismatch signals a scalar wire-type mismatch to consumeScalar's
// caller, which has the field name needed to build a *WireTypeMismatchError.
const errWireTypeMismatch sentinel = "wire type mismatch"
