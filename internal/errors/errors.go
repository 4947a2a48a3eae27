// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors is the shared error plumbing for the wire codec and
// descriptor packages: a "proto: "-prefixed error constructor, and the
// accumulator that lets Marshal/Unmarshal keep going past the two
// conditions this codec treats as non-fatal (MissingRequired, InvalidUtf8)
// while still reporting every one of them once the call finishes.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// NonFatalErrors is an accumulated run of non-fatal errors, each one either
// a *RequiredNotSetError or an *InvalidUTF8Error. Never empty.
type NonFatalErrors []error

// Unwrap exposes the individual errors so errors.Is/errors.As can reach a
// specific *RequiredNotSetError or *InvalidUTF8Error inside the run instead
// of only ever seeing the run's own combined Error() string.
func (es NonFatalErrors) Unwrap() []error { return es }

func (es NonFatalErrors) Error() string {
	ms := map[string]struct{}{}
	for _, e := range es {
		ms[e.Error()] = struct{}{}
	}
	var ss []string
	for s := range ms {
		ss = append(ss, s)
	}
	sort.Strings(ss)
	return "proto: " + strings.Join(ss, "; ")
}

// NonFatal collects the MissingRequired/InvalidUtf8 conditions the codec
// encounters along the way, so a caller can report every one of them at the
// end of a Marshal/Unmarshal call instead of aborting at the first.
//
// Typical usage pattern:
//	var nerr errors.NonFatal
//	...
//	if err := MyFunction(); !nerr.Merge(err) {
//		return nil, err // immediately return if err is fatal
//	}
//	...
//	return out, nerr.E
type NonFatal struct{ E error }

// Merge folds err into nf and reports whether that succeeded: true for nil,
// for a NonFatalErrors run, or for any error whose RequiredNotSet() or
// InvalidUTF8() marker method reports true; false (fatal, not merged) for
// anything else. A caller's own error types can opt into being merged by
// implementing one of those two marker methods.
func (nf *NonFatal) Merge(err error) (ok bool) {
	if err == nil {
		return true // not an error
	}
	if es, ok := err.(NonFatalErrors); ok {
		nf.append(es...)
		return true // merged a list of non-fatal errors
	}
	if e, ok := err.(interface{ RequiredNotSet() bool }); ok && e.RequiredNotSet() {
		nf.append(err)
		return true // a missing-required-field condition
	}
	if e, ok := err.(interface{ InvalidUTF8() bool }); ok && e.InvalidUTF8() {
		nf.append(err)
		return true // a malformed-UTF-8 condition
	}
	return false // fatal error
}

// AppendRequiredNotSet records that the required field named field was
// absent at the end of a Marshal or Unmarshal call.
func (nf *NonFatal) AppendRequiredNotSet(field string) {
	nf.append(&RequiredNotSetError{Field: field})
}

// AppendInvalidUTF8 records that the string field named field held bytes
// that are not valid UTF-8.
func (nf *NonFatal) AppendInvalidUTF8(field string) {
	nf.append(&InvalidUTF8Error{Field: field})
}

func (nf *NonFatal) append(errs ...error) {
	es, _ := nf.E.(NonFatalErrors)
	es = append(es, errs...)
	nf.E = es
}

// RequiredNotSetError reports a required field that was absent: a declared
// required Field with no value at the end of a Marshal or Unmarshal call,
// including (on Unmarshal, via checkSubRequired) one absent in a nested
// submessage or group.
type RequiredNotSetError struct {
	// Field is the field's full dotted name, or "" when the omission was
	// detected structurally rather than against one named field.
	Field string
}

func (e *RequiredNotSetError) Error() string {
	if e.Field == "" {
		return "required field not set"
	}
	return "required field " + e.Field + " not set"
}

// RequiredNotSet reports true unconditionally: the existence of a
// *RequiredNotSetError value always signals a non-fatal condition.
func (*RequiredNotSetError) RequiredNotSet() bool { return true }

// InvalidUTF8Error reports a StringKind field whose decoded bytes are not
// valid UTF-8, a proto2 violation that Unmarshal treats as recoverable
// rather than aborting the parse.
type InvalidUTF8Error struct {
	Field string
}

func (e *InvalidUTF8Error) Error() string {
	if e.Field == "" {
		return "invalid UTF-8 detected"
	}
	return "field " + e.Field + " contains invalid UTF-8"
}

// InvalidUTF8 reports true unconditionally: the existence of an
// *InvalidUTF8Error value always signals a non-fatal condition.
func (*InvalidUTF8Error) InvalidUTF8() bool { return true }

// New formats a string according to the format specifier and arguments and
// returns an error that has a "proto" prefix.
func New(f string, x ...interface{}) error {
	for i := 0; i < len(x); i++ {
		if e, ok := x[i].(*prefixError); ok {
			x[i] = e.s // avoid "proto: " prefix when chaining
		}
	}
	return &prefixError{s: fmt.Sprintf(f, x...)}
}

type prefixError struct{ s string }

func (e *prefixError) Error() string { return "proto: " + e.s }
