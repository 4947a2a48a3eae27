// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pragma declares types for compiler-enforced API conventions that
// cannot otherwise be captured by Go's type system.
package pragma

// NoUnkeyedLiterals can be embedded in a struct to prevent unkeyed literal
// construction, so that future fields can be added to the struct without
// breaking callers (since every real construction must be a keyed literal).
type NoUnkeyedLiterals struct{}

// DoNotImplement can be embedded in an interface to prevent trivial
// implementations outside this module, preserving the ability to add
// methods to the interface later.
type DoNotImplement interface{ ProtoInternal(DoNotImplement) }
