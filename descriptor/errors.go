// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package descriptor

import "github.com/golang/proto2/internal/errors"

// FieldNumberOutOfRangeError reports a Field whose number is outside
// [1, 2^29-1] or falls in the reserved [19000,19999] band.
type FieldNumberOutOfRangeError struct {
	Message Name
	Field   Name
	Number  Number
}

func (e *FieldNumberOutOfRangeError) Error() string {
	return errors.New("field %v.%v has out-of-range number %d", e.Message, e.Field, e.Number).Error()
}

// DuplicateFieldNumberError reports two Fields within the same Message (or
// its extension ranges) claiming the same wire number.
type DuplicateFieldNumberError struct {
	Message Name
	Number  Number
}

func (e *DuplicateFieldNumberError) Error() string {
	return errors.New("message %v has duplicate field number %d", e.Message, e.Number).Error()
}

// DuplicateNameError reports two sibling declarations with the same name
// within a Schema or Message, violating "every qualified name within a
// Schema resolves to at most one descriptor".
type DuplicateNameError struct {
	FullName FullName
}

func (e *DuplicateNameError) Error() string {
	return errors.New("duplicate declaration of %v", e.FullName).Error()
}
