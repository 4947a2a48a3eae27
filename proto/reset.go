// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style.
// license that can be found in the LICENSE file.

package proto

// Reset clears every known field, every extension, and every retained
// unknown-field byte from m, leaving it equivalent to NewMessage(m.Descriptor()).
func Reset(m *Message) {
	*m = Message{desc: m.desc}
}
