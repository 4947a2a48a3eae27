// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

// Buffer is a growable output buffer with a bookmark/backpatch mechanism for
// writing length prefixes before the length of what they prefix is known
//. Unlike a plain []byte, Buffer makes the "reserve a
// speculative length, write the payload, then fix up the prefix" sequence
// from §4.G (submessages, packed fields) a named operation
// instead of ad-hoc slice surgery at every call site.
//
// The zero Buffer is ready to use.
type Buffer struct {
	B []byte
}

// Reset truncates the buffer to length zero without releasing its capacity.
func (buf *Buffer) Reset() {
	buf.B = buf.B[:0]
}

// Bytes returns the buffer's contents.
func (buf *Buffer) Bytes() []byte {
	return buf.B
}

// EnsureSpace guarantees n contiguous writable bytes are available past the
// current length, growing the backing array if necessary. It never changes
// len(buf.B).
func (buf *Buffer) EnsureSpace(n int) {
	if cap(buf.B)-len(buf.B) >= n {
		return
	}
	grown := make([]byte, len(buf.B), 2*cap(buf.B)+n)
	copy(grown, buf.B)
	buf.B = grown
}

// Bookmark is a saved cursor position returned by Reserve, to be passed to
// Patch once the length being reserved for is known.
type Bookmark int

// speculativeLength is the number of bytes Reserve sets aside up front. One
// byte covers any submessage up to 127 bytes without a shift; §4.A calls out
// reserving "4 bytes... sufficient for any realistic submessage length" as a
// possible shortcut, but a single byte plus the shift-on-overflow fallback
// below is cheaper for the overwhelmingly common small-message case and the
// fallback path is already required for correctness regardless of the
// reservation size.
const speculativeLength = 1

// Reserve appends placeholder bytes for a length prefix and returns a
// Bookmark identifying where the prefix (and then the payload) begins.
// Pass the Bookmark to Patch after appending the payload.
func (buf *Buffer) Reserve() Bookmark {
	pos := len(buf.B)
	buf.B = append(buf.B, "\x00\x00\x00\x00"[:speculativeLength]...)
	return Bookmark(pos)
}

// Patch fixes up the length prefix reserved at mark to describe the bytes
// appended to the buffer since Reserve was called. If the true length needs
// more bytes than were speculatively reserved, the payload is shifted right
// to make room.
func (buf *Buffer) Patch(mark Bookmark) {
	pos := int(mark)
	mlen := len(buf.B) - pos - speculativeLength
	msiz := SizeVarint(uint64(mlen))
	if msiz != speculativeLength {
		for i := 0; i < msiz-speculativeLength; i++ {
			buf.B = append(buf.B, 0)
		}
		copy(buf.B[pos+msiz:], buf.B[pos+speculativeLength:])
		buf.B = buf.B[:pos+msiz+mlen]
	}
	AppendVarint(buf.B[:pos], uint64(mlen))
}

// Reader provides a parallel, allocation-free read cursor over a borrowed
// byte slice, for callers that want explicit cursor tracking instead of
// reslicing on every Consume call (the proto package's decoder reslices
// directly, which is equally valid; Reader exists for callers of the wire
// package on its own, e.g. hand-written protocol shims).
type Reader struct {
	B []byte
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int { return len(r.B) }

// Tag reads the next tag, advancing the cursor.
func (r *Reader) Tag() (Number, Type, error) {
	num, typ, n := ConsumeTag(r.B)
	if n < 0 {
		return 0, 0, AsParseError(n)
	}
	r.B = r.B[n:]
	return num, typ, nil
}

// Skip skips the payload of a field with the given number and wire type,
// advancing the cursor by exactly the payload length.
func (r *Reader) Skip(num Number, typ Type) error {
	n := ConsumeFieldValue(num, typ, r.B)
	if n < 0 {
		return AsParseError(n)
	}
	r.B = r.B[n:]
	return nil
}
