// Copyright 2010 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Support for the legacy message_set_wire_format message option, the
// group-delimited encoding predating extensions-as-fields:
//
//	message MessageSet {
//	  repeated group Item = 1 {
//	    required int32 type_id = 2;
//	    required bytes message = 3;
//	  }
//	}
//
// Here Item's type_id is simply the extension field number on the host
// descriptor.Message, and message is that extension's own wire-format
// encoding, so this is implemented directly against *Message's Extension
// Store rather than a separate generated-code messageSet type.

package proto

import (
	"github.com/golang/proto2/descriptor"
	"github.com/golang/proto2/wire"
)

const (
	messageSetItemNumber    descriptor.Number = 1
	messageSetTypeIDNumber  descriptor.Number = 2
	messageSetMessageNumber descriptor.Number = 3
)

// marshalMessageSet appends m's extensions in MessageSet wire format,
// followed by whatever unrecognized bytes m retained.
func marshalMessageSet(buf *wire.Buffer, m *Message) error {
	var err error
	if m.ext != nil {
		m.ext.Range(func(num descriptor.Number, v descriptor.Value) bool {
			sub, ok := v.Message().(*Message)
			if !ok {
				return true
			}
			payload, merr := Marshal(sub)
			if merr != nil {
				err = merr
				return false
			}
			buf.B = wire.AppendTag(buf.B, messageSetItemNumber, wire.StartGroupType)
			buf.B = wire.AppendTag(buf.B, messageSetTypeIDNumber, wire.VarintType)
			buf.B = wire.AppendVarint(buf.B, uint64(uint32(num)))
			buf.B = wire.AppendTag(buf.B, messageSetMessageNumber, wire.BytesType)
			buf.B = wire.AppendBytes(buf.B, payload)
			buf.B = wire.AppendTag(buf.B, messageSetItemNumber, wire.EndGroupType)
			return true
		})
	}
	if err != nil {
		return err
	}
	buf.B = append(buf.B, m.unknown...)
	return nil
}

// sizeMessageSet mirrors marshalMessageSet without encoding.
func sizeMessageSet(m *Message) int {
	n := 0
	if m.ext != nil {
		m.ext.Range(func(num descriptor.Number, v descriptor.Value) bool {
			sub, ok := v.Message().(*Message)
			if !ok {
				return true
			}
			payloadLen := sizeMessage(sub)
			n += 2 * wire.SizeTag(messageSetItemNumber)
			n += wire.SizeTag(messageSetTypeIDNumber) + wire.SizeVarint(uint64(uint32(num)))
			n += wire.SizeTag(messageSetMessageNumber) + wire.SizeBytes(payloadLen)
			return true
		})
	}
	n += len(m.unknown)
	return n
}

// unmarshalMessageSet parses b as a sequence of MessageSet Items into m's
// Extension Store, retaining any item whose type_id names no registered
// extension as an unknown-field group so re-marshaling is lossless.
func (o UnmarshalOptions) unmarshalMessageSet(b []byte, m *Message) error {
	for len(b) > 0 {
		start := b
		num, wtyp, n := wire.ConsumeTag(b)
		if n < 0 {
			return wire.AsParseError(n)
		}
		if wtyp != wire.StartGroupType || num != messageSetItemNumber {
			// Not an Item; retain verbatim like any other unknown field.
			valLen := wire.ConsumeFieldValue(num, wtyp, b[n:])
			if valLen < 0 {
				return wire.AsParseError(valLen)
			}
			if !o.DiscardUnknown {
				m.unknown = append(m.unknown, b[:n+valLen]...)
			}
			b = b[n+valLen:]
			continue
		}
		b = b[n:]

		var typeID int32
		var payload []byte
		haveTypeID, havePayload := false, false
		for {
			fnum, ftyp, fn := wire.ConsumeTag(b)
			if fn < 0 {
				return wire.AsParseError(fn)
			}
			if ftyp == wire.EndGroupType {
				if fnum != messageSetItemNumber {
					return &GroupMismatchError{Number: fnum}
				}
				b = b[fn:]
				break
			}
			switch fnum {
			case messageSetTypeIDNumber:
				x, vn := wire.ConsumeVarint(b[fn:])
				if vn < 0 {
					return wire.AsParseError(vn)
				}
				typeID = int32(uint32(x))
				haveTypeID = true
				b = b[fn+vn:]
			case messageSetMessageNumber:
				buf, vn := wire.ConsumeBytes(b[fn:])
				if vn < 0 {
					return &TruncatedSubmessageError{}
				}
				payload = buf
				havePayload = true
				b = b[fn+vn:]
			default:
				vn := wire.ConsumeFieldValue(fnum, ftyp, b[fn:])
				if vn < 0 {
					return wire.AsParseError(vn)
				}
				b = b[fn+vn:]
			}
		}

		if !haveTypeID || !havePayload {
			continue
		}
		num = descriptor.Number(typeID)
		f, ok := descriptor.LookupExtension(m.desc.FullName(), num)
		if !ok {
			if !o.DiscardUnknown {
				m.unknown = append(m.unknown, start[:len(start)-len(b)]...)
			}
			continue
		}
		sub := NewMessage(f.MessageType())
		if err := o.UnmarshalInto(payload, sub); err != nil {
			return err
		}
		if err := m.Extensions().Set(num, descriptor.ValueOfMessage(sub)); err != nil {
			return err
		}
	}
	return nil
}
