// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proto

import "github.com/golang/proto2/descriptor"

// Merge merges src into dst, which must be records built against the same
// descriptor.
//
// A populated scalar field in src overwrites dst's. A populated singular
// message field is merged recursively rather than replaced. Every element
// of a repeated field in src is appended to dst's. Every set extension in
// src is merged into dst's Extension Store the same way. The unknown-field
// bytes of src are appended after dst's.
func Merge(dst, src *Message) {
	if dst.desc != src.desc {
		panic("proto: Merge called with mismatched descriptors")
	}

	for _, f := range src.desc.Fields() {
		num := f.Number()
		if !src.Has(num) {
			continue
		}
		if f.IsRepeated() {
			for _, v := range src.List(num) {
				dst.Append(num, cloneValue(f, v))
			}
			continue
		}
		mergeField(f, dst, num, src.Get(num))
	}

	if src.ext != nil {
		src.ext.Range(func(num descriptor.Number, v descriptor.Value) bool {
			f, _ := descriptor.LookupExtension(src.desc.FullName(), num)
			if f != nil && (f.Kind() == descriptor.MessageKind) {
				if cur, ok := dst.Extensions().Get(num); ok {
					if curMsg, ok := cur.Message().(*Message); ok {
						if srcMsg, ok := v.Message().(*Message); ok {
							Merge(curMsg, srcMsg)
							return true
						}
					}
				}
			}
			dst.Extensions().Set(num, cloneValue(f, v))
			return true
		})
	}

	dst.unknown = append(dst.unknown, src.unknown...)
}

func mergeField(f *descriptor.Field, dst *Message, num descriptor.Number, v descriptor.Value) {
	if f.Kind() == descriptor.MessageKind || f.Kind() == descriptor.GroupKind {
		srcMsg, ok := v.Message().(*Message)
		if !ok {
			return
		}
		if dst.Has(num) {
			if dstMsg, ok := dst.Get(num).Message().(*Message); ok {
				Merge(dstMsg, srcMsg)
				return
			}
		}
		dst.Set(num, descriptor.ValueOfMessage(Clone(srcMsg)))
		return
	}
	dst.Set(num, cloneValue(f, v))
}
