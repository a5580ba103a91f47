// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cbor provides a read-tracked object model for decoded CBOR data.
//
// Decoders commonly deserialize a value from the wire and then never look at it,
// because of a typo'd map key, a dropped array element or an ignored tag. This
// package catches that class of bug: every node of an object tree records
// whether application code has read it, and CheckForUnread reports the first
// node that was never read along with where it sits in its parent.
//
// # Object Types
//
//   - Int: safe integer (|v| <= 2^53-1), read via Value()
//   - String: text string, read via Value()
//   - Array: ordered elements, appended with Add() and retrieved with Get(index)
//   - Map: integer-keyed entries in insertion order, appended with Set() and retrieved with Get(key)
//   - Tag: tag number wrapping one object, retrieved with Get()
//
// # Read Rules
//
// Primitives (Int, String) are read only when their own Value accessor is
// called. Containers (Array, Map, Tag) are read as soon as their parent hands
// them out. The root passed to CheckForUnread counts as handed out.
//
//	root := cbor.NewMap().
//	    Set(2, cbor.NewArray().Add(cbor.MustInt(700))).
//	    Set(1, cbor.NewString("Hi!"))
//	arr, _ := root.Get(2)
//	first, _ := arr.(*cbor.Array).Get(0)
//	_ = first.(*cbor.Int).Value()
//	if err := root.CheckForUnread(); err != nil {
//	    // Map key 1 with argument String with value=Hi! was never read
//	}
//
// # Wire Format
//
// DecodeObject builds an unread tree from CBOR bytes and every object implements
// MarshalCBOR. Both wrap github.com/fxamacker/cbor/v2. Neither encoding nor
// Dump or MarshalJSON change the read state of a tree.
package cbor
