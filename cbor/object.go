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

package cbor

// Kind identifies the variant of an Object
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindString
	KindArray
	KindMap
	KindTag
)

// String returns the variant name used in error messages
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	case KindTag:
		return "Tag"
	default:
		return "Invalid"
	}
}

// IsPrimitive returns true for Int and String, which are only read through their Value accessor
func (k Kind) IsPrimitive() bool {
	return k == KindInt || k == KindString
}

// Object is a node of a CBOR object tree. It is implemented by *Int, *String,
// *Array, *Map and *Tag only.
//
// Every node starts out unread. Primitives become read when their Value method
// is called, containers when they are retrieved from their parent. Use
// CheckForUnread on the root once the tree has been consumed to find any value
// that application code forgot about.
//
// Trees are not safe for concurrent use.
type Object interface {
	Kind() Kind
	CheckForUnread() error
	MarshalCBOR() ([]byte, error)
	MarshalJSON() ([]byte, error)
	base() *object
}

type object struct {
	readFlag bool
}

func (o *object) base() *object {
	return o
}

// markAsRead applies the retrieval rule: containers count as read once handed
// out by their parent, primitives need their own accessor called
func markAsRead(obj Object) Object {
	if !obj.Kind().IsPrimitive() {
		obj.base().readFlag = true
	}
	return obj
}
