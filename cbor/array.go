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

import (
	"fmt"
)

// Array is an ordered CBOR array. Elements can only be appended.
type Array struct {
	object
	elements []Object
	err      error
}

// NewArray returns an empty Array
func NewArray() *Array {
	return &Array{}
}

// Kind returns KindArray
func (a *Array) Kind() Kind {
	return KindArray
}

// Add appends an element and returns the Array to allow chaining. A nil
// element, or one that contains the Array, is not added and is reported by Err
// and CheckForUnread instead.
func (a *Array) Add(obj Object) *Array {
	var err error
	switch {
	case isNil(obj):
		err = fmt.Errorf(
			"%w: nil array element at index %d",
			ErrInvalidObject,
			len(a.elements),
		)
	case containsObject(obj, a):
		err = fmt.Errorf(
			"%w: array element at index %d contains the array",
			ErrInvalidObject,
			len(a.elements),
		)
	default:
		a.elements = append(a.elements, obj)
		return a
	}
	if a.err == nil {
		a.err = err
	}
	return a
}

// Get returns the element at the specified index. Containers are marked as read
// on retrieval, primitives are not.
func (a *Array) Get(index int) (Object, error) {
	if !isSafeInteger(int64(index)) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, index)
	}
	if index < 0 || index >= len(a.elements) {
		return nil, fmt.Errorf(
			"%w: index %d with length %d",
			ErrIndexOutOfRange,
			index,
			len(a.elements),
		)
	}
	return markAsRead(a.elements[index]), nil
}

// Len returns the number of elements without reading any of them
func (a *Array) Len() int {
	return len(a.elements)
}

// Err returns the first error encountered while building the Array
func (a *Array) Err() error {
	return a.err
}

// CheckForUnread calls CheckForUnread with the Array as root
func (a *Array) CheckForUnread() error {
	return CheckForUnread(a)
}
