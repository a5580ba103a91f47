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

// Tag wraps a single object with a CBOR tag number. The tag number has no
// meaning to this package.
type Tag struct {
	object
	number uint64
	obj    Object
}

// NewTag returns a Tag wrapping obj with the specified tag number
func NewTag(number uint64, obj Object) (*Tag, error) {
	if number > MaxSafeInteger {
		return nil, fmt.Errorf("%w: tag number %d", ErrInvalidInteger, number)
	}
	if isNil(obj) {
		return nil, fmt.Errorf("%w: nil tagged object", ErrInvalidObject)
	}
	return &Tag{number: number, obj: obj}, nil
}

// MustTag is like NewTag but panics on error
func MustTag(number uint64, obj Object) *Tag {
	t, err := NewTag(number, obj)
	if err != nil {
		panic(err)
	}
	return t
}

// Kind returns KindTag
func (t *Tag) Kind() Kind {
	return KindTag
}

// Number returns the tag number. It does not affect the read state.
func (t *Tag) Number() uint64 {
	return t.number
}

// Get returns the tagged object, applying the same read rule as Array.Get
func (t *Tag) Get() Object {
	return markAsRead(t.obj)
}

// CheckForUnread calls CheckForUnread with the Tag as root
func (t *Tag) CheckForUnread() error {
	return CheckForUnread(t)
}
