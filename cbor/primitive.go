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

// Int is a CBOR integer restricted to the safe integer range
type Int struct {
	object
	value int64
}

// NewInt returns an Int holding the specified value
func NewInt(value int64) (*Int, error) {
	if !isSafeInteger(value) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidInteger, value)
	}
	return &Int{value: value}, nil
}

// MustInt is like NewInt but panics if the value is out of range
func MustInt(value int64) *Int {
	i, err := NewInt(value)
	if err != nil {
		panic(err)
	}
	return i
}

// Kind returns KindInt
func (i *Int) Kind() Kind {
	return KindInt
}

// Value marks the Int as read and returns its value
func (i *Int) Value() int64 {
	i.readFlag = true
	return i.value
}

// CheckForUnread calls CheckForUnread with the Int as root, so it fails
// unless Value has been called
func (i *Int) CheckForUnread() error {
	return CheckForUnread(i)
}

// String is a CBOR text string
type String struct {
	object
	value string
}

// NewString returns a String holding the specified value
func NewString(value string) *String {
	return &String{value: value}
}

// Kind returns KindString
func (s *String) Kind() Kind {
	return KindString
}

// Value marks the String as read and returns its value
func (s *String) Value() string {
	s.readFlag = true
	return s.value
}

// CheckForUnread calls CheckForUnread with the String as root, so it fails
// unless Value has been called
func (s *String) CheckForUnread() error {
	return CheckForUnread(s)
}
