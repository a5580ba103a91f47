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

type mapEntry struct {
	key   int64
	value Object
}

// Map is a CBOR map with integer keys. Entries keep their insertion order.
//
// Duplicate keys are accepted and Get returns the first matching entry. Use
// WithDuplicateKeyCheck when decoding to reject them on the wire instead.
type Map struct {
	object
	entries []mapEntry
	err     error
}

// NewMap returns an empty Map
func NewMap() *Map {
	return &Map{}
}

// Kind returns KindMap
func (m *Map) Kind() Kind {
	return KindMap
}

// Set appends an entry and returns the Map to allow chaining. Entries with an
// invalid key, a nil value or a value containing the Map are not added and are
// reported by Err and CheckForUnread instead.
func (m *Map) Set(key int64, value Object) *Map {
	var err error
	switch {
	case !isSafeInteger(key):
		err = fmt.Errorf("%w: %d", ErrInvalidKey, key)
	case isNil(value):
		err = fmt.Errorf("%w: nil value for map key %d", ErrInvalidObject, key)
	case containsObject(value, m):
		err = fmt.Errorf("%w: value for map key %d contains the map", ErrInvalidObject, key)
	default:
		m.entries = append(m.entries, mapEntry{key: key, value: value})
		return m
	}
	if m.err == nil {
		m.err = err
	}
	return m
}

// Get returns the value of the first entry with the specified key. Containers
// are marked as read on retrieval, primitives are not.
func (m *Map) Get(key int64) (Object, error) {
	if !isSafeInteger(key) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKey, key)
	}
	for _, entry := range m.entries {
		if entry.key == key {
			return markAsRead(entry.value), nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrKeyNotFound, key)
}

// Len returns the number of entries, duplicates included
func (m *Map) Len() int {
	return len(m.entries)
}

// Keys returns the entry keys in insertion order without reading any value
func (m *Map) Keys() []int64 {
	ret := make([]int64, 0, len(m.entries))
	for _, entry := range m.entries {
		ret = append(ret, entry.key)
	}
	return ret
}

// Err returns the first error encountered while building the Map
func (m *Map) Err() error {
	return m.err
}

// CheckForUnread calls CheckForUnread with the Map as root
func (m *Map) CheckForUnread() error {
	return CheckForUnread(m)
}
