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

// CheckForUnread verifies that every node of the tree rooted at root has been
// read. The root itself is treated as retrieved, so a container root passes
// without further access while a primitive root needs its Value called.
//
// Any error recorded while building a container of the tree is returned first.
// Otherwise the tree is walked depth-first, children before their parent, and
// an *UnreadError is returned for the first node found unread.
func CheckForUnread(root Object) error {
	if isNil(root) {
		return fmt.Errorf("%w: nil root", ErrInvalidObject)
	}
	if err := buildErr(root); err != nil {
		return err
	}
	markAsRead(root)
	return traverse(root, Holder{})
}

func traverse(obj Object, holder Holder) error {
	switch v := obj.(type) {
	case *Map:
		for _, entry := range v.entries {
			if err := traverse(entry.value, Holder{Kind: KindMap, Key: entry.key}); err != nil {
				return err
			}
		}
	case *Array:
		for _, element := range v.elements {
			if err := traverse(element, Holder{Kind: KindArray}); err != nil {
				return err
			}
		}
	case *Tag:
		if err := traverse(v.obj, Holder{Kind: KindTag, TagNumber: v.number}); err != nil {
			return err
		}
	}
	if obj.base().readFlag {
		return nil
	}
	ret := &UnreadError{
		Kind:   obj.Kind(),
		Holder: holder,
	}
	switch v := obj.(type) {
	case *Int:
		ret.Value = v.value
	case *String:
		ret.Value = v.value
	}
	return ret
}

func buildErr(obj Object) error {
	switch v := obj.(type) {
	case *Map:
		if v.err != nil {
			return v.err
		}
		for _, entry := range v.entries {
			if err := buildErr(entry.value); err != nil {
				return err
			}
		}
	case *Array:
		if v.err != nil {
			return v.err
		}
		for _, element := range v.elements {
			if err := buildErr(element); err != nil {
				return err
			}
		}
	case *Tag:
		return buildErr(v.obj)
	}
	return nil
}

// containsObject reports whether target is reachable from root, root included.
// Shared subtrees are only walked once.
func containsObject(root Object, target Object) bool {
	visited := make(map[Object]struct{})
	var walk func(Object) bool
	walk = func(obj Object) bool {
		if obj == target {
			return true
		}
		if obj.Kind().IsPrimitive() {
			return false
		}
		if _, ok := visited[obj]; ok {
			return false
		}
		visited[obj] = struct{}{}
		switch v := obj.(type) {
		case *Map:
			for _, entry := range v.entries {
				if walk(entry.value) {
					return true
				}
			}
		case *Array:
			for _, element := range v.elements {
				if walk(element) {
					return true
				}
			}
		case *Tag:
			return walk(v.obj)
		}
		return false
	}
	return walk(root)
}

// isNil also catches typed nil pointers stored in an Object
func isNil(obj Object) bool {
	switch v := obj.(type) {
	case nil:
		return true
	case *Int:
		return v == nil
	case *String:
		return v == nil
	case *Array:
		return v == nil
	case *Map:
		return v == nil
	case *Tag:
		return v == nil
	}
	return false
}
