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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blinklabs-io/cborcheck/cbor"
)

// tagPathElem unwraps a tag when walking a read path
const tagPathElem = "@"

// readPath walks root along path and reads the object it ends on. Path elements
// are separated by "/" and select an array index or map key depending on the
// current container, or unwrap a tag with "@". The empty path is the root.
// Primitives at the end of the path are read and their value returned.
func readPath(root cbor.Object, path string) (string, error) {
	obj := root
	path = strings.Trim(path, "/")
	if path != "" {
		for _, elem := range strings.Split(path, "/") {
			var err error
			obj, err = descend(obj, elem)
			if err != nil {
				return "", fmt.Errorf("path %q: %w", path, err)
			}
		}
	}
	switch v := obj.(type) {
	case *cbor.Int:
		return strconv.FormatInt(v.Value(), 10), nil
	case *cbor.String:
		return strconv.Quote(v.Value()), nil
	default:
		return obj.Kind().String(), nil
	}
}

func descend(obj cbor.Object, elem string) (cbor.Object, error) {
	switch v := obj.(type) {
	case *cbor.Tag:
		if elem != tagPathElem {
			return nil, fmt.Errorf("expected %q to unwrap tag %d, got %q", tagPathElem, v.Number(), elem)
		}
		return v.Get(), nil
	case *cbor.Array:
		index, err := strconv.Atoi(elem)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", cbor.ErrInvalidIndex, elem)
		}
		return v.Get(index)
	case *cbor.Map:
		key, err := strconv.ParseInt(elem, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", cbor.ErrInvalidKey, elem)
		}
		return v.Get(key)
	default:
		return nil, fmt.Errorf("cannot select %q from %s", elem, obj.Kind())
	}
}
