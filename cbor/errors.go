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
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrTypeMismatch is returned when a constructor receives an argument of the wrong type
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidInteger is returned when a value, key, index or tag number is not a safe integer
	ErrInvalidInteger = errors.New("'integer' expected")

	// ErrInvalidKey is returned for map keys that are not safe integers. It wraps ErrInvalidInteger
	ErrInvalidKey = fmt.Errorf("%w: invalid map key", ErrInvalidInteger)

	// ErrInvalidIndex is returned for array indexes that are not safe integers. It wraps ErrInvalidInteger
	ErrInvalidIndex = fmt.Errorf("%w: invalid array index", ErrInvalidInteger)

	// ErrIndexOutOfRange is returned by Array.Get for an index outside the array
	ErrIndexOutOfRange = errors.New("array index out of range")

	// ErrKeyNotFound is returned by Map.Get when no entry has the requested key
	ErrKeyNotFound = errors.New("key not found")

	// ErrArityMismatch is returned by New when the argument count doesn't match the kind
	ErrArityMismatch = errors.New("wrong number of arguments")

	// ErrUnreadValue is matched by every *UnreadError returned from CheckForUnread
	ErrUnreadValue = errors.New("value was never read")

	// ErrInvalidObject is returned for nil objects and containers that would contain themselves
	ErrInvalidObject = errors.New("invalid CBOR object")

	// ErrUnsupportedType is returned when decoding a CBOR item with no object representation
	ErrUnsupportedType = errors.New("unsupported CBOR type")

	// ErrDuplicateKey is returned when decoding a map with a repeated key and the duplicate key check is enabled
	ErrDuplicateKey = errors.New("duplicate map key")

	// ErrMaxDepth is returned when decoding data nested deeper than the configured maximum
	ErrMaxDepth = errors.New("maximum nesting depth exceeded")
)

// Holder identifies the position of a node inside its parent
type Holder struct {
	// Kind of the parent, or KindInvalid for the root
	Kind Kind
	// Map key when Kind is KindMap
	Key int64
	// Tag number when Kind is KindTag
	TagNumber uint64
}

// UnreadError is returned by CheckForUnread for the first node that was never read
type UnreadError struct {
	Kind   Kind
	Value  any
	Holder Holder
}

func (e *UnreadError) Error() string {
	problem := e.Kind.String()
	if e.Kind.IsPrimitive() {
		problem += " with value=" + formatValue(e.Value)
	}
	problem += " was never read"
	switch e.Holder.Kind {
	case KindArray:
		return "Array element of type " + problem
	case KindTag:
		return "Tagged object " + strconv.FormatUint(e.Holder.TagNumber, 10) + " of type " + problem
	case KindMap:
		return "Map key " + strconv.FormatInt(e.Holder.Key, 10) + " with argument " + problem
	default:
		return problem
	}
}

func (e *UnreadError) Is(target error) bool {
	return target == ErrUnreadValue
}

func formatValue(v any) string {
	switch v := v.(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
