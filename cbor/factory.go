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
	"math"
)

var constructorArity = map[Kind]int{
	KindArray:  0,
	KindMap:    0,
	KindTag:    2,
	KindInt:    1,
	KindString: 1,
}

// New creates an object of the specified kind from loosely typed arguments, as
// found when building trees from configuration or other dynamic input. The
// argument count is checked first and the arguments are then validated the
// same way as the typed constructors:
//
//	KindArray, KindMap: no arguments
//	KindInt:            an integer (any Go integer type, or an integral float)
//	KindString:         a string
//	KindTag:            a non-negative integer tag number and an Object
func New(kind Kind, args ...any) (Object, error) {
	arity, ok := constructorArity[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, kind)
	}
	if len(args) != arity {
		return nil, fmt.Errorf(
			"%w: cbor.%s expects %d argument(s), got %d",
			ErrArityMismatch,
			kind,
			arity,
			len(args),
		)
	}
	switch kind {
	case KindArray:
		return NewArray(), nil
	case KindMap:
		return NewMap(), nil
	case KindString:
		s, ok := args[0].(string)
		if !ok {
			return nil, fmt.Errorf("%w: 'string' expected, got %T", ErrTypeMismatch, args[0])
		}
		return NewString(s), nil
	case KindInt:
		v, err := toSafeInteger(args[0])
		if err != nil {
			return nil, err
		}
		i, err := NewInt(v)
		if err != nil {
			return nil, err
		}
		return i, nil
	case KindTag:
		number, err := toSafeInteger(args[0])
		if err != nil {
			return nil, err
		}
		if number < 0 {
			return nil, fmt.Errorf("%w: negative tag number %d", ErrInvalidInteger, number)
		}
		obj, ok := args[1].(Object)
		if !ok {
			return nil, fmt.Errorf("%w: 'object' expected, got %T", ErrTypeMismatch, args[1])
		}
		t, err := NewTag(uint64(number), obj)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, kind)
}

func toSafeInteger(arg any) (int64, error) {
	var ret int64
	switch v := arg.(type) {
	case int:
		ret = int64(v)
	case int8:
		ret = int64(v)
	case int16:
		ret = int64(v)
	case int32:
		ret = int64(v)
	case int64:
		ret = v
	case uint:
		if uint64(v) > MaxSafeInteger {
			return 0, fmt.Errorf("%w: %d", ErrInvalidInteger, v)
		}
		ret = int64(v)
	case uint8:
		ret = int64(v)
	case uint16:
		ret = int64(v)
	case uint32:
		ret = int64(v)
	case uint64:
		if v > MaxSafeInteger {
			return 0, fmt.Errorf("%w: %d", ErrInvalidInteger, v)
		}
		ret = int64(v)
	case float32:
		return floatToSafeInteger(float64(v))
	case float64:
		return floatToSafeInteger(v)
	default:
		return 0, fmt.Errorf("%w: got %T", ErrInvalidInteger, arg)
	}
	if !isSafeInteger(ret) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidInteger, ret)
	}
	return ret, nil
}

func floatToSafeInteger(v float64) (int64, error) {
	if math.IsNaN(v) || math.Trunc(v) != v || math.Abs(v) > MaxSafeInteger {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInteger, v)
	}
	return int64(v), nil
}
