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
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedEncMode     _cbor.EncMode
	cachedEncModeErr  error
	cachedEncModeOnce sync.Once
)

func getEncMode() (_cbor.EncMode, error) {
	cachedEncModeOnce.Do(func() {
		opts := _cbor.EncOptions{
			// Make sure that maps have ordered keys
			Sort: _cbor.SortCoreDeterministic,
		}
		cachedEncMode, cachedEncModeErr = opts.EncMode()
	})
	return cachedEncMode, cachedEncModeErr
}

// Encode encodes data as CBOR. Objects are encoded through their MarshalCBOR
// method, which the underlying library checks against its default nesting limit
// of 32 levels. Call MarshalCBOR directly for deeper trees
func Encode(data any) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	em, err := getEncMode()
	if err != nil {
		return nil, err
	}
	if em == nil {
		return nil, errors.New("CBOR encoder mode not initialized")
	}
	enc := em.NewEncoder(buf)
	err = enc.Encode(data)
	return buf.Bytes(), err
}

// MarshalCBOR encodes the Int. It does not mark it as read
func (i *Int) MarshalCBOR() ([]byte, error) {
	return Encode(i.value)
}

// MarshalCBOR encodes the String. It does not mark it as read
func (s *String) MarshalCBOR() ([]byte, error) {
	return Encode(s.value)
}

// MarshalCBOR encodes the Array as a definite-length array. It fails with the
// first build error recorded by Add
func (a *Array) MarshalCBOR() ([]byte, error) {
	if a.err != nil {
		return nil, a.err
	}
	ret := appendHead(nil, CborTypeArray, uint64(len(a.elements)))
	for _, element := range a.elements {
		data, err := element.MarshalCBOR()
		if err != nil {
			return nil, err
		}
		ret = append(ret, data...)
	}
	return ret, nil
}

// MarshalCBOR encodes the Map with its entries in insertion order. Duplicate
// keys are written as they are, so the output is not necessarily valid
// deterministic CBOR
func (m *Map) MarshalCBOR() ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	ret := appendHead(nil, CborTypeMap, uint64(len(m.entries)))
	for _, entry := range m.entries {
		keyData, err := Encode(entry.key)
		if err != nil {
			return nil, err
		}
		valueData, err := entry.value.MarshalCBOR()
		if err != nil {
			return nil, err
		}
		ret = append(ret, keyData...)
		ret = append(ret, valueData...)
	}
	return ret, nil
}

// MarshalCBOR encodes the tag head followed by the tagged object
func (t *Tag) MarshalCBOR() ([]byte, error) {
	content, err := t.obj.MarshalCBOR()
	if err != nil {
		return nil, err
	}
	return append(appendHead(nil, CborTypeTag, t.number), content...), nil
}

// appendHead appends the shortest head for the major type and argument
func appendHead(buf []byte, major uint8, arg uint64) []byte {
	switch {
	case arg <= uint64(CborMaxUintSimple):
		return append(buf, major|uint8(arg))
	case arg <= math.MaxUint8:
		return append(buf, major|24, uint8(arg))
	case arg <= math.MaxUint16:
		return binary.BigEndian.AppendUint16(append(buf, major|25), uint16(arg))
	case arg <= math.MaxUint32:
		return binary.BigEndian.AppendUint32(append(buf, major|26), uint32(arg))
	default:
		return binary.BigEndian.AppendUint64(append(buf, major|27), arg)
	}
}
