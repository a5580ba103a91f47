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
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedDecMode     _cbor.DecMode
	cachedDecModeErr  error
	cachedDecModeOnce sync.Once
)

// getDecMode returns a cached DecMode, initializing it on first use.
// Returns the cached error if initialization failed.
func getDecMode() (_cbor.DecMode, error) {
	cachedDecModeOnce.Do(func() {
		decOptions := _cbor.DecOptions{
			// Use the library maximum. Object trees enforce their own limit via WithMaxDepth
			MaxNestedLevels: 65535,
		}
		cachedDecMode, cachedDecModeErr = decOptions.DecMode()
	})
	return cachedDecMode, cachedDecModeErr
}

// Decode decodes the first CBOR data item in dataBytes into dest and returns the
// number of bytes read
func Decode(dataBytes []byte, dest any) (int, error) {
	data := bytes.NewReader(dataBytes)
	decMode, err := getDecMode()
	if err != nil {
		return 0, err
	}
	if decMode == nil {
		return 0, errors.New("CBOR decoder mode not initialized")
	}
	dec := decMode.NewDecoder(data)
	err = dec.Decode(dest)
	return dec.NumBytesRead(), err
}

// StreamDecoder provides sequential CBOR decoding with position tracking.
// It wraps the underlying decoder and adds header-only decoding of arrays,
// maps and tags so that containers can be walked item by item.
type StreamDecoder struct {
	dec      *_cbor.Decoder
	decMode  _cbor.DecMode // cached decode mode for reuse in Advance()
	data     []byte
	consumed int // bytes consumed by Advance() calls
}

// NewStreamDecoder creates a decoder for sequential CBOR item extraction with position tracking.
func NewStreamDecoder(data []byte) (*StreamDecoder, error) {
	decMode, err := getDecMode()
	if err != nil {
		return nil, err
	}
	if decMode == nil {
		return nil, errors.New("CBOR decoder mode not initialized")
	}
	return &StreamDecoder{
		dec:     decMode.NewDecoder(bytes.NewReader(data)),
		decMode: decMode,
		data:    data,
	}, nil
}

// Position returns the current byte position in the stream.
func (d *StreamDecoder) Position() int {
	return d.consumed + d.dec.NumBytesRead()
}

// Decode decodes the next CBOR item into dest and returns its byte range.
// Returns (startOffset, length, error).
func (d *StreamDecoder) Decode(dest any) (int, int, error) {
	start := d.Position()
	if err := d.dec.Decode(dest); err != nil {
		return 0, 0, err
	}
	return start, d.Position() - start, nil
}

// Skip skips over the next CBOR item without decoding it.
// Returns (startOffset, length, error).
func (d *StreamDecoder) Skip() (int, int, error) {
	start := d.Position()
	if err := d.dec.Skip(); err != nil {
		return 0, 0, err
	}
	return start, d.Position() - start, nil
}

// DecodeRaw decodes the next CBOR item and returns both its value and raw bytes.
// Returns (startOffset, rawBytes, error).
func (d *StreamDecoder) DecodeRaw(dest any) (int, []byte, error) {
	start, length, err := d.Decode(dest)
	if err != nil {
		return 0, nil, err
	}
	return start, d.data[start : start+length], nil
}

// EOF returns true if the decoder has reached the end of the data.
func (d *StreamDecoder) EOF() bool {
	return d.Position() >= len(d.data)
}

// Advance moves the decoder position forward by n bytes without decoding.
// This is useful for skipping past headers that were parsed manually.
// Returns an error if n would advance past the end of data.
func (d *StreamDecoder) Advance(n int) error {
	if n < 0 {
		return errors.New("cannot advance by negative amount")
	}
	newPos := d.Position() + n
	if newPos > len(d.data) {
		return errors.New("advance would exceed data bounds")
	}
	d.consumed = newPos
	// Reinitialize decoder with remaining data, reusing cached DecMode
	d.dec = d.decMode.NewDecoder(bytes.NewReader(d.data[d.consumed:]))
	return nil
}

// PeekType returns the major type of the next CBOR item without consuming it
func (d *StreamDecoder) PeekType() (uint8, error) {
	pos := d.Position()
	if pos >= len(d.data) {
		return 0, io.ErrUnexpectedEOF
	}
	return d.data[pos] & CborTypeMask, nil
}

// DecodeBreak consumes the break byte ending an indefinite-length item if it's
// next in the stream, and returns whether it did
func (d *StreamDecoder) DecodeBreak() bool {
	pos := d.Position()
	if pos >= len(d.data) || d.data[pos] != CborBreak {
		return false
	}
	return d.Advance(1) == nil
}

// DecodeArrayHeader decodes a CBOR array header and returns the number of elements.
// This advances the position past the header only, not the array contents.
// The length is -1 for an indefinite-length array, whose elements are followed by
// a break (see DecodeBreak).
// Returns (arrayLength, headerOffset, headerLength, error).
func (d *StreamDecoder) DecodeArrayHeader() (int, int, int, error) {
	return d.decodeContainerHeader(CborTypeArray, 1)
}

// DecodeMapHeader decodes a CBOR map header and returns the number of key-value pairs.
// This advances the position past the header only, not the map contents.
// The length is -1 for an indefinite-length map.
// Returns (mapLength, headerOffset, headerLength, error).
func (d *StreamDecoder) DecodeMapHeader() (int, int, int, error) {
	return d.decodeContainerHeader(CborTypeMap, 2)
}

// DecodeTagHeader decodes a CBOR tag header and returns the tag number. The
// position is left at the start of the tagged item.
func (d *StreamDecoder) DecodeTagHeader() (uint64, error) {
	h, _, err := d.decodeHead(CborTypeTag)
	if err != nil {
		return 0, err
	}
	if h.indef {
		return 0, errors.New("invalid indefinite length tag")
	}
	return h.arg, nil
}

// DecodeInt decodes an unsigned or negative CBOR integer in the safe integer range
func (d *StreamDecoder) DecodeInt() (int64, error) {
	major, err := d.PeekType()
	if err != nil {
		return 0, err
	}
	if major != CborTypeUnsignedInt && major != CborTypeNegativeInt {
		return 0, fmt.Errorf(
			"%w: expected integer, got %s",
			ErrUnsupportedType,
			majorTypeName(major),
		)
	}
	h, _, err := d.decodeHead(major)
	if err != nil {
		return 0, err
	}
	return h.intValue()
}

func (d *StreamDecoder) decodeContainerHeader(
	major uint8,
	itemsPerEntry int,
) (int, int, int, error) {
	h, start, err := d.decodeHead(major)
	if err != nil {
		return 0, 0, 0, err
	}
	if h.indef {
		return -1, start, h.size, nil
	}
	if h.arg > uint64(math.MaxInt32) {
		return 0, 0, 0, fmt.Errorf(
			"%s length exceeds maximum int32 value",
			majorTypeName(major),
		)
	}
	length := int(h.arg)
	// Every item takes at least one byte
	if length*itemsPerEntry > len(d.data)-d.Position() {
		return 0, 0, 0, io.ErrUnexpectedEOF
	}
	return length, start, h.size, nil
}

// decodeHead parses the head of the next item, which must be of the specified
// major type, and advances past it. Returns the head and its offset
func (d *StreamDecoder) decodeHead(major uint8) (head, int, error) {
	start := d.Position()
	if start >= len(d.data) {
		return head{}, 0, io.ErrUnexpectedEOF
	}
	h, err := readHead(d.data[start:])
	if err != nil {
		return head{}, 0, err
	}
	if h.major != major {
		return head{}, 0, fmt.Errorf(
			"expected %s (0x%x), got 0x%x",
			majorTypeName(major),
			major,
			h.major,
		)
	}
	if err := d.Advance(h.size); err != nil {
		return head{}, 0, err
	}
	return h, start, nil
}

// head is the initial byte(s) of a CBOR data item
type head struct {
	major uint8
	arg   uint64
	indef bool
	// length of the head in bytes
	size int
}

func readHead(data []byte) (head, error) {
	if len(data) == 0 {
		return head{}, io.ErrUnexpectedEOF
	}
	h := head{
		major: data[0] & CborTypeMask,
		size:  1,
	}
	info := data[0] &^ CborTypeMask
	var argLen int
	switch {
	case info <= CborMaxUintSimple:
		h.arg = uint64(info)
		return h, nil
	case info == 24:
		argLen = 1
	case info == 25:
		argLen = 2
	case info == 26:
		argLen = 4
	case info == 27:
		argLen = 8
	case info == CborIndefLength:
		h.indef = true
		return h, nil
	default:
		return head{}, fmt.Errorf("invalid additional information %d", info)
	}
	if len(data) < 1+argLen {
		return head{}, io.ErrUnexpectedEOF
	}
	tmpBuf := make([]byte, 8)
	copy(tmpBuf[8-argLen:], data[1:1+argLen])
	h.arg = binary.BigEndian.Uint64(tmpBuf)
	h.size += argLen
	return h, nil
}

func (h head) intValue() (int64, error) {
	if h.indef {
		return 0, errors.New("invalid indefinite length integer")
	}
	if h.major == CborTypeNegativeInt {
		// Encoded value is -1 - arg
		if h.arg > MaxSafeInteger-1 {
			return 0, fmt.Errorf("%w: -1-%d", ErrInvalidInteger, h.arg)
		}
		return -1 - int64(h.arg), nil
	}
	if h.arg > MaxSafeInteger {
		return 0, fmt.Errorf("%w: %d", ErrInvalidInteger, h.arg)
	}
	return int64(h.arg), nil
}

type objectDecoder struct {
	dec         *StreamDecoder
	logger      *slog.Logger
	maxDepth    int
	dupKeyCheck bool
	nodes       int
}

// DecodeObject decodes the first CBOR data item in data into an object tree and
// returns it along with the number of bytes read. Every node of the returned
// tree is unread.
//
// Integers must be in the safe integer range and map keys must be integers.
// Byte strings, floats and simple values have no object representation and
// result in ErrUnsupportedType.
func DecodeObject(data []byte, opts ...DecodeOptionFunc) (Object, int, error) {
	d := &objectDecoder{
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	dec, err := NewStreamDecoder(data)
	if err != nil {
		return nil, 0, err
	}
	d.dec = dec
	obj, err := d.decode(0)
	if err != nil {
		return nil, dec.Position(), err
	}
	d.logger.Debug(
		"decoded CBOR object",
		"component", "cbor",
		"bytes", dec.Position(),
		"nodes", d.nodes,
	)
	return obj, dec.Position(), nil
}

func (d *objectDecoder) decode(depth int) (Object, error) {
	if depth > d.maxDepth {
		return nil, fmt.Errorf("%w: %d", ErrMaxDepth, d.maxDepth)
	}
	major, err := d.dec.PeekType()
	if err != nil {
		return nil, err
	}
	d.nodes++
	switch major {
	case CborTypeUnsignedInt, CborTypeNegativeInt:
		v, err := d.dec.DecodeInt()
		if err != nil {
			return nil, err
		}
		return &Int{value: v}, nil
	case CborTypeTextString:
		var tmpValue string
		if _, _, err := d.dec.Decode(&tmpValue); err != nil {
			return nil, err
		}
		return NewString(tmpValue), nil
	case CborTypeArray:
		length, _, _, err := d.dec.DecodeArrayHeader()
		if err != nil {
			return nil, err
		}
		ret := NewArray()
		for i := 0; length < 0 || i < length; i++ {
			if length < 0 && d.dec.DecodeBreak() {
				break
			}
			obj, err := d.decode(depth + 1)
			if err != nil {
				return nil, err
			}
			// Decoded trees cannot contain cycles, so skip the checks in Add
			ret.elements = append(ret.elements, obj)
		}
		return ret, nil
	case CborTypeMap:
		length, _, _, err := d.dec.DecodeMapHeader()
		if err != nil {
			return nil, err
		}
		ret := NewMap()
		var seen map[int64]struct{}
		if d.dupKeyCheck {
			seen = make(map[int64]struct{})
		}
		for i := 0; length < 0 || i < length; i++ {
			if length < 0 && d.dec.DecodeBreak() {
				break
			}
			key, err := d.dec.DecodeInt()
			if err != nil {
				if errors.Is(err, ErrInvalidInteger) {
					return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
				}
				return nil, fmt.Errorf("map key: %w", err)
			}
			if seen != nil {
				if _, ok := seen[key]; ok {
					return nil, fmt.Errorf("%w: %d", ErrDuplicateKey, key)
				}
				seen[key] = struct{}{}
			}
			value, err := d.decode(depth + 1)
			if err != nil {
				return nil, err
			}
			ret.entries = append(ret.entries, mapEntry{key: key, value: value})
		}
		return ret, nil
	case CborTypeTag:
		number, err := d.dec.DecodeTagHeader()
		if err != nil {
			return nil, err
		}
		obj, err := d.decode(depth + 1)
		if err != nil {
			return nil, err
		}
		ret, err := NewTag(number, obj)
		if err != nil {
			return nil, err
		}
		return ret, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, majorTypeName(major))
	}
}

func majorTypeName(major uint8) string {
	switch major {
	case CborTypeUnsignedInt:
		return "unsigned integer"
	case CborTypeNegativeInt:
		return "negative integer"
	case CborTypeByteString:
		return "byte string"
	case CborTypeTextString:
		return "text string"
	case CborTypeArray:
		return "array"
	case CborTypeMap:
		return "map"
	case CborTypeTag:
		return "tag"
	default:
		return "simple/float"
	}
}
