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

package cbor_test

import (
	"encoding/hex"
	"io"
	"testing"

	"github.com/blinklabs-io/cborcheck/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamDecoderPosition(t *testing.T) {
	// [1, 2, 3]
	data, _ := hex.DecodeString("83010203")
	dec, err := cbor.NewStreamDecoder(data)
	require.NoError(t, err)
	assert.Equal(t, 0, dec.Position())
	var result []uint64
	start, length, err := dec.Decode(&result)
	require.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 4, length)
	assert.Equal(t, []uint64{1, 2, 3}, result)
	assert.Equal(t, len(data), dec.Position())
	assert.True(t, dec.EOF())
}

func TestStreamDecoderSkip(t *testing.T) {
	// Two CBOR items: [1] followed by [2, 3]
	data, _ := hex.DecodeString("8101820203")
	dec, err := cbor.NewStreamDecoder(data)
	require.NoError(t, err)
	start, length, err := dec.Skip()
	require.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, length)
	start, raw, err := dec.DecodeRaw(&[]uint64{})
	require.NoError(t, err)
	assert.Equal(t, 2, start)
	assert.Equal(t, []byte{0x82, 0x02, 0x03}, raw)
	assert.True(t, dec.EOF())
}

func TestStreamDecoderAdvance(t *testing.T) {
	data, _ := hex.DecodeString("8101")
	dec, err := cbor.NewStreamDecoder(data)
	require.NoError(t, err)
	require.NoError(t, dec.Advance(1))
	var result uint64
	_, _, err = dec.Decode(&result)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), result)
	assert.Error(t, dec.Advance(1))
	assert.Error(t, dec.Advance(-1))
}

func TestStreamDecoderDecodeArrayHeader(t *testing.T) {
	t.Run("definite", func(t *testing.T) {
		// Tagged list so the header isn't at the start
		data, _ := hex.DecodeString("d82d83010203")
		dec, err := cbor.NewStreamDecoder(data)
		require.NoError(t, err)
		number, err := dec.DecodeTagHeader()
		require.NoError(t, err)
		assert.Equal(t, uint64(45), number)
		length, headerOffset, headerLength, err := dec.DecodeArrayHeader()
		require.NoError(t, err)
		assert.Equal(t, 3, length)
		assert.Equal(t, 2, headerOffset)
		assert.Equal(t, 1, headerLength)
		assert.Equal(t, 3, dec.Position())
	})
	t.Run("indefinite", func(t *testing.T) {
		data, _ := hex.DecodeString("9f0102ff")
		dec, err := cbor.NewStreamDecoder(data)
		require.NoError(t, err)
		length, _, headerLength, err := dec.DecodeArrayHeader()
		require.NoError(t, err)
		assert.Equal(t, -1, length)
		assert.Equal(t, 1, headerLength)
		var items []int64
		for !dec.DecodeBreak() {
			v, err := dec.DecodeInt()
			require.NoError(t, err)
			items = append(items, v)
		}
		assert.Equal(t, []int64{1, 2}, items)
		assert.True(t, dec.EOF())
	})
	t.Run("length exceeds data", func(t *testing.T) {
		data, _ := hex.DecodeString("9a0000ffff")
		dec, err := cbor.NewStreamDecoder(data)
		require.NoError(t, err)
		_, _, _, err = dec.DecodeArrayHeader()
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
	t.Run("wrong type", func(t *testing.T) {
		data, _ := hex.DecodeString("a0")
		dec, err := cbor.NewStreamDecoder(data)
		require.NoError(t, err)
		_, _, _, err = dec.DecodeArrayHeader()
		assert.Error(t, err)
		assert.Equal(t, 0, dec.Position())
	})
}

func TestStreamDecoderDecodeMapHeader(t *testing.T) {
	// {1: 2, 3: 4} with a 1-byte length argument
	data, _ := hex.DecodeString("b80201020304")
	dec, err := cbor.NewStreamDecoder(data)
	require.NoError(t, err)
	length, headerOffset, headerLength, err := dec.DecodeMapHeader()
	require.NoError(t, err)
	assert.Equal(t, 2, length)
	assert.Equal(t, 0, headerOffset)
	assert.Equal(t, 2, headerLength)
	major, err := dec.PeekType()
	require.NoError(t, err)
	assert.Equal(t, uint8(cbor.CborTypeUnsignedInt), major)
}

func TestStreamDecoderDecodeInt(t *testing.T) {
	data, _ := hex.DecodeString("3903e71b0020000000000000")
	dec, err := cbor.NewStreamDecoder(data)
	require.NoError(t, err)
	v, err := dec.DecodeInt()
	require.NoError(t, err)
	assert.Equal(t, int64(-1000), v)
	_, err = dec.DecodeInt()
	assert.ErrorIs(t, err, cbor.ErrInvalidInteger)
}

func TestStreamDecoderPeekTypeEOF(t *testing.T) {
	dec, err := cbor.NewStreamDecoder(nil)
	require.NoError(t, err)
	assert.True(t, dec.EOF())
	_, err = dec.PeekType()
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.False(t, dec.DecodeBreak())
}
