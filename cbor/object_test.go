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
	"math"
	"testing"

	"github.com/blinklabs-io/cborcheck/cbor"
	"github.com/blinklabs-io/cborcheck/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayGet(t *testing.T) {
	arr := cbor.NewArray().Add(cbor.MustInt(1)).Add(cbor.NewString("two"))
	assert.Equal(t, 2, arr.Len())
	_, err := arr.Get(2)
	assert.ErrorIs(t, err, cbor.ErrIndexOutOfRange)
	_, err = arr.Get(-1)
	assert.ErrorIs(t, err, cbor.ErrIndexOutOfRange)
	if math.MaxInt > cbor.MaxSafeInteger {
		_, err = arr.Get(math.MaxInt)
		assert.ErrorIs(t, err, cbor.ErrInvalidIndex)
		assert.ErrorIs(t, err, cbor.ErrInvalidInteger)
	}
	obj, err := arr.Get(1)
	require.NoError(t, err)
	assert.Equal(t, cbor.KindString, obj.Kind())
}

func TestArrayAddNil(t *testing.T) {
	arr := cbor.NewArray().Add(nil).Add(cbor.MustInt(1))
	assert.Equal(t, 1, arr.Len())
	assert.ErrorIs(t, arr.Err(), cbor.ErrInvalidObject)
}

func TestContainerCycle(t *testing.T) {
	t.Run("array adds itself", func(t *testing.T) {
		arr := cbor.NewArray().Add(cbor.MustInt(1))
		arr.Add(arr)
		assert.Equal(t, 1, arr.Len())
		assert.ErrorIs(t, arr.Err(), cbor.ErrInvalidObject)
		assert.ErrorIs(t, arr.CheckForUnread(), cbor.ErrInvalidObject)
		assert.Equal(t, "[1]", cbor.Dump(arr))
		_, err := arr.MarshalCBOR()
		assert.ErrorIs(t, err, cbor.ErrInvalidObject)
	})
	t.Run("indirect through array", func(t *testing.T) {
		outer := cbor.NewArray()
		inner := cbor.NewArray().Add(cbor.NewArray().Add(outer))
		outer.Add(inner)
		assert.Equal(t, 0, outer.Len())
		assert.ErrorIs(t, outer.Err(), cbor.ErrInvalidObject)
		assert.NoError(t, inner.Err())
		assert.Equal(t, "[[[]]]", cbor.Dump(inner))
	})
	t.Run("map sets itself", func(t *testing.T) {
		m := cbor.NewMap()
		m.Set(1, m).Set(2, cbor.NewString("ok"))
		assert.Equal(t, []int64{2}, m.Keys())
		assert.ErrorIs(t, m.Err(), cbor.ErrInvalidObject)
		assert.ErrorIs(t, m.CheckForUnread(), cbor.ErrInvalidObject)
		assert.Equal(t, `{2: "ok"}`, cbor.Dump(m))
	})
	t.Run("through tag", func(t *testing.T) {
		arr := cbor.NewArray()
		tag := cbor.MustTag(1, cbor.NewMap().Set(1, arr))
		arr.Add(tag)
		assert.Equal(t, 0, arr.Len())
		assert.ErrorIs(t, arr.Err(), cbor.ErrInvalidObject)
		assert.ErrorIs(t, tag.CheckForUnread(), cbor.ErrInvalidObject)
		assert.Equal(t, "1({1: []})", cbor.Dump(tag))
	})
	t.Run("shared child is not a cycle", func(t *testing.T) {
		shared := cbor.NewArray().Add(cbor.MustInt(1))
		root := cbor.NewArray().Add(shared).Add(cbor.MustTag(2, shared))
		assert.NoError(t, root.Err())
		assert.Equal(t, "[[1], 2([1])]", cbor.Dump(root))
	})
}

func TestMapGet(t *testing.T) {
	m := cbor.NewMap().Set(1, cbor.MustInt(6))
	_, err := m.Get(2)
	assert.ErrorIs(t, err, cbor.ErrKeyNotFound)
	_, err = m.Get(math.MinInt64)
	assert.ErrorIs(t, err, cbor.ErrInvalidKey)
	assert.Equal(t, int64(6), test.ReadInt(t, test.MapValue(t, m, 1)))
}

func TestMapDuplicateKeyFirstMatch(t *testing.T) {
	m := cbor.NewMap().
		Set(1, cbor.NewString("first")).
		Set(1, cbor.NewString("second"))
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []int64{1, 1}, m.Keys())
	assert.Equal(t, "first", test.ReadString(t, test.MapValue(t, m, 1)))
	assert.Equal(t, "first", test.ReadString(t, test.MapValue(t, m, 1)))
	// The shadowed entry can never be read
	assert.EqualError(
		t,
		m.CheckForUnread(),
		"Map key 1 with argument String with value=second was never read",
	)
}

func TestMapSetInvalid(t *testing.T) {
	m := cbor.NewMap().
		Set(-cbor.MaxSafeInteger-1, cbor.MustInt(1)).
		Set(2, nil).
		Set(3, cbor.MustInt(3))
	assert.Equal(t, []int64{3}, m.Keys())
	// First error wins
	assert.ErrorIs(t, m.Err(), cbor.ErrInvalidKey)
}

func TestRetrievalMarking(t *testing.T) {
	// Retrieving a primitive does not read it, retrieving a container does
	root := cbor.NewArray().
		Add(cbor.MustInt(1)).
		Add(cbor.NewMap())
	test.ArrayElement(t, root, 0)
	test.ArrayElement(t, root, 1)
	assert.EqualError(
		t,
		root.CheckForUnread(),
		"Array element of type Int with value=1 was never read",
	)
	test.ReadInt(t, test.ArrayElement(t, root, 0))
	assert.NoError(t, root.CheckForUnread())
}

func TestTag(t *testing.T) {
	tag := cbor.MustTag(24, cbor.NewString("x"))
	assert.Equal(t, uint64(24), tag.Number())
	assert.Equal(t, cbor.KindTag, tag.Kind())
	_, err := cbor.NewTag(24, nil)
	assert.ErrorIs(t, err, cbor.ErrInvalidObject)
	_, err = cbor.NewTag(cbor.MaxSafeInteger+1, cbor.NewMap())
	assert.ErrorIs(t, err, cbor.ErrInvalidInteger)
}

func TestNewInt(t *testing.T) {
	for _, v := range []int64{0, -1, cbor.MaxSafeInteger, -cbor.MaxSafeInteger} {
		i, err := cbor.NewInt(v)
		require.NoError(t, err)
		assert.Equal(t, v, i.Value())
	}
	for _, v := range []int64{cbor.MaxSafeInteger + 1, math.MinInt64} {
		_, err := cbor.NewInt(v)
		assert.ErrorIs(t, err, cbor.ErrInvalidInteger)
	}
	assert.Panics(t, func() { cbor.MustInt(math.MaxInt64) })
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Int", cbor.KindInt.String())
	assert.Equal(t, "String", cbor.KindString.String())
	assert.Equal(t, "Array", cbor.KindArray.String())
	assert.Equal(t, "Map", cbor.KindMap.String())
	assert.Equal(t, "Tag", cbor.KindTag.String())
	assert.True(t, cbor.KindInt.IsPrimitive())
	assert.False(t, cbor.KindTag.IsPrimitive())
}
