package test

import (
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/blinklabs-io/cborcheck/cbor"
	"github.com/stretchr/testify/require"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// DecodeObjectHex decodes hex CBOR into an object tree and panics on failure
func DecodeObjectHex(hexData string) cbor.Object {
	obj, _, err := cbor.DecodeObject(DecodeHexString(hexData))
	if err != nil {
		panic(fmt.Sprintf("error decoding CBOR object: %s", err))
	}
	return obj
}

// ArrayElement retrieves an element from obj, which must be an Array
func ArrayElement(t *testing.T, obj cbor.Object, index int) cbor.Object {
	t.Helper()
	arr, ok := obj.(*cbor.Array)
	require.Truef(t, ok, "expected Array, got %s", obj.Kind())
	ret, err := arr.Get(index)
	require.NoError(t, err)
	return ret
}

// MapValue retrieves a value from obj, which must be a Map
func MapValue(t *testing.T, obj cbor.Object, key int64) cbor.Object {
	t.Helper()
	m, ok := obj.(*cbor.Map)
	require.Truef(t, ok, "expected Map, got %s", obj.Kind())
	ret, err := m.Get(key)
	require.NoError(t, err)
	return ret
}

// TagContent retrieves the tagged object from obj, which must be a Tag
func TagContent(t *testing.T, obj cbor.Object) cbor.Object {
	t.Helper()
	tag, ok := obj.(*cbor.Tag)
	require.Truef(t, ok, "expected Tag, got %s", obj.Kind())
	return tag.Get()
}

// ReadInt reads the value of obj, which must be an Int
func ReadInt(t *testing.T, obj cbor.Object) int64 {
	t.Helper()
	i, ok := obj.(*cbor.Int)
	require.Truef(t, ok, "expected Int, got %s", obj.Kind())
	return i.Value()
}

// ReadString reads the value of obj, which must be a String
func ReadString(t *testing.T, obj cbor.Object) string {
	t.Helper()
	s, ok := obj.(*cbor.String)
	require.Truef(t, ok, "expected String, got %s", obj.Kind())
	return s.Value()
}
