package cbor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutOfMem(t *testing.T) {
	require := require.New(t)

	var f []byte
	err := Unmarshal([]byte("\x9b\x00\x00000000"), &f)
	require.Error(err, "Invalid CBOR input should fail")

	err = Unmarshal([]byte("\x9b\x00\x00\x81112233"), &f)
	require.Error(err, "Invalid CBOR input should fail")
}

func TestCanonicalMaps(t *testing.T) {
	require := require.New(t)

	a := Marshal(map[string]uint64{"b": 2, "a": 1, "c": 3})
	b := Marshal(map[string]uint64{"c": 3, "a": 1, "b": 2})
	require.Equal(a, b, "map encoding should not depend on insertion order")

	var m map[string]uint64
	require.NoError(Unmarshal(a, &m))
	require.EqualValues(2, m["b"])
}

func TestEncoderDecoder(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	err := enc.Encode([]uint64{1, 1 << 40})
	require.NoError(err, "Encode")

	var x []uint64
	dec := NewDecoder(&buf)
	err = dec.Decode(&x)
	require.NoError(err, "Decode")
	require.Equal([]uint64{1, 1 << 40}, x, "decoded value should be correct")

	require.NoError(Unmarshal(nil, &x), "nil input is a no-op")
}
