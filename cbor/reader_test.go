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

	"github.com/blinklabs-io/cborjson/cbor"
	"github.com/blinklabs-io/cborjson/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderType(t *testing.T) {
	testDefs := []struct {
		cborHex      string
		expectedType cbor.Type
	}{
		{"00", cbor.TypeUnsignedInt},
		{"17", cbor.TypeUnsignedInt},
		{"1bffffffffffffffff", cbor.TypeUnsignedInt},
		{"20", cbor.TypeNegativeInt},
		{"3bffffffffffffffff", cbor.TypeNegativeInt},
		{"40", cbor.TypeByteString},
		{"43010203", cbor.TypeByteString},
		{"60", cbor.TypeTextString},
		{"6161", cbor.TypeTextString},
		{"80", cbor.TypeArray},
		{"9f01ff", cbor.TypeArray},
		{"a0", cbor.TypeMap},
		{"bf616101ff", cbor.TypeMap},
		{"c11a514b67b0", cbor.TypeTag},
		{"f4", cbor.TypeBoolean},
		{"f5", cbor.TypeBoolean},
		{"f6", cbor.TypeNull},
		{"f7", cbor.TypeUndefined},
		{"f0", cbor.TypeSimple},
		{"f863", cbor.TypeSimple},
		{"f93c00", cbor.TypeHalfFloat},
		{"fa3fc00000", cbor.TypeFloat32},
		{"fb3ff8000000000000", cbor.TypeFloat64},
		// Truncated argument
		{"1b0011", cbor.TypeInvalid},
		// Reserved additional info
		{"1c", cbor.TypeInvalid},
		// Two-byte simple value below 32
		{"f81f", cbor.TypeInvalid},
		// Lone break byte
		{"ff", cbor.TypeInvalid},
		// Empty input
		{"", cbor.TypeInvalid},
	}
	for _, testDef := range testDefs {
		r := cbor.NewReader(test.DecodeHexString(testDef.cborHex))
		assert.Equal(
			t,
			testDef.expectedType,
			r.Type(),
			"wrong type for CBOR %q",
			testDef.cborHex,
		)
	}
}

func TestReaderIntegers(t *testing.T) {
	r := cbor.NewReader(test.DecodeHexString("1bffffffffffffffff"))
	v, err := r.Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), v)
	// Reads don't advance
	assert.Equal(t, 0, r.Position())
	require.NoError(t, r.Advance())
	assert.Equal(t, 9, r.Position())
	assert.True(t, r.AtEnd())

	// -100 encoded as magnitude 99
	r = cbor.NewReader(test.DecodeHexString("3863"))
	m, err := r.RawUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(99), m)
	i, err := r.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(-100), i)

	// Magnitude 2^63 denotes -2^63-1, which overflows int64
	r = cbor.NewReader(test.DecodeHexString("3b8000000000000000"))
	m, err = r.RawUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<63, m)
	_, err = r.Int64()
	require.Error(t, err)

	// Type mismatch
	r = cbor.NewReader(test.DecodeHexString("f5"))
	_, err = r.Uint64()
	require.Error(t, err)
}

func TestReaderFloats(t *testing.T) {
	testDefs := []struct {
		cborHex       string
		expectedValue float64
	}{
		// Half-precision values are widened to float64
		{"f93c00", 1.0},
		{"f93e00", 1.5},
		{"fa3fc00000", 1.5},
		{"fb3ff8000000000000", 1.5},
		{"fbc000000000000000", -2.0},
	}
	for _, testDef := range testDefs {
		r := cbor.NewReader(test.DecodeHexString(testDef.cborHex))
		v, err := r.Float64()
		require.NoError(t, err)
		assert.Equal(
			t,
			testDef.expectedValue,
			v,
			"wrong value for CBOR %q",
			testDef.cborHex,
		)
	}

	// Half-precision NaN
	r := cbor.NewReader(test.DecodeHexString("f97e00"))
	v, err := r.Float64()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

func TestReaderBoolSimple(t *testing.T) {
	r := cbor.NewReader(test.DecodeHexString("f5"))
	b, err := r.Bool()
	require.NoError(t, err)
	assert.True(t, b)

	r = cbor.NewReader(test.DecodeHexString("f863"))
	s, err := r.Simple()
	require.NoError(t, err)
	assert.Equal(t, uint8(99), s)

	r = cbor.NewReader(test.DecodeHexString("f0"))
	s, err = r.Simple()
	require.NoError(t, err)
	assert.Equal(t, uint8(16), s)

	// Two-byte simple values below 32 are not well-formed
	r = cbor.NewReader(test.DecodeHexString("f81f"))
	_, err = r.Simple()
	require.Error(t, err)
}

func TestReaderTag(t *testing.T) {
	// 1(1364354992)
	r := cbor.NewReader(test.DecodeHexString("c11a514b67b0"))
	tag, err := r.Tag()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), tag)
	// The tagged content is not consumed by reading the tag number
	assert.Equal(t, 0, r.Position())
}

func TestReaderStrings(t *testing.T) {
	r := cbor.NewReader(test.DecodeHexString("43010203"))
	b, err := r.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, b)
	assert.Equal(t, 4, r.Position())

	r = cbor.NewReader(test.DecodeHexString("6161"))
	s, err := r.Text()
	require.NoError(t, err)
	assert.Equal(t, "a", s)
	assert.Equal(t, 2, r.Position())

	// Indefinite-length strings are reassembled from chunks
	r = cbor.NewReader(test.DecodeHexString("5f41014102ff"))
	b, err = r.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, b)
	assert.Equal(t, 6, r.Position())

	r = cbor.NewReader(test.DecodeHexString("7f6261626163ff"))
	s, err = r.Text()
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
	assert.Equal(t, 7, r.Position())

	// Invalid UTF-8 in a text string
	r = cbor.NewReader(test.DecodeHexString("61ff"))
	_, err = r.Text()
	require.Error(t, err)
}

func TestReaderEnterLeave(t *testing.T) {
	// [1, 2, 3]
	r := cbor.NewReader(test.DecodeHexString("83010203"))
	child, err := r.Enter()
	require.NoError(t, err)
	assert.Equal(t, 1, child.Position())

	var values []uint64
	for !child.AtEnd() {
		v, err := child.Uint64()
		require.NoError(t, err)
		require.NoError(t, child.Advance())
		values = append(values, v)
	}
	assert.Equal(t, []uint64{1, 2, 3}, values)

	require.NoError(t, r.Leave(child))
	assert.Equal(t, 4, r.Position())
	assert.True(t, r.AtEnd())
}

func TestReaderEnterLeaveIndefinite(t *testing.T) {
	// [_ 1, 2]
	r := cbor.NewReader(test.DecodeHexString("9f0102ff"))
	child, err := r.Enter()
	require.NoError(t, err)
	assert.False(t, child.AtEnd())
	require.NoError(t, child.Advance())
	require.NoError(t, child.Advance())
	assert.True(t, child.AtEnd())
	// Leave consumes the break byte
	require.NoError(t, r.Leave(child))
	assert.Equal(t, 4, r.Position())
}

func TestReaderEnterEmpty(t *testing.T) {
	r := cbor.NewReader(test.DecodeHexString("80"))
	child, err := r.Enter()
	require.NoError(t, err)
	assert.True(t, child.AtEnd())
	require.NoError(t, r.Leave(child))
	assert.Equal(t, 1, r.Position())

	// Maps count each entry as two items
	r = cbor.NewReader(test.DecodeHexString("a1616101"))
	child, err = r.Enter()
	require.NoError(t, err)
	assert.False(t, child.AtEnd())
	_, err = child.Text()
	require.NoError(t, err)
	require.NoError(t, child.Advance())
	assert.True(t, child.AtEnd())
	require.NoError(t, r.Leave(child))
	assert.Equal(t, 4, r.Position())
}

func TestReaderLeaveUnconsumed(t *testing.T) {
	r := cbor.NewReader(test.DecodeHexString("83010203"))
	child, err := r.Enter()
	require.NoError(t, err)
	require.Error(t, r.Leave(child))
	// Sync still merges the partial position
	require.NoError(t, child.Advance())
	r.Sync(child)
	assert.Equal(t, 2, r.Position())
}

func TestReaderSkip(t *testing.T) {
	// [1, [2, 3]] followed by true
	r := cbor.NewReader(test.DecodeHexString("8201820203f5"))
	require.NoError(t, r.Skip())
	assert.Equal(t, 5, r.Position())
	b, err := r.Bool()
	require.NoError(t, err)
	assert.True(t, b)
}

func TestReaderTruncated(t *testing.T) {
	r := cbor.NewReader(nil)
	_, err := r.Uint64()
	require.Error(t, err)

	// Array header claims more items than the data holds
	r = cbor.NewReader(test.DecodeHexString("8201"))
	child, err := r.Enter()
	require.NoError(t, err)
	require.NoError(t, child.Advance())
	assert.False(t, child.AtEnd())
	assert.Equal(t, cbor.TypeInvalid, child.Type())
}

func TestReaderDepthLimit(t *testing.T) {
	// 300 nested single-element arrays
	data := make([]byte, 0, 301)
	for i := 0; i < 300; i++ {
		data = append(data, 0x81)
	}
	data = append(data, 0x01)
	r := cbor.NewReader(data)
	var err error
	for {
		r, err = r.Enter()
		if err != nil {
			break
		}
	}
	require.ErrorContains(t, err, "nesting depth")
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	data, err := cbor.Encode([]uint64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, test.DecodeHexString("83010203"), data)

	var decoded []uint64
	n, err := cbor.Decode(data, &decoded)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.Equal(t, []uint64{1, 2, 3}, decoded)
}
