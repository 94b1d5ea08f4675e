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
	"math"

	"github.com/x448/float16"
)

// maxNestingDepth bounds how many containers a Reader will descend into. It
// lines up with the limit used for whole-value decoding in decode.go.
const maxNestingDepth = 256

// Reader is a forward-only cursor over a CBOR byte stream. It exposes the
// value at the current position one at a time, along with operations to
// descend into arrays and maps and to advance past consumed values. A Reader
// never seeks backward.
//
// Container traversal uses child Readers: Enter returns a child positioned
// at the first element, the child walks the siblings, and Leave merges the
// child's final position back into the parent. On a mid-container failure,
// Sync moves the parent to the child's position so callers can report the
// exact offset where processing stopped.
type Reader struct {
	data []byte
	off  int
	// remaining counts the items left in the current container. It is
	// ignored for indefinite-length containers (terminated by a break byte)
	// and for the top-level Reader, which is bounded by the data itself.
	remaining int
	indef     bool
	top       bool
	depth     int
}

// NewReader returns a cursor positioned at the first value in data.
func NewReader(data []byte) *Reader {
	return &Reader{
		data: data,
		top:  true,
	}
}

// Position returns the current byte offset into the stream.
func (r *Reader) Position() int {
	return r.off
}

// AtEnd reports whether the cursor has consumed its container: all counted
// items for a definite-length container, the break byte for an
// indefinite-length one, or the end of the data at the top level.
func (r *Reader) AtEnd() bool {
	if r.top {
		return r.off >= len(r.data)
	}
	if r.indef {
		return r.off < len(r.data) && r.data[r.off] == breakByte
	}
	return r.remaining <= 0
}

// head parses the initial byte and argument of the value at the current
// position without consuming anything. For indefinite-length items the
// returned argument is zero. n is the total header length in bytes.
func (r *Reader) head() (major byte, info byte, arg uint64, n int, err error) {
	if r.off >= len(r.data) {
		return 0, 0, 0, 0, io.ErrUnexpectedEOF
	}
	first := r.data[r.off]
	major = first >> 5
	info = first & 0x1f
	switch {
	case info < addlOneByte:
		return major, info, uint64(info), 1, nil
	case info <= addlEightBytes:
		argLen := 1 << (info - addlOneByte)
		if r.off+1+argLen > len(r.data) {
			return 0, 0, 0, 0, io.ErrUnexpectedEOF
		}
		argBytes := r.data[r.off+1 : r.off+1+argLen]
		switch argLen {
		case 1:
			arg = uint64(argBytes[0])
		case 2:
			arg = uint64(binary.BigEndian.Uint16(argBytes))
		case 4:
			arg = uint64(binary.BigEndian.Uint32(argBytes))
		case 8:
			arg = binary.BigEndian.Uint64(argBytes)
		}
		return major, info, arg, 1 + argLen, nil
	case info == addlIndefinite:
		return major, info, 0, 1, nil
	default:
		// Additional info 28-30 is reserved
		return 0, 0, 0, 0, fmt.Errorf(
			"reserved additional info %d at offset %d",
			info,
			r.off,
		)
	}
}

// Type identifies the value at the current position. It returns TypeInvalid
// for truncated input, reserved encodings, and a break byte outside of the
// places AtEnd expects one.
func (r *Reader) Type() Type {
	major, info, arg, _, err := r.head()
	if err != nil {
		return TypeInvalid
	}
	switch major {
	case MajorUnsignedInt:
		if info == addlIndefinite {
			return TypeInvalid
		}
		return TypeUnsignedInt
	case MajorNegativeInt:
		if info == addlIndefinite {
			return TypeInvalid
		}
		return TypeNegativeInt
	case MajorByteString:
		return TypeByteString
	case MajorTextString:
		return TypeTextString
	case MajorArray:
		return TypeArray
	case MajorMap:
		return TypeMap
	case MajorTag:
		if info == addlIndefinite {
			return TypeInvalid
		}
		return TypeTag
	case MajorSimple:
		switch info {
		case simpleFalse, simpleTrue:
			return TypeBoolean
		case simpleNull:
			return TypeNull
		case simpleUndefined:
			return TypeUndefined
		case subtypeHalf:
			return TypeHalfFloat
		case subtypeFloat:
			return TypeFloat32
		case subtypeDouble:
			return TypeFloat64
		case addlIndefinite:
			// A break byte is not a value
			return TypeInvalid
		case addlOneByte:
			// Two-byte simple values below 32 are not well-formed
			if arg < 32 {
				return TypeInvalid
			}
			return TypeSimple
		default:
			return TypeSimple
		}
	}
	return TypeInvalid
}

// consumed records that one item of the enclosing container has been fully
// read.
func (r *Reader) consumed() {
	if !r.top && !r.indef {
		r.remaining--
	}
}

// Advance moves past the fixed-size scalar at the current position. Strings,
// arrays, maps, and tags cannot be advanced past with this; strings are
// consumed by Bytes/Text and containers via Enter/Leave or Skip.
func (r *Reader) Advance() error {
	major, info, _, n, err := r.head()
	if err != nil {
		return err
	}
	switch major {
	case MajorUnsignedInt, MajorNegativeInt:
	case MajorSimple:
		if info == addlIndefinite {
			return errors.New("cannot advance past break")
		}
	default:
		return fmt.Errorf("cannot advance past %s", r.Type())
	}
	r.off += n
	r.consumed()
	return nil
}

// Skip advances past one whole value, including any nested containers or
// tagged content.
func (r *Reader) Skip() error {
	decMode, err := getDecMode()
	if err != nil {
		return err
	}
	dec := decMode.NewDecoder(bytes.NewReader(r.data[r.off:]))
	if err := dec.Skip(); err != nil {
		return err
	}
	r.off += dec.NumBytesRead()
	r.consumed()
	return nil
}

// Uint64 returns the unsigned integer at the current position.
func (r *Reader) Uint64() (uint64, error) {
	major, _, arg, _, err := r.head()
	if err != nil {
		return 0, err
	}
	if major != MajorUnsignedInt {
		return 0, fmt.Errorf("expected unsigned integer, got %s", r.Type())
	}
	return arg, nil
}

// RawUint64 returns the raw integer argument for either integer major type.
// For a negative integer the argument is the encoded magnitude m, denoting
// the value -1-m; callers needing the full CBOR integer range must combine
// this with Type to avoid truncating values below the int64 minimum.
func (r *Reader) RawUint64() (uint64, error) {
	major, _, arg, _, err := r.head()
	if err != nil {
		return 0, err
	}
	if major != MajorUnsignedInt && major != MajorNegativeInt {
		return 0, fmt.Errorf("expected integer, got %s", r.Type())
	}
	return arg, nil
}

// Int64 returns the integer at the current position, failing if it does not
// fit in a signed 64-bit value.
func (r *Reader) Int64() (int64, error) {
	major, _, arg, _, err := r.head()
	if err != nil {
		return 0, err
	}
	switch major {
	case MajorUnsignedInt:
		if arg > math.MaxInt64 {
			return 0, fmt.Errorf("integer %d overflows int64", arg)
		}
		return int64(arg), nil
	case MajorNegativeInt:
		if arg > math.MaxInt64 {
			return 0, fmt.Errorf("integer -1-%d overflows int64", arg)
		}
		return -1 - int64(arg), nil
	default:
		return 0, fmt.Errorf("expected integer, got %s", r.Type())
	}
}

// Bool returns the boolean at the current position.
func (r *Reader) Bool() (bool, error) {
	major, info, _, _, err := r.head()
	if err != nil {
		return false, err
	}
	if major != MajorSimple || (info != simpleFalse && info != simpleTrue) {
		return false, fmt.Errorf("expected boolean, got %s", r.Type())
	}
	return info == simpleTrue, nil
}

// Simple returns the numeric code of the simple value at the current
// position. Booleans, null, and undefined are themselves simple values, so
// their codes are returned too.
func (r *Reader) Simple() (uint8, error) {
	major, info, arg, _, err := r.head()
	if err != nil {
		return 0, err
	}
	if major != MajorSimple {
		return 0, fmt.Errorf("expected simple value, got %s", r.Type())
	}
	switch {
	case info < addlOneByte:
		return info, nil
	case info == addlOneByte:
		if arg < 32 {
			return 0, fmt.Errorf("simple value %d not in canonical form", arg)
		}
		return uint8(arg), nil
	default:
		return 0, fmt.Errorf("expected simple value, got %s", r.Type())
	}
}

// Tag returns the tag number at the current position. The tagged content
// follows the tag head and is not consumed.
func (r *Reader) Tag() (uint64, error) {
	major, _, arg, _, err := r.head()
	if err != nil {
		return 0, err
	}
	if major != MajorTag {
		return 0, fmt.Errorf("expected tag, got %s", r.Type())
	}
	return arg, nil
}

// Float64 returns the floating-point value at the current position.
// Half-precision and single-precision values are widened to float64.
func (r *Reader) Float64() (float64, error) {
	major, info, arg, _, err := r.head()
	if err != nil {
		return 0, err
	}
	if major != MajorSimple {
		return 0, fmt.Errorf("expected float, got %s", r.Type())
	}
	switch info {
	case subtypeHalf:
		return float64(float16.Frombits(uint16(arg)).Float32()), nil
	case subtypeFloat:
		return float64(math.Float32frombits(uint32(arg))), nil
	case subtypeDouble:
		return math.Float64frombits(arg), nil
	default:
		return 0, fmt.Errorf("expected float, got %s", r.Type())
	}
}

// decodeNext decodes one value starting at the current position using the
// shared decode mode and returns the number of bytes it occupied.
func (r *Reader) decodeNext(dest any) (int, error) {
	decMode, err := getDecMode()
	if err != nil {
		return 0, err
	}
	dec := decMode.NewDecoder(bytes.NewReader(r.data[r.off:]))
	if err := dec.Decode(dest); err != nil {
		return 0, err
	}
	return dec.NumBytesRead(), nil
}

// Bytes copies the byte string at the current position and advances past it.
// Indefinite-length strings are reassembled from their chunks.
func (r *Reader) Bytes() ([]byte, error) {
	if t := r.Type(); t != TypeByteString {
		return nil, fmt.Errorf("expected byte string, got %s", t)
	}
	var out []byte
	n, err := r.decodeNext(&out)
	if err != nil {
		return nil, err
	}
	r.off += n
	r.consumed()
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

// Text copies the text string at the current position and advances past it.
// The string is validated as UTF-8; indefinite-length strings are
// reassembled from their chunks.
func (r *Reader) Text() (string, error) {
	if t := r.Type(); t != TypeTextString {
		return "", fmt.Errorf("expected text string, got %s", t)
	}
	var out string
	n, err := r.decodeNext(&out)
	if err != nil {
		return "", err
	}
	r.off += n
	r.consumed()
	return out, nil
}

// Enter descends into the array or map at the current position, returning a
// child Reader positioned at its first element (or already at the
// end-of-container sentinel when the container is empty). The parent must
// not be used again until Leave or Sync is called with the child.
func (r *Reader) Enter() (*Reader, error) {
	major, info, arg, n, err := r.head()
	if err != nil {
		return nil, err
	}
	if major != MajorArray && major != MajorMap {
		return nil, fmt.Errorf("expected array or map, got %s", r.Type())
	}
	if r.depth+1 >= maxNestingDepth {
		return nil, fmt.Errorf("maximum nesting depth %d exceeded", maxNestingDepth)
	}
	child := &Reader{
		data:  r.data,
		off:   r.off + n,
		depth: r.depth + 1,
	}
	if info == addlIndefinite {
		child.indef = true
		return child, nil
	}
	// Each map entry is two items
	items := arg
	if major == MajorMap {
		items *= 2
	}
	if items > uint64(math.MaxInt32) {
		return nil, fmt.Errorf("container length %d exceeds maximum", arg)
	}
	child.remaining = int(items)
	return child, nil
}

// Leave checks that the child cursor consumed its whole container and merges
// its final position back into the parent, which then denotes the next
// sibling value (or the enclosing end-of-container sentinel).
func (r *Reader) Leave(child *Reader) error {
	if !child.AtEnd() {
		return errors.New("container not fully consumed")
	}
	end := child.off
	if child.indef {
		// AtEnd already verified the break byte is present
		end++
	}
	r.off = end
	r.consumed()
	return nil
}

// Sync moves the parent to the child's current position without consuming
// anything. Callers use it when abandoning a container mid-walk so that
// Position reflects exactly where processing stopped.
func (r *Reader) Sync(child *Reader) {
	r.off = child.off
}
