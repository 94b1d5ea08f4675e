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

package cborjson

import (
	"io"
	"strconv"

	"github.com/blinklabs-io/cborjson/cbor"
)

// valueToJSON emits the JSON rendering of the single value at the cursor
// and advances the cursor past it. It recurses through containerToJSON for
// arrays and maps.
func valueToJSON(out io.Writer, r *cbor.Reader, flags Flags) error {
	switch typ := r.Type(); typ {
	case cbor.TypeArray, cbor.TypeMap:
		return containerToJSON(out, r, flags, typ)
	case cbor.TypeUnsignedInt:
		v, err := r.Uint64()
		if err != nil {
			return err
		}
		if err := writeString(out, strconv.FormatUint(v, 10)); err != nil {
			return err
		}
	case cbor.TypeNegativeInt:
		m, err := r.RawUint64()
		if err != nil {
			return err
		}
		if err := writeString(out, formatNegInt(m)); err != nil {
			return err
		}
	case cbor.TypeByteString:
		s, err := dumpByteStringBase64URL(r)
		if err != nil {
			return err
		}
		// Bytes() consumed the string already
		return writeString(out, `"`+s+`"`)
	case cbor.TypeTextString:
		s, err := r.Text()
		if err != nil {
			return err
		}
		return writeJSONString(out, s)
	case cbor.TypeTag:
		// The tag number is read but discarded; the tagged content is never
		// consumed, so the cursor stays at the failure point
		if _, err := r.Tag(); err != nil {
			return err
		}
		return ErrUnsupportedType
	case cbor.TypeSimple:
		v, err := r.Simple()
		if err != nil {
			return err
		}
		if err := writeString(out, `"`+formatSimple(v)+`"`); err != nil {
			return err
		}
	case cbor.TypeNull:
		if err := writeString(out, "null"); err != nil {
			return err
		}
	case cbor.TypeUndefined:
		// CBOR undefined has no JSON equivalent; use a string sentinel
		if err := writeString(out, `"undefined"`); err != nil {
			return err
		}
	case cbor.TypeBoolean:
		v, err := r.Bool()
		if err != nil {
			return err
		}
		if err := writeString(out, strconv.FormatBool(v)); err != nil {
			return err
		}
	case cbor.TypeFloat32, cbor.TypeFloat64:
		v, err := r.Float64()
		if err != nil {
			return err
		}
		if err := writeString(out, formatFloat(v)); err != nil {
			return err
		}
	case cbor.TypeHalfFloat:
		return ErrUnsupportedType
	default:
		return ErrUnknownType
	}
	return r.Advance()
}

// containerToJSON walks an array or map, emitting brackets and elements. On
// any failure inside the container the parent cursor is synchronized to the
// child's position before the error is returned, so Position reports where
// transcoding stopped.
func containerToJSON(out io.Writer, r *cbor.Reader, flags Flags, typ cbor.Type) error {
	child, err := r.Enter()
	if err != nil {
		return err
	}
	open, closing := "[", "]"
	if typ == cbor.TypeMap {
		open, closing = "{", "}"
	}
	if err := writeString(out, open); err != nil {
		r.Sync(child)
		return err
	}
	if typ == cbor.TypeMap {
		err = mapToJSON(out, child, flags)
	} else {
		err = arrayToJSON(out, child, flags)
	}
	if err != nil {
		r.Sync(child)
		return err
	}
	if err := writeString(out, closing); err != nil {
		r.Sync(child)
		return err
	}
	return r.Leave(child)
}

// arrayToJSON emits the comma-separated elements of an entered array.
func arrayToJSON(out io.Writer, r *cbor.Reader, flags Flags) error {
	comma := ""
	for !r.AtEnd() {
		if err := writeString(out, comma); err != nil {
			return err
		}
		comma = ","
		if err := valueToJSON(out, r, flags); err != nil {
			return err
		}
	}
	return nil
}

// mapToJSON emits the comma-separated entries of an entered map. Keys must
// be text strings unless StringifyMapKeys allows converting other scalars.
func mapToJSON(out io.Writer, r *cbor.Reader, flags Flags) error {
	comma := ""
	for !r.AtEnd() {
		if err := writeString(out, comma); err != nil {
			return err
		}
		comma = ","
		switch {
		case r.Type() == cbor.TypeTextString:
			key, err := r.Text()
			if err != nil {
				return err
			}
			if err := writeJSONString(out, key); err != nil {
				return err
			}
		case flags&StringifyMapKeys != 0:
			key, err := stringifyMapKey(r)
			if err != nil {
				return err
			}
			// Stringified keys are plain ASCII tokens; quoting is enough
			if err := writeString(out, `"`+key+`"`); err != nil {
				return err
			}
		default:
			return ErrMapKeyNotString
		}
		if err := writeString(out, ":"); err != nil {
			return err
		}
		if err := valueToJSON(out, r, flags); err != nil {
			return err
		}
	}
	return nil
}
