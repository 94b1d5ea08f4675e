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
	"strconv"

	"github.com/blinklabs-io/cborjson/cbor"
)

// stringifyMapKey converts the non-text-string map key at the cursor into
// the bare token text for a JSON object key and advances past it. The map
// walker adds the surrounding quotes. Text-string keys never reach here;
// they are handled directly by the walker.
func stringifyMapKey(r *cbor.Reader) (string, error) {
	var key string
	switch typ := r.Type(); typ {
	case cbor.TypeArray, cbor.TypeMap:
		// No sensible JSON object key exists for these
		return "", ErrMapKeyIsAggregate
	case cbor.TypeUnsignedInt:
		v, err := r.Uint64()
		if err != nil {
			return "", err
		}
		key = strconv.FormatUint(v, 10)
	case cbor.TypeNegativeInt:
		m, err := r.RawUint64()
		if err != nil {
			return "", err
		}
		key = formatNegInt(m)
	case cbor.TypeByteString:
		// Bytes() advances past the string itself
		return dumpByteStringBase64URL(r)
	case cbor.TypeTag:
		if _, err := r.Tag(); err != nil {
			return "", err
		}
		return "", ErrUnsupportedType
	case cbor.TypeSimple:
		v, err := r.Simple()
		if err != nil {
			return "", err
		}
		key = formatSimple(v)
	case cbor.TypeNull:
		key = "null"
	case cbor.TypeUndefined:
		key = "undefined"
	case cbor.TypeBoolean:
		v, err := r.Bool()
		if err != nil {
			return "", err
		}
		key = strconv.FormatBool(v)
	case cbor.TypeFloat32, cbor.TypeFloat64:
		v, err := r.Float64()
		if err != nil {
			return "", err
		}
		key = formatKeyFloat(v)
	case cbor.TypeHalfFloat:
		return "", ErrUnsupportedType
	default:
		return "", ErrUnknownType
	}
	if err := r.Advance(); err != nil {
		return "", err
	}
	return key, nil
}
