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

// Major types (top 3 bits of the initial byte)
const (
	MajorUnsignedInt byte = 0
	MajorNegativeInt byte = 1
	MajorByteString  byte = 2
	MajorTextString  byte = 3
	MajorArray       byte = 4
	MajorMap         byte = 5
	MajorTag         byte = 6
	MajorSimple      byte = 7
)

// Additional-info values (bottom 5 bits of the initial byte) that select how
// many argument bytes follow
const (
	addlOneByte    byte = 24
	addlTwoBytes   byte = 25
	addlFourBytes  byte = 26
	addlEightBytes byte = 27
	addlIndefinite byte = 31
)

// Terminates an indefinite-length container or string
const breakByte byte = 0xff

// Major type 7 subtypes
const (
	simpleFalse     byte = 20
	simpleTrue      byte = 21
	simpleNull      byte = 22
	simpleUndefined byte = 23
	subtypeHalf     byte = 25
	subtypeFloat    byte = 26
	subtypeDouble   byte = 27
)

// Type identifies the kind of CBOR value a Reader is positioned at. It
// resolves major type 7 into its distinct subtypes, since those behave
// nothing like each other from a consumer's point of view.
type Type uint8

const (
	TypeInvalid Type = iota
	TypeUnsignedInt
	TypeNegativeInt
	TypeByteString
	TypeTextString
	TypeArray
	TypeMap
	TypeTag
	TypeBoolean
	TypeNull
	TypeUndefined
	TypeSimple
	TypeHalfFloat
	TypeFloat32
	TypeFloat64
)

func (t Type) String() string {
	switch t {
	case TypeUnsignedInt:
		return "unsigned integer"
	case TypeNegativeInt:
		return "negative integer"
	case TypeByteString:
		return "byte string"
	case TypeTextString:
		return "text string"
	case TypeArray:
		return "array"
	case TypeMap:
		return "map"
	case TypeTag:
		return "tag"
	case TypeBoolean:
		return "boolean"
	case TypeNull:
		return "null"
	case TypeUndefined:
		return "undefined"
	case TypeSimple:
		return "simple value"
	case TypeHalfFloat:
		return "half-precision float"
	case TypeFloat32:
		return "single-precision float"
	case TypeFloat64:
		return "double-precision float"
	default:
		return "invalid"
	}
}
