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
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is returned for CBOR constructs with no JSON
	// rendering in this package: tags and half-precision floats
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrUnknownType is returned when the cursor reports a value whose
	// encoding is invalid or unrecognized
	ErrUnknownType = errors.New("unknown type")

	// ErrMapKeyNotString is returned for a non-text-string map key when
	// StringifyMapKeys is not set
	ErrMapKeyNotString = errors.New("map key is not a string")

	// ErrMapKeyIsAggregate is returned when an array or map is used as a map
	// key, which has no JSON object key form even with StringifyMapKeys
	ErrMapKeyIsAggregate = errors.New("map key is an aggregate")
)

// TranscodeError wraps any failure from Transcode with the byte offset in
// the CBOR stream where transcoding stopped. The offset doubles as the
// resume point: the reader passed to Transcode is left positioned there.
type TranscodeError struct {
	Offset int
	Err    error
}

func (e *TranscodeError) Error() string {
	return fmt.Sprintf("transcode failed at offset %d: %s", e.Offset, e.Err)
}

func (e *TranscodeError) Unwrap() error {
	return e.Err
}
