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

// Package cborjson renders CBOR byte streams as JSON text, streaming the
// output as values are decoded rather than building an intermediate tree.
//
// The conversion is one-directional and deliberately lossy for CBOR
// constructs JSON cannot express:
//
//   - byte strings become unpadded base64url strings
//   - NaN and infinities become null
//   - undefined becomes the string "undefined"
//   - uninterpreted simple values become the string "simple(N)"
//   - tags and half-precision floats are rejected with ErrUnsupportedType
//   - non-string map keys are rejected unless StringifyMapKeys is set
//
// Integers are printed at full precision across the whole CBOR range,
// including negative values below the int64 minimum.
//
// Output already written to the sink is not rolled back on error; callers
// that need well-formed JSON on failure should buffer the output themselves.
package cborjson

import (
	"io"

	"github.com/blinklabs-io/cborjson/cbor"
)

// Flags adjusts how CBOR constructs without a native JSON equivalent are
// handled.
type Flags uint32

const (
	// StringifyMapKeys converts non-text-string map keys into JSON strings
	// instead of failing with ErrMapKeyNotString. Arrays and maps used as
	// keys still fail, with ErrMapKeyIsAggregate.
	StringifyMapKeys Flags = 1 << iota
)

// Transcode writes the JSON rendering of the value at the reader's current
// position to out, leaving the reader at the first position after the
// consumed value. No trailing newline or whitespace is emitted.
//
// On failure the reader is left at the offset where transcoding stopped and
// the returned error is a *TranscodeError carrying that offset and wrapping
// the cause, so errors.Is works against the package sentinels and against
// errors from the sink.
func Transcode(out io.Writer, r *cbor.Reader, flags Flags) error {
	if err := valueToJSON(out, r, flags); err != nil {
		return &TranscodeError{Offset: r.Position(), Err: err}
	}
	return nil
}
