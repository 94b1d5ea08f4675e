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
	"fmt"
	"math"
	"strconv"
	"strings"
)

// formatNegInt renders a negative integer from its encoded magnitude m,
// which denotes the value -1-m. Magnitudes at or beyond 2^63 fall outside
// the signed 64-bit range, so the decimal text is always built from unsigned
// arithmetic rather than a possibly-wrapped int64.
func formatNegInt(m uint64) string {
	if m == math.MaxUint64 {
		// -1-m is -2^64, whose magnitude itself overflows uint64
		return "-18446744073709551616"
	}
	return "-" + strconv.FormatUint(m+1, 10)
}

// formatFloat renders a float64 as a JSON number token. NaN and infinities
// have no JSON literal and become null. Exactly-integral values print as
// integer literals so no precision is lost to float formatting: magnitudes
// within the uint64 range print their exact digits, larger ones print the
// shortest digit string that parses back to the same bits. Everything else
// uses the shortest round-trippable form.
func formatFloat(val float64) string {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return "null"
	}
	abs := math.Abs(val)
	if abs < 1<<64 {
		if ival := uint64(abs); float64(ival) == abs {
			if val < 0 {
				return "-" + strconv.FormatUint(ival, 10)
			}
			return strconv.FormatUint(ival, 10)
		}
	} else if math.Trunc(val) == val {
		return strconv.FormatFloat(val, 'f', -1, 64)
	}
	return strconv.FormatFloat(val, 'g', -1, 64)
}

// formatKeyFloat renders a float64 as map key text. Unlike value position,
// keys use a fixed 19-significant-digit form: the goal is an unambiguous
// stable key, not the shortest round-trippable token. Go keeps trailing
// zeros at an explicit 'g' precision where C's %g drops them, so the
// mantissa is trimmed after formatting.
func formatKeyFloat(val float64) string {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return "null"
	}
	s := strconv.FormatFloat(val, 'g', 19, 64)
	mant, exp := s, ""
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		mant, exp = s[:i], s[i:]
	}
	if strings.ContainsRune(mant, '.') {
		mant = strings.TrimRight(mant, "0")
		mant = strings.TrimRight(mant, ".")
	}
	return mant + exp
}

// formatSimple renders an uninterpreted simple value's numeric code.
func formatSimple(code uint8) string {
	return fmt.Sprintf("simple(%d)", code)
}
