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
	"io"
)

// appendJSONString appends s to buf as a quoted JSON string, escaping
// quotes, backslashes, and control characters. All other bytes pass through
// untouched; multi-byte UTF-8 sequences are >= 0x80 per byte, so the
// byte-wise loop never splits them. Validity of the UTF-8 itself is the
// cursor's job.
func appendJSONString(buf []byte, s string) []byte {
	buf = append(buf, '"')
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch b {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			if b < 0x20 {
				buf = append(buf, fmt.Sprintf(`\u%04x`, b)...)
			} else {
				buf = append(buf, b)
			}
		}
	}
	return append(buf, '"')
}

// writeJSONString writes s to out as a quoted, escaped JSON string.
func writeJSONString(out io.Writer, s string) error {
	_, err := out.Write(appendJSONString(make([]byte, 0, len(s)+2), s))
	return err
}

// writeString writes a pre-formatted JSON token to out.
func writeString(out io.Writer, s string) error {
	_, err := io.WriteString(out, s)
	return err
}
