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
	"strings"

	"github.com/blinklabs-io/cborjson/cbor"
)

// URL-safe base64 alphabet per RFC 4648 section 5
const base64urlAlphabet = "ABCDEFGH" + "IJKLMNOP" + "QRSTUVWX" + "YZabcdef" +
	"ghijklmn" + "opqrstuv" + "wxyz0123" + "456789-_"

// encodeBase64 encodes src using a 64-symbol alphabet plus a filler string
// emitted in place of the unused tail symbols. The empty filler produces
// unpadded output; "=" would produce conventional padded base64.
func encodeBase64(src []byte, alphabet string, filler string) string {
	var b strings.Builder
	b.Grow((len(src) + 2) / 3 * 4)
	var i int
	for ; i+3 <= len(src); i += 3 {
		// Read 3 bytes x 8 bits, write 4 symbols x 6 bits
		val := uint32(src[i])<<16 | uint32(src[i+1])<<8 | uint32(src[i+2])
		b.WriteByte(alphabet[val>>18&0x3f])
		b.WriteByte(alphabet[val>>12&0x3f])
		b.WriteByte(alphabet[val>>6&0x3f])
		b.WriteByte(alphabet[val&0x3f])
	}
	// 1 or 2 bytes may be left over
	switch len(src) - i {
	case 1:
		val := uint32(src[i]) << 16
		b.WriteByte(alphabet[val>>18&0x3f])
		b.WriteByte(alphabet[val>>12&0x3f])
		b.WriteString(filler)
		b.WriteString(filler)
	case 2:
		val := uint32(src[i])<<16 | uint32(src[i+1])<<8
		b.WriteByte(alphabet[val>>18&0x3f])
		b.WriteByte(alphabet[val>>12&0x3f])
		b.WriteByte(alphabet[val>>6&0x3f])
		b.WriteString(filler)
	}
	return b.String()
}

// dumpByteStringBase64URL consumes the byte string at the cursor and returns
// its unpadded base64url rendering.
func dumpByteStringBase64URL(r *cbor.Reader) (string, error) {
	raw, err := r.Bytes()
	if err != nil {
		return "", err
	}
	return encodeBase64(raw, base64urlAlphabet, ""), nil
}
