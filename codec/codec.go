// Copyright 2025 Blink Labs Software
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

// Package codec provides the lossless conversions between raw bytes,
// hexadecimal strings and fixed-width bit strings that the address and
// block encodings are built from.
//
// All padding is applied at the front, so padded values keep big-endian
// meaning.
package codec

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"
)

// BytesToHex renders b as uppercase hex, two digits per byte
func BytesToHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// HexToBytes decodes a hex string of either case.
//
// Decoding is lenient: it stops at the first digit pair that is not valid
// hex, and a trailing single digit is decoded as a one-digit value. Callers
// that need strict validation should use encoding/hex directly.
func HexToBytes(s string) []byte {
	return parseChunks(s, 2, 16)
}

// BytesToBinaryString renders each byte of b as exactly 8 binary digits and
// left-pads the result with '0' to minLength. Longer results are returned as-is.
func BytesToBinaryString(b []byte, minLength int) string {
	var sb strings.Builder
	bitLen := len(b) * 8
	if minLength > bitLen {
		sb.Grow(minLength)
		sb.WriteString(strings.Repeat("0", minLength-bitLen))
	} else {
		sb.Grow(bitLen)
	}
	for _, v := range b {
		digits := strconv.FormatUint(uint64(v), 2)
		sb.WriteString(strings.Repeat("0", 8-len(digits)))
		sb.WriteString(digits)
	}
	return sb.String()
}

// BinaryStringToBytes consumes s in 8-character chunks from the left. A final
// chunk shorter than 8 characters is parsed as-is, with fewer significant
// bits. Parsing stops at the first chunk that is not a binary number.
func BinaryStringToBytes(s string) []byte {
	return parseChunks(s, 8, 2)
}

// PadLeft prepends zero bytes to b until it is length bytes long. It never
// truncates: b is returned unchanged when it is already long enough.
func PadLeft(b []byte, length int) []byte {
	if len(b) >= length {
		return b
	}
	ret := make([]byte, length)
	copy(ret[length-len(b):], b)
	return ret
}

// Uint32ToBytes returns the big-endian encoding of v
func Uint32ToBytes(v uint32) []byte {
	return binary.BigEndian.AppendUint32(nil, v)
}

func parseChunks(s string, chunkSize int, base int) []byte {
	ret := make([]byte, 0, (len(s)+chunkSize-1)/chunkSize)
	for i := 0; i < len(s); i += chunkSize {
		end := min(i+chunkSize, len(s))
		v, err := strconv.ParseUint(s[i:end], base, 8)
		if err != nil {
			break
		}
		ret = append(ret, byte(v))
	}
	return ret
}
