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

// Package base32 implements the 5-bits-per-character encoding used for the
// public key and checksum segments of account addresses.
//
// The alphabet leaves out visually ambiguous characters (0, 2, l and v) and
// is not RFC 4648 compatible. Bits are consumed MSB first and padding is
// applied at the front of the bit string, so the standard library's
// encoding/base32 cannot produce the same output.
package base32

import (
	"errors"
	"strconv"
	"strings"

	"github.com/blinklabs-io/gonano/codec"
)

const (
	// NanoAlphabet is the 32-character alphabet used in account addresses
	NanoAlphabet = "13456789abcdefghijkmnopqrstuwxyz"

	// BitsPerCharacter is the number of bits carried by one character
	BitsPerCharacter = 5

	// PublicKeyBitLength is the padded bit length of an encoded 32-byte public key
	PublicKeyBitLength = 260

	// ChecksumBitLength is the bit length of an encoded 5-byte checksum
	ChecksumBitLength = 40

	// DecodedBitLength is the length that decoded bit strings are padded to.
	// 52 characters carry 260 bits; the 4 extra zero bits make the result
	// byte-aligned, with the key starting after the first byte.
	DecodedBitLength = 264

	// EncodedPublicKeyLength is the number of characters in an encoded public key
	EncodedPublicKeyLength = PublicKeyBitLength / BitsPerCharacter

	// ChecksumLength is the number of characters in an encoded checksum
	ChecksumLength = ChecksumBitLength / BitsPerCharacter
)

var (
	ErrInvalidBitLength = errors.New("bit length is not a multiple of 5")
	ErrInputTooLong     = errors.New("encoded input exceeds 264 bits")
)

// CorruptInputError reports a character outside the alphabet
type CorruptInputError struct {
	Char   rune
	Offset int
}

func (e CorruptInputError) Error() string {
	return "illegal base32 character " + strconv.QuoteRune(e.Char) + " at offset " + strconv.Itoa(e.Offset)
}

// Encoding holds the forward and reverse lookup tables for an alphabet.
// It is never modified after NewEncoding returns and is safe for concurrent use.
type Encoding struct {
	encode [32]byte
	decode map[rune]string
}

// NanoEncoding is the shared encoding for account addresses
var NanoEncoding = NewEncoding(NanoAlphabet)

// NewEncoding builds the lookup tables for a 32-character alphabet. It panics
// if the alphabet does not have exactly 32 distinct single-byte characters.
func NewEncoding(alphabet string) *Encoding {
	if len(alphabet) != 32 {
		panic("encoding alphabet must be 32 bytes long")
	}
	e := &Encoding{
		decode: make(map[rune]string, 32),
	}
	for i := range len(alphabet) {
		c := rune(alphabet[i])
		if c >= 0x80 {
			panic("encoding alphabet must be ASCII")
		}
		if _, ok := e.decode[c]; ok {
			panic("encoding alphabet contains duplicate character " + strconv.QuoteRune(c))
		}
		e.encode[i] = alphabet[i]
		digits := strconv.FormatUint(uint64(i), 2)
		e.decode[c] = strings.Repeat("0", BitsPerCharacter-len(digits)) + digits
	}
	return e
}

// Encode renders src as a bit string left-padded to bitLength bits and maps
// every 5-bit group, from the start, through the alphabet
func (e *Encoding) Encode(src []byte, bitLength int) (string, error) {
	bits := codec.BytesToBinaryString(src, bitLength)
	if len(bits)%BitsPerCharacter != 0 {
		return "", ErrInvalidBitLength
	}
	var sb strings.Builder
	sb.Grow(len(bits) / BitsPerCharacter)
	for i := 0; i < len(bits); i += BitsPerCharacter {
		idx, err := strconv.ParseUint(bits[i:i+BitsPerCharacter], 2, 8)
		if err != nil {
			return "", err
		}
		sb.WriteByte(e.encode[idx])
	}
	return sb.String(), nil
}

// Decode maps every character of src back to its 5-bit code and returns the
// concatenated bit string left-padded with zeros to DecodedBitLength
func (e *Encoding) Decode(src string) (string, error) {
	var bitLen int
	for i, c := range src {
		if _, ok := e.decode[c]; !ok {
			return "", CorruptInputError{Char: c, Offset: i}
		}
		bitLen += BitsPerCharacter
	}
	if bitLen > DecodedBitLength {
		return "", ErrInputTooLong
	}
	var sb strings.Builder
	sb.Grow(DecodedBitLength)
	sb.WriteString(strings.Repeat("0", DecodedBitLength-bitLen))
	for _, c := range src {
		sb.WriteString(e.decode[c])
	}
	return sb.String(), nil
}
