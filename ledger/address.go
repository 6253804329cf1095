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

package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/blinklabs-io/gonano/base32"
	"github.com/blinklabs-io/gonano/codec"
)

// decodedKeyOffset is the number of leading bytes dropped from a decoded
// public key segment. The 264-bit decode result starts with 8 bits that
// carry only padding.
const decodedKeyOffset = 1

var ErrInvalidEncodedKey = errors.New("invalid encoded public key")

// Prefix is the human-readable network tag at the start of an address. It has
// no cryptographic meaning.
type Prefix string

const (
	PrefixNano Prefix = "nano_"
	PrefixXrb  Prefix = "xrb_"
	PrefixBan  Prefix = "ban_"
)

// Prefixes lists the recognized address prefixes in matching order
var Prefixes = []Prefix{PrefixNano, PrefixXrb, PrefixBan}

// Valid returns whether p is a recognized prefix
func (p Prefix) Valid() bool {
	return slices.Contains(Prefixes, p)
}

func (p Prefix) String() string {
	return string(p)
}

// ParsePrefix accepts a prefix with or without its trailing underscore
func ParsePrefix(s string) (Prefix, error) {
	if !strings.HasSuffix(s, "_") {
		s += "_"
	}
	p := Prefix(strings.ToLower(s))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPrefix, s)
	}
	return p, nil
}

// Address is a rendered account address
type Address struct {
	prefix    Prefix
	publicKey PublicKey
	encoded   string
	checksum  string
}

func (a Address) Prefix() Prefix {
	return a.prefix
}

func (a Address) PublicKey() PublicKey {
	return a.publicKey
}

// Encoded returns the 52-character public key segment
func (a Address) Encoded() string {
	return a.encoded
}

// Checksum returns the 8-character checksum segment
func (a Address) Checksum() string {
	return a.checksum
}

// WithPrefix returns the same account rendered under another prefix
func (a Address) WithPrefix(prefix Prefix) Address {
	a.prefix = prefix
	return a
}

// IsZero returns whether a is the zero Address value
func (a Address) IsZero() bool {
	return a.encoded == ""
}

func (a Address) String() string {
	if a.IsZero() {
		return ""
	}
	return string(a.prefix) + a.encoded + a.checksum
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	tmp, err := Default().ParseAddress(s)
	if err != nil {
		return err
	}
	*a = tmp
	return nil
}

// EncodePublicKey renders a public key as the 52-character address segment
func EncodePublicKey(publicKey PublicKey) string {
	ret, err := base32.NanoEncoding.Encode(
		publicKey[:],
		base32.PublicKeyBitLength,
	)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding public key: %s", err))
	}
	return ret
}

// DecodePublicKey recovers the public key from a 52-character address
// segment
func DecodePublicKey(encoded string) (PublicKey, error) {
	var ret PublicKey
	if len(encoded) != base32.EncodedPublicKeyLength {
		return ret, fmt.Errorf(
			"%w: length %d, expected %d",
			ErrInvalidEncodedKey,
			len(encoded),
			base32.EncodedPublicKeyLength,
		)
	}
	bits, err := base32.NanoEncoding.Decode(encoded)
	if err != nil {
		return ret, fmt.Errorf("%w: %w", ErrInvalidEncodedKey, err)
	}
	b := codec.BinaryStringToBytes(bits)
	if len(b) != decodedKeyOffset+PublicKeySize {
		return ret, fmt.Errorf(
			"%w: decoded to %d bytes",
			ErrInvalidEncodedKey,
			len(b),
		)
	}
	for _, pad := range b[:decodedKeyOffset] {
		if pad != 0 {
			return ret, fmt.Errorf(
				"%w: key exceeds 256 bits",
				ErrInvalidEncodedKey,
			)
		}
	}
	copy(ret[:], b[decodedKeyOffset:])
	return ret, nil
}

// Checksum computes the 8-character checksum segment for a public key: the
// 5-byte hash of the key, byte-reversed and encoded at 40 bits
func (l *Ledger) Checksum(publicKey PublicKey) string {
	digest := l.hash(publicKey[:], 5)
	slices.Reverse(digest)
	ret, err := base32.NanoEncoding.Encode(digest, base32.ChecksumBitLength)
	if err != nil {
		panic(fmt.Sprintf("unexpected error encoding checksum: %s", err))
	}
	return ret
}

// NewAddress renders the address of a public key under prefix
func (l *Ledger) NewAddress(publicKey PublicKey, prefix Prefix) Address {
	return Address{
		prefix:    prefix,
		publicKey: publicKey,
		encoded:   EncodePublicKey(publicKey),
		checksum:  l.Checksum(publicKey),
	}
}

// ParseAddress validates s and returns the decoded Address. Failures are
// returned as *AddressError.
func (l *Ledger) ParseAddress(s string) (Address, error) {
	if v := l.ValidateAddress(s); v != AddressValid {
		return Address{}, &AddressError{Address: s, Validity: v}
	}
	prefix, encoded, checksum, _ := SplitAddress(s)
	publicKey, err := DecodePublicKey(encoded)
	if err != nil {
		return Address{}, &AddressError{
			Address:  s,
			Validity: AddressInvalidEncoding,
		}
	}
	return Address{
		prefix:    prefix,
		publicKey: publicKey,
		encoded:   encoded,
		checksum:  checksum,
	}, nil
}

// SplitAddress separates an address into its prefix, encoded key and checksum
// segments. The checksum is the final 8 characters; when fewer remain after
// the prefix they all become the checksum and the encoded segment is empty.
// ok is false when no recognized prefix matches.
func SplitAddress(s string) (prefix Prefix, encoded, checksum string, ok bool) {
	for _, p := range Prefixes {
		if !strings.HasPrefix(s, string(p)) {
			continue
		}
		rest := []rune(s[len(p):])
		if len(rest) <= base32.ChecksumLength {
			return p, "", string(rest), true
		}
		split := len(rest) - base32.ChecksumLength
		return p, string(rest[:split]), string(rest[split:]), true
	}
	return "", "", "", false
}
