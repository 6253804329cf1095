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
	"regexp"
	"unicode/utf8"

	"github.com/blinklabs-io/gonano/base32"
)

// AddressValidity is the outcome of validating an address string
type AddressValidity int

const (
	AddressValid AddressValidity = iota
	AddressInvalidLength
	AddressInvalidEncoding
	AddressInvalidChecksum
	AddressInvalidPrefix
	AddressInvalidOther
)

var addressValidityNames = map[AddressValidity]string{
	AddressValid:           "valid",
	AddressInvalidLength:   "invalid length",
	AddressInvalidEncoding: "invalid encoding",
	AddressInvalidChecksum: "invalid checksum",
	AddressInvalidPrefix:   "invalid prefix",
	AddressInvalidOther:    "invalid",
}

func (v AddressValidity) String() string {
	if name, ok := addressValidityNames[v]; ok {
		return name
	}
	return "unknown"
}

var addressPattern = regexp.MustCompile(`^(nano|xrb|ban)_[13][1-9a-km-z]{59}$`)

// ValidateAddress classifies s as exactly one AddressValidity. It accepts any
// input, including empty and non-UTF-8 strings.
func (l *Ledger) ValidateAddress(s string) AddressValidity {
	_, encoded, checksum, ok := SplitAddress(s)
	if !ok {
		return AddressInvalidPrefix
	}
	if !addressPattern.MatchString(s) {
		if encoded == "" || (encoded[0] != '1' && encoded[0] != '3') {
			return AddressInvalidEncoding
		}
		segmentLength := utf8.RuneCountInString(encoded) +
			utf8.RuneCountInString(checksum)
		if segmentLength != base32.EncodedPublicKeyLength+base32.ChecksumLength {
			return AddressInvalidLength
		}
		return AddressInvalidOther
	}
	publicKey, err := DecodePublicKey(encoded)
	if err != nil {
		return AddressInvalidEncoding
	}
	if l.Checksum(publicKey) != checksum {
		return AddressInvalidChecksum
	}
	return AddressValid
}

// IsValidAddress is a shorthand for ValidateAddress(s) == AddressValid
func (l *Ledger) IsValidAddress(s string) bool {
	return l.ValidateAddress(s) == AddressValid
}
