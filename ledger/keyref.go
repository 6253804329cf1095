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
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// KeyRefKind identifies which form a KeyRef was supplied in
type KeyRefKind uint8

const (
	KeyRefNone KeyRefKind = iota
	KeyRefRaw
	KeyRefHex
	KeyRefAddress
)

func (k KeyRefKind) String() string {
	switch k {
	case KeyRefRaw:
		return "raw"
	case KeyRefHex:
		return "hex"
	case KeyRefAddress:
		return "address"
	default:
		return "none"
	}
}

// KeyRef is a 32-byte key given as raw bytes, as 64 hex characters or as an
// address. It is resolved to raw bytes with Ledger.ResolveKey.
type KeyRef struct {
	kind  KeyRefKind
	raw   PublicKey
	value string
}

// RawKey references a key by its bytes
func RawKey(key PublicKey) KeyRef {
	return KeyRef{kind: KeyRefRaw, raw: key}
}

// HexKey references a key by its hex form
func HexKey(s string) KeyRef {
	return KeyRef{kind: KeyRefHex, value: s}
}

// AddressKey references a key by an address
func AddressKey(s string) KeyRef {
	return KeyRef{kind: KeyRefAddress, value: s}
}

// AddressRef references the key of an already parsed Address
func AddressRef(addr Address) KeyRef {
	return AddressKey(addr.String())
}

// ParseKeyRef classifies s as an address when it starts with a recognized
// prefix and as hex otherwise. No validation happens until the key is
// resolved.
func ParseKeyRef(s string) KeyRef {
	if _, _, _, ok := SplitAddress(s); ok {
		return AddressKey(s)
	}
	return HexKey(s)
}

func (r KeyRef) Kind() KeyRefKind {
	return r.kind
}

// IsZero returns whether r references nothing
func (r KeyRef) IsZero() bool {
	return r.kind == KeyRefNone
}

// String returns the key as it was supplied. Raw keys render as uppercase hex.
func (r KeyRef) String() string {
	switch r.kind {
	case KeyRefRaw:
		return r.raw.String()
	case KeyRefHex, KeyRefAddress:
		return r.value
	default:
		return ""
	}
}

func (r KeyRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

func (r *KeyRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = ParseKeyRef(s)
	return nil
}

// ResolveKey returns the 32 bytes a KeyRef stands for. Hex forms need exactly
// 64 hex characters and address forms must validate in full.
func (l *Ledger) ResolveKey(r KeyRef) (PublicKey, error) {
	var ret PublicKey
	switch r.kind {
	case KeyRefRaw:
		return r.raw, nil
	case KeyRefHex:
		if len(r.value) != PublicKeySize*2 {
			return ret, fmt.Errorf(
				"%w: hex key has %d characters, expected %d",
				ErrInvalidKeyRef,
				len(r.value),
				PublicKeySize*2,
			)
		}
		if _, err := hex.Decode(ret[:], []byte(r.value)); err != nil {
			return PublicKey{}, fmt.Errorf("%w: %w", ErrInvalidKeyRef, err)
		}
		return ret, nil
	case KeyRefAddress:
		addr, err := l.ParseAddress(r.value)
		if err != nil {
			return ret, err
		}
		return addr.PublicKey(), nil
	default:
		return ret, fmt.Errorf("%w: empty", ErrInvalidKeyRef)
	}
}
