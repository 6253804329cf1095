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
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/gonano/codec"
)

const (
	SeedSize       = 32
	PrivateKeySize = 32
	PublicKeySize  = 32
	BlockHashSize  = 32
	SignatureSize  = 64
)

// Seed is the 32-byte secret that every account of a wallet is derived from
type Seed [SeedSize]byte

// PrivateKey is the 32-byte signing key of one account
type PrivateKey [PrivateKeySize]byte

// PublicKey is the 32-byte account key. Its encoded form makes up the body of
// an address.
type PublicKey [PublicKeySize]byte

// BlockHash is the 32-byte hash of a state block preimage
type BlockHash [BlockHashSize]byte

// Signature is a 64-byte signature over a block hash
type Signature [SignatureSize]byte

func decodeHex(s string, size int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, fmt.Errorf(
			"%w: got %d bytes, expected %d",
			ErrInvalidKeyLength,
			len(b),
			size,
		)
	}
	return b, nil
}

func fromHex32[T ~[32]byte](s string) (T, error) {
	var ret T
	b, err := decodeHex(s, len(ret))
	if err != nil {
		return ret, err
	}
	copy(ret[:], b)
	return ret, nil
}

// NewSeedFromHex decodes a 64-character hex seed
func NewSeedFromHex(s string) (Seed, error) {
	return fromHex32[Seed](s)
}

// NewPrivateKeyFromHex decodes a 64-character hex private key
func NewPrivateKeyFromHex(s string) (PrivateKey, error) {
	return fromHex32[PrivateKey](s)
}

// NewPublicKeyFromHex decodes a 64-character hex public key
func NewPublicKeyFromHex(s string) (PublicKey, error) {
	return fromHex32[PublicKey](s)
}

// NewBlockHashFromHex decodes a 64-character hex block hash
func NewBlockHashFromHex(s string) (BlockHash, error) {
	return fromHex32[BlockHash](s)
}

// NewSignatureFromHex decodes a 128-character hex signature
func NewSignatureFromHex(s string) (Signature, error) {
	var ret Signature
	b, err := decodeHex(s, SignatureSize)
	if err != nil {
		return ret, err
	}
	copy(ret[:], b)
	return ret, nil
}

func (s Seed) String() string {
	return codec.BytesToHex(s[:])
}

func (s Seed) Bytes() []byte {
	return s[:]
}

func (k PrivateKey) String() string {
	return codec.BytesToHex(k[:])
}

func (k PrivateKey) Bytes() []byte {
	return k[:]
}

func (k PublicKey) String() string {
	return codec.BytesToHex(k[:])
}

func (k PublicKey) Bytes() []byte {
	return k[:]
}

func (k PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *PublicKey) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	tmp, err := NewPublicKeyFromHex(s)
	if err != nil {
		return err
	}
	*k = tmp
	return nil
}

func (h BlockHash) String() string {
	return codec.BytesToHex(h[:])
}

func (h BlockHash) Bytes() []byte {
	return h[:]
}

// IsZero returns whether h is the all-zero hash used as the previous
// block of an account's first block
func (h BlockHash) IsZero() bool {
	return h == BlockHash{}
}

func (h BlockHash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *BlockHash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	tmp, err := NewBlockHashFromHex(s)
	if err != nil {
		return err
	}
	*h = tmp
	return nil
}

func (s Signature) String() string {
	return codec.BytesToHex(s[:])
}

func (s Signature) Bytes() []byte {
	return s[:]
}

func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Signature) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	tmp, err := NewSignatureFromHex(str)
	if err != nil {
		return err
	}
	*s = tmp
	return nil
}

// DerivePrivateKey derives the private key for an account index: the 32-byte
// hash of the seed followed by the big-endian index
func (l *Ledger) DerivePrivateKey(seed Seed, index uint32) PrivateKey {
	preimage := make([]byte, 0, SeedSize+4)
	preimage = append(preimage, seed[:]...)
	preimage = append(preimage, codec.Uint32ToBytes(index)...)
	var ret PrivateKey
	copy(ret[:], l.hash(preimage, PrivateKeySize))
	return ret
}

// DerivePublicKey derives the public key of a private key
func (l *Ledger) DerivePublicKey(privateKey PrivateKey) PublicKey {
	var ret PublicKey
	copy(ret[:], l.primitive.PublicKey(privateKey[:]))
	return ret
}

// Sign signs a block hash. The public key is derived from the private key
// when publicKey is nil.
func (l *Ledger) Sign(
	hash BlockHash,
	privateKey PrivateKey,
	publicKey *PublicKey,
) Signature {
	var pub PublicKey
	if publicKey != nil {
		pub = *publicKey
	} else {
		pub = l.DerivePublicKey(privateKey)
	}
	var ret Signature
	copy(ret[:], l.primitive.Sign(privateKey[:], pub[:], hash[:]))
	return ret
}

// Verify checks a signature over a block hash. It returns ErrVerifyUnsupported
// when the primitive does not implement Verifier.
func (l *Ledger) Verify(
	hash BlockHash,
	publicKey PublicKey,
	signature Signature,
) (bool, error) {
	v, ok := l.primitive.(Verifier)
	if !ok {
		return false, ErrVerifyUnsupported
	}
	return v.Verify(publicKey[:], hash[:], signature[:]), nil
}

// Account is the key pair and address derived for one index of a seed
type Account struct {
	Index      uint32     `json:"index"`
	PrivateKey PrivateKey `json:"-"`
	PublicKey  PublicKey  `json:"publicKey"`
	Address    Address    `json:"address"`
}

// NewAccount derives the account at index from seed, rendering its address
// with prefix
func (l *Ledger) NewAccount(
	seed Seed,
	index uint32,
	prefix Prefix,
) (Account, error) {
	privateKey := l.DerivePrivateKey(seed, index)
	publicKey := l.DerivePublicKey(privateKey)
	if !prefix.Valid() {
		return Account{}, fmt.Errorf("%w: %q", ErrInvalidPrefix, string(prefix))
	}
	return Account{
		Index:      index,
		PrivateKey: privateKey,
		PublicKey:  publicKey,
		Address:    l.NewAddress(publicKey, prefix),
	}, nil
}

// Owns returns whether the account's key matches publicKey
func (a Account) Owns(publicKey PublicKey) bool {
	return bytes.Equal(a.PublicKey[:], publicKey[:])
}
