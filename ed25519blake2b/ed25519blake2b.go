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

// Package ed25519blake2b implements the signature scheme used by Nano
// accounts: Ed25519 (RFC 8032) with BLAKE2b-512 in place of SHA-512 for key
// expansion, nonce generation and the challenge hash. It also provides the
// variable-length BLAKE2b hash used for key derivation, checksums and block
// hashes.
//
// Keys and signatures are byte-compatible with standard Ed25519 encodings,
// but are not interchangeable with crypto/ed25519 because of the hash swap.
package ed25519blake2b

import (
	"crypto/subtle"
	"fmt"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/blake2b"
)

const (
	// PrivateKeySize is the size of a private key (seed) in bytes
	PrivateKeySize = 32

	// PublicKeySize is the size of a public key in bytes
	PublicKeySize = 32

	// SignatureSize is the size of a signature in bytes
	SignatureSize = 64

	// MaxHashSize is the largest output size supported by Hash
	MaxHashSize = blake2b.Size
)

// Hash returns the unkeyed BLAKE2b digest of message with an output of size
// bytes. It panics if size is not between 1 and 64.
func Hash(message []byte, size int) []byte {
	h, err := blake2b.New(size, nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error creating blake2b hash of size %d: %s",
				size,
				err,
			),
		)
	}
	h.Write(message)
	return h.Sum(nil)
}

// expandedKey holds the clamped secret scalar and the nonce prefix derived
// from a private key
type expandedKey struct {
	scalar *edwards25519.Scalar
	prefix []byte
}

func expand(privateKey []byte) expandedKey {
	if len(privateKey) != PrivateKeySize {
		panic(
			fmt.Sprintf(
				"bad private key length: %d, expected %d",
				len(privateKey),
				PrivateKeySize,
			),
		)
	}
	h := blake2b.Sum512(privateKey)
	s, err := edwards25519.NewScalar().SetBytesWithClamping(h[:32])
	if err != nil {
		panic(fmt.Sprintf("unexpected error clamping scalar: %s", err))
	}
	return expandedKey{
		scalar: s,
		prefix: h[32:],
	}
}

// NewKeyFromSeed derives the public key for a 32-byte private key. It panics
// if privateKey is not 32 bytes.
func NewKeyFromSeed(privateKey []byte) []byte {
	key := expand(privateKey)
	return (&edwards25519.Point{}).ScalarBaseMult(key.scalar).Bytes()
}

// Sign signs message with privateKey. The public key is passed in to avoid
// recomputing it; it must belong to privateKey or the signature will not
// verify. It panics on wrong key lengths.
func Sign(privateKey, publicKey, message []byte) []byte {
	if len(publicKey) != PublicKeySize {
		panic(
			fmt.Sprintf(
				"bad public key length: %d, expected %d",
				len(publicKey),
				PublicKeySize,
			),
		)
	}
	key := expand(privateKey)

	// r = H(prefix || M) mod L
	mh, _ := blake2b.New512(nil)
	mh.Write(key.prefix)
	mh.Write(message)
	r, err := edwards25519.NewScalar().SetUniformBytes(mh.Sum(nil))
	if err != nil {
		panic(fmt.Sprintf("unexpected error reducing nonce: %s", err))
	}
	R := (&edwards25519.Point{}).ScalarBaseMult(r)
	rBytes := R.Bytes()

	k := challenge(rBytes, publicKey, message)

	// S = k * s + r mod L
	S := edwards25519.NewScalar().MultiplyAdd(k, key.scalar, r)

	sig := make([]byte, SignatureSize)
	copy(sig[:32], rBytes)
	copy(sig[32:], S.Bytes())
	return sig
}

// Verify reports whether sig is a valid signature of message by publicKey.
// Malformed keys and signatures are reported as invalid.
func Verify(publicKey, message, sig []byte) bool {
	if len(publicKey) != PublicKeySize || len(sig) != SignatureSize {
		return false
	}
	A, err := (&edwards25519.Point{}).SetBytes(publicKey)
	if err != nil {
		return false
	}
	S, err := edwards25519.NewScalar().SetCanonicalBytes(sig[32:])
	if err != nil {
		return false
	}
	k := challenge(sig[:32], publicKey, message)

	// R' = S * B - k * A
	minusA := (&edwards25519.Point{}).Negate(A)
	R := (&edwards25519.Point{}).VarTimeDoubleScalarBaseMult(k, minusA, S)
	return subtle.ConstantTimeCompare(sig[:32], R.Bytes()) == 1
}

// challenge computes k = H(R || A || M) mod L
func challenge(rBytes, publicKey, message []byte) *edwards25519.Scalar {
	kh, _ := blake2b.New512(nil)
	kh.Write(rBytes)
	kh.Write(publicKey)
	kh.Write(message)
	k, err := edwards25519.NewScalar().SetUniformBytes(kh.Sum(nil))
	if err != nil {
		panic(fmt.Sprintf("unexpected error reducing challenge: %s", err))
	}
	return k
}

// Primitive exposes the package functions through the three-operation
// interface expected by the ledger package
type Primitive struct{}

// KeyedHash returns the BLAKE2b digest of message with size bytes of output.
// No key is used.
func (Primitive) KeyedHash(message []byte, size uint8) []byte {
	return Hash(message, int(size))
}

func (Primitive) PublicKey(privateKey []byte) []byte {
	return NewKeyFromSeed(privateKey)
}

func (Primitive) Sign(privateKey, publicKey, message []byte) []byte {
	return Sign(privateKey, publicKey, message)
}

func (Primitive) Verify(publicKey, message, sig []byte) bool {
	return Verify(publicKey, message, sig)
}
