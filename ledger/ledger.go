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
	"github.com/blinklabs-io/gonano/ed25519blake2b"
)

// Primitive is the hash and signature capability the ledger is built on
type Primitive interface {
	// KeyedHash returns an unkeyed BLAKE2b digest of message with size bytes of output
	KeyedHash(message []byte, size uint8) []byte
	// PublicKey derives the 32-byte public key for a 32-byte private key
	PublicKey(privateKey []byte) []byte
	// Sign returns the 64-byte signature of message
	Sign(privateKey, publicKey, message []byte) []byte
}

// Verifier is implemented by primitives that can also check signatures
type Verifier interface {
	Verify(publicKey, message, signature []byte) bool
}

// Ledger derives keys, encodes addresses and hashes blocks using its Primitive
type Ledger struct {
	primitive Primitive
}

// OptionFunc is a type that represents functions that modify the Ledger config
type OptionFunc func(*Ledger)

// WithPrimitive specifies the hash and signature primitive. The default is
// ed25519blake2b.Primitive
func WithPrimitive(primitive Primitive) OptionFunc {
	return func(l *Ledger) {
		l.primitive = primitive
	}
}

// New returns a Ledger configured with the provided options
func New(opts ...OptionFunc) *Ledger {
	l := &Ledger{}
	for _, opt := range opts {
		opt(l)
	}
	if l.primitive == nil {
		l.primitive = ed25519blake2b.Primitive{}
	}
	return l
}

var defaultLedger = New()

// Default returns a shared Ledger using the default primitive
func Default() *Ledger {
	return defaultLedger
}

// Primitive returns the configured primitive
func (l *Ledger) Primitive() Primitive {
	return l.primitive
}

// hash calls the primitive and copies its output into a buffer of exactly
// size bytes
func (l *Ledger) hash(message []byte, size uint8) []byte {
	ret := make([]byte, size)
	copy(ret, l.primitive.KeyedHash(message, size))
	return ret
}
