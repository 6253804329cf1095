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

// Package ledger implements account keys, addresses and state blocks.
//
// # Key Files by Purpose
//
//   - ledger.go: the Primitive interface and the Ledger value that carries it
//   - keys.go: fixed-size key/hash types, key derivation, signing, accounts
//   - address.go: address encoding, checksums and splitting
//   - validate.go: the address validation pipeline
//   - keyref.go: KeyRef, the "raw key or address" field type
//   - block.go: state block preimage, hashing, signing and JSON
//   - error.go: error types
//
// Hashing and signing are delegated to a Primitive. The default is
// ed25519blake2b.Primitive; tests can inject a deterministic stub.
// Every operation is a pure function of its inputs, so a Ledger can be shared
// between goroutines without locking.
package ledger
