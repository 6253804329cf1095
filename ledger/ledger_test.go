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
	"sync"
	"testing"

	"github.com/blinklabs-io/gonano/ed25519blake2b"
	"github.com/blinklabs-io/gonano/internal/test"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestDefaultPrimitive(t *testing.T) {
	assert.Equal(t, ed25519blake2b.Primitive{}, New().Primitive())
	assert.Same(t, Default(), Default())
	stub := &test.StubPrimitive{}
	assert.Same(t, stub, New(WithPrimitive(stub)).Primitive())
}

func TestPrimitiveDelegation(t *testing.T) {
	stub := &test.StubPrimitive{}
	l := New(WithPrimitive(stub))
	seed := Seed{0: 0x01, 31: 0x02}
	priv := l.DerivePrivateKey(seed, 0x01020304)
	hashCalls := stub.CallsTo("KeyedHash")
	if len(hashCalls) != 1 {
		t.Fatalf("expected 1 hash call, got %d", len(hashCalls))
	}
	expectedPreimage := append(seed[:], 0x01, 0x02, 0x03, 0x04)
	assert.Equal(t, expectedPreimage, hashCalls[0].Message)
	assert.Equal(t, uint8(PrivateKeySize), hashCalls[0].Size)

	pub := l.DerivePublicKey(priv)
	for i := range pub {
		assert.Equal(t, ^priv[i], pub[i])
	}

	hash := BlockHash{0: 0x42}
	sig := l.Sign(hash, priv, nil)
	assert.Len(t, stub.CallsTo("PublicKey"), 2)
	assert.Equal(t, priv[:], sig[:32])
	assert.Equal(t, hash[:], sig[32:])
	signCalls := stub.CallsTo("Sign")
	if assert.Len(t, signCalls, 1) {
		assert.Equal(t, hash[:], signCalls[0].Message)
	}
}

func TestConcurrentDerivation(t *testing.T) {
	defer goleak.VerifyNone(t)
	l := New()
	seed := Seed(test.DecodeHex32("489544D50CE37B138C740189AF688067D6506423E2798B67C5091D27ABB999DA"))
	expected := make([]Account, 16)
	for i := range expected {
		account, err := l.NewAccount(seed, uint32(i), PrefixNano)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		expected[i] = account
	}
	var wg sync.WaitGroup
	results := make([]Account, len(expected))
	for i := range expected {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			account, err := l.NewAccount(seed, uint32(idx), PrefixNano)
			if err != nil {
				return
			}
			if l.ValidateAddress(account.Address.String()) != AddressValid {
				return
			}
			results[idx] = account
		}(i)
	}
	wg.Wait()
	assert.Equal(t, expected, results)
}
