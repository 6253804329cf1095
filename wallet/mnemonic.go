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

package wallet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blinklabs-io/gonano/ledger"
	"github.com/tyler-smith/go-bip39"
)

var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// SeedToMnemonic renders a seed as a 24-word BIP39 mnemonic. The seed is used
// directly as the mnemonic entropy.
func SeedToMnemonic(seed ledger.Seed) (string, error) {
	mnemonic, err := bip39.NewMnemonic(seed[:])
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// SeedFromMnemonic recovers the seed from a 24-word BIP39 mnemonic
func SeedFromMnemonic(mnemonic string) (ledger.Seed, error) {
	var seed ledger.Seed
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return seed, fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}
	if len(entropy) != ledger.SeedSize {
		return seed, fmt.Errorf(
			"%w: %d words carry %d bytes, expected %d",
			ErrInvalidMnemonic,
			len(strings.Fields(mnemonic)),
			len(entropy),
			ledger.SeedSize,
		)
	}
	copy(seed[:], entropy)
	return seed, nil
}

// Mnemonic returns the wallet seed as a 24-word BIP39 mnemonic
func (w *Wallet) Mnemonic() (string, error) {
	return SeedToMnemonic(w.seed)
}

// NewFromMnemonic is New with the seed recovered from a mnemonic
func NewFromMnemonic(
	l *ledger.Ledger,
	mnemonic string,
	prefix ledger.Prefix,
	withBaseAccount bool,
) (*Wallet, error) {
	seed, err := SeedFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	return New(l, seed, prefix, withBaseAccount)
}
