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
	"crypto/rand"
	"fmt"

	"github.com/blinklabs-io/gonano/ledger"
)

// Wallet is a seed together with the accounts derived from it so far
type Wallet struct {
	ledger   *ledger.Ledger
	seed     ledger.Seed
	prefix   ledger.Prefix
	accounts *AccountSet
}

// GenerateSeed returns a new random seed
func GenerateSeed() (ledger.Seed, error) {
	var seed ledger.Seed
	if _, err := rand.Read(seed[:]); err != nil {
		return seed, fmt.Errorf("failed to generate seed: %w", err)
	}
	return seed, nil
}

// SeedFromMessage derives a seed from a passphrase-like message as the
// 32-byte hash of its UTF-8 bytes. Anyone who knows the message can rebuild
// the seed.
func SeedFromMessage(l *ledger.Ledger, message string) ledger.Seed {
	if l == nil {
		l = ledger.Default()
	}
	var seed ledger.Seed
	copy(seed[:], l.Primitive().KeyedHash([]byte(message), ledger.SeedSize))
	return seed
}

// New returns a wallet for seed whose addresses use prefix. The account at
// index 0 is derived right away when withBaseAccount is set. A nil ledger
// selects ledger.Default().
func New(
	l *ledger.Ledger,
	seed ledger.Seed,
	prefix ledger.Prefix,
	withBaseAccount bool,
) (*Wallet, error) {
	if l == nil {
		l = ledger.Default()
	}
	if !prefix.Valid() {
		return nil, fmt.Errorf("%w: %q", ledger.ErrInvalidPrefix, string(prefix))
	}
	w := &Wallet{
		ledger:   l,
		seed:     seed,
		prefix:   prefix,
		accounts: NewAccountSet(),
	}
	if withBaseAccount {
		if _, err := w.NewAccount(); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func (w *Wallet) Seed() ledger.Seed {
	return w.seed
}

func (w *Wallet) Prefix() ledger.Prefix {
	return w.prefix
}

func (w *Wallet) Accounts() *AccountSet {
	return w.accounts
}

// NewAccount derives the account after the highest index in the wallet and
// adds it
func (w *Wallet) NewAccount() (ledger.Account, error) {
	return w.accounts.addNext(func(index uint32) (ledger.Account, error) {
		return w.ledger.NewAccount(w.seed, index, w.prefix)
	})
}

// Account returns the account at index, deriving and adding it when missing
func (w *Wallet) Account(index uint32) (ledger.Account, error) {
	if account, ok := w.accounts.Get(index); ok {
		return account, nil
	}
	account, err := w.ledger.NewAccount(w.seed, index, w.prefix)
	if err != nil {
		return ledger.Account{}, err
	}
	if err := w.accounts.Add(account); err != nil {
		// Another caller added it first
		if existing, ok := w.accounts.Get(index); ok {
			return existing, nil
		}
		return ledger.Account{}, err
	}
	return account, nil
}

// Find returns the stored account whose key matches publicKey
func (w *Wallet) Find(publicKey ledger.PublicKey) (ledger.Account, bool) {
	for _, account := range w.accounts.All() {
		if account.Owns(publicKey) {
			return account, true
		}
	}
	return ledger.Account{}, false
}
