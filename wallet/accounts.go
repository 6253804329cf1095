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
	"cmp"
	"errors"
	"math"
	"slices"
	"sync"

	"github.com/blinklabs-io/gonano/ledger"
	"github.com/jinzhu/copier"
)

var (
	ErrIndexExists   = errors.New("account index already exists")
	ErrIndexOverflow = errors.New("no account index left")
)

// PublicAccount is the part of an account that may be shown or stored
// without exposing its private key
type PublicAccount struct {
	Index     uint32           `json:"index"`
	PublicKey ledger.PublicKey `json:"publicKey"`
	Address   ledger.Address   `json:"address"`
}

// AccountSet holds the derived accounts of a wallet keyed by index. It is safe
// for concurrent use.
type AccountSet struct {
	mu       sync.RWMutex
	accounts map[uint32]ledger.Account
}

func NewAccountSet() *AccountSet {
	return &AccountSet{
		accounts: make(map[uint32]ledger.Account),
	}
}

// Get returns the account at index
func (s *AccountSet) Get(index uint32) (ledger.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[index]
	return account, ok
}

// Add stores an account, failing with ErrIndexExists when its index is taken
func (s *AccountSet) Add(account ledger.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addLocked(account)
}

func (s *AccountSet) addLocked(account ledger.Account) error {
	if _, ok := s.accounts[account.Index]; ok {
		return ErrIndexExists
	}
	s.accounts[account.Index] = account
	return nil
}

// addNext derives and stores the account after the highest index while
// holding the lock, so concurrent callers get distinct indexes
func (s *AccountSet) addNext(
	derive func(index uint32) (ledger.Account, error),
) (ledger.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	last := s.lastIndexLocked()
	if last >= math.MaxUint32 {
		return ledger.Account{}, ErrIndexOverflow
	}
	account, err := derive(uint32(last + 1))
	if err != nil {
		return ledger.Account{}, err
	}
	if err := s.addLocked(account); err != nil {
		return ledger.Account{}, err
	}
	return account, nil
}

// Remove deletes the account at index, if present
func (s *AccountSet) Remove(index uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.accounts, index)
}

func (s *AccountSet) Contains(index uint32) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.accounts[index]
	return ok
}

func (s *AccountSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

// LastIndex returns the highest stored index, or -1 when the set is empty
func (s *AccountSet) LastIndex() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastIndexLocked()
}

func (s *AccountSet) lastIndexLocked() int64 {
	ret := int64(-1)
	for index := range s.accounts {
		ret = max(ret, int64(index))
	}
	return ret
}

// Indexes returns the stored indexes in ascending order
func (s *AccountSet) Indexes() []uint32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ret := make([]uint32, 0, len(s.accounts))
	for index := range s.accounts {
		ret = append(ret, index)
	}
	slices.Sort(ret)
	return ret
}

// All returns the stored accounts ordered by index
func (s *AccountSet) All() []ledger.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ret := make([]ledger.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		ret = append(ret, account)
	}
	slices.SortFunc(ret, func(a, b ledger.Account) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return ret
}

// Public returns the stored accounts ordered by index with their private
// keys left out
func (s *AccountSet) Public() ([]PublicAccount, error) {
	var ret []PublicAccount
	if err := copier.Copy(&ret, s.All()); err != nil {
		return nil, err
	}
	return ret, nil
}
