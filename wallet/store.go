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
	"os"

	"github.com/blinklabs-io/gonano/cbor"
	"github.com/blinklabs-io/gonano/ledger"
)

// FileVersion is the wallet file format written by this package
const FileVersion = 1

var (
	ErrUnsupportedVersion = errors.New("unsupported wallet file version")
	ErrInvalidFile        = errors.New("invalid wallet file")
)

// File is the persisted form of a wallet: the seed, the address prefix and
// the indexes of the derived accounts. Keys are derived again on load.
type File struct {
	cbor.StructAsArray
	Version uint
	Seed    []byte
	Prefix  string
	Indexes []uint32
}

func (f *File) validate() error {
	if f.Version != FileVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, f.Version)
	}
	if len(f.Seed) != ledger.SeedSize {
		return fmt.Errorf(
			"%w: seed has %d bytes, expected %d",
			ErrInvalidFile,
			len(f.Seed),
			ledger.SeedSize,
		)
	}
	if !ledger.Prefix(f.Prefix).Valid() {
		return fmt.Errorf("%w: prefix %q", ErrInvalidFile, f.Prefix)
	}
	return nil
}

func (f *File) MarshalCBOR() ([]byte, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	return cbor.EncodeGeneric(f)
}

func (f *File) UnmarshalCBOR(data []byte) error {
	if err := cbor.DecodeGeneric(data, f); err != nil {
		return err
	}
	return f.validate()
}

// File returns the persisted form of the wallet
func (w *Wallet) File() *File {
	return &File{
		Version: FileVersion,
		Seed:    w.seed.Bytes(),
		Prefix:  string(w.prefix),
		Indexes: w.accounts.Indexes(),
	}
}

// FromFile rebuilds a wallet and its accounts from a File. A nil ledger
// selects ledger.Default().
func FromFile(l *ledger.Ledger, f *File) (*Wallet, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	var seed ledger.Seed
	copy(seed[:], f.Seed)
	w, err := New(l, seed, ledger.Prefix(f.Prefix), false)
	if err != nil {
		return nil, err
	}
	for _, index := range f.Indexes {
		account, err := w.ledger.NewAccount(w.seed, index, w.prefix)
		if err != nil {
			return nil, err
		}
		if err := w.accounts.Add(account); err != nil {
			return nil, fmt.Errorf("%w: index %d: %w", ErrInvalidFile, index, err)
		}
	}
	return w, nil
}

func (w *Wallet) MarshalCBOR() ([]byte, error) {
	return cbor.Encode(w.File())
}

// UnmarshalCBOR replaces the wallet with the decoded one. The wallet keeps its
// ledger when it has one.
func (w *Wallet) UnmarshalCBOR(data []byte) error {
	var f File
	if _, err := cbor.Decode(data, &f); err != nil {
		return err
	}
	tmp, err := FromFile(w.ledger, &f)
	if err != nil {
		return err
	}
	*w = *tmp
	return nil
}

// WriteFile stores the wallet at path, readable by the owner only
func (w *Wallet) WriteFile(path string) error {
	data, err := w.MarshalCBOR()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// ReadFile loads a wallet stored with WriteFile
func ReadFile(l *ledger.Ledger, path string) (*Wallet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if _, err := cbor.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	return FromFile(l, &f)
}
