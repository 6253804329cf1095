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

	"github.com/blinklabs-io/gonano/amount"
	"github.com/blinklabs-io/gonano/codec"
)

const (
	BlockTypeState = "state"

	// PreviousNone is the previous value of an account's first block
	PreviousNone = "0"

	PreambleSize = 32
	BalanceSize  = 16
	PreimageSize = PreambleSize + 3*PublicKeySize + BlockHashSize + BalanceSize
)

// statePreamble is the fixed first field of every state block preimage
var statePreamble = [PreambleSize]byte{PreambleSize - 1: 0x06}

// Subtype tags the intent of a state block for the node. It is not part of
// the hashed preimage.
type Subtype string

const (
	SubtypeSend    Subtype = "send"
	SubtypeReceive Subtype = "receive"
	SubtypeOpen    Subtype = "open"
	SubtypeChange  Subtype = "change"
	SubtypeEpoch   Subtype = "epoch"
)

func (s Subtype) Valid() bool {
	switch s {
	case SubtypeSend, SubtypeReceive, SubtypeOpen, SubtypeChange, SubtypeEpoch:
		return true
	}
	return false
}

// StateBlock is the single transaction record of the ledger. Hash and
// Signature are unset until the block is signed, and changing any other field
// afterwards invalidates them.
type StateBlock struct {
	Previous       string
	Account        KeyRef
	Representative KeyRef
	Balance        amount.Amount
	Link           KeyRef
	Work           string
	Hash           *BlockHash
	Signature      *Signature
}

// Clone returns a copy of b that shares no pointers with it
func (b *StateBlock) Clone() *StateBlock {
	ret := *b
	ret.Balance = amount.FromBigInt(b.Balance.BigInt())
	if b.Hash != nil {
		tmpHash := *b.Hash
		ret.Hash = &tmpHash
	}
	if b.Signature != nil {
		tmpSig := *b.Signature
		ret.Signature = &tmpSig
	}
	return &ret
}

// IsOpen returns whether b is the first block of its account
func (b *StateBlock) IsOpen() bool {
	return b.Previous == PreviousNone
}

// Complete returns whether b carries everything the node needs to process it
func (b *StateBlock) Complete() bool {
	return b.Signature != nil && b.Work != ""
}

type stateBlockJSON struct {
	Type           string        `json:"type"`
	Account        KeyRef        `json:"account"`
	Previous       string        `json:"previous"`
	Representative KeyRef        `json:"representative"`
	Balance        amount.Amount `json:"balance"`
	Link           KeyRef        `json:"link"`
	Signature      *Signature    `json:"signature,omitempty"`
	Work           string        `json:"work,omitempty"`
}

func (b *StateBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateBlockJSON{
		Type:           BlockTypeState,
		Account:        b.Account,
		Previous:       b.Previous,
		Representative: b.Representative,
		Balance:        b.Balance,
		Link:           b.Link,
		Signature:      b.Signature,
		Work:           b.Work,
	})
}

func (b *StateBlock) UnmarshalJSON(data []byte) error {
	var tmp stateBlockJSON
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	if tmp.Type != "" && tmp.Type != BlockTypeState {
		return fmt.Errorf("unsupported block type: %s", tmp.Type)
	}
	*b = StateBlock{
		Previous:       tmp.Previous,
		Account:        tmp.Account,
		Representative: tmp.Representative,
		Balance:        tmp.Balance,
		Link:           tmp.Link,
		Work:           tmp.Work,
		Signature:      tmp.Signature,
	}
	return nil
}

func resolvePrevious(previous string) (BlockHash, error) {
	var ret BlockHash
	if previous == PreviousNone {
		return ret, nil
	}
	if len(previous) != BlockHashSize*2 {
		return ret, fmt.Errorf(
			"has %d characters, expected %d",
			len(previous),
			BlockHashSize*2,
		)
	}
	if _, err := hex.Decode(ret[:], []byte(previous)); err != nil {
		return BlockHash{}, err
	}
	return ret, nil
}

func (l *Ledger) resolveField(
	field string,
	sentinel error,
	r KeyRef,
) (PublicKey, error) {
	key, err := l.ResolveKey(r)
	if err != nil {
		return key, &BlockFieldError{
			Field: field,
			Value: r.String(),
			Err:   sentinel,
			Cause: err,
		}
	}
	return key, nil
}

func balanceBytes(balance amount.Amount) ([]byte, error) {
	if balance.IsNegative() {
		return nil, &BlockFieldError{
			Field: "balance",
			Value: balance.RawString(),
			Err:   ErrInvalidBalance,
		}
	}
	raw := balance.RawBytes()
	if len(raw) > BalanceSize {
		return nil, &BlockFieldError{
			Field: "balance",
			Value: balance.RawString(),
			Err:   ErrInvalidBalance,
			Cause: fmt.Errorf("exceeds %d bytes", BalanceSize),
		}
	}
	return codec.PadLeft(raw, BalanceSize), nil
}

// BlockPreimage returns the 144-byte preimage of a state block. Fields are
// checked in the order account, previous, representative, link, balance and
// the first failure is returned as a *BlockFieldError.
func (l *Ledger) BlockPreimage(b *StateBlock) ([]byte, error) {
	account, err := l.resolveField("account", ErrInvalidAccount, b.Account)
	if err != nil {
		return nil, err
	}
	previous, err := resolvePrevious(b.Previous)
	if err != nil {
		return nil, &BlockFieldError{
			Field: "previous",
			Value: b.Previous,
			Err:   ErrInvalidPrevious,
			Cause: err,
		}
	}
	representative, err := l.resolveField(
		"representative",
		ErrInvalidRepresentative,
		b.Representative,
	)
	if err != nil {
		return nil, err
	}
	link, err := l.resolveField("link", ErrInvalidLink, b.Link)
	if err != nil {
		return nil, err
	}
	balance, err := balanceBytes(b.Balance)
	if err != nil {
		return nil, err
	}
	ret := make([]byte, 0, PreimageSize)
	ret = append(ret, statePreamble[:]...)
	ret = append(ret, account[:]...)
	ret = append(ret, previous[:]...)
	ret = append(ret, representative[:]...)
	ret = append(ret, balance...)
	ret = append(ret, link[:]...)
	return ret, nil
}

// HashBlock returns the 32-byte hash of the block preimage
func (l *Ledger) HashBlock(b *StateBlock) (BlockHash, error) {
	var ret BlockHash
	preimage, err := l.BlockPreimage(b)
	if err != nil {
		return ret, err
	}
	copy(ret[:], l.hash(preimage, BlockHashSize))
	return ret, nil
}

// SignBlock hashes and signs b, storing the hash and signature on it. The
// public key is derived from the private key when publicKey is nil, and it
// must match the block's account.
func (l *Ledger) SignBlock(
	b *StateBlock,
	privateKey PrivateKey,
	publicKey *PublicKey,
) error {
	hash, err := l.HashBlock(b)
	if err != nil {
		return err
	}
	var pub PublicKey
	if publicKey != nil {
		pub = *publicKey
	} else {
		pub = l.DerivePublicKey(privateKey)
	}
	// Cannot fail after a successful hash
	account, _ := l.ResolveKey(b.Account)
	if account != pub {
		return ErrAccountKeyMismatch
	}
	sig := l.Sign(hash, privateKey, &pub)
	b.Hash = &hash
	b.Signature = &sig
	return nil
}

// VerifyBlock recomputes the block hash and checks the signature against the
// account key
func (l *Ledger) VerifyBlock(b *StateBlock) (bool, error) {
	if b.Signature == nil {
		return false, ErrUnsignedBlock
	}
	hash, err := l.HashBlock(b)
	if err != nil {
		return false, err
	}
	account, _ := l.ResolveKey(b.Account)
	return l.Verify(hash, account, *b.Signature)
}
