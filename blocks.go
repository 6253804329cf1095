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

package nano

import (
	"fmt"

	"github.com/blinklabs-io/gonano/amount"
	"github.com/blinklabs-io/gonano/ledger"
	"github.com/blinklabs-io/gonano/node"
)

func frontierOf(info *node.AccountInfo) (string, error) {
	if info == nil || info.Frontier.IsZero() {
		return "", ErrNoFrontier
	}
	return info.Frontier.String(), nil
}

func representativeOf(info *node.AccountInfo) (ledger.KeyRef, error) {
	if info == nil || info.Representative.IsZero() {
		return ledger.KeyRef{}, ErrNoRepresentative
	}
	return ledger.AddressRef(info.Representative), nil
}

func checkAmount(amt amount.Amount) error {
	if amt.IsZero() || amt.IsNegative() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, amt.RawString())
	}
	return nil
}

func (n *Nano) sign(account ledger.Account, b *ledger.StateBlock) (*ledger.StateBlock, error) {
	if err := n.ledger.SignBlock(b, account.PrivateKey, &account.PublicKey); err != nil {
		return nil, err
	}
	return b, nil
}

// SendBlock returns a signed block moving amt from account to destination.
// info is the node's current view of the sending account
func (n *Nano) SendBlock(
	account ledger.Account,
	info *node.AccountInfo,
	destination string,
	amt amount.Amount,
) (*ledger.StateBlock, error) {
	previous, err := frontierOf(info)
	if err != nil {
		return nil, err
	}
	representative, err := representativeOf(info)
	if err != nil {
		return nil, err
	}
	if err := checkAmount(amt); err != nil {
		return nil, err
	}
	if amt.GreaterThan(info.Balance) {
		return nil, fmt.Errorf(
			"%w: sending %s with balance %s",
			ErrInsufficientBalance,
			amt.RawString(),
			info.Balance.RawString(),
		)
	}
	dest, err := n.ledger.ParseAddress(destination)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDestination, err)
	}
	return n.sign(account, &ledger.StateBlock{
		Previous:       previous,
		Account:        ledger.AddressRef(account.Address),
		Representative: representative,
		Balance:        info.Balance.Sub(amt),
		Link:           ledger.RawKey(dest.PublicKey()),
	})
}

// ReceiveBlock returns a signed block crediting account with the pending send
// identified by pendingHash. Accounts without a frontier need OpenBlock
func (n *Nano) ReceiveBlock(
	account ledger.Account,
	info *node.AccountInfo,
	pendingHash ledger.BlockHash,
	amt amount.Amount,
) (*ledger.StateBlock, error) {
	previous, err := frontierOf(info)
	if err != nil {
		return nil, err
	}
	representative, err := representativeOf(info)
	if err != nil {
		return nil, err
	}
	if err := checkAmount(amt); err != nil {
		return nil, err
	}
	return n.sign(account, &ledger.StateBlock{
		Previous:       previous,
		Account:        ledger.AddressRef(account.Address),
		Representative: representative,
		Balance:        info.Balance.Add(amt),
		Link:           ledger.RawKey(ledger.PublicKey(pendingHash)),
	})
}

// ReceivePending is ReceiveBlock for a block returned by node.Client.Pending
func (n *Nano) ReceivePending(
	account ledger.Account,
	info *node.AccountInfo,
	pending node.PendingBlock,
) (*ledger.StateBlock, error) {
	return n.ReceiveBlock(account, info, pending.Hash, pending.Amount)
}

// OpenBlock returns the signed first block of account, receiving the pending
// send identified by pendingHash and choosing representative
func (n *Nano) OpenBlock(
	account ledger.Account,
	representative string,
	pendingHash ledger.BlockHash,
	amt amount.Amount,
) (*ledger.StateBlock, error) {
	if representative == "" {
		return nil, ErrNoRepresentative
	}
	rep, err := n.ledger.ParseAddress(representative)
	if err != nil {
		return nil, err
	}
	if err := checkAmount(amt); err != nil {
		return nil, err
	}
	return n.sign(account, &ledger.StateBlock{
		Previous:       ledger.PreviousNone,
		Account:        ledger.AddressRef(account.Address),
		Representative: ledger.AddressRef(rep),
		Balance:        amt,
		Link:           ledger.RawKey(ledger.PublicKey(pendingHash)),
	})
}

// ChangeBlock returns a signed block that moves the account's vote weight to
// representative without changing its balance
func (n *Nano) ChangeBlock(
	account ledger.Account,
	info *node.AccountInfo,
	representative string,
) (*ledger.StateBlock, error) {
	previous, err := frontierOf(info)
	if err != nil {
		return nil, err
	}
	if representative == "" {
		return nil, ErrNoRepresentative
	}
	rep, err := n.ledger.ParseAddress(representative)
	if err != nil {
		return nil, err
	}
	return n.sign(account, &ledger.StateBlock{
		Previous:       previous,
		Account:        ledger.AddressRef(account.Address),
		Representative: ledger.AddressRef(rep),
		Balance:        info.Balance,
		Link:           ledger.RawKey(ledger.PublicKey{}),
	})
}
