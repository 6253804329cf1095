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

// Package nano builds, signs and publishes state blocks for Nano accounts.
//
// The subpackages carry the pieces: ledger for keys, addresses and block
// hashing, wallet for seeds and account sets, and node for the RPC client.
package nano

import (
	"errors"
	"log/slog"

	"github.com/blinklabs-io/gonano/ledger"
	"github.com/blinklabs-io/gonano/node"
)

var (
	ErrNoFrontier          = errors.New("account has no frontier")
	ErrNoRepresentative    = errors.New("account has no representative")
	ErrInsufficientBalance = errors.New("amount exceeds account balance")
	ErrInvalidDestination  = errors.New("invalid destination address")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrNoNode              = errors.New("no node client configured")
	ErrHashMismatch        = errors.New("node reported a different block hash")
)

// Nano ties a ledger to an optional node client
type Nano struct {
	ledger  *ledger.Ledger
	node    *node.Client
	network Network
	logger  *slog.Logger
}

// New returns a Nano object with the specified options
func New(opts ...NanoOptionFunc) *Nano {
	n := &Nano{
		network: NetworkMainnet,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.ledger == nil {
		n.ledger = ledger.Default()
	}
	if n.logger == nil {
		n.logger = slog.Default()
	}
	return n
}

func (n *Nano) Ledger() *ledger.Ledger {
	return n.ledger
}

// Node returns the configured node client, which may be nil
func (n *Nano) Node() *node.Client {
	return n.node
}

func (n *Nano) Network() Network {
	return n.network
}

// Account derives the account at index from seed using the network's address
// prefix
func (n *Nano) Account(seed ledger.Seed, index uint32) (ledger.Account, error) {
	return n.ledger.NewAccount(seed, index, n.network.Prefix)
}
