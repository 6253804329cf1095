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
	"log/slog"

	"github.com/blinklabs-io/gonano/ledger"
	"github.com/blinklabs-io/gonano/node"
)

// NanoOptionFunc is a type that represents functions that modify the Nano config
type NanoOptionFunc func(*Nano)

// WithLedger specifies the ledger used to derive keys and hash and sign blocks.
// The default ledger is used when this is not set
func WithLedger(l *ledger.Ledger) NanoOptionFunc {
	return func(n *Nano) {
		n.ledger = l
	}
}

// WithNode specifies the node client used to publish blocks
func WithNode(client *node.Client) NanoOptionFunc {
	return func(n *Nano) {
		n.node = client
	}
}

// WithNetwork specifies the network. This sets the address prefix for new
// accounts
func WithNetwork(network Network) NanoOptionFunc {
	return func(n *Nano) {
		n.network = network
	}
}

// WithLogger specifies the logger
func WithLogger(logger *slog.Logger) NanoOptionFunc {
	return func(n *Nano) {
		n.logger = logger
	}
}
