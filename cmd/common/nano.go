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

package common

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/gonano"
	"github.com/blinklabs-io/gonano/ledger"
	"github.com/blinklabs-io/gonano/node"
	"github.com/blinklabs-io/gonano/wallet"
)

// CreateNano returns a Nano object talking to the node selected by the flags
func CreateNano(f *GlobalFlags) *nano.Nano {
	network := nano.NetworkByName(f.Network)
	network.Prefix = f.NetworkPrefix()
	client := node.NewClient(
		f.NodeURL,
		node.WithLogger(slog.Default()),
	)
	return nano.New(
		nano.WithNetwork(network),
		nano.WithNode(client),
		nano.WithLogger(slog.Default()),
	)
}

// LoadWallet reads the wallet file named by the -wallet flag
func LoadWallet(f *GlobalFlags) *wallet.Wallet {
	if f.WalletPath == "" {
		fmt.Printf("You must specify -wallet\n\n")
		f.Flagset.PrintDefaults()
		os.Exit(1)
	}
	w, err := wallet.ReadFile(ledger.Default(), f.WalletPath)
	if err != nil {
		fmt.Printf("ERROR: failed to load wallet: %s\n", err)
		os.Exit(1)
	}
	return w
}
