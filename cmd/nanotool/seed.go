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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/gonano/cmd/common"
	"github.com/blinklabs-io/gonano/ledger"
	"github.com/blinklabs-io/gonano/wallet"
)

type seedFlags struct {
	flagset  *flag.FlagSet
	message  string
	mnemonic string
}

func newSeedFlags() *seedFlags {
	f := &seedFlags{
		flagset: flag.NewFlagSet("seed", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.message,
		"message",
		"",
		"derive the seed from a message instead of generating one",
	)
	f.flagset.StringVar(
		&f.mnemonic,
		"mnemonic",
		"",
		"restore the seed from a 24-word mnemonic",
	)
	return f
}

func runSeed(f *common.GlobalFlags) {
	seedFlags := newSeedFlags()
	err := seedFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	var seed ledger.Seed
	switch {
	case seedFlags.mnemonic != "":
		seed, err = wallet.SeedFromMnemonic(seedFlags.mnemonic)
	case seedFlags.message != "":
		seed = wallet.SeedFromMessage(ledger.Default(), seedFlags.message)
	default:
		seed, err = wallet.GenerateSeed()
	}
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	w, err := wallet.New(ledger.Default(), seed, f.NetworkPrefix(), true)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	mnemonic, err := w.Mnemonic()
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	account, _ := w.Accounts().Get(0)
	fmt.Printf("seed: %s\n", seed.String())
	fmt.Printf("mnemonic: %s\n", mnemonic)
	fmt.Printf("account 0: %s\n", account.Address.String())
	if f.WalletPath != "" {
		if err := w.WriteFile(f.WalletPath); err != nil {
			fmt.Printf("ERROR: failed to write wallet: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote wallet to %s\n", f.WalletPath)
	}
}
