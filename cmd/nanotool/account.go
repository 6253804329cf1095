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

type accountFlags struct {
	flagset *flag.FlagSet
	seed    string
	index   uint
	count   uint
	add     bool
}

func newAccountFlags() *accountFlags {
	f := &accountFlags{
		flagset: flag.NewFlagSet("account", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.seed,
		"seed",
		"",
		"seed as hex (defaults to the seed in the -wallet file)",
	)
	f.flagset.UintVar(&f.index, "index", 0, "first account index")
	f.flagset.UintVar(&f.count, "count", 1, "number of accounts to list")
	f.flagset.BoolVar(
		&f.add,
		"add",
		false,
		"add the next unused account to the -wallet file",
	)
	return f
}

func runAccount(f *common.GlobalFlags) {
	accountFlags := newAccountFlags()
	err := accountFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	if accountFlags.add {
		w := common.LoadWallet(f)
		account, err := w.NewAccount()
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		if err := w.WriteFile(f.WalletPath); err != nil {
			fmt.Printf("ERROR: failed to write wallet: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("%d: %s\n", account.Index, account.Address.String())
		return
	}
	var w *wallet.Wallet
	if accountFlags.seed != "" {
		seed, err := ledger.NewSeedFromHex(accountFlags.seed)
		if err != nil {
			fmt.Printf("ERROR: invalid seed: %s\n", err)
			os.Exit(1)
		}
		w, err = wallet.New(ledger.Default(), seed, f.NetworkPrefix(), false)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
	} else {
		w = common.LoadWallet(f)
		if accountFlags.flagset.NFlag() == 0 {
			public, err := w.Accounts().Public()
			if err != nil {
				fmt.Printf("ERROR: %s\n", err)
				os.Exit(1)
			}
			printJSON(public)
			return
		}
	}
	for i := uint(0); i < accountFlags.count; i++ {
		index := accountFlags.index + i
		if index > uint(^uint32(0)) {
			break
		}
		account, err := w.Account(uint32(index))
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf(
			"%d: %s %s\n",
			account.Index,
			account.Address.String(),
			account.PublicKey.String(),
		)
	}
}
