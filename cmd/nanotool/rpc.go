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
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/blinklabs-io/gonano/amount"
	"github.com/blinklabs-io/gonano/cmd/common"
	"github.com/blinklabs-io/gonano/ledger"
	"github.com/blinklabs-io/gonano/node"
)

// accountArg returns the address given on the command line, or the base
// account of the -wallet file
func accountArg(f *common.GlobalFlags, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if f.WalletPath != "" {
		account, err := common.LoadWallet(f).Account(0)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		return account.Address.String()
	}
	fmt.Printf("ERROR: you must specify an account address or -wallet\n")
	os.Exit(1)
	return ""
}

func runAccountInfo(f *common.GlobalFlags) {
	account := accountArg(f, f.Flagset.Args()[1:])
	n := common.CreateNano(f)
	info, err := n.Node().AccountInfo(context.Background(), account)
	if err != nil {
		fmt.Printf("ERROR: failure querying account info: %s\n", err)
		os.Exit(1)
	}
	printJSON(info)
	fmt.Printf("balance: %s\n", info.Balance.DisplayString())
}

type pendingFlags struct {
	flagset       *flag.FlagSet
	threshold     string
	includeActive bool
	unconfirmed   bool
}

func newPendingFlags() *pendingFlags {
	f := &pendingFlags{
		flagset: flag.NewFlagSet("pending", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.threshold,
		"threshold",
		"0",
		"minimum amount in whole units",
	)
	f.flagset.BoolVar(
		&f.includeActive,
		"include-active",
		false,
		"include blocks that are still being voted on",
	)
	f.flagset.BoolVar(
		&f.unconfirmed,
		"unconfirmed",
		false,
		"include unconfirmed blocks",
	)
	return f
}

func runPending(f *common.GlobalFlags) {
	pendingFlags := newPendingFlags()
	err := pendingFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	threshold, err := amount.ParseDisplay(pendingFlags.threshold)
	if err != nil {
		fmt.Printf("ERROR: invalid threshold: %s\n", err)
		os.Exit(1)
	}
	account := accountArg(f, pendingFlags.flagset.Args())
	opts := node.DefaultPendingOptions()
	opts.Threshold = threshold
	opts.IncludeActive = pendingFlags.includeActive
	opts.IncludeOnlyConfirmed = !pendingFlags.unconfirmed
	n := common.CreateNano(f)
	blocks, err := n.Node().Pending(context.Background(), account, opts)
	if err != nil {
		fmt.Printf("ERROR: failure querying pending blocks: %s\n", err)
		os.Exit(1)
	}
	if len(blocks) == 0 {
		fmt.Printf("no pending blocks\n")
		return
	}
	for _, block := range blocks {
		fmt.Printf(
			"%s: %s from %s\n",
			block.Hash.String(),
			block.Amount.DisplayString(),
			block.Source,
		)
	}
}

type publishFlags struct {
	flagset *flag.FlagSet
	subtype string
}

func newPublishFlags() *publishFlags {
	f := &publishFlags{
		flagset: flag.NewFlagSet("publish", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.subtype,
		"subtype",
		"",
		"block subtype (send, receive, open, change or epoch)",
	)
	return f
}

func runPublish(f *common.GlobalFlags) {
	publishFlags := newPublishFlags()
	err := publishFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	subtype := ledger.Subtype(publishFlags.subtype)
	if !subtype.Valid() {
		fmt.Printf("ERROR: invalid subtype: %q\n", publishFlags.subtype)
		os.Exit(1)
	}
	block := readBlock(publishFlags.flagset.Args())
	n := common.CreateNano(f)
	hash, err := n.Publish(context.Background(), block, subtype)
	if err != nil {
		fmt.Printf("ERROR: failed to publish block: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("published: %s\n", hash.String())
}
