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
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/blinklabs-io/gonano/cmd/common"
	"github.com/blinklabs-io/gonano/ledger"
)

// readBlock decodes a JSON state block from the named file, or from stdin
// when no file is given
func readBlock(args []string) *ledger.StateBlock {
	var data []byte
	var err error
	if len(args) > 0 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Printf("ERROR: failed to read block: %s\n", err)
		os.Exit(1)
	}
	var block ledger.StateBlock
	if err := json.Unmarshal(data, &block); err != nil {
		fmt.Printf("ERROR: failed to decode block: %s\n", err)
		os.Exit(1)
	}
	return &block
}

func runHashBlock(f *common.GlobalFlags) {
	block := readBlock(f.Flagset.Args()[1:])
	hash, err := ledger.Default().HashBlock(block)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n", hash.String())
}

type signBlockFlags struct {
	flagset    *flag.FlagSet
	privateKey string
	index      uint
}

func newSignBlockFlags() *signBlockFlags {
	f := &signBlockFlags{
		flagset: flag.NewFlagSet("sign-block", flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.privateKey,
		"private-key",
		"",
		"private key as hex (defaults to the -index account of the -wallet file)",
	)
	f.flagset.UintVar(&f.index, "index", 0, "wallet account index")
	return f
}

func runSignBlock(f *common.GlobalFlags) {
	signFlags := newSignBlockFlags()
	err := signFlags.flagset.Parse(f.Flagset.Args()[1:])
	if err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
	block := readBlock(signFlags.flagset.Args())
	l := ledger.Default()
	var privateKey ledger.PrivateKey
	if signFlags.privateKey != "" {
		privateKey, err = ledger.NewPrivateKeyFromHex(signFlags.privateKey)
		if err != nil {
			fmt.Printf("ERROR: invalid private key: %s\n", err)
			os.Exit(1)
		}
	} else {
		if signFlags.index > uint(^uint32(0)) {
			fmt.Printf("ERROR: index out of range: %d\n", signFlags.index)
			os.Exit(1)
		}
		account, err := common.LoadWallet(f).Account(uint32(signFlags.index))
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		privateKey = account.PrivateKey
	}
	publicKey := l.DerivePublicKey(privateKey)
	if err := l.SignBlock(block, privateKey, &publicKey); err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "hash: %s\n", block.Hash.String())
	printJSON(block)
}
