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
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/gonano"
	"github.com/blinklabs-io/gonano/ledger"
)

type GlobalFlags struct {
	Flagset    *flag.FlagSet
	NodeURL    string
	Network    string
	Prefix     string
	WalletPath string
	Debug      bool
}

func NewGlobalFlags() *GlobalFlags {
	f := &GlobalFlags{
		Flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.Flagset.StringVar(
		&f.NodeURL,
		"node",
		"",
		"node RPC URL (defaults to the local RPC port of the network)",
	)
	f.Flagset.StringVar(
		&f.Network,
		"network",
		"mainnet",
		"specifies network that node is participating in",
	)
	f.Flagset.StringVar(
		&f.Prefix,
		"prefix",
		"",
		"specifies address prefix. this overrides the prefix of the -network option",
	)
	f.Flagset.StringVar(
		&f.WalletPath,
		"wallet",
		"",
		"wallet file path",
	)
	f.Flagset.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	return f
}

func (f *GlobalFlags) Parse() {
	if err := f.Flagset.Parse(os.Args[1:]); err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	network := nano.NetworkByName(f.Network)
	if network == nano.NetworkInvalid {
		fmt.Printf("Invalid network specified: %s\n", f.Network)
		os.Exit(1)
	}
	if f.Prefix == "" {
		f.Prefix = string(network.Prefix)
	} else {
		prefix, err := ledger.ParsePrefix(f.Prefix)
		if err != nil {
			fmt.Printf("Invalid prefix specified: %s\n", f.Prefix)
			os.Exit(1)
		}
		f.Prefix = string(prefix)
	}
	if f.NodeURL == "" {
		f.NodeURL = network.LocalRPCURL()
	}
	level := slog.LevelInfo
	if f.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(
		slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
		),
	)
}

// NetworkPrefix returns the address prefix selected by the flags
func (f *GlobalFlags) NetworkPrefix() ledger.Prefix {
	return ledger.Prefix(f.Prefix)
}
