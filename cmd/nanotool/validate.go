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
	"fmt"
	"os"

	"github.com/blinklabs-io/gonano/cmd/common"
	"github.com/blinklabs-io/gonano/ledger"
)

func runValidate(f *common.GlobalFlags) {
	addresses := f.Flagset.Args()[1:]
	if len(addresses) == 0 {
		fmt.Printf("ERROR: you must specify at least one address\n")
		os.Exit(1)
	}
	invalid := false
	for _, address := range addresses {
		validity := ledger.Default().ValidateAddress(address)
		if validity != ledger.AddressValid {
			invalid = true
		}
		fmt.Printf("%s: %s\n", address, validity.String())
	}
	if invalid {
		os.Exit(1)
	}
}
