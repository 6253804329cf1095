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

	"github.com/blinklabs-io/gonano/ledger"
)

// Network definitions
var (
	NetworkMainnet = Network{
		Name:        "mainnet",
		Prefix:      ledger.PrefixNano,
		RPCPort:     7076,
		PeeringPort: 7075,
	}
	NetworkBeta = Network{
		Name:        "beta",
		Prefix:      ledger.PrefixNano,
		RPCPort:     55000,
		PeeringPort: 54000,
	}
	NetworkTest = Network{
		Name:        "test",
		Prefix:      ledger.PrefixNano,
		RPCPort:     17076,
		PeeringPort: 17075,
	}
	NetworkBanano = Network{
		Name:        "banano",
		Prefix:      ledger.PrefixBan,
		RPCPort:     7072,
		PeeringPort: 7071,
	}

	NetworkInvalid = Network{
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkBeta,
	NetworkTest,
	NetworkBanano,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByPrefix returns the first predefined network that renders addresses
// with prefix
func NetworkByPrefix(prefix ledger.Prefix) Network {
	for _, network := range networks {
		if network.Prefix == prefix {
			return network
		}
	}
	return NetworkInvalid
}

// Network represents a ledger network that a node can join
type Network struct {
	Name        string
	Prefix      ledger.Prefix // address prefix used when rendering accounts
	RPCPort     uint
	PeeringPort uint
}

// LocalRPCURL returns the RPC endpoint of a node for this network running on
// the local host
func (n Network) LocalRPCURL() string {
	return fmt.Sprintf("http://127.0.0.1:%d", n.RPCPort)
}

func (n Network) String() string {
	return n.Name
}
