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
	"context"
	"fmt"

	"github.com/blinklabs-io/gonano/ledger"
	"github.com/blinklabs-io/gonano/node"
)

// workRoot returns the hash that proof of work is computed over: the previous
// block, or the account key for the first block of an account
func (n *Nano) workRoot(b *ledger.StateBlock) (ledger.BlockHash, error) {
	if b.IsOpen() {
		key, err := n.ledger.ResolveKey(b.Account)
		if err != nil {
			return ledger.BlockHash{}, err
		}
		return ledger.BlockHash(key), nil
	}
	return ledger.NewBlockHashFromHex(b.Previous)
}

// Publish submits a signed block to the node. Missing work is requested from
// the node first and stored on b
func (n *Nano) Publish(
	ctx context.Context,
	b *ledger.StateBlock,
	subtype ledger.Subtype,
) (ledger.BlockHash, error) {
	if n.node == nil {
		return ledger.BlockHash{}, ErrNoNode
	}
	if b.Signature == nil {
		return ledger.BlockHash{}, ledger.ErrUnsignedBlock
	}
	if b.Work == "" {
		root, err := n.workRoot(b)
		if err != nil {
			return ledger.BlockHash{}, fmt.Errorf("work root: %w", err)
		}
		workType := node.WorkForSubtype(subtype)
		n.logger.Debug(
			"requesting work",
			"component", "nano",
			"root", root.String(),
			"type", workType.String(),
		)
		work, err := n.node.WorkGenerate(ctx, root, workType)
		if err != nil {
			return ledger.BlockHash{}, err
		}
		b.Work = work
	}
	hash, err := n.node.Process(ctx, b, subtype)
	if err != nil {
		return ledger.BlockHash{}, err
	}
	if b.Hash != nil && *b.Hash != hash {
		return hash, fmt.Errorf(
			"%w: got %s, expected %s",
			ErrHashMismatch,
			hash.String(),
			b.Hash.String(),
		)
	}
	n.logger.Info(
		"published block",
		"component", "nano",
		"hash", hash.String(),
		"subtype", string(subtype),
	)
	return hash, nil
}
