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

package node

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/blinklabs-io/gonano/amount"
	"github.com/blinklabs-io/gonano/ledger"
)

// AccountInfo is the node's view of an account
type AccountInfo struct {
	Frontier                   ledger.BlockHash `json:"frontier"`
	OpenBlock                  ledger.BlockHash `json:"open_block"`
	RepresentativeBlock        ledger.BlockHash `json:"representative_block"`
	Balance                    amount.Amount    `json:"balance"`
	ModifiedTimestamp          uint64           `json:"modified_timestamp,string"`
	BlockCount                 uint64           `json:"block_count,string"`
	AccountVersion             uint64           `json:"account_version,string"`
	ConfirmationHeight         uint64           `json:"confirmation_height,string"`
	ConfirmationHeightFrontier ledger.BlockHash `json:"confirmation_height_frontier"`
	Representative             ledger.Address   `json:"representative"`
}

// AccountInfo fetches the frontier, balance and representative of an account
func (c *Client) AccountInfo(
	ctx context.Context,
	account string,
) (*AccountInfo, error) {
	var ret AccountInfo
	err := c.call(
		ctx,
		"account_info",
		map[string]any{
			"account":        account,
			"representative": "true",
		},
		&ret,
	)
	if err != nil {
		return nil, err
	}
	return &ret, nil
}

// WorkType selects the proof-of-work difficulty to request
type WorkType int

const (
	WorkSend WorkType = iota
	WorkReceive
	WorkAll
)

// Difficulty returns the difficulty threshold sent to the node
func (w WorkType) Difficulty() string {
	switch w {
	case WorkSend:
		return "fffffff800000000"
	case WorkReceive:
		return "fffffe0000000000"
	default:
		return "ffffffc000000000"
	}
}

func (w WorkType) String() string {
	switch w {
	case WorkSend:
		return "send"
	case WorkReceive:
		return "receive"
	default:
		return "all"
	}
}

// WorkForSubtype returns the work type needed for a block of the given subtype
func WorkForSubtype(subtype ledger.Subtype) WorkType {
	switch subtype {
	case ledger.SubtypeSend, ledger.SubtypeChange:
		return WorkSend
	case ledger.SubtypeReceive, ledger.SubtypeOpen:
		return WorkReceive
	default:
		return WorkAll
	}
}

type workGenerateResponse struct {
	Work       string `json:"work"`
	Difficulty string `json:"difficulty"`
	Multiplier string `json:"multiplier"`
	Hash       string `json:"hash"`
}

// WorkGenerate asks the node to compute proof of work for a block root
func (c *Client) WorkGenerate(
	ctx context.Context,
	hash ledger.BlockHash,
	workType WorkType,
) (string, error) {
	var resp workGenerateResponse
	err := c.call(
		ctx,
		"work_generate",
		map[string]any{
			"hash":       hash.String(),
			"difficulty": workType.Difficulty(),
		},
		&resp,
	)
	if err != nil {
		return "", err
	}
	if resp.Work == "" {
		return "", fmt.Errorf("%w: work_generate returned no work", ErrInvalidResponse)
	}
	return resp.Work, nil
}

// PendingBlock is a send waiting to be received by an account
type PendingBlock struct {
	Hash   ledger.BlockHash
	Amount amount.Amount
	Source string
}

// PendingOptions filters the pending blocks returned by Pending
type PendingOptions struct {
	Threshold            amount.Amount
	IncludeOnlyConfirmed bool
	IncludeActive        bool
}

// DefaultPendingOptions returns confirmed pending blocks of any amount
func DefaultPendingOptions() PendingOptions {
	return PendingOptions{
		IncludeOnlyConfirmed: true,
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

type pendingEntry struct {
	Amount amount.Amount `json:"amount"`
	Source string        `json:"source"`
}

type pendingResponse struct {
	Blocks json.RawMessage `json:"blocks"`
}

// Pending lists the blocks waiting to be received by account, ordered by hash
func (c *Client) Pending(
	ctx context.Context,
	account string,
	opts PendingOptions,
) ([]PendingBlock, error) {
	var resp pendingResponse
	err := c.call(
		ctx,
		"pending",
		map[string]any{
			"account":                account,
			"source":                 "true",
			"threshold":              opts.Threshold.RawString(),
			"include_only_confirmed": boolString(opts.IncludeOnlyConfirmed),
			"include_active":         boolString(opts.IncludeActive),
		},
		&resp,
	)
	if err != nil {
		return nil, err
	}
	// The node sends an empty string instead of an empty object
	var entries map[string]pendingEntry
	if err := json.Unmarshal(resp.Blocks, &entries); err != nil {
		var s string
		if json.Unmarshal(resp.Blocks, &s) == nil && s == "" {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: pending: %w", ErrInvalidResponse, err)
	}
	ret := make([]PendingBlock, 0, len(entries))
	for hashHex, entry := range entries {
		hash, err := ledger.NewBlockHashFromHex(hashHex)
		if err != nil {
			return nil, fmt.Errorf("%w: pending block %q: %w", ErrInvalidResponse, hashHex, err)
		}
		ret = append(ret, PendingBlock{
			Hash:   hash,
			Amount: entry.Amount,
			Source: entry.Source,
		})
	}
	slices.SortFunc(ret, func(a, b PendingBlock) int {
		return strings.Compare(a.Hash.String(), b.Hash.String())
	})
	return ret, nil
}

type processResponse struct {
	Hash ledger.BlockHash `json:"hash"`
}

// Process submits a signed block with its work and returns the hash the node
// reports for it
func (c *Client) Process(
	ctx context.Context,
	block *ledger.StateBlock,
	subtype ledger.Subtype,
) (ledger.BlockHash, error) {
	if block == nil || !block.Complete() {
		return ledger.BlockHash{}, ErrIncompleteBlock
	}
	fields := map[string]any{
		"json_block": "true",
		"block":      block,
	}
	if subtype != "" {
		fields["subtype"] = string(subtype)
	}
	var resp processResponse
	if err := c.call(ctx, "process", fields, &resp); err != nil {
		return ledger.BlockHash{}, err
	}
	return resp.Hash, nil
}
