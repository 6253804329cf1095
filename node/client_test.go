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

package node_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/blinklabs-io/gonano/amount"
	"github.com/blinklabs-io/gonano/ledger"
	"github.com/blinklabs-io/gonano/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const (
	testAccount  = "nano_3u1a6t81jwnw8bna1nrgg19cuqb94kx9hrbsqt6spy6z7k66g8d1zyfoz1xw"
	testFrontier = "D03326EA102A6F4DEFFA29474251C4AA0EE9D4C08489AB73AC9593ED17849C8C"
	testLink     = "A60103F1B5DEF6569019BBE0F7C6F5BA35ADBB944D8EB3E520166928833E993A"
	testBlock    = "FCE83FF139DDC4410740935160D739FB074E9C7F8E10152D9E677EE1BDE30BC4"
)

type requestLog struct {
	sync.Mutex
	requests []map[string]any
}

func (r *requestLog) get(idx int) map[string]any {
	r.Lock()
	defer r.Unlock()
	if idx >= len(r.requests) {
		return nil
	}
	return r.requests[idx]
}

func (r *requestLog) count() int {
	r.Lock()
	defer r.Unlock()
	return len(r.requests)
}

// newTestServer starts a node stub that records each request body and replies
// with the response registered for its action
func newTestServer(
	t *testing.T,
	responses map[string]string,
) (*httptest.Server, *requestLog) {
	t.Helper()
	requests := &requestLog{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		requests.Lock()
		requests.requests = append(requests.requests, req)
		requests.Unlock()
		action, _ := req["action"].(string)
		resp, ok := responses[action]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("unknown action"))
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(resp))
	}))
	return server, requests
}

func newTestClient(server *httptest.Server) *node.Client {
	return node.NewClient(
		server.URL,
		node.WithHTTPClient(server.Client()),
		node.WithTimeout(5*time.Second),
	)
}

func TestAccountInfo(t *testing.T) {
	defer goleak.VerifyNone(t)
	server, requests := newTestServer(t, map[string]string{
		"account_info": `{
			"frontier": "` + testFrontier + `",
			"open_block": "` + testLink + `",
			"representative_block": "` + testFrontier + `",
			"balance": "235580100176034320859259343606608761791",
			"modified_timestamp": "1501793775",
			"block_count": "33",
			"account_version": "1",
			"confirmation_height": "28",
			"confirmation_height_frontier": "` + testLink + `",
			"representative": "` + testAccount + `"
		}`,
	})
	defer server.Close()
	info, err := newTestClient(server).AccountInfo(context.Background(), testAccount)
	require.NoError(t, err)
	assert.Equal(t, testFrontier, info.Frontier.String())
	assert.Equal(t, testLink, info.OpenBlock.String())
	assert.Equal(t, "235580100176034320859259343606608761791", info.Balance.RawString())
	assert.Equal(t, uint64(1501793775), info.ModifiedTimestamp)
	assert.Equal(t, uint64(33), info.BlockCount)
	assert.Equal(t, uint64(1), info.AccountVersion)
	assert.Equal(t, uint64(28), info.ConfirmationHeight)
	assert.Equal(t, testAccount, info.Representative.String())
	require.Equal(t, 1, requests.count())
	req := requests.get(0)
	assert.Equal(t, "account_info", req["action"])
	assert.Equal(t, testAccount, req["account"])
	assert.Equal(t, "true", req["representative"])
}

func TestWorkGenerate(t *testing.T) {
	defer goleak.VerifyNone(t)
	server, requests := newTestServer(t, map[string]string{
		"work_generate": `{
			"work": "2b3d689bbcb21dca",
			"difficulty": "fffffff93c41ec94",
			"multiplier": "1.182623871097636",
			"hash": "` + testFrontier + `"
		}`,
	})
	defer server.Close()
	hash, err := ledger.NewBlockHashFromHex(testFrontier)
	require.NoError(t, err)
	testDefs := []struct {
		workType   node.WorkType
		difficulty string
	}{
		{workType: node.WorkSend, difficulty: "fffffff800000000"},
		{workType: node.WorkReceive, difficulty: "fffffe0000000000"},
		{workType: node.WorkAll, difficulty: "ffffffc000000000"},
	}
	client := newTestClient(server)
	for idx, testDef := range testDefs {
		work, err := client.WorkGenerate(context.Background(), hash, testDef.workType)
		if err != nil {
			t.Fatalf("unexpected error for work type %s: %s", testDef.workType, err)
		}
		if work != "2b3d689bbcb21dca" {
			t.Fatalf("did not get expected work: got %s, wanted %s", work, "2b3d689bbcb21dca")
		}
		req := requests.get(idx)
		if req["difficulty"] != testDef.difficulty {
			t.Fatalf(
				"did not send expected difficulty for %s: got %v, wanted %s",
				testDef.workType,
				req["difficulty"],
				testDef.difficulty,
			)
		}
		assert.Equal(t, testFrontier, req["hash"])
	}
}

func TestWorkForSubtype(t *testing.T) {
	testDefs := []struct {
		subtype  ledger.Subtype
		workType node.WorkType
	}{
		{subtype: ledger.SubtypeSend, workType: node.WorkSend},
		{subtype: ledger.SubtypeChange, workType: node.WorkSend},
		{subtype: ledger.SubtypeReceive, workType: node.WorkReceive},
		{subtype: ledger.SubtypeOpen, workType: node.WorkReceive},
		{subtype: ledger.SubtypeEpoch, workType: node.WorkAll},
	}
	for _, testDef := range testDefs {
		if got := node.WorkForSubtype(testDef.subtype); got != testDef.workType {
			t.Fatalf(
				"did not get expected work type for %s: got %s, wanted %s",
				testDef.subtype,
				got,
				testDef.workType,
			)
		}
	}
}

func TestPending(t *testing.T) {
	defer goleak.VerifyNone(t)
	server, requests := newTestServer(t, map[string]string{
		"pending": `{
			"blocks": {
				"` + testLink + `": {
					"amount": "6000000000000000000000000000000",
					"source": "` + testAccount + `"
				},
				"` + testFrontier + `": {
					"amount": "1000000",
					"source": "` + testAccount + `"
				}
			}
		}`,
	})
	defer server.Close()
	opts := node.DefaultPendingOptions()
	opts.Threshold = amount.FromRaw("1000")
	blocks, err := newTestClient(server).Pending(context.Background(), testAccount, opts)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, testLink, blocks[0].Hash.String())
	assert.Equal(t, "6000000000000000000000000000000", blocks[0].Amount.RawString())
	assert.Equal(t, testAccount, blocks[0].Source)
	assert.Equal(t, testFrontier, blocks[1].Hash.String())
	assert.Equal(t, "1000000", blocks[1].Amount.RawString())
	req := requests.get(0)
	assert.Equal(t, "pending", req["action"])
	assert.Equal(t, "true", req["source"])
	assert.Equal(t, "1000", req["threshold"])
	assert.Equal(t, "true", req["include_only_confirmed"])
	assert.Equal(t, "false", req["include_active"])
}

func TestPendingEmpty(t *testing.T) {
	defer goleak.VerifyNone(t)
	server, _ := newTestServer(t, map[string]string{
		"pending": `{"blocks": ""}`,
	})
	defer server.Close()
	blocks, err := newTestClient(server).Pending(
		context.Background(),
		testAccount,
		node.DefaultPendingOptions(),
	)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestProcess(t *testing.T) {
	defer goleak.VerifyNone(t)
	server, requests := newTestServer(t, map[string]string{
		"process": `{"hash": "` + testBlock + `"}`,
	})
	defer server.Close()
	sig, err := ledger.NewSignatureFromHex(
		"DE41370EC64B9B8825EF5DE6FF1F4B4BB4C9EB00DE0C546B03BD05BC569766C95930BE6E3D7DAB5133EA1F1B599F4436344855702FD797CFCAAFE9667D709008",
	)
	require.NoError(t, err)
	block := &ledger.StateBlock{
		Previous:       testFrontier,
		Account:        ledger.ParseKeyRef(testAccount),
		Representative: ledger.ParseKeyRef(testAccount),
		Balance:        amount.FromRaw("1000000000000000000000000000000"),
		Link:           ledger.ParseKeyRef(testLink),
		Signature:      &sig,
		Work:           "2b3d689bbcb21dca",
	}
	hash, err := newTestClient(server).Process(context.Background(), block, ledger.SubtypeSend)
	require.NoError(t, err)
	assert.Equal(t, testBlock, hash.String())
	req := requests.get(0)
	assert.Equal(t, "process", req["action"])
	assert.Equal(t, "true", req["json_block"])
	assert.Equal(t, "send", req["subtype"])
	sent, ok := req["block"].(map[string]any)
	require.True(t, ok, "block was not sent as a JSON object")
	assert.Equal(t, "state", sent["type"])
	assert.Equal(t, testAccount, sent["account"])
	assert.Equal(t, "1000000000000000000000000000000", sent["balance"])
	assert.Equal(t, "2b3d689bbcb21dca", sent["work"])
	assert.Equal(t, sig.String(), sent["signature"])
}

func TestProcessIncompleteBlock(t *testing.T) {
	client := node.NewClient("http://127.0.0.1:1")
	testDefs := []*ledger.StateBlock{
		nil,
		{Previous: ledger.PreviousNone},
		{Previous: ledger.PreviousNone, Work: "2b3d689bbcb21dca"},
	}
	for _, block := range testDefs {
		_, err := client.Process(context.Background(), block, ledger.SubtypeOpen)
		if !errors.Is(err, node.ErrIncompleteBlock) {
			t.Fatalf("did not get expected error: got %v, wanted %s", err, node.ErrIncompleteBlock)
		}
	}
}

func TestClientErrors(t *testing.T) {
	defer goleak.VerifyNone(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/status":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("node offline\n"))
		case "/html":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html></html>"))
		case "/rpc-error":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"error": "Account not found"}`))
		case "/garbage":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"frontier": 12`))
		}
	}))
	defer server.Close()
	ctx := context.Background()

	_, err := node.NewClient(server.URL+"/status", node.WithHTTPClient(server.Client())).
		AccountInfo(ctx, testAccount)
	var httpErr *node.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "node offline", httpErr.Body)

	_, err = node.NewClient(server.URL+"/html", node.WithHTTPClient(server.Client())).
		AccountInfo(ctx, testAccount)
	assert.ErrorIs(t, err, node.ErrInvalidContentType)

	_, err = node.NewClient(server.URL+"/rpc-error", node.WithHTTPClient(server.Client())).
		AccountInfo(ctx, testAccount)
	var rpcErr *node.RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, "account_info", rpcErr.Action)
	assert.Equal(t, "Account not found", rpcErr.Message)

	_, err = node.NewClient(server.URL+"/garbage", node.WithHTTPClient(server.Client())).
		AccountInfo(ctx, testAccount)
	assert.ErrorIs(t, err, node.ErrInvalidResponse)
}

func TestClientTimeout(t *testing.T) {
	defer goleak.VerifyNone(t)
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)
	client := node.NewClient(
		server.URL,
		node.WithHTTPClient(server.Client()),
		node.WithTimeout(50*time.Millisecond),
	)
	_, err := client.AccountInfo(context.Background(), testAccount)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
