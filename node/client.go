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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"
)

// maxResponseSize limits how much of a node response is read
const maxResponseSize = 16 << 20

// Client talks to the JSON RPC interface of a node over HTTP. It never
// retries a call.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
}

// NewClient returns a client for the node RPC endpoint at url
func NewClient(url string, opts ...ClientOptionFunc) *Client {
	c := &Client{
		url:     url,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// URL returns the RPC endpoint
func (c *Client) URL() string {
	return c.url
}

// call posts a request for action with the given fields and decodes the
// response into result
func (c *Client) call(
	ctx context.Context,
	action string,
	fields map[string]any,
	result any,
) error {
	body := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["action"] = action
	reqBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", action, err)
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.url,
		bytes.NewReader(reqBody),
	)
	if err != nil {
		return fmt.Errorf("create %s request: %w", action, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	c.logger.Debug(
		"sending RPC request",
		"component", "node",
		"action", action,
		"url", c.url,
	)
	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s request: %w", action, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Debug(
				"failed to close response body",
				"component", "node",
				"error", err,
			)
		}
	}()
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read %s response: %w", action, err)
	}
	c.logger.Debug(
		"received RPC response",
		"component", "node",
		"action", action,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       string(bytes.TrimSpace(respBody)),
		}
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return fmt.Errorf(
			"%w: %s response has content type %q",
			ErrInvalidContentType,
			action,
			resp.Header.Get("Content-Type"),
		)
	}
	var errResp struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(respBody, &errResp); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidResponse, action, err)
	}
	if errResp.Error != nil {
		c.logger.Warn(
			"node returned an error",
			"component", "node",
			"action", action,
			"error", *errResp.Error,
		)
		return &RPCError{Action: action, Message: *errResp.Error}
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidResponse, action, err)
	}
	return nil
}
