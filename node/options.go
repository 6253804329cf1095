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
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout bounds each RPC call unless WithTimeout says otherwise
const DefaultTimeout = 30 * time.Second

// ClientOptionFunc is a type that represents functions that modify the Client config
type ClientOptionFunc func(*Client)

// WithLogger specifies the logger. The default is slog.Default()
func WithLogger(logger *slog.Logger) ClientOptionFunc {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient specifies the HTTP client used for requests. The default is
// a new http.Client
func WithHTTPClient(httpClient *http.Client) ClientOptionFunc {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout specifies the deadline applied to each call. A zero value
// disables it and leaves only the caller's context.
func WithTimeout(timeout time.Duration) ClientOptionFunc {
	return func(c *Client) {
		c.timeout = timeout
	}
}
