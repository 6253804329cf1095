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
	"errors"
	"fmt"
)

var (
	ErrIncompleteBlock    = errors.New("block is missing its signature or work")
	ErrInvalidContentType = errors.New("node response is not JSON")
	ErrInvalidResponse    = errors.New("invalid node response")
)

// HTTPError indicates a node response with a non-2xx status
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("node returned HTTP status %d", e.StatusCode)
	}
	return fmt.Sprintf("node returned HTTP status %d: %s", e.StatusCode, e.Body)
}

// RPCError indicates a node response carrying an error message
type RPCError struct {
	Action  string
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("node RPC %s failed: %s", e.Action, e.Message)
}
