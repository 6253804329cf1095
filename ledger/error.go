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

package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidKeyLength   = errors.New("invalid key length")
	ErrInvalidPrefix      = errors.New("invalid address prefix")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrVerifyUnsupported  = errors.New("primitive does not support verification")
	ErrInvalidKeyRef      = errors.New("invalid key reference")
	ErrUnsignedBlock      = errors.New("block has no signature")
	ErrAccountKeyMismatch = errors.New("signing key does not match block account")
)

// Block field errors so callers can use errors.Is
var (
	ErrInvalidAccount        = errors.New("invalid account")
	ErrInvalidPrevious       = errors.New("invalid previous")
	ErrInvalidRepresentative = errors.New("invalid representative")
	ErrInvalidLink           = errors.New("invalid link")
	ErrInvalidBalance        = errors.New("invalid balance")
)

// AddressError indicates an address string that did not validate
type AddressError struct {
	Address  string
	Validity AddressValidity
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("invalid address %q: %s", e.Address, e.Validity)
}

func (*AddressError) Is(target error) bool {
	return target == ErrInvalidAddress
}

// BlockFieldError indicates a state block field that could not be packed into
// the block preimage. Err is one of the field sentinels and Cause, when set,
// is the underlying decode failure.
type BlockFieldError struct {
	Field string
	Value string
	Err   error
	Cause error
}

func (e *BlockFieldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %q: %v", e.Err, e.Value, e.Cause)
	}
	return fmt.Sprintf("%s %q", e.Err, e.Value)
}

func (e *BlockFieldError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}
