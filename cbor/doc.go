// Copyright 2026 Blink Labs Software
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

// Package cbor provides CBOR encoding/decoding utilities for wallet files.
//
// This package wraps github.com/fxamacker/cbor/v2 with deterministic
// encoding (core deterministic map key order) and a cached decoder that
// rejects unknown struct fields.
//
// Embed StructAsArray to encode a struct as a CBOR array instead of a map.
//
// EncodeGeneric and DecodeGeneric bypass a type's own MarshalCBOR and
// UnmarshalCBOR methods, so those methods can wrap the default encoding with
// validation:
//
//	func (f *File) UnmarshalCBOR(data []byte) error {
//	    if err := cbor.DecodeGeneric(data, f); err != nil {
//	        return err
//	    }
//	    return f.validate()
//	}
package cbor
