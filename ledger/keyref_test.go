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
	"encoding/json"
	"errors"
	"testing"

	"github.com/blinklabs-io/gonano/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveKey(t *testing.T) {
	const keyHex = "780AC2195BC676FFD653C9F99FE641C9BB45B6E077CFAC5B6161461AC9C981AA"
	key := PublicKey(test.DecodeHex32(keyHex))
	testDefs := []struct {
		name string
		ref  KeyRef
		kind KeyRefKind
		err  error
	}{
		{name: "raw", ref: RawKey(key), kind: KeyRefRaw},
		{name: "hex", ref: ParseKeyRef(keyHex), kind: KeyRefHex},
		{name: "lowercase hex", ref: HexKey("780ac2195bc676ffd653c9f99fe641c9bb45b6e077cfac5b6161461ac9c981aa"), kind: KeyRefHex},
		{
			name: "xrb address",
			ref:  ParseKeyRef("xrb_1y1craeoqjmpzzd79khsmzm65kfuapug1xyhojfp4rc85d6wm1fcgkcqx8e8"),
			kind: KeyRefAddress,
		},
		{
			name: "parsed address",
			ref:  AddressRef(New().NewAddress(key, PrefixBan)),
			kind: KeyRefAddress,
		},
		{name: "short hex", ref: HexKey(keyHex[:62]), kind: KeyRefHex, err: ErrInvalidKeyRef},
		{name: "odd hex", ref: HexKey(keyHex[:63]), kind: KeyRefHex, err: ErrInvalidKeyRef},
		{name: "bad hex", ref: HexKey("G" + keyHex[1:]), kind: KeyRefHex, err: ErrInvalidKeyRef},
		{
			name: "bad address",
			ref:  ParseKeyRef("xrb_1y1craeoqjmpzzd79khsmzm65kfuapug1xyhojfp4rc85d6wm1fcgkcqx8e9"),
			kind: KeyRefAddress,
			err:  ErrInvalidAddress,
		},
		{name: "empty", ref: KeyRef{}, kind: KeyRefNone, err: ErrInvalidKeyRef},
	}
	l := New()
	for _, testDef := range testDefs {
		if testDef.ref.Kind() != testDef.kind {
			t.Fatalf("%s: kind mismatch: got %s, wanted %s", testDef.name, testDef.ref.Kind(), testDef.kind)
		}
		resolved, err := l.ResolveKey(testDef.ref)
		if testDef.err != nil {
			if !errors.Is(err, testDef.err) {
				t.Fatalf("%s: did not get expected error: got %v, wanted %v", testDef.name, err, testDef.err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %s", testDef.name, err)
		}
		if resolved != key {
			t.Fatalf("%s: key mismatch: got %s, wanted %s", testDef.name, resolved.String(), keyHex)
		}
	}
}

func TestKeyRefJSON(t *testing.T) {
	const addr = "nano_1hdda1zcipzftncz155ughx5xzyunsjxygbyc6yqjqoz9emmanzc8qybmubs"
	var ref KeyRef
	require.NoError(t, json.Unmarshal([]byte(`"`+addr+`"`), &ref))
	assert.Equal(t, KeyRefAddress, ref.Kind())
	assert.Equal(t, addr, ref.String())
	data, err := json.Marshal(RawKey(PublicKey{0xab}))
	require.NoError(t, err)
	assert.Equal(t, `"AB00000000000000000000000000000000000000000000000000000000000000"`, string(data))
	assert.True(t, KeyRef{}.IsZero())
	assert.Equal(t, "", KeyRef{}.String())
}
