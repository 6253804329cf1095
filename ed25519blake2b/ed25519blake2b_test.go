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

package ed25519blake2b

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/blinklabs-io/gonano/internal/test"
)

func TestNewKeyFromSeed(t *testing.T) {
	testDefs := []struct {
		privateKey string
		publicKey  string
	}{
		{
			privateKey: "28C5154368F447EADD9B34C76A5F69BBE2BB90DFA0ECC73A0DD66191129A697F",
			publicKey:  "2D9219FFED9553B7D526C70232CCB2AF7E2D566BFE119B0F23ECE2439B28867D",
		},
		{
			privateKey: "B9D114EE0A2FD287731A636ABADB073E6613C258EE1F915DD26457CDCC4EF771",
			publicKey:  "B9E6446BB7E76F377CC05321968DFCB6F59ADA92FE23E2B0813C08D157AD3322",
		},
		{
			privateKey: "99E4D455A4ABE56933368C278C4A9EAB664BF0FA0C19B749BF8634206BEF3599",
			publicKey:  "EC08268C08F29C326880530E700EADDD2714BA77E139BE899B789F2C88471960",
		},
	}
	for _, testDef := range testDefs {
		pub := NewKeyFromSeed(test.DecodeHexString(testDef.privateKey))
		if got := strings.ToUpper(hex.EncodeToString(pub)); got != testDef.publicKey {
			t.Fatalf("public key mismatch: got %s, wanted %s", got, testDef.publicKey)
		}
	}
}

func TestSign(t *testing.T) {
	testDefs := []struct {
		privateKey string
		message    string
		signature  string
	}{
		{
			privateKey: "9772ECFFF6108A7A59EAA133F927273DAEE28E4B736E7E720C8DD9E80448935C",
			message:    "BEC62BD9F7C036154619C34BDBB58E9B92FFCD516B38E7326C124803B5B3D8F1",
			signature:  "9BD47FF10A93854F6F99523095B8AD164BA15B962FB7DB2D295DF5A28D0FD9986AFF343E3B193F1DA8F55C0E498F6CF3A31053EE9EF4D0CDF35FE46482CB7105",
		},
		{
			privateKey: "B9D114EE0A2FD287731A636ABADB073E6613C258EE1F915DD26457CDCC4EF771",
			message:    "7167BBA21D8BB35BBA7FC88E714383D0332DB876EDBA2C118F1FFC13AB0668B3",
			signature:  "21658E5B0EC38265575FA21BE2E036D7B0D15B766B85C71D11590BA0DDF1E02CABE4E2CC65C8B3F425F710394E0CB5548B58D288D35B029D23CA960B1632480D",
		},
	}
	for _, testDef := range testDefs {
		priv := test.DecodeHexString(testDef.privateKey)
		pub := NewKeyFromSeed(priv)
		msg := test.DecodeHexString(testDef.message)
		sig := Sign(priv, pub, msg)
		if got := strings.ToUpper(hex.EncodeToString(sig)); got != testDef.signature {
			t.Fatalf("signature mismatch: got %s, wanted %s", got, testDef.signature)
		}
		if !Verify(pub, msg, sig) {
			t.Fatalf("signature failed to verify")
		}
	}
}

func TestVerifyRejects(t *testing.T) {
	priv := bytes.Repeat([]byte{0x42}, PrivateKeySize)
	pub := NewKeyFromSeed(priv)
	msg := []byte("state block hash")
	sig := Sign(priv, pub, msg)

	if Verify(pub, []byte("another message"), sig) {
		t.Error("expected verification failure for altered message")
	}
	badSig := bytes.Clone(sig)
	badSig[5] ^= 0x01
	if Verify(pub, msg, badSig) {
		t.Error("expected verification failure for altered signature")
	}
	otherPub := NewKeyFromSeed(bytes.Repeat([]byte{0x43}, PrivateKeySize))
	if Verify(otherPub, msg, sig) {
		t.Error("expected verification failure for wrong public key")
	}
	if Verify(pub[:31], msg, sig) || Verify(pub, msg, sig[:63]) {
		t.Error("expected verification failure for short inputs")
	}
	// A non-canonical S must be rejected
	nonCanonical := bytes.Clone(sig)
	for i := 32; i < 64; i++ {
		nonCanonical[i] = 0xff
	}
	if Verify(pub, msg, nonCanonical) {
		t.Error("expected verification failure for non-canonical S")
	}
}

func TestSignatureDeterminism(t *testing.T) {
	priv := bytes.Repeat([]byte{0x01}, PrivateKeySize)
	pub := NewKeyFromSeed(priv)
	msg := []byte("determinism")
	if !bytes.Equal(Sign(priv, pub, msg), Sign(priv, pub, msg)) {
		t.Fatal("signatures are not deterministic")
	}
}

func TestHash(t *testing.T) {
	seed := test.DecodeHexString("AF30153E697BCF976236C68995774AA0797B8D67E46DDC15E1694317DA03BF84")
	input := append(bytes.Clone(seed), 0, 0, 0, 0)
	expected := "4B1BA284ABB8CD984747E4842BC516CD98EF5266DF71D4FD794DA1A91F49CAB1"
	if got := strings.ToUpper(hex.EncodeToString(Hash(input, 32))); got != expected {
		t.Fatalf("hash mismatch: got %s, wanted %s", got, expected)
	}
	for _, size := range []int{1, 5, 32, MaxHashSize} {
		if got := len(Hash([]byte("x"), size)); got != size {
			t.Errorf("expected %d bytes of output, got %d", size, got)
		}
	}
}

func TestPanicsOnBadLengths(t *testing.T) {
	testDefs := []struct {
		name string
		fn   func()
	}{
		{name: "short private key", fn: func() { NewKeyFromSeed(make([]byte, 31)) }},
		{name: "short public key", fn: func() { Sign(make([]byte, 32), make([]byte, 31), nil) }},
		{name: "zero hash size", fn: func() { Hash(nil, 0) }},
		{name: "oversized hash", fn: func() { Hash(nil, 65) }},
	}
	for _, testDef := range testDefs {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", testDef.name)
				}
			}()
			testDef.fn()
		}()
	}
}

func TestPrimitive(t *testing.T) {
	var p Primitive
	priv := bytes.Repeat([]byte{0x07}, PrivateKeySize)
	pub := p.PublicKey(priv)
	msg := p.KeyedHash([]byte("block"), 32)
	sig := p.Sign(priv, pub, msg)
	if !p.Verify(pub, msg, sig) {
		t.Fatal("primitive round trip failed")
	}
	if len(p.KeyedHash(pub, 5)) != 5 {
		t.Fatal("expected 5-byte keyed hash")
	}
}
