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

package codec

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexAndBytes(t *testing.T) {
	hexStr := "780AC2195BC676FFD653C9F99FE641C9BB45B6E077CFAC5B6161461AC9C981AA"
	expected := []byte{
		120, 10, 194, 25, 91, 198, 118, 255, 214, 83, 201, 249, 159, 230, 65, 201,
		187, 69, 182, 224, 119, 207, 172, 91, 97, 97, 70, 26, 201, 201, 129, 170,
	}
	assert.Equal(t, expected, HexToBytes(hexStr))
	assert.Equal(t, hexStr, BytesToHex(expected))
	assert.Equal(t, expected, HexToBytes("780ac2195bc676ffd653c9f99fe641c9bb45b6e077cfac5b6161461ac9c981aa"))
}

func TestHexToBytesLenient(t *testing.T) {
	testDefs := []struct {
		input    string
		expected []byte
	}{
		{input: "", expected: []byte{}},
		{input: "0A0b", expected: []byte{0x0a, 0x0b}},
		// Trailing single digit is decoded on its own
		{input: "0A0", expected: []byte{0x0a, 0x00}},
		{input: "0AF", expected: []byte{0x0a, 0x0f}},
		// Decoding stops at the first invalid pair
		{input: "0AZZ0B", expected: []byte{0x0a}},
		{input: "G0", expected: []byte{}},
		{input: "+A", expected: []byte{}},
	}
	for _, testDef := range testDefs {
		assert.Equal(t, testDef.expected, HexToBytes(testDef.input), "input %q", testDef.input)
	}
}

func TestBinaryAndBytes(t *testing.T) {
	binary := "011001101110000100100100"
	binary2 := "000000011001101110000100100100"
	b := []byte{102, 225, 36}
	assert.Equal(t, b, BinaryStringToBytes(binary))
	assert.Equal(t, binary, BytesToBinaryString(b, 24))
	assert.Equal(t, binary2, BytesToBinaryString(b, 30))
	// Shorter target lengths never truncate
	assert.Equal(t, binary, BytesToBinaryString(b, 0))
}

func TestBinaryStringPartialChunk(t *testing.T) {
	// The final chunk carries fewer significant bits
	assert.Equal(t, []byte{0xff, 0x05}, BinaryStringToBytes("11111111101"))
	assert.Equal(t, []byte{0x01}, BinaryStringToBytes("1"))
	assert.Equal(t, []byte{0xff}, BinaryStringToBytes("11111111x0000000"))
}

func TestUint32ToBytes(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 4, 210}, Uint32ToBytes(1234))
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, Uint32ToBytes(0xffffffff))
	assert.Equal(t, []byte{0, 0, 0, 0}, Uint32ToBytes(0))
}

func TestPadLeft(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 8, 8, 8}, PadLeft([]byte{8, 8, 8}, 6))
	assert.Equal(t, []byte{8, 8, 8}, PadLeft([]byte{8, 8, 8}, 2))
	assert.Equal(t, []byte{0, 0}, PadLeft(nil, 2))
	in := []byte{1, 2, 3}
	assert.Equal(t, in, PadLeft(in, 3))
}

func TestRoundTrips(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range 200 {
		b := make([]byte, rng.IntN(64))
		for j := range b {
			b[j] = byte(rng.UintN(256))
		}
		if !bytes.Equal(HexToBytes(BytesToHex(b)), b) {
			t.Fatalf("hex round trip failed on iteration %d: %x", i, b)
		}
		padded := PadLeft(b, 48)
		if !bytes.Equal(PadLeft(padded, 48), padded) {
			t.Fatalf("padding was not idempotent for %x", b)
		}
		key := make([]byte, 32)
		for j := range key {
			key[j] = byte(rng.UintN(256))
		}
		if !bytes.Equal(BinaryStringToBytes(BytesToBinaryString(key, 256)), key) {
			t.Fatalf("binary round trip failed for %x", key)
		}
	}
}
