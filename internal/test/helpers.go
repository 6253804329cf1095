package test

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// DecodeHex32 decodes a hex string that must contain exactly 32 bytes
func DecodeHex32(hexData string) [32]byte {
	var ret [32]byte
	decoded := DecodeHexString(hexData)
	if len(decoded) != len(ret) {
		panic(fmt.Sprintf("expected 32 bytes of hex, got %d", len(decoded)))
	}
	copy(ret[:], decoded)
	return ret
}

// DecodeHex64 decodes a hex string that must contain exactly 64 bytes
func DecodeHex64(hexData string) [64]byte {
	var ret [64]byte
	decoded := DecodeHexString(hexData)
	if len(decoded) != len(ret) {
		panic(fmt.Sprintf("expected 64 bytes of hex, got %d", len(decoded)))
	}
	copy(ret[:], decoded)
	return ret
}
