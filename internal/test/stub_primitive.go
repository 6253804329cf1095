package test

import (
	"bytes"
	"sync"
)

// StubPrimitive is a deterministic stand-in for the hash and signature
// primitive. Hashes are the message bytes XOR-folded into the requested size,
// public keys are the private key with every byte inverted, and signatures
// are the private key followed by the first 32 bytes of the message. Every
// call is recorded.
type StubPrimitive struct {
	mu    sync.Mutex
	Calls []StubCall
}

// StubCall records one call made to a StubPrimitive
type StubCall struct {
	Method  string
	Message []byte
	Size    uint8
}

func (s *StubPrimitive) record(method string, message []byte, size uint8) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, StubCall{
		Method:  method,
		Message: bytes.Clone(message),
		Size:    size,
	})
}

func (s *StubPrimitive) KeyedHash(message []byte, size uint8) []byte {
	s.record("KeyedHash", message, size)
	ret := make([]byte, size)
	if size == 0 {
		return ret
	}
	for i, b := range message {
		ret[i%int(size)] ^= b
	}
	return ret
}

func (s *StubPrimitive) PublicKey(privateKey []byte) []byte {
	s.record("PublicKey", privateKey, 0)
	ret := make([]byte, len(privateKey))
	for i, b := range privateKey {
		ret[i] = ^b
	}
	return ret
}

func (s *StubPrimitive) Sign(privateKey, publicKey, message []byte) []byte {
	s.record("Sign", message, 0)
	ret := make([]byte, 64)
	copy(ret, privateKey)
	copy(ret[32:], message)
	return ret
}

// CallsTo returns the recorded calls for the named method
func (s *StubPrimitive) CallsTo(method string) []StubCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ret []StubCall
	for _, call := range s.Calls {
		if call.Method == method {
			ret = append(ret, call)
		}
	}
	return ret
}
