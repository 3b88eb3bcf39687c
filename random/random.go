package random

import (
	"crypto/rand"
	"encoding/hex"
)

func NewBytes(length int) []byte {
	bytes := make([]byte, length)
	rand.Read(bytes)
	return bytes
}

// NewString returns 2*length hex characters from a crypto/rand source.
// Session identifiers and test database suffixes come from here.
func NewString(length int) string {
	return hex.EncodeToString(NewBytes(length))
}
