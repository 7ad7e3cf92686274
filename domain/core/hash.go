package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// RowHash fingerprints one table row for exact duplicate detection
type RowHash Hash

// NewRowHash creates a row fingerprint from the row's encoded cells
func NewRowHash(data []byte) RowHash {
	return RowHash(NewHash(data))
}

func (h RowHash) String() string { return Hash(h).String() }
