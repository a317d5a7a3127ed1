package ir

import (
	"crypto/sha256"
	"encoding/hex"
)

// Domain prefixes for content hashes.
// Version suffix enables future algorithm migration.
const (
	DomainAdvancement = "advkit/advancement/v1"
)

// Hash computes a domain-separated SHA-256 over the compact encoding of v.
// Format: SHA256(domain + 0x00 + Marshal(v))
// The null byte separator prevents domain/data boundary ambiguity.
func Hash(domain string, v Value) string {
	return HashBytes(domain, Marshal(v))
}

// HashBytes is Hash over an already compact encoding.
func HashBytes(domain string, compact []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(compact)
	return hex.EncodeToString(h.Sum(nil))
}
