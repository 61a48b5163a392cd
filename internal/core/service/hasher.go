package service

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher derives the stored digest of a password: SHA-256 over the plaintext
// with the process-wide salt appended. The digest is deterministic so a
// credential can be looked up by it.
//
// A single salt for every record is weaker than per-record random salts; it
// is kept so existing credentials keep matching.
type Hasher struct {
	salt string
}

func NewHasher(salt string) *Hasher {
	return &Hasher{salt: salt}
}

// Hash returns the lower-case hex digest of plaintext || salt.
func (h *Hasher) Hash(plaintext string) string {
	sum := sha256.New()
	sum.Write([]byte(plaintext))
	sum.Write([]byte(h.salt))
	return hex.EncodeToString(sum.Sum(nil))
}
