package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests of request and response bodies.
// Hash instances are reused through a sync.Pool, so a Hasher is safe for
// concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey.
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum returns the raw HMAC-SHA256 digest of data.
func (h *Hasher) Sum(data []byte) []byte {
	hasher := h.pool.Get().(hash.Hash)
	hasher.Reset()

	hasher.Write(data)
	sum := hasher.Sum(nil)

	hasher.Reset()
	h.pool.Put(hasher)

	return sum
}

// SumHex returns the hex-encoded HMAC-SHA256 digest of data.
func (h *Hasher) SumHex(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether signature is the hex-encoded digest of data.
// The comparison is constant-time.
func (h *Hasher) Verify(data []byte, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(expected, h.Sum(data))
}

// HashString computes an HMAC-SHA256 signature over data using hashKey and
// returns it hex-encoded. A new HMAC instance is created on each call.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
