package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before use.
var hasherPool sync.Pool

// InitHasherPool initializes a sync.Pool of HMAC-SHA256 hashers, each
// configured with the provided key. Pooling avoids allocating a new
// hash.Hash instance on every request integrity check.
//
// Example usage:
//
//	utils.InitHasherPool("my-secret-key")
func InitHasherPool(hashKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// Hash computes an HMAC-SHA256 digest over the given byte slice using a
// hasher pulled from the global pool. The hasher is reset before and after
// use and returned to the pool.
//
// Example usage:
//
//	digest := utils.Hash([]byte("some data"))
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// HashString computes an HMAC-SHA256 digest over the given string using the
// provided key and returns the result hex-encoded.
//
// Unlike Hash, this function does not use the global hasher pool and creates
// a new HMAC instance on each call. Suitable for one-off hashing such as
// password hashing on registration and login.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// HashBytes computes a raw HMAC-SHA256 digest over data with a fresh HMAC
// instance keyed by hashKey. Used for one-off integrity hashes on the client
// side, where no global hasher pool is initialized.
func HashBytes(data []byte, hashKey string) []byte {
	return hashString(data, hashKey)
}

// hashString computes a raw HMAC-SHA256 digest with a fresh HMAC instance.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
