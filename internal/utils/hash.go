package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Hash returns the SHA-256 digest of data.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// ETag returns a weak entity tag for data. The tag stays valid when a
// content coding such as gzip is applied to the same body.
func ETag(data []byte) string {
	return `W/"` + hex.EncodeToString(Hash(data)) + `"`
}
