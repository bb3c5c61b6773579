package ratelimiter

import (
	"encoding/hex"
	"net/http"

	"golang.org/x/crypto/blake2b"

	"github.com/dmitrymomot/folio/pkg/clientip"
)

// KeyFunc extracts a rate limit key from the request. An empty key skips
// limiting for that request.
type KeyFunc func(r *http.Request) string

// HashedIPKey keys buckets by the client IP resolved by clientip.Middleware,
// hashed with a keyed BLAKE2b so raw addresses never reach the store.
// Requests without a resolved IP get an empty key.
func HashedIPKey(salt string) KeyFunc {
	// blake2b keys are capped at 64 bytes, the digest of salt always fits.
	key := blake2b.Sum256([]byte(salt))
	return func(r *http.Request) string {
		ip := clientip.FromContext(r.Context())
		if ip == "" {
			return ""
		}
		return hashKey(key[:], ip)
	}
}

func hashKey(key []byte, value string) string {
	h, err := blake2b.New(16, key)
	if err != nil {
		// Unreachable: key length is fixed at 32 bytes.
		panic(err)
	}
	h.Write([]byte(value))
	return hex.EncodeToString(h.Sum(nil))
}
