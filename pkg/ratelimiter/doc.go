// Package ratelimiter implements a token bucket limiter with in-memory and
// Redis stores, and HTTP middleware that applies it per client.
//
// Each key owns a bucket of Capacity tokens. A request takes one token; every
// RefillInterval adds RefillRate tokens back, never beyond Capacity. A denied
// request consumes nothing.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//
//	r.With(ratelimiter.Middleware(limiter, ratelimiter.HashedIPKey(salt))).
//		Post("/api/contact", handler)
//
// MemoryStore suits a single instance. RedisStore runs the same algorithm as
// a Lua script so several replicas share one budget per client.
//
// Keys from HashedIPKey are keyed BLAKE2b digests of the client IP, so the
// store never holds raw addresses.
package ratelimiter
