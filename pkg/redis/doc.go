// Package redis connects to the optional Redis server backing shared
// rate-limit state.
//
//	if cfg.Redis.Enabled() {
//		client, err := redis.Connect(ctx, cfg.Redis)
//		...
//		store := ratelimiter.NewRedisStore(client)
//	}
//
// Connect retries the initial ping so the service can start alongside a
// Redis container that is still booting. Healthcheck plugs the connection
// into the readiness check.
package redis
