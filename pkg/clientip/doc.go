// Package clientip resolves the address of the client behind a request.
//
// By default only the TCP peer address is used. Deployments behind a
// reverse proxy opt in to forwarded headers:
//
//	trusted, err := clientip.ParseTrustedProxies([]string{"10.0.0.0/8"})
//	res := clientip.New(
//		clientip.WithProxyHeaders(),
//		clientip.WithTrustedProxies(trusted...),
//	)
//	r.Use(res.Middleware)
//
// X-Forwarded-For is read from the right: the last hop that is not a
// trusted proxy is the client. Entries further left are client-supplied.
//
//	ip := clientip.FromContext(r.Context())
//
// The resolved address keys the contact endpoint's rate limiter.
package clientip
