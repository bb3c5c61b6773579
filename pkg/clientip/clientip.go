package clientip

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultProxyHeaders is the lookup order used behind a trusted proxy.
var DefaultProxyHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver determines the client address of a request.
// The zero value trusts nothing but the TCP peer address.
type Resolver struct {
	headers []string
	trusted []netip.Prefix
}

type Option func(*Resolver)

// WithProxyHeaders makes the resolver read the given headers, in order,
// before falling back to RemoteAddr. Only enable it when every request
// passes through a proxy that overwrites these headers; otherwise clients
// can pick their own address. No arguments means DefaultProxyHeaders.
func WithProxyHeaders(headers ...string) Option {
	return func(r *Resolver) {
		if len(headers) == 0 {
			headers = DefaultProxyHeaders
		}
		r.headers = append([]string(nil), headers...)
	}
}

// WithTrustedProxies lists the proxies whose entries are skipped when a
// header carries a comma-separated hop list such as X-Forwarded-For.
func WithTrustedProxies(prefixes ...netip.Prefix) Option {
	return func(r *Resolver) {
		r.trusted = append(r.trusted, prefixes...)
	}
}

// ParseTrustedProxies parses CIDR ranges or bare addresses.
func ParseTrustedProxies(values []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if strings.Contains(v, "/") {
			p, err := netip.ParsePrefix(v)
			if err != nil {
				return nil, fmt.Errorf("trusted proxy %q: %w", v, err)
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(v)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", v, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IP returns the normalized client IP or an empty string.
//
// Hop lists are read right to left, since only the right end was appended
// by proxies under our control. Trusted proxies are skipped and the first
// other entry wins. An unparsable entry ends the walk for that header.
func (res *Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		if ip := res.fromHops(r.Header.Values(h)); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// Middleware stores the resolved IP in the request context.
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.IP(r))))
	})
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

func (res *Resolver) fromHops(values []string) string {
	var hops []string
	for _, v := range values {
		hops = append(hops, strings.Split(v, ",")...)
	}
	for i := len(hops) - 1; i >= 0; i-- {
		ip := parseIP(hops[i])
		if ip == "" {
			return ""
		}
		if !res.isTrusted(ip) {
			return ip
		}
	}
	return ""
}

func (res *Resolver) isTrusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range res.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
