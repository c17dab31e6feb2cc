package middleware

import (
	"context"
	"net/http"
	"net/netip"
	"strings"

	"github.com/xy-planning-network/trailhead"
)

const unknownIPAddress = "0.0.0.0"

// Headers proxies set with the chain of addresses a request passed through.
var forwardingHeaders = []string{"X-Forwarded-For", "X-Real-Ip"}

// IANA reserved ranges netip.Addr.IsPrivate leaves out.
var reservedPrefixes = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
}

// InjectIPAddress resolves the IP address of the client making the request with GetIPAddress
// and stashes it in the request context under trailhead.IpAddrKey.
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := GetIPAddress(r)
			r = r.Clone(context.WithValue(r.Context(), trailhead.IpAddrKey, ip))
			h.ServeHTTP(w, r)
		})
	}
}

// IPAddress returns the IP address InjectIPAddress stashed in ctx.
func IPAddress(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(trailhead.IpAddrKey).(string)
	return ip, ok
}

// GetIPAddress resolves the IP address of the client making r.
//
// GetIPAddress reads the "X-Forwarded-For" and "X-Real-Ip" headers right to left,
// returning the first public address, the one right before our proxies.
// Without one, it falls back to r.RemoteAddr if that is public, then to "0.0.0.0".
func GetIPAddress(r *http.Request) string {
	for _, h := range forwardingHeaders {
		addrs := strings.Split(r.Header.Get(h), ",")
		for i := len(addrs) - 1; i >= 0; i-- {
			addr, err := netip.ParseAddr(strings.TrimSpace(addrs[i]))
			if err != nil || !isPublic(addr) {
				continue
			}

			return addr.String()
		}
	}

	if ap, err := netip.ParseAddrPort(r.RemoteAddr); err == nil && isPublic(ap.Addr()) {
		return ap.Addr().Unmap().String()
	}

	return unknownIPAddress
}

// clientIP prefers the address InjectIPAddress stashed, resolving it otherwise.
func clientIP(r *http.Request) string {
	if ip, ok := IPAddress(r.Context()); ok {
		return ip
	}

	return GetIPAddress(r)
}

func isPublic(addr netip.Addr) bool {
	addr = addr.Unmap()
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return false
	}

	for _, p := range reservedPrefixes {
		if p.Contains(addr) {
			return false
		}
	}

	return true
}
