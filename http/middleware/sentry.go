package middleware

import (
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/trailhead"
)

// ReportPanic recovers panics raised while handling a request and reports them to Sentry,
// unless env is development, in which case NoopAdapter returns and panics are left alone.
func ReportPanic(env trailhead.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
	})

	return sh.Handle
}
