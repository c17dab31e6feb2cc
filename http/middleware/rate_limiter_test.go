package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/trailhead/http/middleware"
)

func TestVisitorFetch(t *testing.T) {
	t.Run("Serial", func(t *testing.T) {
		// Arrange
		vs := middleware.NewVisitors(0, 0)

		// Act
		v1 := vs.Fetch("127.0.0.1")
		time.Sleep(1 * time.Millisecond)
		v2 := vs.Fetch("127.0.0.1")

		// Assert
		require.Equal(t, v1.Limiter, v2.Limiter)
		require.True(t, v1.LastSeen.Before(v2.LastSeen))
		require.Equal(t, 20, v1.Limiter.Burst())
		require.Equal(t, 1, vs.Len())
	})

	t.Run("Concurrent", func(t *testing.T) {
		// Arrange
		var wg sync.WaitGroup
		vs := middleware.NewVisitors(0, 0)
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				// Act
				vs.Fetch("127.0.0.1")
			}()
		}

		wg.Wait()

		// Assert
		require.Equal(t, 1, vs.Len())
	})
}

func TestRateLimit(t *testing.T) {
	// Arrange
	vs := middleware.NewVisitors(1, 2)
	h := middleware.RateLimit(vs)(noopHandler())
	codes := make([]int, 0, 3)

	// Act
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
		r.Header.Set("X-Forwarded-For", "1.1.1.1")
		h.ServeHTTP(w, r)
		codes = append(codes, w.Code)
	}

	// Assert
	require.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimitInjectedIPAddress(t *testing.T) {
	// Arrange
	vs := middleware.NewVisitors(1, 1)
	h := middleware.Chain(noopHandler(), middleware.InjectIPAddress(), middleware.RateLimit(vs))
	codes := make([]int, 0, 3)

	// Act
	for _, ip := range []string{"1.1.1.1", "8.8.8.8", "1.1.1.1"} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
		r.Header.Set("X-Forwarded-For", ip)
		h.ServeHTTP(w, r)
		codes = append(codes, w.Code)
	}

	// Assert
	require.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	require.Equal(t, 2, vs.Len())
}
