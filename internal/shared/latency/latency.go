// Package latency injects an artificial delay in front of every request so
// a demo deployment exercises the same loading-state UI paths a slow
// backend would. The delay is configuration, never a constant, and defaults
// to zero.
package latency

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// EnvKeyLatencyMS is the environment variable holding the delay in
// milliseconds.
const EnvKeyLatencyMS = "SIMULATED_LATENCY_MS"

// FromEnv reads the configured delay. Unset, empty or malformed values
// mean no delay.
func FromEnv() time.Duration {
	raw := os.Getenv(EnvKeyLatencyMS)
	if raw == "" {
		return 0
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms <= 0 {
		slog.Warn("ignoring invalid simulated latency", "value", raw)
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

// Middleware returns a Gin middleware that sleeps for d before the handler
// runs. The sleep happens up front, so a mutation still completes even if
// the client abandons the request. A non-positive d is a no-op.
func Middleware(d time.Duration) gin.HandlerFunc {
	if d <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		time.Sleep(d)
		c.Next()
	}
}
