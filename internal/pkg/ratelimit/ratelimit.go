package ratelimit

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// NewMiddleware builds a per-client-IP rate limiting middleware from a
// formatted rate string such as "30-1m" (30 requests per minute).
// The public availability endpoint uses this to absorb the polling that
// live booking forms generate.
func NewMiddleware(rateStr string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(rateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", rateStr, err)
	}

	instance := limiter.New(memory.NewStore(), rate)
	return mgin.NewMiddleware(instance), nil
}
