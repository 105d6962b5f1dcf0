package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimitConfig describes one rate-limiting policy.
type RateLimitConfig struct {
	Max        int           // request ceiling per window
	Expiration time.Duration // window length
	Message    string        // error body on breach
}

// APIRateLimit is the blanket policy applied to every /api path.
var APIRateLimit = RateLimitConfig{
	Max:        100,
	Expiration: 15 * time.Minute,
	Message:    "Too many requests from this IP, please try again after 15 minutes",
}

// CreateRateLimit is the tighter policy layered on creation endpoints.
var CreateRateLimit = RateLimitConfig{
	Max:        10,
	Expiration: time.Hour,
	Message:    "Too many records created, please try again after an hour",
}

// NewRateLimiter builds a limiter middleware for the given policy. Requests
// are counted per client address; window state lives in process memory and
// resets on restart.
func NewRateLimiter(config RateLimitConfig) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        config.Max,
		Expiration: config.Expiration,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   config.Message,
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
