// Package security sets the response headers for the scoring API.
package security

import (
	"github.com/gofiber/fiber/v2"
)

// HeadersConfig controls headers that depend on the deployment. HSTS is only
// set outside development since it assumes TLS termination.
type HeadersConfig struct {
	IsDevelopment bool
}

// HeadersMiddleware applies the security headers for a JSON-only service.
// Nothing here is rendered in a browser, so the content security policy
// denies all sources outright. Responses carry resume-derived data and must
// not be cached by intermediaries.
func HeadersMiddleware(cfg HeadersConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("Referrer-Policy", "no-referrer")
		c.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		c.Set("Cache-Control", "no-store")

		if !cfg.IsDevelopment {
			c.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		return c.Next()
	}
}
