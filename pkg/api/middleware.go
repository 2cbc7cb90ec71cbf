package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"
)

type contextKey string

// identityHashKey carries the authenticated identity hash in the request
// context.
const identityHashKey contextKey = "identity_hash"

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// identityMiddleware resolves the caller identity from the cookie, minting
// one on first contact, and stashes the hash in the request context. Raw
// cookie values stay out of handlers entirely.
func (s *Server) identityMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			ident, err := s.identities.IdentityOf(c.Response(), c.Request())
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "failed to establish identity")
			}
			ctx := context.WithValue(c.Request().Context(), identityHashKey, ident.Hash)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// bodyLimit caps request body size on mutation routes.
func bodyLimit(maxBytes int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if c.Request().Body != nil {
				c.Request().Body = http.MaxBytesReader(c.Response(), c.Request().Body, maxBytes)
			}
			return next(c)
		}
	}
}

// identityHash extracts the hash stashed by identityMiddleware.
func identityHash(c *echo.Context) string {
	if v, ok := c.Request().Context().Value(identityHashKey).(string); ok {
		return v
	}
	return ""
}
