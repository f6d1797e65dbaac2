package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/djanguicore/portfolio-backend/internal/api/metrics"
	"github.com/djanguicore/portfolio-backend/internal/auth"
	"github.com/djanguicore/portfolio-backend/internal/core/domain"
	"github.com/djanguicore/portfolio-backend/internal/core/ports"
)

// Context keys under which the authenticator stores the request's identity.
const (
	PrincipalKey = "principal"
	RoleKey      = "role"
)

const bearerPrefix = "Bearer "

// Principal returns the authenticated user stored on the request context,
// or nil when the request is anonymous.
func Principal(c echo.Context) *domain.User {
	p, _ := c.Get(PrincipalKey).(*domain.User)
	return p
}

// Authenticate returns the bearer-token authenticator. It never rejects a
// request: every failure mode (missing header, malformed token, unknown
// subject, expired token) leaves the request anonymous and lets the
// authorization policy decide downstream. On success it stores the
// principal and its role on the request context, exactly once.
func Authenticate(codec *auth.TokenCodec, lookup ports.PrincipalLookup) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, bearerPrefix) {
				metrics.TokenValidationsTotal.WithLabelValues("anonymous").Inc()
				return next(c)
			}
			token := header[len(bearerPrefix):]

			subject, err := codec.Subject(token)
			if err != nil || subject == "" {
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				return next(c)
			}

			// Never overwrite an authentication established earlier in the
			// chain.
			if Principal(c) != nil {
				return next(c)
			}

			principal, err := lookup.LoadPrincipal(c.Request().Context(), subject)
			if err != nil || principal == nil {
				metrics.TokenValidationsTotal.WithLabelValues("unknown_subject").Inc()
				return next(c)
			}

			if codec.IsValid(token, principal.Email) {
				c.Set(PrincipalKey, principal)
				c.Set(RoleKey, string(principal.Role))
				metrics.TokenValidationsTotal.WithLabelValues("authenticated").Inc()
			} else {
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
			}
			return next(c)
		}
	}
}
