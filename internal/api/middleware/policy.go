package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/djanguicore/portfolio-backend/internal/api/metrics"
	"github.com/djanguicore/portfolio-backend/internal/core/domain"
)

type requirement int

const (
	reqPublic requirement = iota
	reqAuthenticated
	reqRole
)

// Rule maps a path pattern to an access requirement. Patterns ending in
// "/**" match the prefix and everything below it; all other patterns match
// exactly.
type Rule struct {
	pattern string
	req     requirement
	role    domain.Role
}

// Allow marks a pattern as public.
func Allow(pattern string) Rule {
	return Rule{pattern: pattern, req: reqPublic}
}

// RequireAuth marks a pattern as reachable by any authenticated principal.
func RequireAuth(pattern string) Rule {
	return Rule{pattern: pattern, req: reqAuthenticated}
}

// RequireRole marks a pattern as reachable only by principals holding role.
func RequireRole(pattern string, role domain.Role) Rule {
	return Rule{pattern: pattern, req: reqRole, role: role}
}

func (r Rule) matches(path string) bool {
	if prefix, ok := strings.CutSuffix(r.pattern, "/**"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	return path == r.pattern
}

// Policy is an ordered, immutable rule table evaluated per request; the
// first matching rule wins.
type Policy struct {
	rules []Rule
}

func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// DefaultPolicy is the access rule table for the portfolio API: auth and
// public portfolio endpoints are open, docs and ops endpoints are open,
// the admin surface needs the ADMIN role, and everything else needs a
// logged-in principal.
func DefaultPolicy() *Policy {
	return NewPolicy(
		Allow("/api/auth/**"),
		Allow("/api/v0/**"),
		Allow("/swagger/**"),
		Allow("/favicon.ico"),
		Allow("/health/**"),
		Allow("/metrics"),
		Allow("/"),
		RequireRole("/api/admin/**", domain.RoleAdmin),
		RequireAuth("/**"),
	)
}

// Middleware enforces the policy. Requests the authenticator left anonymous
// are rejected here, not earlier.
func (p *Policy) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rule, ok := p.match(c.Request().URL.Path)
			if !ok || rule.req == reqPublic {
				return next(c)
			}

			principal := Principal(c)
			if principal == nil {
				metrics.AuthorizationDeniedTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if rule.req == reqRole && principal.Role != rule.role {
				metrics.AuthorizationDeniedTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

func (p *Policy) match(path string) (Rule, bool) {
	for _, r := range p.rules {
		if r.matches(path) {
			return r, true
		}
	}
	return Rule{}, false
}
