package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/djanguicore/portfolio-backend/internal/auth"
	"github.com/djanguicore/portfolio-backend/internal/core/domain"
)

type stubLookup struct {
	users map[string]*domain.User
}

func (s *stubLookup) LoadPrincipal(_ context.Context, email string) (*domain.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func newTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	codec := auth.NewTokenCodec("secret", time.Hour)
	token, err := codec.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	lookup := &stubLookup{users: map[string]*domain.User{
		"alice@example.com": {ID: "u1", Email: "alice@example.com", Role: domain.RoleUser},
	}}

	c, rec := newTestContext(t, "Bearer "+token)
	called := false
	handler := Authenticate(codec, lookup)(func(c echo.Context) error {
		called = true
		p := Principal(c)
		if p == nil || p.Email != "alice@example.com" {
			t.Fatalf("principal not populated: %+v", p)
		}
		if c.Get(RoleKey) != "USER" {
			t.Fatalf("role not populated")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_MissingHeaderPassesThrough(t *testing.T) {
	codec := auth.NewTokenCodec("secret", time.Hour)
	lookup := &stubLookup{users: map[string]*domain.User{}}

	c, _ := newTestContext(t, "")
	called := false
	handler := Authenticate(codec, lookup)(func(c echo.Context) error {
		called = true
		if Principal(c) != nil {
			t.Fatalf("expected anonymous request")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("authenticator must not reject: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_NonBearerPassesThrough(t *testing.T) {
	codec := auth.NewTokenCodec("secret", time.Hour)
	lookup := &stubLookup{users: map[string]*domain.User{}}

	c, _ := newTestContext(t, "Basic dXNlcjpwdw==")
	called := false
	handler := Authenticate(codec, lookup)(func(c echo.Context) error {
		called = true
		if Principal(c) != nil {
			t.Fatalf("expected anonymous request")
		}
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("authenticator must not reject: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_MalformedTokenPassesThrough(t *testing.T) {
	codec := auth.NewTokenCodec("secret", time.Hour)
	lookup := &stubLookup{users: map[string]*domain.User{}}

	c, _ := newTestContext(t, "Bearer not-a-token")
	called := false
	handler := Authenticate(codec, lookup)(func(c echo.Context) error {
		called = true
		if Principal(c) != nil {
			t.Fatalf("expected anonymous request")
		}
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("authenticator must not reject: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_UnknownSubjectPassesThrough(t *testing.T) {
	codec := auth.NewTokenCodec("secret", time.Hour)
	token, err := codec.Issue("ghost@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	lookup := &stubLookup{users: map[string]*domain.User{}}

	c, _ := newTestContext(t, "Bearer "+token)
	called := false
	handler := Authenticate(codec, lookup)(func(c echo.Context) error {
		called = true
		if Principal(c) != nil {
			t.Fatalf("expected anonymous request")
		}
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("authenticator must not reject: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_ExpiredTokenPassesThrough(t *testing.T) {
	issuer := auth.NewTokenCodec("secret", time.Nanosecond)
	verifier := auth.NewTokenCodec("secret", time.Hour)
	token, err := issuer.Issue("bob@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	lookup := &stubLookup{users: map[string]*domain.User{
		"bob@example.com": {ID: "u2", Email: "bob@example.com", Role: domain.RoleUser},
	}}

	c, _ := newTestContext(t, "Bearer "+token)
	handler := Authenticate(verifier, lookup)(func(c echo.Context) error {
		if Principal(c) != nil {
			t.Fatalf("expired token must not authenticate")
		}
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("authenticator must not reject: %v", err)
	}
}

func TestAuthenticate_DoesNotOverwriteExistingPrincipal(t *testing.T) {
	codec := auth.NewTokenCodec("secret", time.Hour)
	token, err := codec.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	lookup := &stubLookup{users: map[string]*domain.User{
		"alice@example.com": {ID: "u1", Email: "alice@example.com", Role: domain.RoleUser},
	}}

	c, _ := newTestContext(t, "Bearer "+token)
	already := &domain.User{ID: "pre", Email: "pre@example.com", Role: domain.RoleAdmin}
	c.Set(PrincipalKey, already)

	handler := Authenticate(codec, lookup)(func(c echo.Context) error {
		if Principal(c) != already {
			t.Fatalf("existing principal was overwritten")
		}
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
