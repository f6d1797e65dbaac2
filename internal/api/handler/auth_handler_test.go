package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/djanguicore/portfolio-backend/internal/core/domain"
	"github.com/djanguicore/portfolio-backend/internal/core/ports"
)

type stubAuthService struct {
	signupFn func(ctx context.Context, in ports.SignupInput) (domain.UserView, error)
	loginFn  func(ctx context.Context, email, password string) (ports.LoginResult, error)
}

func (s *stubAuthService) Signup(ctx context.Context, in ports.SignupInput) (domain.UserView, error) {
	return s.signupFn(ctx, in)
}

func (s *stubAuthService) Authenticate(ctx context.Context, email, password string) (ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func postJSON(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(_ context.Context, in ports.SignupInput) (domain.UserView, error) {
			if in.Email != "a@x.com" || in.FirstName != "A" || in.LastName != "B" {
				t.Fatalf("unexpected input %+v", in)
			}
			return domain.UserView{ID: "u1", Email: in.Email, FirstName: in.FirstName, LastName: in.LastName, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := postJSON(t, "/api/auth/signup", `{"email":"a@x.com","password":"pw1","firstName":"A","lastName":"B"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "u1" || resp["email"] != "a@x.com" {
		t.Fatalf("unexpected payload %+v", resp)
	}
	if _, leaked := resp["password"]; leaked {
		t.Fatalf("password leaked in response")
	}
}

func TestAuthHandler_Signup_Duplicate(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(_ context.Context, _ ports.SignupInput) (domain.UserView, error) {
			return domain.UserView{}, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	c, rec := postJSON(t, "/api/auth/signup", `{"email":"a@x.com","password":"pw1","firstName":"A","lastName":"B"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotAcceptable {
		t.Fatalf("expected 406, got %d", rec.Code)
	}
}

func TestAuthHandler_Signup_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		signupFn: func(_ context.Context, _ ports.SignupInput) (domain.UserView, error) {
			t.Fatalf("service must not be called on invalid input")
			return domain.UserView{}, nil
		},
	})

	c, rec := postJSON(t, "/api/auth/signup", `{"email":"not-an-email","password":"pw1","firstName":"A","lastName":"B"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Signup_OtherFailure(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(_ context.Context, _ ports.SignupInput) (domain.UserView, error) {
			return domain.UserView{}, context.DeadlineExceeded
		},
	}
	h := NewAuthHandler(stub)

	c, rec := postJSON(t, "/api/auth/signup", `{"email":"a@x.com","password":"pw1","firstName":"A","lastName":"B"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (ports.LoginResult, error) {
			if email != "a@x.com" || password != "pw1" {
				t.Fatalf("unexpected credentials %s/%s", email, password)
			}
			return ports.LoginResult{Token: "signed-token", UserID: "u1", FirstName: "A", LastName: "B"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := postJSON(t, "/api/auth/login", `{"email":"a@x.com","password":"pw1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["jwt"] != "signed-token" || resp["userId"] != "u1" {
		t.Fatalf("unexpected payload %+v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (ports.LoginResult, error) {
			return ports.LoginResult{}, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, rec := postJSON(t, "/api/auth/login", `{"email":"a@x.com","password":"wrong"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// Unknown email and wrong password must be indistinguishable.
	if resp["error"] != "incorrect username or password" {
		t.Fatalf("unexpected error message %q", resp["error"])
	}
}
