package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/djanguicore/portfolio-backend/internal/core/domain"
	"github.com/djanguicore/portfolio-backend/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signupRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	JWT       string `json:"jwt"`
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Signup registers a new user.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      200   {object}  domain.UserView
// @Failure      400   {object}  map[string]string
// @Failure      406   {object}  map[string]string
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	view, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusNotAcceptable, map[string]string{"error": "user already exists with the same email"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user not created, come again later"})
	}

	return c.JSON(http.StatusOK, view)
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.authService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password are reported identically.
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "incorrect username or password"})
	}

	return c.JSON(http.StatusOK, loginResponse{
		JWT:       result.Token,
		UserID:    result.UserID,
		FirstName: result.FirstName,
		LastName:  result.LastName,
	})
}
