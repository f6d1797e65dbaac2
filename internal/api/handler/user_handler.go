package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/djanguicore/portfolio-backend/internal/core/domain"
	"github.com/djanguicore/portfolio-backend/internal/core/ports"
)

// UserHandler serves the admin-only user queries.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/admin/users.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.UserView
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.GetUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /api/admin/users/:id.
//
// @Summary      Get a user by id
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.UserView
// @Failure      404  {object}  map[string]string
// @Router       /api/admin/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetUserByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ByRole handles GET /api/admin/users/role/:role.
//
// @Summary      List users holding a role
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        role  path      string  true  "USER or ADMIN"
// @Success      200   {array}   domain.UserView
// @Failure      400   {object}  map[string]string
// @Router       /api/admin/users/role/{role} [get]
func (h *UserHandler) ByRole(c echo.Context) error {
	role, err := domain.ParseRole(c.Param("role"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	users, err := h.service.GetUsersByRole(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
