package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/djanguicore/portfolio-backend/internal/core/domain"
	"github.com/djanguicore/portfolio-backend/internal/core/ports"
)

type SkillHandler struct {
	service ports.SkillService
}

func NewSkillHandler(service ports.SkillService) *SkillHandler {
	return &SkillHandler{service: service}
}

type skillRequest struct {
	Category  string `json:"category" validate:"required"`
	SkillName string `json:"skill_name" validate:"required"`
	Framework string `json:"framework"`
	Icon      string `json:"icon"`
}

// Create handles POST /api/v0/post-skill.
//
// @Summary      Create a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        body  body      skillRequest  true  "Skill"
// @Success      200   {object}  domain.Skill
// @Failure      400   {object}  map[string]string
// @Router       /api/v0/post-skill [post]
func (h *SkillHandler) Create(c echo.Context) error {
	var req skillRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	skill, err := h.service.CreateSkill(c.Request().Context(), &domain.Skill{
		Category:  req.Category,
		SkillName: req.SkillName,
		Framework: req.Framework,
		Icon:      req.Icon,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skill)
}

// List handles GET /api/v0/getSkills.
//
// @Summary      List all skills
// @Tags         skills
// @Produce      json
// @Success      200  {array}  domain.Skill
// @Router       /api/v0/getSkills [get]
func (h *SkillHandler) List(c echo.Context) error {
	skills, err := h.service.GetSkills(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skills)
}

// Get handles GET /api/v0/get-skill/:id.
//
// @Summary      Get a skill by id
// @Tags         skills
// @Produce      json
// @Param        id   path      string  true  "Skill id"
// @Success      200  {object}  domain.Skill
// @Failure      404  {object}  map[string]string
// @Router       /api/v0/get-skill/{id} [get]
func (h *SkillHandler) Get(c echo.Context) error {
	skill, err := h.service.GetSkill(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSkillNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "skill not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, skill)
}
