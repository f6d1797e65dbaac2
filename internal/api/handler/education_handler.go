package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/djanguicore/portfolio-backend/internal/core/domain"
	"github.com/djanguicore/portfolio-backend/internal/core/ports"
)

const dateLayout = "2006-01-02"

type EducationHandler struct {
	service ports.EducationService
}

func NewEducationHandler(service ports.EducationService) *EducationHandler {
	return &EducationHandler{service: service}
}

type educationRequest struct {
	UniversityName string `json:"university_name" validate:"required"`
	Degree         string `json:"degree" validate:"required"`
	Program        string `json:"program"`
	CoursesTaken   string `json:"courses_taken"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
}

// Create handles POST /api/v0/post-education.
//
// @Summary      Create an education entry
// @Tags         education
// @Accept       json
// @Produce      json
// @Param        body  body      educationRequest  true  "Education entry, dates as YYYY-MM-DD"
// @Success      200   {object}  domain.Education
// @Failure      400   {object}  map[string]string
// @Router       /api/v0/post-education [post]
func (h *EducationHandler) Create(c echo.Context) error {
	var req educationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	edu := &domain.Education{
		UniversityName: req.UniversityName,
		Degree:         req.Degree,
		Program:        req.Program,
		CoursesTaken:   req.CoursesTaken,
	}
	var err error
	if edu.StartDate, err = parseDate(req.StartDate); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "start_date must be YYYY-MM-DD"})
	}
	if edu.EndDate, err = parseDate(req.EndDate); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "end_date must be YYYY-MM-DD"})
	}

	created, err := h.service.CreateEducation(c.Request().Context(), edu)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, created)
}

// List handles GET /api/v0/getEducation.
//
// @Summary      List all education entries
// @Tags         education
// @Produce      json
// @Success      200  {array}  domain.Education
// @Router       /api/v0/getEducation [get]
func (h *EducationHandler) List(c echo.Context) error {
	entries, err := h.service.ListEducation(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}
