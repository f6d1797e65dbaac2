package domain

import "errors"

var ErrSkillNotFound = errors.New("skill not found")

// Skill is a single technology entry shown on the portfolio. Icon holds a
// simple-icons slug the frontend resolves to an SVG.
type Skill struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	SkillName string `json:"skill_name"`
	Framework string `json:"framework,omitempty"`
	Icon      string `json:"icon,omitempty"`
}
