package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var ErrEducationNotFound = errors.New("education not found")

// Education is one academic entry on the portfolio. CoursesTaken is stored
// as a single sentence-separated string; Courses carries the split form for
// API responses only.
type Education struct {
	ID             string    `json:"id"`
	UniversityName string    `json:"university_name"`
	Degree         string    `json:"degree"`
	Program        string    `json:"program"`
	CoursesTaken   string    `json:"courses_taken"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Courses        []string  `json:"courses,omitempty"`
}

var courseSeparator = regexp.MustCompile(`\.\s+`)

// SplitCourses populates Courses from the CoursesTaken string.
func (e *Education) SplitCourses() {
	if e.CoursesTaken == "" {
		e.Courses = []string{}
		return
	}
	e.Courses = courseSeparator.Split(strings.TrimSpace(e.CoursesTaken), -1)
}
