package dto

import (
	"time"

	"github.com/erdem/tamatch/internal/app/models"
)

// CreateCourseRequest represents a new TA-position posting
type CreateCourseRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Semester        string  `json:"semester" binding:"required,oneof=SPRING SUMMER FALL"`
	Year            int     `json:"year" binding:"required,min=2000"`
	PositionCount   int     `json:"positionCount" binding:"required,min=1"`
	MinimumGPA      float64 `json:"minimumGpa" binding:"min=0,max=4"`
	MinimumGrade    string  `json:"minimumGrade" binding:"required"`
	PriorExperience string  `json:"priorExperience"`
}

// UpdateCourseRequest represents a partial course update. Only fields present
// in the payload overwrite stored values.
type UpdateCourseRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Semester        *string  `json:"semester,omitempty" binding:"omitempty,oneof=SPRING SUMMER FALL"`
	Year            *int     `json:"year,omitempty" binding:"omitempty,min=2000"`
	PositionCount   *int     `json:"positionCount,omitempty" binding:"omitempty,min=1"`
	MinimumGPA      *float64 `json:"minimumGpa,omitempty" binding:"omitempty,min=0,max=4"`
	MinimumGrade    *string  `json:"minimumGrade,omitempty"`
	PriorExperience *string  `json:"priorExperience,omitempty"`
}

// CourseResponse represents a course posting
type CourseResponse struct {
	ID              int64     `json:"id"`
	ProfessorID     int64     `json:"professorId"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Semester        string    `json:"semester"`
	Year            int       `json:"year"`
	PositionCount   int       `json:"positionCount"`
	MinimumGPA      float64   `json:"minimumGpa"`
	MinimumGrade    string    `json:"minimumGrade"`
	PriorExperience string    `json:"priorExperience"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewCourseResponse maps a course model to its response representation.
func NewCourseResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:              c.ID,
		ProfessorID:     c.ProfessorID,
		Name:            c.Name,
		Description:     c.Description,
		Semester:        string(c.Semester),
		Year:            c.Year,
		PositionCount:   c.PositionCount,
		MinimumGPA:      c.MinimumGPA,
		MinimumGrade:    string(c.MinimumGrade),
		PriorExperience: c.PriorExperience,
		CreatedAt:       c.CreatedAt,
	}
}

// CourseListResponse represents a list of course postings
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// EligibleGradesResponse lists the grade choices offered to an applicant.
type EligibleGradesResponse struct {
	MinimumGrade string   `json:"minimumGrade"`
	Grades       []string `json:"grades"`
}
