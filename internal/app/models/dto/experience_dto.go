package dto

import "github.com/erdem/tamatch/internal/app/models"

// CreateExperienceRequest represents a student reporting prior experience
// with a course.
type CreateExperienceRequest struct {
	Grade  string `json:"grade" binding:"required"`
	PastTA bool   `json:"pastTa"`
}

// ExperienceResponse represents an experience record
type ExperienceResponse struct {
	ID        int64  `json:"id"`
	StudentID int64  `json:"studentId"`
	CourseID  int64  `json:"courseId"`
	Grade     string `json:"grade"`
	PastTA    bool   `json:"pastTa"`

	Course *CourseResponse `json:"course,omitempty"`
}

// NewExperienceResponse maps an experience model to its response representation.
func NewExperienceResponse(e *models.Experience) ExperienceResponse {
	resp := ExperienceResponse{
		ID:        e.ID,
		StudentID: e.StudentID,
		CourseID:  e.CourseID,
		Grade:     string(e.Grade),
		PastTA:    e.PastTA,
	}
	if e.Course != nil {
		course := NewCourseResponse(e.Course)
		resp.Course = &course
	}
	return resp
}

// ExperienceListResponse represents a list of experience records
type ExperienceListResponse struct {
	Experiences []ExperienceResponse `json:"experiences"`
}
