package dto

import (
	"time"

	"github.com/erdem/tamatch/internal/app/models"
)

// CreateApplicationRequest represents a student applying to a course.
// Semester and year record when the student took the course.
type CreateApplicationRequest struct {
	SemesterTaken string `json:"semesterTaken" binding:"required,oneof=SPRING SUMMER FALL"`
	YearTaken     int    `json:"yearTaken" binding:"required,min=2000"`
	Grade         string `json:"grade" binding:"required"`
}

// ApplicationResponse represents an application
type ApplicationResponse struct {
	ID            int64     `json:"id"`
	StudentID     int64     `json:"studentId"`
	CourseID      int64     `json:"courseId"`
	SemesterTaken string    `json:"semesterTaken"`
	YearTaken     int       `json:"yearTaken"`
	Grade         string    `json:"grade"`
	Accepted      bool      `json:"accepted"`
	CreatedAt     time.Time `json:"createdAt"`

	Student *UserResponse   `json:"student,omitempty"`
	Course  *CourseResponse `json:"course,omitempty"`
}

// NewApplicationResponse maps an application model to its response representation.
func NewApplicationResponse(a *models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:            a.ID,
		StudentID:     a.StudentID,
		CourseID:      a.CourseID,
		SemesterTaken: string(a.SemesterTaken),
		YearTaken:     a.YearTaken,
		Grade:         string(a.Grade),
		Accepted:      a.Accepted,
		CreatedAt:     a.CreatedAt,
	}
	if a.Student != nil {
		student := NewUserResponse(a.Student)
		resp.Student = &student
	}
	if a.Course != nil {
		course := NewCourseResponse(a.Course)
		resp.Course = &course
	}
	return resp
}

// ApplicationListResponse represents a list of applications
type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
}
