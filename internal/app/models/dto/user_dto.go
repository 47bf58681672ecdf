package dto

import (
	"time"

	"github.com/erdem/tamatch/internal/app/models"
)

// UserResponse represents basic user information
type UserResponse struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Role          string     `json:"role" example:"STUDENT" enums:"STUDENT,PROFESSOR"`
	Phone         *string    `json:"phone,omitempty"`
	StudentNumber *string    `json:"studentNumber,omitempty"`
	GPA           *float64   `json:"gpa,omitempty"`
	Major         *string    `json:"major,omitempty"`
	Graduation    *time.Time `json:"graduation,omitempty"`
}

// NewUserResponse maps a user model to its response representation.
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          string(u.Role),
		Phone:         u.Phone,
		StudentNumber: u.StudentNumber,
		GPA:           u.GPA,
		Major:         u.Major,
		Graduation:    u.Graduation,
	}
}

// UpdateProfileRequest represents a partial profile update. Absent fields
// leave the stored value untouched; pointer fields keep zero values like a
// 0.0 GPA expressible.
type UpdateProfileRequest struct {
	Name          *string    `json:"name,omitempty"`
	Phone         *string    `json:"phone,omitempty"`
	StudentNumber *string    `json:"studentNumber,omitempty"`
	GPA           *float64   `json:"gpa,omitempty" binding:"omitempty,min=0,max=4"`
	Major         *string    `json:"major,omitempty"`
	Graduation    *time.Time `json:"graduation,omitempty"`
}
