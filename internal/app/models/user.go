package models

import (
	"time"
)

// User defines the user model based on the 'users' table. The role is fixed
// at registration; student profile fields stay NULL for professors instead of
// changing the record shape by role.
type User struct {
	ID          int64      `json:"id" db:"id" example:"1"`                                                  // Unique identifier for the user
	Name        string     `json:"name" db:"name" example:"First Last"`                                     // Display name
	Email       string     `json:"email" db:"email" example:"first.last@wsu.edu"`                           // User's email address (login credential)
	Password    string     `json:"-" db:"password"`                                                         // User's hashed password (excluded from JSON)
	Role        RoleType   `json:"role" db:"role" example:"STUDENT"`                                        // User's role (STUDENT or PROFESSOR)
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`                // Timestamp when the user was created
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`                // Timestamp when the user was last updated
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at" example:"2024-04-20T18:00:00Z"` // Timestamp of the last login (nullable)

	// Student profile fields (nullable, meaningful only for students)
	Phone         *string    `json:"phone,omitempty" db:"phone"`                    // Contact phone number
	StudentNumber *string    `json:"studentNumber,omitempty" db:"student_number"`   // Institutional ID
	GPA           *float64   `json:"gpa,omitempty" db:"gpa"`                        // Cumulative GPA
	Major         *string    `json:"major,omitempty" db:"major"`                    // Declared major
	Graduation    *time.Time `json:"graduation,omitempty" db:"graduation"`          // Expected graduation date
}

// IsProfessor reports whether the user holds the professor role.
func (u *User) IsProfessor() bool {
	return u.Role == RoleProfessor
}
