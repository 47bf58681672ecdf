package models

import "time"

// Course represents a TA-position posting owned by exactly one professor.
type Course struct {
	ID              int64     `json:"id" db:"id"`
	ProfessorID     int64     `json:"professorId" db:"professor_id"`
	Name            string    `json:"name" db:"name"`
	Description     string    `json:"description" db:"description"`
	Semester        Semester  `json:"semester" db:"semester"`
	Year            int       `json:"year" db:"year"`
	PositionCount   int       `json:"positionCount" db:"position_count"`     // Capacity: max simultaneous accepted applications
	MinimumGPA      float64   `json:"minimumGpa" db:"minimum_gpa"`           // Eligibility threshold
	MinimumGrade    Grade     `json:"minimumGrade" db:"minimum_grade"`       // Lowest acceptable grade for applicants
	PriorExperience string    `json:"priorExperience" db:"prior_experience"` // Free-text description of required background
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Professor *User `json:"professor,omitempty"`
}
