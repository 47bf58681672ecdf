package models

import "time"

// Application is a student's request for a course's TA position.
// semester/year taken record when the student completed the course,
// not the posting's term.
type Application struct {
	ID            int64     `json:"id" db:"id"`
	StudentID     int64     `json:"studentId" db:"student_id"`
	CourseID      int64     `json:"courseId" db:"course_id"`
	SemesterTaken Semester  `json:"semesterTaken" db:"semester_taken"`
	YearTaken     int       `json:"yearTaken" db:"year_taken"`
	Grade         Grade     `json:"grade" db:"grade"`
	Accepted      bool      `json:"accepted" db:"accepted"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Student *User   `json:"student,omitempty"`
	Course  *Course `json:"course,omitempty"`
}
