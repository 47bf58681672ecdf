package models

// Experience is a student's self-report of having previously passed (and
// possibly TA'd) a course. Informational only; it never gates applications.
type Experience struct {
	ID        int64 `json:"id" db:"id"`
	StudentID int64 `json:"studentId" db:"student_id"`
	CourseID  int64 `json:"courseId" db:"course_id"`
	Grade     Grade `json:"grade" db:"grade"`
	PastTA    bool  `json:"pastTa" db:"past_ta"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}
