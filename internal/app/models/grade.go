package models

// Grade is a letter grade on the fixed ordinal scale
// A > A- > B+ > B > B- > C+ > C > C- > D+ > D > F.
type Grade string

// Grades in descending order. The slice order is the ordinal ranking
// used for minimum-grade comparisons.
var GradeScale = []Grade{"A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D+", "D", "F"}

// rank returns the position of the grade on the scale, highest first.
// Unknown grades rank below F.
func (g Grade) rank() int {
	for i, v := range GradeScale {
		if v == g {
			return i
		}
	}
	return len(GradeScale)
}

// Valid reports whether the grade is on the scale.
func (g Grade) Valid() bool {
	return g.rank() < len(GradeScale)
}

// AtLeast reports whether the grade meets or exceeds min on the ordinal scale.
func (g Grade) AtLeast(min Grade) bool {
	return g.rank() <= min.rank()
}

// EligibleGrades returns the grades that meet or exceed min, highest first.
// These are the choices offered to a student applying to a course.
func EligibleGrades(min Grade) []Grade {
	eligible := make([]Grade, 0, len(GradeScale))
	for _, g := range GradeScale {
		if !g.AtLeast(min) {
			break
		}
		eligible = append(eligible, g)
	}
	return eligible
}
