package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/erdem/tamatch/internal/app/models"
	"github.com/erdem/tamatch/internal/pkg/apperrors"
)

// ICourseRepository defines the interface for course-related database operations
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByProfessorID(ctx context.Context, professorID int64) ([]*models.Course, error)
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

const courseColumns = `id, professor_id, name, description, semester, year,
		position_count, minimum_gpa, minimum_grade, prior_experience, created_at`

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	err := row.Scan(
		&course.ID, &course.ProfessorID, &course.Name, &course.Description,
		&course.Semester, &course.Year, &course.PositionCount, &course.MinimumGPA,
		&course.MinimumGrade, &course.PriorExperience, &course.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error scanning course: %w", err)
	}
	return course, nil
}

func collectCourses(rows pgx.Rows) ([]*models.Course, error) {
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}
	return courses, nil
}

// Create inserts a new course posting
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO courses (professor_id, name, description, semester, year,
			position_count, minimum_gpa, minimum_grade, prior_experience)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		course.ProfessorID, course.Name, course.Description, course.Semester,
		course.Year, course.PositionCount, course.MinimumGPA, course.MinimumGrade,
		course.PriorExperience).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+courseColumns+`
		FROM courses
		WHERE id = $1`,
		id)
	return scanCourse(row)
}

// Update persists all mutable course fields
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE courses
		SET name = $1, description = $2, semester = $3, year = $4,
			position_count = $5, minimum_gpa = $6, minimum_grade = $7,
			prior_experience = $8
		WHERE id = $9`,
		course.Name, course.Description, course.Semester, course.Year,
		course.PositionCount, course.MinimumGPA, course.MinimumGrade,
		course.PriorExperience, course.ID)

	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course. Applications and experiences referencing it are
// removed by the ON DELETE CASCADE constraints.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// GetAll retrieves all course postings ordered by year, id order breaking ties.
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+courseColumns+`
		FROM courses
		ORDER BY year ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("error getting courses: %w", err)
	}
	return collectCourses(rows)
}

// GetByProfessorID retrieves the courses owned by a professor.
func (r *CourseRepository) GetByProfessorID(ctx context.Context, professorID int64) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+courseColumns+`
		FROM courses
		WHERE professor_id = $1
		ORDER BY year ASC, id ASC`,
		professorID)
	if err != nil {
		return nil, fmt.Errorf("error getting courses by professor: %w", err)
	}
	return collectCourses(rows)
}
