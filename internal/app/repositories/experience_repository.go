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

// IExperienceRepository defines the interface for experience-related
// database operations
type IExperienceRepository interface {
	Create(ctx context.Context, exp *models.Experience) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Experience, error)
	Delete(ctx context.Context, id int64) error
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Experience, error)
}

// ExperienceRepository handles experience database operations
type ExperienceRepository struct {
	db *pgxpool.Pool
}

// NewExperienceRepository creates a new ExperienceRepository
func NewExperienceRepository(db *pgxpool.Pool) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

// Create inserts a new experience record
func (r *ExperienceRepository) Create(ctx context.Context, exp *models.Experience) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO experiences (student_id, course_id, grade, past_ta)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		exp.StudentID, exp.CourseID, exp.Grade, exp.PastTA).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating experience: %w", err)
	}

	return id, nil
}

// GetByID retrieves an experience record by ID
func (r *ExperienceRepository) GetByID(ctx context.Context, id int64) (*models.Experience, error) {
	exp := &models.Experience{}
	err := r.db.QueryRow(ctx, `
		SELECT id, student_id, course_id, grade, past_ta
		FROM experiences
		WHERE id = $1`,
		id).Scan(&exp.ID, &exp.StudentID, &exp.CourseID, &exp.Grade, &exp.PastTA)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("error getting experience: %w", err)
	}

	return exp, nil
}

// Delete removes an experience record
func (r *ExperienceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrExperienceNotFound
	}

	return nil
}

// GetByStudentID retrieves a student's experience records with the course attached.
func (r *ExperienceRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Experience, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.student_id, e.course_id, e.grade, e.past_ta,
			c.id, c.professor_id, c.name, c.description, c.semester, c.year,
			c.position_count, c.minimum_gpa, c.minimum_grade, c.prior_experience,
			c.created_at
		FROM experiences e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = $1
		ORDER BY e.id ASC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error getting experiences for student: %w", err)
	}
	defer rows.Close()

	var exps []*models.Experience
	for rows.Next() {
		exp := &models.Experience{Course: &models.Course{}}
		err := rows.Scan(
			&exp.ID, &exp.StudentID, &exp.CourseID, &exp.Grade, &exp.PastTA,
			&exp.Course.ID, &exp.Course.ProfessorID, &exp.Course.Name,
			&exp.Course.Description, &exp.Course.Semester, &exp.Course.Year,
			&exp.Course.PositionCount, &exp.Course.MinimumGPA, &exp.Course.MinimumGrade,
			&exp.Course.PriorExperience, &exp.Course.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning experience row: %w", err)
		}
		exps = append(exps, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating experiences: %w", err)
	}
	return exps, nil
}
