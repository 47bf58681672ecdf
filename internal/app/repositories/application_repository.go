package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/erdem/tamatch/internal/app/models"
	"github.com/erdem/tamatch/internal/db"
	"github.com/erdem/tamatch/internal/pkg/apperrors"
)

// IApplicationRepository defines the interface for application-related
// database operations
type IApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	Delete(ctx context.Context, id int64) error
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Application, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.Application, error)
	Assign(ctx context.Context, id int64) error
	Unassign(ctx context.Context, id int64) error
}

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db *db.PostgresDB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(database *db.PostgresDB) *ApplicationRepository {
	return &ApplicationRepository{db: database}
}

const applicationColumns = `id, student_id, course_id, semester_taken, year_taken,
		grade, accepted, created_at`

func scanApplication(row pgx.Row) (*models.Application, error) {
	app := &models.Application{}
	err := row.Scan(
		&app.ID, &app.StudentID, &app.CourseID, &app.SemesterTaken,
		&app.YearTaken, &app.Grade, &app.Accepted, &app.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error scanning application: %w", err)
	}
	return app, nil
}

// Create inserts a new pending application
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) (int64, error) {
	var id int64
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO applications (student_id, course_id, semester_taken, year_taken, grade)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		app.StudentID, app.CourseID, app.SemesterTaken, app.YearTaken, app.Grade).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating application: %w", err)
	}

	return id, nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	row := r.db.Pool.QueryRow(ctx, `
		SELECT `+applicationColumns+`
		FROM applications
		WHERE id = $1`,
		id)
	return scanApplication(row)
}

// Delete removes an application row. Deletion is terminal; a second delete of
// the same id reports not found.
func (r *ApplicationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}

// GetByCourseID retrieves all applications for a course, with the applicant's
// user record attached.
func (r *ApplicationRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Application, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT a.id, a.student_id, a.course_id, a.semester_taken, a.year_taken,
			a.grade, a.accepted, a.created_at,
			u.id, u.name, u.email, u.role, u.phone, u.student_number, u.gpa,
			u.major, u.graduation
		FROM applications a
		JOIN users u ON u.id = a.student_id
		WHERE a.course_id = $1
		ORDER BY a.created_at ASC, a.id ASC`,
		courseID)
	if err != nil {
		return nil, fmt.Errorf("error getting applications for course: %w", err)
	}
	defer rows.Close()

	var apps []*models.Application
	for rows.Next() {
		app := &models.Application{Student: &models.User{}}
		err := rows.Scan(
			&app.ID, &app.StudentID, &app.CourseID, &app.SemesterTaken,
			&app.YearTaken, &app.Grade, &app.Accepted, &app.CreatedAt,
			&app.Student.ID, &app.Student.Name, &app.Student.Email, &app.Student.Role,
			&app.Student.Phone, &app.Student.StudentNumber, &app.Student.GPA,
			&app.Student.Major, &app.Student.Graduation)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}
	return apps, nil
}

// GetByStudentID retrieves a student's applications with the course attached.
func (r *ApplicationRepository) GetByStudentID(ctx context.Context, studentID int64) ([]*models.Application, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT a.id, a.student_id, a.course_id, a.semester_taken, a.year_taken,
			a.grade, a.accepted, a.created_at,
			c.id, c.professor_id, c.name, c.description, c.semester, c.year,
			c.position_count, c.minimum_gpa, c.minimum_grade, c.prior_experience,
			c.created_at
		FROM applications a
		JOIN courses c ON c.id = a.course_id
		WHERE a.student_id = $1
		ORDER BY a.created_at ASC, a.id ASC`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("error getting applications for student: %w", err)
	}
	defer rows.Close()

	var apps []*models.Application
	for rows.Next() {
		app := &models.Application{Course: &models.Course{}}
		err := rows.Scan(
			&app.ID, &app.StudentID, &app.CourseID, &app.SemesterTaken,
			&app.YearTaken, &app.Grade, &app.Accepted, &app.CreatedAt,
			&app.Course.ID, &app.Course.ProfessorID, &app.Course.Name,
			&app.Course.Description, &app.Course.Semester, &app.Course.Year,
			&app.Course.PositionCount, &app.Course.MinimumGPA, &app.Course.MinimumGrade,
			&app.Course.PriorExperience, &app.Course.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applications: %w", err)
	}
	return apps, nil
}

// Assign marks an application accepted, enforcing the course capacity inside a
// transaction. The course row is locked first so concurrent assigns cannot
// both pass the capacity check.
func (r *ApplicationRepository) Assign(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var courseID int64
		err := tx.QueryRow(ctx, `
			SELECT course_id FROM applications WHERE id = $1`,
			id).Scan(&courseID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrApplicationNotFound
			}
			return fmt.Errorf("error loading application: %w", err)
		}

		var positionCount int
		err = tx.QueryRow(ctx, `
			SELECT position_count FROM courses WHERE id = $1 FOR UPDATE`,
			courseID).Scan(&positionCount)
		if err != nil {
			return fmt.Errorf("error locking course row: %w", err)
		}

		var accepted int
		err = tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM applications
			WHERE course_id = $1 AND accepted = TRUE AND id <> $2`,
			courseID, id).Scan(&accepted)
		if err != nil {
			return fmt.Errorf("error counting accepted applications: %w", err)
		}

		if accepted >= positionCount {
			return apperrors.ErrCapacityExceeded
		}

		_, err = tx.Exec(ctx, `
			UPDATE applications SET accepted = TRUE WHERE id = $1`,
			id)
		if err != nil {
			return fmt.Errorf("error accepting application: %w", err)
		}

		return nil
	})
}

// Unassign clears the accepted flag unconditionally.
func (r *ApplicationRepository) Unassign(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE applications SET accepted = FALSE WHERE id = $1`,
		id)
	if err != nil {
		return fmt.Errorf("error unassigning application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}
