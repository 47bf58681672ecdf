package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	appAuth "github.com/erdem/tamatch/internal/app/auth"
	"github.com/erdem/tamatch/internal/app/models"
	"github.com/erdem/tamatch/internal/app/models/dto"
	"github.com/erdem/tamatch/internal/app/repositories"
	"github.com/erdem/tamatch/internal/pkg/apperrors"
)

// ApplicationService defines the interface for the application lifecycle:
// apply, assign/unassign, withdraw, and the two listing queries.
type ApplicationService interface {
	Apply(ctx context.Context, studentID, courseID int64, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	Withdraw(ctx context.Context, studentID, applicationID int64) error
	Assign(ctx context.Context, professorID, applicationID int64) error
	Unassign(ctx context.Context, professorID, applicationID int64) error
	ApplicationsForCourse(ctx context.Context, professorID, courseID int64) (*dto.ApplicationListResponse, error)
	ApplicationsForStudent(ctx context.Context, studentID int64) (*dto.ApplicationListResponse, error)
}

// applicationServiceImpl implements ApplicationService
type applicationServiceImpl struct {
	applicationRepo repositories.IApplicationRepository
	courseRepo      repositories.ICourseRepository
	authzService    *appAuth.AuthorizationService
	logger          zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo repositories.IApplicationRepository,
	courseRepo repositories.ICourseRepository,
	authzService *appAuth.AuthorizationService,
	logger zerolog.Logger,
) ApplicationService {
	return &applicationServiceImpl{
		applicationRepo: applicationRepo,
		courseRepo:      courseRepo,
		authzService:    authzService,
		logger:          logger,
	}
}

// Apply creates a pending application for (student, course). The submitted
// grade must be on the scale and meet the course minimum; the filter the UI
// applies to the offered choices is enforced here as well so it cannot be
// bypassed. Duplicate applications to the same course are allowed.
func (s *applicationServiceImpl) Apply(ctx context.Context, studentID, courseID int64, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	if err := s.authzService.ValidateStudent(ctx, studentID); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	grade := models.Grade(req.Grade)
	if !grade.Valid() {
		return nil, apperrors.ErrInvalidGrade
	}
	if !grade.AtLeast(course.MinimumGrade) {
		return nil, apperrors.ErrGradeBelowMinimum
	}

	app := &models.Application{
		StudentID:     studentID,
		CourseID:      courseID,
		SemesterTaken: models.Semester(req.SemesterTaken),
		YearTaken:     req.YearTaken,
		Grade:         grade,
	}

	id, err := s.applicationRepo.Create(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("error creating application: %w", err)
	}
	app.ID = id

	s.logger.Info().Int64("applicationID", id).Int64("courseID", courseID).
		Int64("studentID", studentID).Msg("Application submitted")

	resp := dto.NewApplicationResponse(app)
	return &resp, nil
}

// Withdraw deletes the student's own application. Withdrawal is terminal; a
// repeat withdraw of the same id reports not found.
func (s *applicationServiceImpl) Withdraw(ctx context.Context, studentID, applicationID int64) error {
	if err := s.authzService.ValidateApplicationOwnership(ctx, applicationID, studentID); err != nil {
		return err
	}
	return s.applicationRepo.Delete(ctx, applicationID)
}

// Assign accepts an application on a course the professor owns. The capacity
// check and flag flip happen atomically in the repository, so concurrent
// assigns near capacity cannot overshoot position_count.
func (s *applicationServiceImpl) Assign(ctx context.Context, professorID, applicationID int64) error {
	if err := s.authzService.ValidateApplicationCourseOwnership(ctx, applicationID, professorID); err != nil {
		return err
	}
	return s.applicationRepo.Assign(ctx, applicationID)
}

// Unassign clears acceptance unconditionally on an owned course.
func (s *applicationServiceImpl) Unassign(ctx context.Context, professorID, applicationID int64) error {
	if err := s.authzService.ValidateApplicationCourseOwnership(ctx, applicationID, professorID); err != nil {
		return err
	}
	return s.applicationRepo.Unassign(ctx, applicationID)
}

// ApplicationsForCourse lists the applicants for an owned course.
func (s *applicationServiceImpl) ApplicationsForCourse(ctx context.Context, professorID, courseID int64) (*dto.ApplicationListResponse, error) {
	if err := s.authzService.ValidateCourseOwnership(ctx, courseID, professorID); err != nil {
		return nil, err
	}

	apps, err := s.applicationRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error listing applications for course: %w", err)
	}

	return buildApplicationList(apps), nil
}

// ApplicationsForStudent lists the student's own active applications.
func (s *applicationServiceImpl) ApplicationsForStudent(ctx context.Context, studentID int64) (*dto.ApplicationListResponse, error) {
	apps, err := s.applicationRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing applications for student: %w", err)
	}

	return buildApplicationList(apps), nil
}

func buildApplicationList(apps []*models.Application) *dto.ApplicationListResponse {
	resp := &dto.ApplicationListResponse{Applications: make([]dto.ApplicationResponse, 0, len(apps))}
	for _, app := range apps {
		resp.Applications = append(resp.Applications, dto.NewApplicationResponse(app))
	}
	return resp
}
