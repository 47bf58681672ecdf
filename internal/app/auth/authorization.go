package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/erdem/tamatch/internal/app/models"
	"github.com/erdem/tamatch/internal/app/repositories"
	"github.com/erdem/tamatch/internal/pkg/apperrors"
	"github.com/erdem/tamatch/internal/pkg/logger"
)

// AuthorizationService performs the ownership checks that gate every
// mutating operation. A failed check short-circuits before any side effect.
type AuthorizationService struct {
	userRepo        repositories.IUserRepository
	courseRepo      repositories.ICourseRepository
	applicationRepo repositories.IApplicationRepository
	experienceRepo  repositories.IExperienceRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(
	userRepo repositories.IUserRepository,
	courseRepo repositories.ICourseRepository,
	applicationRepo repositories.IApplicationRepository,
	experienceRepo repositories.IExperienceRepository,
) *AuthorizationService {
	return &AuthorizationService{
		userRepo:        userRepo,
		courseRepo:      courseRepo,
		applicationRepo: applicationRepo,
		experienceRepo:  experienceRepo,
	}
}

// IsProfessor checks if the user holds the professor role
func (s *AuthorizationService) IsProfessor(ctx context.Context, userID int64) (bool, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error getting user by ID in IsProfessor")
		return false, err
	}
	return user.Role == models.RoleProfessor, nil
}

// ValidateProfessor validates that the user is a professor or returns Forbidden.
func (s *AuthorizationService) ValidateProfessor(ctx context.Context, userID int64) error {
	isProfessor, err := s.IsProfessor(ctx, userID)
	if err != nil {
		return err
	}
	if !isProfessor {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidateStudent validates that the user is a student or returns Forbidden.
func (s *AuthorizationService) ValidateStudent(ctx context.Context, userID int64) error {
	isProfessor, err := s.IsProfessor(ctx, userID)
	if err != nil {
		return err
	}
	if isProfessor {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidateCourseOwnership validates that the user is the professor who owns
// the course. The course must exist.
func (s *AuthorizationService) ValidateCourseOwnership(ctx context.Context, courseID, userID int64) error {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error getting course in ownership check")
		return fmt.Errorf("failed to check course ownership: %w", err)
	}

	if course.ProfessorID != userID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidateApplicationOwnership validates that the user is the student who
// filed the application.
func (s *AuthorizationService) ValidateApplicationOwnership(ctx context.Context, applicationID, userID int64) error {
	app, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		logger.Error().Err(err).Int64("applicationID", applicationID).Msg("Error getting application in ownership check")
		return fmt.Errorf("failed to check application ownership: %w", err)
	}

	if app.StudentID != userID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}

// ValidateApplicationCourseOwnership validates that the user owns the course
// an application targets. Used for assign/unassign and applicant listings.
func (s *AuthorizationService) ValidateApplicationCourseOwnership(ctx context.Context, applicationID, userID int64) error {
	app, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		logger.Error().Err(err).Int64("applicationID", applicationID).Msg("Error getting application in course ownership check")
		return fmt.Errorf("failed to check application course ownership: %w", err)
	}

	return s.ValidateCourseOwnership(ctx, app.CourseID, userID)
}

// ValidateExperienceOwnership validates that the user is the student who
// reported the experience.
func (s *AuthorizationService) ValidateExperienceOwnership(ctx context.Context, experienceID, userID int64) error {
	exp, err := s.experienceRepo.GetByID(ctx, experienceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrExperienceNotFound) {
			return apperrors.ErrExperienceNotFound
		}
		logger.Error().Err(err).Int64("experienceID", experienceID).Msg("Error getting experience in ownership check")
		return fmt.Errorf("failed to check experience ownership: %w", err)
	}

	if exp.StudentID != userID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
