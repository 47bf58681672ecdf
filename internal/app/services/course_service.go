package services

import (
	"context"
	"fmt"

	appAuth "github.com/erdem/tamatch/internal/app/auth"
	"github.com/erdem/tamatch/internal/app/models"
	"github.com/erdem/tamatch/internal/app/models/dto"
	"github.com/erdem/tamatch/internal/app/repositories"
	"github.com/erdem/tamatch/internal/pkg/apperrors"
)

// CourseService defines the interface for course catalog operations
type CourseService interface {
	CreateCourse(ctx context.Context, ownerID int64, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	UpdateCourse(ctx context.Context, ownerID, courseID int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, ownerID, courseID int64) error
	GetCourseByID(ctx context.Context, courseID int64) (*dto.CourseResponse, error)
	ListCourses(ctx context.Context, viewerID int64) (*dto.CourseListResponse, error)
	EligibleGrades(ctx context.Context, courseID int64) (*dto.EligibleGradesResponse, error)
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo   repositories.ICourseRepository
	userRepo     repositories.IUserRepository
	authzService *appAuth.AuthorizationService
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo repositories.ICourseRepository,
	userRepo repositories.IUserRepository,
	authzService *appAuth.AuthorizationService,
) CourseService {
	return &courseServiceImpl{
		courseRepo:   courseRepo,
		userRepo:     userRepo,
		authzService: authzService,
	}
}

// CreateCourse creates a new TA-position posting owned by the professor.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, ownerID int64, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if err := s.authzService.ValidateProfessor(ctx, ownerID); err != nil {
		return nil, err
	}

	course := &models.Course{
		ProfessorID:     ownerID,
		Name:            req.Name,
		Description:     req.Description,
		Semester:        models.Semester(req.Semester),
		Year:            req.Year,
		PositionCount:   req.PositionCount,
		MinimumGPA:      req.MinimumGPA,
		MinimumGrade:    models.Grade(req.MinimumGrade),
		PriorExperience: req.PriorExperience,
	}
	if err := validateCourse(course); err != nil {
		return nil, err
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}
	course.ID = id

	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// validateCourse checks every domain invariant before anything is persisted,
// so a failing update never leaves the course half-modified.
func validateCourse(course *models.Course) error {
	if course.Name == "" {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "course name is required")
	}
	if !course.Semester.Valid() {
		return apperrors.ErrInvalidSemester
	}
	if course.PositionCount < 1 {
		return apperrors.ErrInvalidPositions
	}
	if !course.MinimumGrade.Valid() {
		return apperrors.ErrInvalidGrade
	}
	return nil
}

// UpdateCourse applies a partial update to an owned course. Absent fields
// leave the stored values untouched.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, ownerID, courseID int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	if err := s.authzService.ValidateCourseOwnership(ctx, courseID, ownerID); err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != "" {
		course.Name = *req.Name
	}
	if req.Description != nil && *req.Description != "" {
		course.Description = *req.Description
	}
	if req.Semester != nil && *req.Semester != "" {
		course.Semester = models.Semester(*req.Semester)
	}
	if req.Year != nil {
		course.Year = *req.Year
	}
	if req.PositionCount != nil {
		course.PositionCount = *req.PositionCount
	}
	if req.MinimumGPA != nil {
		course.MinimumGPA = *req.MinimumGPA
	}
	if req.MinimumGrade != nil && *req.MinimumGrade != "" {
		course.MinimumGrade = models.Grade(*req.MinimumGrade)
	}
	if req.PriorExperience != nil {
		course.PriorExperience = *req.PriorExperience
	}

	if err := validateCourse(course); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// DeleteCourse removes an owned course. Dependent applications and
// experiences are removed with it.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, ownerID, courseID int64) error {
	if err := s.authzService.ValidateCourseOwnership(ctx, courseID, ownerID); err != nil {
		return err
	}
	return s.courseRepo.Delete(ctx, courseID)
}

// GetCourseByID retrieves a single course posting.
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, courseID int64) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// ListCourses returns the catalog for the viewer: professors see only their
// own postings, students see everything ordered by year.
func (s *courseServiceImpl) ListCourses(ctx context.Context, viewerID int64) (*dto.CourseListResponse, error) {
	viewer, err := s.userRepo.GetUserByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	var courses []*models.Course
	if viewer.IsProfessor() {
		courses, err = s.courseRepo.GetByProfessorID(ctx, viewerID)
	} else {
		courses, err = s.courseRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}

	resp := &dto.CourseListResponse{Courses: make([]dto.CourseResponse, 0, len(courses))}
	for _, course := range courses {
		resp.Courses = append(resp.Courses, dto.NewCourseResponse(course))
	}
	return resp, nil
}

// EligibleGrades returns the grade choices offered to a student applying to
// the course: grades below the course minimum are excluded.
func (s *courseServiceImpl) EligibleGrades(ctx context.Context, courseID int64) (*dto.EligibleGradesResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	eligible := models.EligibleGrades(course.MinimumGrade)
	grades := make([]string, 0, len(eligible))
	for _, g := range eligible {
		grades = append(grades, string(g))
	}

	return &dto.EligibleGradesResponse{
		MinimumGrade: string(course.MinimumGrade),
		Grades:       grades,
	}, nil
}
