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

// ExperienceService defines the interface for the experience ledger.
// The ledger is informational only and never gates applications.
type ExperienceService interface {
	AddExperience(ctx context.Context, studentID, courseID int64, req *dto.CreateExperienceRequest) (*dto.ExperienceResponse, error)
	DeleteExperience(ctx context.Context, studentID, experienceID int64) error
	ListExperiences(ctx context.Context, studentID int64) (*dto.ExperienceListResponse, error)
}

// experienceServiceImpl implements ExperienceService
type experienceServiceImpl struct {
	experienceRepo repositories.IExperienceRepository
	courseRepo     repositories.ICourseRepository
	authzService   *appAuth.AuthorizationService
}

// NewExperienceService creates a new ExperienceService
func NewExperienceService(
	experienceRepo repositories.IExperienceRepository,
	courseRepo repositories.ICourseRepository,
	authzService *appAuth.AuthorizationService,
) ExperienceService {
	return &experienceServiceImpl{
		experienceRepo: experienceRepo,
		courseRepo:     courseRepo,
		authzService:   authzService,
	}
}

// AddExperience records prior experience with a course for a student.
func (s *experienceServiceImpl) AddExperience(ctx context.Context, studentID, courseID int64, req *dto.CreateExperienceRequest) (*dto.ExperienceResponse, error) {
	if err := s.authzService.ValidateStudent(ctx, studentID); err != nil {
		return nil, err
	}

	// The course must exist; no eligibility constraint applies.
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}

	grade := models.Grade(req.Grade)
	if !grade.Valid() {
		return nil, apperrors.ErrInvalidGrade
	}

	exp := &models.Experience{
		StudentID: studentID,
		CourseID:  courseID,
		Grade:     grade,
		PastTA:    req.PastTA,
	}

	id, err := s.experienceRepo.Create(ctx, exp)
	if err != nil {
		return nil, fmt.Errorf("error creating experience: %w", err)
	}
	exp.ID = id

	resp := dto.NewExperienceResponse(exp)
	return &resp, nil
}

// DeleteExperience removes the student's own experience record.
func (s *experienceServiceImpl) DeleteExperience(ctx context.Context, studentID, experienceID int64) error {
	if err := s.authzService.ValidateExperienceOwnership(ctx, experienceID, studentID); err != nil {
		return err
	}
	return s.experienceRepo.Delete(ctx, experienceID)
}

// ListExperiences lists the student's own experience records.
func (s *experienceServiceImpl) ListExperiences(ctx context.Context, studentID int64) (*dto.ExperienceListResponse, error) {
	exps, err := s.experienceRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing experiences: %w", err)
	}

	resp := &dto.ExperienceListResponse{Experiences: make([]dto.ExperienceResponse, 0, len(exps))}
	for _, exp := range exps {
		resp.Experiences = append(resp.Experiences, dto.NewExperienceResponse(exp))
	}
	return resp, nil
}
