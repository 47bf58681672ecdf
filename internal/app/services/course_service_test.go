package services_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appAuth "github.com/erdem/tamatch/internal/app/auth"
	"github.com/erdem/tamatch/internal/app/models"
	"github.com/erdem/tamatch/internal/app/models/dto"
	"github.com/erdem/tamatch/internal/app/services"
	"github.com/erdem/tamatch/internal/pkg/apperrors"
)

type courseFixture struct {
	svc        services.CourseService
	userRepo   *fakeUserRepo
	courseRepo *fakeCourseRepo
	professor  *models.User
	student    *models.User
}

func setupCourseService() *courseFixture {
	userRepo, courseRepo, appRepo, expRepo := newFakeRepos()
	authz := appAuth.NewAuthorizationService(userRepo, courseRepo, appRepo, expRepo)

	professor := userRepo.addUser(&models.User{Name: "Prof", Email: "prof@school.edu", Role: models.RoleProfessor})
	student := userRepo.addUser(&models.User{Name: "Student", Email: "student@school.edu", Role: models.RoleStudent})

	return &courseFixture{
		svc:        services.NewCourseService(courseRepo, userRepo, authz),
		userRepo:   userRepo,
		courseRepo: courseRepo,
		professor:  professor,
		student:    student,
	}
}

func validCourseRequest() *dto.CreateCourseRequest {
	return &dto.CreateCourseRequest{
		Name:          "Algorithms",
		Description:   "Grading and office hours",
		Semester:      "FALL",
		Year:          2026,
		PositionCount: 2,
		MinimumGPA:    3.0,
		MinimumGrade:  "B-",
	}
}

func TestCreateCourse(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := setupCourseService()

		resp, err := f.svc.CreateCourse(ctx, f.professor.ID, validCourseRequest())
		require.NoError(t, err)
		assert.Equal(t, f.professor.ID, resp.ProfessorID)
		assert.Equal(t, "Algorithms", resp.Name)
		assert.Equal(t, "B-", resp.MinimumGrade)
	})

	t.Run("StudentForbidden", func(t *testing.T) {
		f := setupCourseService()

		_, err := f.svc.CreateCourse(ctx, f.student.ID, validCourseRequest())
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("InvalidSemester", func(t *testing.T) {
		f := setupCourseService()
		req := validCourseRequest()
		req.Semester = "WINTER"

		_, err := f.svc.CreateCourse(ctx, f.professor.ID, req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidSemester)
	})

	t.Run("InvalidPositionCount", func(t *testing.T) {
		f := setupCourseService()
		req := validCourseRequest()
		req.PositionCount = 0

		_, err := f.svc.CreateCourse(ctx, f.professor.ID, req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPositions)
	})

	t.Run("InvalidMinimumGrade", func(t *testing.T) {
		f := setupCourseService()
		req := validCourseRequest()
		req.MinimumGrade = "E"

		_, err := f.svc.CreateCourse(ctx, f.professor.ID, req)
		assert.ErrorIs(t, err, apperrors.ErrInvalidGrade)
	})
}

func TestUpdateCourse(t *testing.T) {
	ctx := context.Background()

	t.Run("PartialUpdate", func(t *testing.T) {
		f := setupCourseService()
		created, err := f.svc.CreateCourse(ctx, f.professor.ID, validCourseRequest())
		require.NoError(t, err)

		positions := 5
		resp, err := f.svc.UpdateCourse(ctx, f.professor.ID, created.ID, &dto.UpdateCourseRequest{
			PositionCount: &positions,
		})
		require.NoError(t, err)

		// Untouched fields keep their stored values.
		assert.Equal(t, 5, resp.PositionCount)
		assert.Equal(t, "Algorithms", resp.Name)
		assert.Equal(t, "FALL", resp.Semester)
	})

	t.Run("EmptyNameLeavesStoredName", func(t *testing.T) {
		f := setupCourseService()
		created, err := f.svc.CreateCourse(ctx, f.professor.ID, validCourseRequest())
		require.NoError(t, err)

		empty := ""
		resp, err := f.svc.UpdateCourse(ctx, f.professor.ID, created.ID, &dto.UpdateCourseRequest{
			Name: &empty,
		})
		require.NoError(t, err)
		assert.Equal(t, "Algorithms", resp.Name)
	})

	t.Run("NotOwnerForbidden", func(t *testing.T) {
		f := setupCourseService()
		created, err := f.svc.CreateCourse(ctx, f.professor.ID, validCourseRequest())
		require.NoError(t, err)

		other := f.userRepo.addUser(&models.User{Name: "Other", Email: "other@school.edu", Role: models.RoleProfessor})
		name := "Hijacked"
		_, err = f.svc.UpdateCourse(ctx, other.ID, created.ID, &dto.UpdateCourseRequest{Name: &name})
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("InvalidUpdateLeavesCourseUnchanged", func(t *testing.T) {
		f := setupCourseService()
		created, err := f.svc.CreateCourse(ctx, f.professor.ID, validCourseRequest())
		require.NoError(t, err)

		bad := "E"
		_, err = f.svc.UpdateCourse(ctx, f.professor.ID, created.ID, &dto.UpdateCourseRequest{MinimumGrade: &bad})
		assert.ErrorIs(t, err, apperrors.ErrInvalidGrade)

		current, err := f.svc.GetCourseByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "B-", current.MinimumGrade)
	})

	t.Run("NotFound", func(t *testing.T) {
		f := setupCourseService()
		name := "Whatever"
		_, err := f.svc.UpdateCourse(ctx, f.professor.ID, 999, &dto.UpdateCourseRequest{Name: &name})
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})
}

func TestDeleteCourse(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := setupCourseService()
		created, err := f.svc.CreateCourse(ctx, f.professor.ID, validCourseRequest())
		require.NoError(t, err)

		require.NoError(t, f.svc.DeleteCourse(ctx, f.professor.ID, created.ID))

		_, err = f.svc.GetCourseByID(ctx, created.ID)
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})

	t.Run("NotOwnerForbidden", func(t *testing.T) {
		f := setupCourseService()
		created, err := f.svc.CreateCourse(ctx, f.professor.ID, validCourseRequest())
		require.NoError(t, err)

		other := f.userRepo.addUser(&models.User{Name: "Other", Email: "other@school.edu", Role: models.RoleProfessor})
		err = f.svc.DeleteCourse(ctx, other.ID, created.ID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("CascadesToApplicationsAndExperiences", func(t *testing.T) {
		userRepo, courseRepo, appRepo, expRepo := newFakeRepos()
		authz := appAuth.NewAuthorizationService(userRepo, courseRepo, appRepo, expRepo)
		courseSvc := services.NewCourseService(courseRepo, userRepo, authz)
		applicationSvc := services.NewApplicationService(appRepo, courseRepo, authz, zerolog.Nop())
		experienceSvc := services.NewExperienceService(expRepo, courseRepo, authz)

		professor := userRepo.addUser(&models.User{Name: "Prof", Email: "prof@school.edu", Role: models.RoleProfessor})
		student := userRepo.addUser(&models.User{Name: "Student", Email: "student@school.edu", Role: models.RoleStudent})

		req := validCourseRequest()
		req.MinimumGrade = "F"
		created, err := courseSvc.CreateCourse(ctx, professor.ID, req)
		require.NoError(t, err)

		_, err = applicationSvc.Apply(ctx, student.ID, created.ID, applyRequest("B"))
		require.NoError(t, err)
		_, err = experienceSvc.AddExperience(ctx, student.ID, created.ID, &dto.CreateExperienceRequest{Grade: "B", PastTA: true})
		require.NoError(t, err)

		require.NoError(t, courseSvc.DeleteCourse(ctx, professor.ID, created.ID))

		// The dependent rows go with the course.
		apps, err := applicationSvc.ApplicationsForStudent(ctx, student.ID)
		require.NoError(t, err)
		assert.Empty(t, apps.Applications)

		exps, err := experienceSvc.ListExperiences(ctx, student.ID)
		require.NoError(t, err)
		assert.Empty(t, exps.Experiences)
	})
}

func TestListCourses(t *testing.T) {
	ctx := context.Background()

	t.Run("StudentSeesAllPostings", func(t *testing.T) {
		f := setupCourseService()
		other := f.userRepo.addUser(&models.User{Name: "Other", Email: "other@school.edu", Role: models.RoleProfessor})

		_, err := f.svc.CreateCourse(ctx, f.professor.ID, validCourseRequest())
		require.NoError(t, err)
		_, err = f.svc.CreateCourse(ctx, other.ID, validCourseRequest())
		require.NoError(t, err)

		resp, err := f.svc.ListCourses(ctx, f.student.ID)
		require.NoError(t, err)
		assert.Len(t, resp.Courses, 2)
	})

	t.Run("ProfessorSeesOnlyOwnPostings", func(t *testing.T) {
		f := setupCourseService()
		other := f.userRepo.addUser(&models.User{Name: "Other", Email: "other@school.edu", Role: models.RoleProfessor})

		_, err := f.svc.CreateCourse(ctx, f.professor.ID, validCourseRequest())
		require.NoError(t, err)
		_, err = f.svc.CreateCourse(ctx, other.ID, validCourseRequest())
		require.NoError(t, err)

		resp, err := f.svc.ListCourses(ctx, f.professor.ID)
		require.NoError(t, err)
		require.Len(t, resp.Courses, 1)
		assert.Equal(t, f.professor.ID, resp.Courses[0].ProfessorID)
	})
}

func TestEligibleGrades(t *testing.T) {
	ctx := context.Background()
	f := setupCourseService()

	req := validCourseRequest()
	req.MinimumGrade = "B-"
	created, err := f.svc.CreateCourse(ctx, f.professor.ID, req)
	require.NoError(t, err)

	resp, err := f.svc.EligibleGrades(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "B-", resp.MinimumGrade)
	assert.Equal(t, []string{"A", "A-", "B+", "B", "B-"}, resp.Grades)
}
