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

type applicationFixture struct {
	svc        services.ApplicationService
	userRepo   *fakeUserRepo
	courseRepo *fakeCourseRepo
	appRepo    *fakeApplicationRepo
	professor  *models.User
	student    *models.User
	course     *models.Course
}

func setupApplicationService(positionCount int, minimumGrade models.Grade) *applicationFixture {
	userRepo, courseRepo, appRepo, expRepo := newFakeRepos()
	authz := appAuth.NewAuthorizationService(userRepo, courseRepo, appRepo, expRepo)

	professor := userRepo.addUser(&models.User{Name: "Prof", Email: "prof@school.edu", Role: models.RoleProfessor})
	student := userRepo.addUser(&models.User{Name: "Student", Email: "student@school.edu", Role: models.RoleStudent})
	course := courseRepo.addCourse(&models.Course{
		ProfessorID:   professor.ID,
		Name:          "Algorithms",
		Semester:      models.SemesterFall,
		Year:          2026,
		PositionCount: positionCount,
		MinimumGrade:  minimumGrade,
	})

	return &applicationFixture{
		svc:        services.NewApplicationService(appRepo, courseRepo, authz, zerolog.Nop()),
		userRepo:   userRepo,
		courseRepo: courseRepo,
		appRepo:    appRepo,
		professor:  professor,
		student:    student,
		course:     course,
	}
}

func applyRequest(grade string) *dto.CreateApplicationRequest {
	return &dto.CreateApplicationRequest{
		SemesterTaken: "SPRING",
		YearTaken:     2025,
		Grade:         grade,
	}
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := setupApplicationService(1, "B-")

		resp, err := f.svc.Apply(ctx, f.student.ID, f.course.ID, applyRequest("B"))
		require.NoError(t, err)
		assert.Equal(t, f.student.ID, resp.StudentID)
		assert.Equal(t, f.course.ID, resp.CourseID)
		assert.False(t, resp.Accepted)
	})

	t.Run("GradeAtMinimumAccepted", func(t *testing.T) {
		f := setupApplicationService(1, "B-")

		_, err := f.svc.Apply(ctx, f.student.ID, f.course.ID, applyRequest("B-"))
		assert.NoError(t, err)
	})

	t.Run("GradeBelowMinimumRejected", func(t *testing.T) {
		f := setupApplicationService(1, "B-")

		for _, grade := range []string{"C+", "C", "C-", "D+", "D", "F"} {
			_, err := f.svc.Apply(ctx, f.student.ID, f.course.ID, applyRequest(grade))
			assert.ErrorIs(t, err, apperrors.ErrGradeBelowMinimum, "grade %s", grade)
		}
	})

	t.Run("UnknownGradeRejected", func(t *testing.T) {
		f := setupApplicationService(1, "F")

		_, err := f.svc.Apply(ctx, f.student.ID, f.course.ID, applyRequest("E"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidGrade)
	})

	t.Run("ProfessorForbidden", func(t *testing.T) {
		f := setupApplicationService(1, "B-")

		_, err := f.svc.Apply(ctx, f.professor.ID, f.course.ID, applyRequest("A"))
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("CourseNotFound", func(t *testing.T) {
		f := setupApplicationService(1, "B-")

		_, err := f.svc.Apply(ctx, f.student.ID, 999, applyRequest("A"))
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
	})

	t.Run("RepeatApplicationsAllowed", func(t *testing.T) {
		f := setupApplicationService(1, "F")

		_, err := f.svc.Apply(ctx, f.student.ID, f.course.ID, applyRequest("B"))
		require.NoError(t, err)
		_, err = f.svc.Apply(ctx, f.student.ID, f.course.ID, applyRequest("A"))
		assert.NoError(t, err)
	})
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := setupApplicationService(1, "F")
		resp, err := f.svc.Apply(ctx, f.student.ID, f.course.ID, applyRequest("B"))
		require.NoError(t, err)

		require.NoError(t, f.svc.Withdraw(ctx, f.student.ID, resp.ID))

		// Withdrawal is terminal: a second withdraw of the same id fails.
		err = f.svc.Withdraw(ctx, f.student.ID, resp.ID)
		assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
	})

	t.Run("OtherStudentForbidden", func(t *testing.T) {
		f := setupApplicationService(1, "F")
		resp, err := f.svc.Apply(ctx, f.student.ID, f.course.ID, applyRequest("B"))
		require.NoError(t, err)

		other := f.userRepo.addUser(&models.User{Name: "Other", Email: "other@school.edu", Role: models.RoleStudent})
		err = f.svc.Withdraw(ctx, other.ID, resp.ID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}

func TestAssign(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := setupApplicationService(1, "F")
		resp, err := f.svc.Apply(ctx, f.student.ID, f.course.ID, applyRequest("B"))
		require.NoError(t, err)

		require.NoError(t, f.svc.Assign(ctx, f.professor.ID, resp.ID))

		apps, err := f.svc.ApplicationsForCourse(ctx, f.professor.ID, f.course.ID)
		require.NoError(t, err)
		require.Len(t, apps.Applications, 1)
		assert.True(t, apps.Applications[0].Accepted)
	})

	t.Run("CapacityExceeded", func(t *testing.T) {
		f := setupApplicationService(1, "F")
		other := f.userRepo.addUser(&models.User{Name: "Other", Email: "other@school.edu", Role: models.RoleStudent})

		first, err := f.svc.Apply(ctx, f.student.ID, f.course.ID, applyRequest("B"))
		require.NoError(t, err)
		second, err := f.svc.Apply(ctx, other.ID, f.course.ID, applyRequest("A"))
		require.NoError(t, err)

		require.NoError(t, f.svc.Assign(ctx, f.professor.ID, first.ID))
		err = f.svc.Assign(ctx, f.professor.ID, second.ID)
		assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
	})

	t.Run("AssignIsIdempotentAtCapacity", func(t *testing.T) {
		f := setupApplicationService(1, "F")
		resp, err := f.svc.Apply(ctx, f.student.ID, f.course.ID, applyRequest("B"))
		require.NoError(t, err)

		// Re-assigning the already accepted application does not count it
		// against capacity a second time.
		require.NoError(t, f.svc.Assign(ctx, f.professor.ID, resp.ID))
		assert.NoError(t, f.svc.Assign(ctx, f.professor.ID, resp.ID))
	})

	t.Run("UnassignFreesPosition", func(t *testing.T) {
		f := setupApplicationService(1, "F")
		other := f.userRepo.addUser(&models.User{Name: "Other", Email: "other@school.edu", Role: models.RoleStudent})

		first, err := f.svc.Apply(ctx, f.student.ID, f.course.ID, applyRequest("B"))
		require.NoError(t, err)
		second, err := f.svc.Apply(ctx, other.ID, f.course.ID, applyRequest("A"))
		require.NoError(t, err)

		require.NoError(t, f.svc.Assign(ctx, f.professor.ID, first.ID))
		require.NoError(t, f.svc.Unassign(ctx, f.professor.ID, first.ID))
		assert.NoError(t, f.svc.Assign(ctx, f.professor.ID, second.ID))
	})

	t.Run("NotCourseOwnerForbidden", func(t *testing.T) {
		f := setupApplicationService(1, "F")
		resp, err := f.svc.Apply(ctx, f.student.ID, f.course.ID, applyRequest("B"))
		require.NoError(t, err)

		other := f.userRepo.addUser(&models.User{Name: "Other", Email: "other@school.edu", Role: models.RoleProfessor})
		err = f.svc.Assign(ctx, other.ID, resp.ID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}

func TestApplicationListings(t *testing.T) {
	ctx := context.Background()

	t.Run("ForCourseRequiresOwnership", func(t *testing.T) {
		f := setupApplicationService(2, "F")
		_, err := f.svc.Apply(ctx, f.student.ID, f.course.ID, applyRequest("B"))
		require.NoError(t, err)

		other := f.userRepo.addUser(&models.User{Name: "Other", Email: "other@school.edu", Role: models.RoleProfessor})
		_, err = f.svc.ApplicationsForCourse(ctx, other.ID, f.course.ID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("ForStudentListsOwnOnly", func(t *testing.T) {
		f := setupApplicationService(2, "F")
		other := f.userRepo.addUser(&models.User{Name: "Other", Email: "other@school.edu", Role: models.RoleStudent})

		_, err := f.svc.Apply(ctx, f.student.ID, f.course.ID, applyRequest("B"))
		require.NoError(t, err)
		_, err = f.svc.Apply(ctx, other.ID, f.course.ID, applyRequest("A"))
		require.NoError(t, err)

		resp, err := f.svc.ApplicationsForStudent(ctx, f.student.ID)
		require.NoError(t, err)
		require.Len(t, resp.Applications, 1)
		assert.Equal(t, f.student.ID, resp.Applications[0].StudentID)
	})
}
