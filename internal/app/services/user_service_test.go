package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erdem/tamatch/internal/app/models"
	"github.com/erdem/tamatch/internal/app/models/dto"
	"github.com/erdem/tamatch/internal/app/services"
	"github.com/erdem/tamatch/internal/pkg/apperrors"
)

func setupUserService() (services.UserService, *fakeUserRepo, *models.User) {
	userRepo := newFakeUserRepo()
	gpa := 3.2
	user := userRepo.addUser(&models.User{
		Name:  "Ada Lovelace",
		Email: "ada@school.edu",
		Role:  models.RoleStudent,
		GPA:   &gpa,
	})
	return services.NewUserService(userRepo), userRepo, user
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	svc, _, user := setupUserService()

	resp, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@school.edu", resp.Email)

	_, err = svc.GetProfile(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("PartialUpdate", func(t *testing.T) {
		svc, _, user := setupUserService()

		major := "Mathematics"
		resp, err := svc.UpdateProfile(ctx, user.ID, &dto.UpdateProfileRequest{Major: &major})
		require.NoError(t, err)

		assert.Equal(t, &major, resp.Major)
		assert.Equal(t, "Ada Lovelace", resp.Name)
		require.NotNil(t, resp.GPA)
		assert.Equal(t, 3.2, *resp.GPA)
	})

	t.Run("GPAZeroIsExpressible", func(t *testing.T) {
		svc, _, user := setupUserService()

		zero := 0.0
		resp, err := svc.UpdateProfile(ctx, user.ID, &dto.UpdateProfileRequest{GPA: &zero})
		require.NoError(t, err)
		require.NotNil(t, resp.GPA)
		assert.Equal(t, 0.0, *resp.GPA)
	})

	t.Run("EmptyNameLeavesStoredName", func(t *testing.T) {
		svc, _, user := setupUserService()

		empty := ""
		resp, err := svc.UpdateProfile(ctx, user.ID, &dto.UpdateProfileRequest{Name: &empty})
		require.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", resp.Name)
	})
}
