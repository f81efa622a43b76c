package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/mock"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/utils"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

var (
	admin = models.User{ID: 1, Username: "root", Role: models.RoleAdmin}
	alice = models.User{ID: 2, Username: "alice", Role: models.RoleSimpleUser}
)

func newTestUserService(t *testing.T) (UserService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	auth := NewAuthService(repo, testAppConfig(), logger.Nop())
	return NewUserValidationService().Wrap(NewUserService(repo, auth, logger.Nop())), repo
}

func TestUserService_CreateUser(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Username)
			assert.Equal(t, models.RoleSimpleUser, u.Role)
			assert.True(t, utils.VerifyPassword("secret", u.PasswordHash))
			u.ID = 2
			return u, nil
		})

	user, err := svc.CreateUser(context.Background(), models.UserCreate{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)
}

func TestUserService_CreateUser_KeepsRequestedRole(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			return u, nil
		})

	user, err := svc.CreateUser(context.Background(), models.UserCreate{Username: "root", Password: "x", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestUserService_CreateUser_Invalid(t *testing.T) {
	svc, _ := newTestUserService(t)

	tests := []struct {
		name    string
		in      models.UserCreate
		wantErr error
	}{
		{name: "missing username", in: models.UserCreate{Password: "x"}, wantErr: validators.ErrEmptyUsername},
		{name: "missing password", in: models.UserCreate{Username: "a"}, wantErr: validators.ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(context.Background(), tt.in)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_CreateUser_Duplicate(t *testing.T) {
	svc, repo := newTestUserService(t)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.CreateUser(context.Background(), models.UserCreate{Username: "alice", Password: "secret"})
	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestUserService_ReadOperations(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().GetUserByID(gomock.Any(), int64(2)).Return(alice, nil)
	repo.EXPECT().ListUsers(gomock.Any()).Return([]models.User{admin, alice}, nil)
	repo.EXPECT().SearchUsers(gomock.Any(), "li").Return([]models.User{alice}, nil)

	got, err := svc.GetUser(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	all, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := svc.SearchUsers(ctx, "li")
	require.NoError(t, err)
	assert.Equal(t, []models.User{alice}, found)
}

func TestUserService_UpdateUser(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().GetUserByID(gomock.Any(), int64(2)).Return(alice, nil)
	repo.EXPECT().UpdateUser(gomock.Any(), models.User{ID: 2, Username: "alicia", Role: models.RoleSimpleUser}).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) { return u, nil })

	user, err := svc.UpdateUser(context.Background(), admin, 2, models.UserUpdate{Username: "alicia"})
	require.NoError(t, err)
	assert.Equal(t, "alicia", user.Username)
	assert.Equal(t, models.RoleSimpleUser, user.Role)
}

func TestUserService_UpdateUser_Errors(t *testing.T) {
	t.Run("not an admin", func(t *testing.T) {
		svc, _ := newTestUserService(t)
		_, err := svc.UpdateUser(context.Background(), alice, 2, models.UserUpdate{Role: models.RoleAdmin})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("empty update", func(t *testing.T) {
		svc, _ := newTestUserService(t)
		_, err := svc.UpdateUser(context.Background(), admin, 2, models.UserUpdate{})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("missing user", func(t *testing.T) {
		svc, repo := newTestUserService(t)
		repo.EXPECT().GetUserByID(gomock.Any(), int64(9)).Return(models.User{}, store.ErrUserNotFound)
		_, err := svc.UpdateUser(context.Background(), admin, 9, models.UserUpdate{Role: "x"})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("admin deletes", func(t *testing.T) {
		svc, repo := newTestUserService(t)
		repo.EXPECT().DeleteUser(gomock.Any(), int64(2)).Return(alice, nil)

		deleted, err := svc.DeleteUser(context.Background(), admin, 2)
		require.NoError(t, err)
		assert.Equal(t, alice, deleted)
	})

	t.Run("non admin is forbidden", func(t *testing.T) {
		svc, _ := newTestUserService(t)
		_, err := svc.DeleteUser(context.Background(), alice, 1)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing user", func(t *testing.T) {
		svc, repo := newTestUserService(t)
		repo.EXPECT().DeleteUser(gomock.Any(), int64(5)).Return(models.User{}, store.ErrUserNotFound)
		_, err := svc.DeleteUser(context.Background(), admin, 5)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}
