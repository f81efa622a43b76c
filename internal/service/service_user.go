package service

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/access"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

type userService struct {
	userRepository store.UserRepository
	authService    AuthService

	logger *logger.Logger
}

// NewUserService returns a UserService that hashes passwords through
// authService before they reach userRepository.
func NewUserService(userRepository store.UserRepository, authService AuthService, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		authService:    authService,
		logger:         logger,
	}
}

func (u *userService) CreateUser(ctx context.Context, user models.UserCreate) (models.User, error) {
	hash, err := u.authService.HashPassword(ctx, user.Password)
	if err != nil {
		return models.User{}, err
	}

	role := user.Role
	if role == "" {
		role = models.RoleSimpleUser
	}

	return u.userRepository.CreateUser(ctx, models.User{
		Username:     user.Username,
		PasswordHash: hash,
		Role:         role,
	})
}

func (u *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return u.userRepository.GetUserByID(ctx, id)
}

func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return u.userRepository.ListUsers(ctx)
}

func (u *userService) SearchUsers(ctx context.Context, substring string) ([]models.User, error) {
	return u.userRepository.SearchUsers(ctx, substring)
}

// UpdateUser applies the non-empty fields of update to user id.
// Only admins may edit users.
func (u *userService) UpdateUser(ctx context.Context, caller models.User, id int64, update models.UserUpdate) (models.User, error) {
	if !access.HasRole(caller, models.RoleAdmin) {
		return models.User{}, ErrForbidden
	}

	user, err := u.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if update.Username != "" {
		user.Username = update.Username
	}
	if update.Role != "" {
		user.Role = update.Role
	}

	return u.userRepository.UpdateUser(ctx, user)
}

// DeleteUser removes user id with all of their notes. Only admins may
// delete users.
func (u *userService) DeleteUser(ctx context.Context, caller models.User, id int64) (models.User, error) {
	if !access.HasRole(caller, models.RoleAdmin) {
		return models.User{}, ErrForbidden
	}

	deleted, err := u.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", deleted.ID).
		Int64("caller_id", caller.ID).
		Msg("user deleted")

	return deleted, nil
}
