package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

// UserValidationService validates request bodies before handing them to the
// wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *UserValidationService) CreateUser(ctx context.Context, user models.UserCreate) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateUser(ctx, user)
}

func (v *UserValidationService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) SearchUsers(ctx context.Context, substring string) ([]models.User, error) {
	return v.inner.SearchUsers(ctx, substring)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, caller models.User, id int64, update models.UserUpdate) (models.User, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateUser(ctx, caller, id, update)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, caller models.User, id int64) (models.User, error) {
	return v.inner.DeleteUser(ctx, caller, id)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}
