package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

type TagValidationService struct {
	inner     TagService
	validator validators.Validator
}

func NewTagValidationService() TagServiceWrapper {
	return &TagValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *TagValidationService) CreateTag(ctx context.Context, tag models.TagCreate) (models.Tag, error) {
	if err := v.validator.Validate(ctx, tag); err != nil {
		return models.Tag{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateTag(ctx, tag)
}

func (v *TagValidationService) GetTag(ctx context.Context, id int64) (models.Tag, error) {
	return v.inner.GetTag(ctx, id)
}

func (v *TagValidationService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return v.inner.ListTags(ctx)
}

func (v *TagValidationService) Wrap(wrapped TagService) TagService {
	v.inner = wrapped
	return v
}
