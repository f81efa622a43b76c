package service

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/internal/validators"
	"github.com/MKhiriev/go-notes/models"
)

type uploadService struct {
	fileStorage store.FileStorage
	validator   validators.Validator

	logger *logger.Logger
}

func NewUploadService(fileStorage store.FileStorage, logger *logger.Logger) UploadService {
	return &uploadService{
		fileStorage: fileStorage,
		validator:   validators.NewRequestValidator(),
		logger:      logger,
	}
}

// Upload stores content under the base name of name. Uploading a name that
// already exists replaces the stored file.
func (u *uploadService) Upload(ctx context.Context, name string, content io.Reader) (models.Upload, error) {
	if err := u.validator.Validate(ctx, models.Upload{Name: name}); err != nil {
		return models.Upload{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return u.fileStorage.Save(ctx, name, content)
}

func (u *uploadService) Open(ctx context.Context, name string) (*os.File, error) {
	return u.fileStorage.Open(ctx, name)
}
