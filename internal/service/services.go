package service

import (
	"fmt"

	"github.com/MKhiriev/go-notes/internal/config"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	NoteService    NoteService
	TagService     TagService
	UploadService  UploadService
	AppInfoService AppInfoService
}

// NewServices builds every service over repos. User, note and tag services
// are wrapped with request validation.
func NewServices(repos *store.Repositories, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService := NewAuthService(repos.UserRepository, cfg.App, logger)

	return &Services{
		AuthService:    authService,
		UserService:    NewUserValidationService().Wrap(NewUserService(repos.UserRepository, authService, logger)),
		NoteService:    NewNoteValidationService().Wrap(NewNoteService(repos.NoteRepository, logger)),
		TagService:     NewTagValidationService().Wrap(NewTagService(repos.TagRepository, logger)),
		UploadService:  NewUploadService(repos.FileStorage, logger),
		AppInfoService: appInfoService,
	}, nil
}
