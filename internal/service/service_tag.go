package service

import (
	"context"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/internal/store"
	"github.com/MKhiriev/go-notes/models"
)

type tagService struct {
	tagRepository store.TagRepository

	logger *logger.Logger
}

func NewTagService(tagRepository store.TagRepository, logger *logger.Logger) TagService {
	return &tagService{
		tagRepository: tagRepository,
		logger:        logger,
	}
}

func (t *tagService) CreateTag(ctx context.Context, tag models.TagCreate) (models.Tag, error) {
	return t.tagRepository.CreateTag(ctx, models.Tag{Name: tag.Name})
}

func (t *tagService) GetTag(ctx context.Context, id int64) (models.Tag, error) {
	return t.tagRepository.GetTagByID(ctx, id)
}

func (t *tagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return t.tagRepository.ListTags(ctx)
}
