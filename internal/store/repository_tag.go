package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

type tagRepository struct {
	*DB
	logger *logger.Logger
}

func NewTagRepository(db *DB, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{
		DB:     db,
		logger: logger,
	}
}

func buildTagExistsQuery(b sq.StatementBuilderType, tagID int64) (string, []any, error) {
	return toSQL(b.Select("id").From("tags").Where(sq.Eq{"id": tagID}))
}

// CreateTag inserts tag; a duplicate name yields [ErrTagAlreadyExists].
func (r *tagRepository) CreateTag(ctx context.Context, tag models.Tag) (models.Tag, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTagQuery(r.builder, tag)
	if err != nil {
		return models.Tag{}, err
	}

	var created models.Tag
	if err := r.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.Name); err != nil {
		if r.classify(err) == UniqueViolation {
			return models.Tag{}, ErrTagAlreadyExists
		}
		log.Err(err).Str("func", "*tagRepository.CreateTag").Msg("error inserting tag")
		return models.Tag{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *tagRepository) GetTagByID(ctx context.Context, id int64) (models.Tag, error) {
	tags, err := r.selectTags(ctx, sq.Eq{"id": id})
	if err != nil {
		return models.Tag{}, err
	}
	if len(tags) == 0 {
		return models.Tag{}, tagNotFound(id)
	}

	return tags[0], nil
}

func (r *tagRepository) ListTags(ctx context.Context) ([]models.Tag, error) {
	return r.selectTags(ctx, nil)
}

func (r *tagRepository) selectTags(ctx context.Context, where sq.Sqlizer) ([]models.Tag, error) {
	query, args, err := buildSelectTagsQuery(r.builder, where)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tagRepository.selectTags").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]models.Tag, 0)
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tags, nil
}
