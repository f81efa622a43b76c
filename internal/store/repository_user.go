package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.IsStaff, &user.Role)
	return user, err
}

// CreateUser inserts user and returns the stored row with its assigned id.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.builder, user)
	if err != nil {
		return models.User{}, err
	}

	created, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if r.classify(err) == UniqueViolation {
			log.Debug().Str("username", user.Username).Msg("username is taken")
			return models.User{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	users, err := r.selectUsers(ctx, sq.Eq{"id": id})
	if err != nil {
		return models.User{}, err
	}
	if len(users) == 0 {
		return models.User{}, userNotFound(id)
	}

	return users[0], nil
}

// GetUserByUsername looks the user up by exact username.
func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	users, err := r.selectUsers(ctx, sq.Eq{"username": username})
	if err != nil {
		return models.User{}, err
	}
	if len(users) == 0 {
		return models.User{}, &NotFoundError{Entity: "user", Field: "username", Value: username, Err: ErrUserNotFound}
	}

	return users[0], nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return r.selectUsers(ctx, nil)
}

// SearchUsers returns users whose username contains substring, ignoring
// case. LIKE wildcards in substring match literally. An empty substring
// matches nothing.
func (r *userRepository) SearchUsers(ctx context.Context, substring string) ([]models.User, error) {
	if substring == "" {
		return []models.User{}, nil
	}

	return r.selectUsers(ctx, usernameContains(substring))
}

// UpdateUser writes username and role of user.ID and returns the stored row.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.builder, user)
	if err != nil {
		return models.User{}, err
	}

	updated, err := scanUser(r.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, userNotFound(user.ID)
	case r.classify(err) == UniqueViolation:
		return models.User{}, ErrUsernameAlreadyExists
	default:
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", user.ID).Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// DeleteUser removes the user, their notes and the notes' tag links in one
// transaction.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var deleted models.User
	err := r.WithTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildSelectUsersQuery(r.builder, sq.Eq{"id": id})
		if err != nil {
			return err
		}

		deleted, err = scanUser(tx.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return userNotFound(id)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		for _, build := range []func(sq.StatementBuilderType, int64) (string, []any, error){
			buildDeleteUserNoteTagsQuery,
			buildDeleteUserNotesQuery,
			buildDeleteUserQuery,
		} {
			query, args, err := build(r.builder, id)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", id).Msg("error deleting user")
		}
		return models.User{}, err
	}

	return deleted, nil
}

func (r *userRepository) selectUsers(ctx context.Context, where sq.Sqlizer) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.builder, where)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.selectUsers").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}
