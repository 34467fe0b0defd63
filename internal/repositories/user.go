package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/raghav2711/points-leaderboard/internal/logger"
	"github.com/raghav2711/points-leaderboard/internal/models"
)

// ErrUniqueViolation is returned when an insert hits the unique name constraint.
var ErrUniqueViolation = errors.New("unique constraint violation")

// pgUniqueViolationCode is the PostgreSQL error code for unique_violation.
const pgUniqueViolationCode = "23505"

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// ListAllOrderedByPoints returns all users ordered by total points descending.
// Ties are broken by creation time, so equal totals keep insertion order.
func (r *UserReadRepository) ListAllOrderedByPoints(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT user_id, name, total_points, created_at, updated_at
		FROM users
		ORDER BY total_points DESC, created_at ASC
	`

	var users []models.UserDB
	err := r.db.SelectContext(ctx, &users, query)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// GetByID returns the user with the given id, or (nil, nil) when no such user exists.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, name, total_points, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", user,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// Count returns the number of user rows.
func (r *UserReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`

	var count int64
	err := r.db.GetContext(ctx, &count, query)

	logger.Log.Infow(
		"query", query,
		"result", count,
		"error", err,
	)

	return count, err
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user with zero points and returns the created row.
// Returns ErrUniqueViolation when a user with the same name already exists.
func (r *UserWriteRepository) Save(ctx context.Context, name string) (*models.UserDB, error) {
	query := `
		INSERT INTO users (user_id, name, total_points, created_at, updated_at)
		VALUES ($1, $2, 0, NOW(), NOW())
		RETURNING user_id, name, total_points, created_at, updated_at
	`
	args := []any{uuid.New(), name}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", user,
		"error", err,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return nil, ErrUniqueViolation
		}
		return nil, err
	}

	return &user, nil
}

// SaveBatch inserts users with zero points for every given name, skipping
// names that already exist.
func (r *UserWriteRepository) SaveBatch(ctx context.Context, names []string) error {
	query := `
		INSERT INTO users (user_id, name, total_points, created_at, updated_at)
		VALUES ($1, $2, 0, NOW(), NOW())
		ON CONFLICT (name) DO NOTHING
	`

	for _, name := range names {
		args := []any{uuid.New(), name}

		res, err := r.db.ExecContext(ctx, query, args...)
		var rowsAffected int64
		if res != nil {
			rowsAffected, _ = res.RowsAffected()
		}

		logger.Log.Infow(
			"query", strings.Join(strings.Fields(query), " "),
			"args", args,
			"result", rowsAffected,
			"error", err,
		)

		if err != nil {
			return err
		}
	}

	return nil
}

// IncrementPoints atomically adds amount to the user's total as a single
// UPDATE with a delta expression, so concurrent claims never lose an update.
// Returns (nil, nil) when the user does not exist at the time of the update.
func (r *UserWriteRepository) IncrementPoints(ctx context.Context, userID uuid.UUID, amount int64) (*models.UserDB, error) {
	query := `
		UPDATE users
		SET total_points = total_points + $2, updated_at = NOW()
		WHERE user_id = $1
		RETURNING user_id, name, total_points, created_at, updated_at
	`
	args := []any{userID, amount}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", user,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
