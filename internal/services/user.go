package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/raghav2711/points-leaderboard/internal/logger"
	"github.com/raghav2711/points-leaderboard/internal/models"
	"github.com/raghav2711/points-leaderboard/internal/repositories"
)

// Error variables
var (
	ErrUserNameRequired  = errors.New("user name is required")
	ErrUserAlreadyExists = errors.New("user with this name already exists")
	ErrUserNotFound      = errors.New("user not found")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	ListAllOrderedByPoints(ctx context.Context) ([]models.UserDB, error) // Returns users ordered by total points descending
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	Count(ctx context.Context) (int64, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, name string) (*models.UserDB, error)
	SaveBatch(ctx context.Context, names []string) error
	IncrementPoints(ctx context.Context, userID uuid.UUID, amount int64) (*models.UserDB, error)
}

// LeaderboardCache caches the ordered leaderboard.
type LeaderboardCache interface {
	Get(ctx context.Context) ([]models.UserDB, error)
	Set(ctx context.Context, users []models.UserDB) error
	Invalidate(ctx context.Context) error
}

// UserService handles user creation, the leaderboard query, and bootstrap seeding.
type UserService struct {
	reader UserReader
	writer UserWriter
	cache  LeaderboardCache
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter, cache LeaderboardCache) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// Create adds a new user with zero points.
func (svc *UserService) Create(ctx context.Context, name string) (*models.UserDB, error) {
	if strings.TrimSpace(name) == "" {
		logger.Log.Warnw("rejected user creation with empty name")
		return nil, ErrUserNameRequired
	}

	user, err := svc.writer.Save(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Errorw("user already exists", "name", name)
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "name", name, "err", err)
		return nil, err
	}

	svc.invalidateLeaderboard(ctx)

	return user, nil
}

// List returns all users ordered by total points descending, serving from the
// cache when a fresh copy is available.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	if svc.cache != nil {
		if users, err := svc.cache.Get(ctx); err == nil {
			return users, nil
		}
	}

	users, err := svc.reader.ListAllOrderedByPoints(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, users); err != nil {
			logger.Log.Warnw("failed to cache leaderboard", "err", err)
		}
	}

	return users, nil
}

// EnsureDefaultUsers seeds the fixed default users when the store is empty.
// The emptiness check is the only guard: any existing user skips seeding.
func (svc *UserService) EnsureDefaultUsers(ctx context.Context) error {
	count, err := svc.reader.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count users for seeding", "err", err)
		return err
	}

	if count > 0 {
		logger.Log.Infow("users already exist, skipping initialization", "count", count)
		return nil
	}

	if err := svc.writer.SaveBatch(ctx, models.DefaultUserNames); err != nil {
		logger.Log.Errorw("failed to seed default users", "err", err)
		return err
	}

	logger.Log.Infof("%d initial users created", len(models.DefaultUserNames))
	return nil
}

// invalidateLeaderboard drops the cached leaderboard after a mutation.
// A failed invalidation only delays freshness until the TTL expires.
func (svc *UserService) invalidateLeaderboard(ctx context.Context) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Invalidate(ctx); err != nil {
		logger.Log.Warnw("failed to invalidate leaderboard cache", "err", err)
	}
}
