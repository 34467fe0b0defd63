package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/raghav2711/points-leaderboard/internal/logger"
	"github.com/raghav2711/points-leaderboard/internal/models"
)

// UnknownUserName is reported for history rows whose claimant no longer resolves.
const UnknownUserName = "unknown"

// ClaimWriteRepository handles claim-history write operations
type ClaimWriteRepository struct {
	db *sqlx.DB
}

func NewClaimWriteRepository(db *sqlx.DB) *ClaimWriteRepository {
	return &ClaimWriteRepository{db: db}
}

// Save appends a claim event for the given user. The claimant's existence is
// not validated here; the claim transaction checks it before any write.
func (r *ClaimWriteRepository) Save(ctx context.Context, userID uuid.UUID, pointsClaimed int64) (*models.ClaimDB, error) {
	query := `
		INSERT INTO claim_history (claim_id, user_id, points_claimed, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING claim_id, user_id, points_claimed, created_at
	`
	args := []any{uuid.New(), userID, pointsClaimed}

	var claim models.ClaimDB
	err := r.db.GetContext(ctx, &claim, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", claim,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &claim, nil
}

// ClaimReadRepository handles claim-history read operations
type ClaimReadRepository struct {
	db *sqlx.DB
}

func NewClaimReadRepository(db *sqlx.DB) *ClaimReadRepository {
	return &ClaimReadRepository{db: db}
}

// ListAllOrderedByTime returns all claim events newest first, each annotated
// with the claimant's current name. The join is resolved at read time: a
// renamed user shows the new name, a missing user degrades to "unknown" for
// that row instead of failing the query.
func (r *ClaimReadRepository) ListAllOrderedByTime(ctx context.Context) ([]models.ClaimHistoryEntryDB, error) {
	const query = `
		SELECT c.claim_id, c.user_id, COALESCE(u.name, 'unknown') AS user_name,
		       c.points_claimed, c.created_at
		FROM claim_history c
		LEFT JOIN users u ON u.user_id = c.user_id
		ORDER BY c.created_at DESC
	`

	var entries []models.ClaimHistoryEntryDB
	err := r.db.SelectContext(ctx, &entries, query)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return entries, nil
}
