// Package database applies the service schema at startup.
package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/raghav2711/points-leaderboard/internal/logger"
)

// statements are executed in order on every startup. Each one is idempotent,
// so re-running the migrator against an existing database is a no-op.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(100) NOT NULL UNIQUE,
		total_points BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	// No foreign key on user_id: referential integrity is the claim
	// transaction's responsibility, not the storage layer's.
	`CREATE TABLE IF NOT EXISTS claim_history (
		claim_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL,
		points_claimed INT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_total_points ON users (total_points DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_claim_history_created_at ON claim_history (created_at DESC)`,
}

// Migrator applies the embedded schema statements sequentially.
type Migrator struct {
	db *sqlx.DB
}

// NewMigrator constructs a Migrator over the given database handle.
func NewMigrator(db *sqlx.DB) *Migrator {
	return &Migrator{db: db}
}

// Apply executes every schema statement in order, stopping at the first failure.
func (m *Migrator) Apply(ctx context.Context) error {
	for i, stmt := range statements {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			logger.Log.Errorw("migration statement failed",
				"statement", strings.Join(strings.Fields(stmt), " "),
				"error", err,
			)
			return fmt.Errorf("apply migration %d: %w", i+1, err)
		}
	}

	logger.Log.Infow("schema migrations applied", "statements", len(statements))
	return nil
}
