package models

import (
	"time"

	"github.com/google/uuid"
)

// ClaimDB represents a claim-history row in the database. Rows are append-only:
// they are written once by a successful points claim and never updated.
type ClaimDB struct {
	ClaimID       uuid.UUID `json:"id" db:"claim_id"`                   // Primary key
	UserID        uuid.UUID `json:"user_id" db:"user_id"`               // Claimant, no foreign key enforced
	PointsClaimed int64     `json:"points_claimed" db:"points_claimed"` // Amount awarded by this claim
	CreatedAt     time.Time `json:"timestamp" db:"created_at"`          // Time of the claim
}

// ClaimHistoryEntryDB is a claim-history row annotated with the claimant's
// current name, resolved at read time. UserName is "unknown" when the
// referenced user no longer resolves.
type ClaimHistoryEntryDB struct {
	ClaimID       uuid.UUID `json:"id" db:"claim_id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	UserName      string    `json:"user_name" db:"user_name"`
	PointsClaimed int64     `json:"points_claimed" db:"points_claimed"`
	CreatedAt     time.Time `json:"timestamp" db:"created_at"`
}
