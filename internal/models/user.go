package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultUserNames is the fixed set of users seeded into an empty store on
// first startup. Seeding is skipped whenever at least one user already exists.
var DefaultUserNames = []string{
	"Rahul",
	"Kamal",
	"Sanak",
	"Priya",
	"Deepak",
	"Anjali",
	"Vikas",
	"Sonia",
	"Ravi",
	"Neha",
}

// UserDB represents a user record in the database
type UserDB struct {
	UserID      uuid.UUID `json:"id" db:"user_id"`                // Primary key
	Name        string    `json:"name" db:"name"`                 // Unique display name
	TotalPoints int64     `json:"total_points" db:"total_points"` // Accumulated points, never negative
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}
