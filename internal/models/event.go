package models

// ClaimEvent is the message published to Kafka after a successful points claim.
type ClaimEvent struct {
	ClaimID       string `json:"claim_id"`       // ClaimID identifies the claim-history row this event mirrors.
	UserID        string `json:"user_id"`        // UserID is the claimant's identifier.
	UserName      string `json:"user_name"`      // UserName is the claimant's name at claim time.
	PointsClaimed int64  `json:"points_claimed"` // PointsClaimed is the amount awarded.
	TotalPoints   int64  `json:"total_points"`   // TotalPoints is the claimant's running total after the claim.
	Timestamp     int64  `json:"timestamp"`      // Timestamp is the Unix time (in seconds) the claim was processed.
}
