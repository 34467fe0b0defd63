package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/raghav2711/points-leaderboard/internal/logger"
	"github.com/raghav2711/points-leaderboard/internal/models"
)

// HistoryLister defines the interface that the service must implement.
type HistoryLister interface {
	History(ctx context.Context) ([]models.ClaimHistoryEntryDB, error)
}

// ClaimHistoryEntry represents one claim event in the history feed
// swagger:model ClaimHistoryEntry
type ClaimHistoryEntry struct {
	// Claim identifier
	// example: 6fa459ea-ee8a-3ca4-894e-db77e160355e
	ID string `json:"id"`

	// Claimant's current name, or "unknown" when the user no longer resolves
	// example: Rahul
	UserName string `json:"user_name"`

	// Amount awarded by this claim
	// example: 7
	PointsClaimed int64 `json:"points_claimed"`

	// Time of the claim
	// example: 2025-09-26T12:00:00Z
	Timestamp time.Time `json:"timestamp"`
}

// ClaimHistoryErrorResponse represents an error response for the history feed
// swagger:model ClaimHistoryErrorResponse
type ClaimHistoryErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewClaimHistoryHandler returns an HTTP handler for the claim-history feed.
// @Summary List claim history
// @Description Returns all claim events newest first, each annotated with the claimant's current name. No pagination or filtering.
// @Tags claims
// @Produce json
// @Success 200 {array} handlers.ClaimHistoryEntry "Claim events newest first"
// @Failure 500 {object} handlers.ClaimHistoryErrorResponse "Internal server error"
// @Router /claim-history [get]
func NewClaimHistoryHandler(svc HistoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.History(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list claim history", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ClaimHistoryErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := make([]ClaimHistoryEntry, 0, len(entries))
		for _, e := range entries {
			resp = append(resp, ClaimHistoryEntry{
				ID:            e.ClaimID.String(),
				UserName:      e.UserName,
				PointsClaimed: e.PointsClaimed,
				Timestamp:     e.CreatedAt,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
