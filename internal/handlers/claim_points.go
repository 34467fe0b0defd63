package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/raghav2711/points-leaderboard/internal/logger"
	"github.com/raghav2711/points-leaderboard/internal/models"
	"github.com/raghav2711/points-leaderboard/internal/services"
)

// PointsClaimer defines the interface that the service must implement.
type PointsClaimer interface {
	Claim(ctx context.Context, userID uuid.UUID) (*models.UserDB, int64, error)
}

// ClaimPointsRequest represents the JSON body for claiming points
// swagger:model ClaimPointsRequest
type ClaimPointsRequest struct {
	// Identifier of the user claiming points
	// required: true
	// example: 7c9e6679-7425-40de-944b-e07fc1f90ae7
	UserID string `json:"user_id"`
}

// ClaimedUser represents the claimant with the updated total
// swagger:model ClaimedUser
type ClaimedUser struct {
	// User identifier
	// example: 7c9e6679-7425-40de-944b-e07fc1f90ae7
	ID string `json:"id"`

	// Display name
	// example: Rahul
	Name string `json:"name"`

	// Accumulated points after this claim
	// example: 49
	TotalPoints int64 `json:"total_points"`
}

// ClaimPointsResponse represents a successful claim response
// swagger:model ClaimPointsResponse
type ClaimPointsResponse struct {
	// Claimant with the new running total
	User ClaimedUser `json:"user"`

	// Amount awarded by this specific claim
	// example: 7
	PointsClaimed int64 `json:"points_claimed"`

	// Success message
	// example: Successfully claimed 7 points for Rahul
	Message string `json:"message"`
}

// ClaimPointsErrorResponse represents an error response for claiming points
// swagger:model ClaimPointsErrorResponse
type ClaimPointsErrorResponse struct {
	// Error message
	// example: User not found
	Error string `json:"error"`
}

// NewClaimPointsHandler returns an HTTP handler for the points claim.
// @Summary Claim points
// @Description Awards a random number of points (1-10) to the given user and records the claim in the history log.
// @Tags claims
// @Accept json
// @Produce json
// @Param claimPointsRequest body handlers.ClaimPointsRequest true "Claim request"
// @Success 200 {object} handlers.ClaimPointsResponse "Points claimed"
// @Failure 400 {object} handlers.ClaimPointsErrorResponse "User ID is required / invalid request"
// @Failure 404 {object} handlers.ClaimPointsErrorResponse "User not found"
// @Failure 500 {object} handlers.ClaimPointsErrorResponse "Internal server error"
// @Router /claim-points [post]
func NewClaimPointsHandler(svc PointsClaimer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req ClaimPointsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ClaimPointsErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if req.UserID == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ClaimPointsErrorResponse{
				Error: "User ID is required",
			})
			return
		}

		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			logger.Log.Warnw("malformed user id in claim request", "user_id", req.UserID)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ClaimPointsErrorResponse{
				Error: "User ID is required",
			})
			return
		}

		user, pointsClaimed, err := svc.Claim(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ClaimPointsErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ClaimPointsErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ClaimPointsResponse{
			User: ClaimedUser{
				ID:          user.UserID.String(),
				Name:        user.Name,
				TotalPoints: user.TotalPoints,
			},
			PointsClaimed: pointsClaimed,
			Message:       fmt.Sprintf("Successfully claimed %d points for %s", pointsClaimed, user.Name),
		})
	}
}
