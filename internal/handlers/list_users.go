package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/raghav2711/points-leaderboard/internal/logger"
	"github.com/raghav2711/points-leaderboard/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// LeaderboardUser represents one leaderboard row
// swagger:model LeaderboardUser
type LeaderboardUser struct {
	// User identifier
	// example: 7c9e6679-7425-40de-944b-e07fc1f90ae7
	ID string `json:"id"`

	// Display name
	// example: Rahul
	Name string `json:"name"`

	// Accumulated points
	// example: 42
	TotalPoints int64 `json:"total_points"`
}

// ListUsersErrorResponse represents an error response for the leaderboard
// swagger:model ListUsersErrorResponse
type ListUsersErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// NewListUsersHandler returns an HTTP handler for the leaderboard query.
// @Summary List users
// @Description Returns all users ordered by total points descending. No pagination; consumers slice top-N for display.
// @Tags users
// @Produce json
// @Success 200 {array} handlers.LeaderboardUser "Users ordered by points"
// @Failure 500 {object} handlers.ListUsersErrorResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListUsersErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		resp := make([]LeaderboardUser, 0, len(users))
		for _, u := range users {
			resp = append(resp, LeaderboardUser{
				ID:          u.UserID.String(),
				Name:        u.Name,
				TotalPoints: u.TotalPoints,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
