package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/raghav2711/points-leaderboard/internal/logger"
	"github.com/raghav2711/points-leaderboard/internal/models"
	"github.com/raghav2711/points-leaderboard/internal/services"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, name string) (*models.UserDB, error)
}

// CreateUserRequest represents the JSON body for adding a user
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Display name, unique across all users
	// required: true
	// example: Rahul
	Name string `json:"name"`
}

// CreateUserResponse represents the newly created user
// swagger:model CreateUserResponse
type CreateUserResponse struct {
	// User identifier
	// example: 7c9e6679-7425-40de-944b-e07fc1f90ae7
	ID string `json:"id"`

	// Display name
	// example: Rahul
	Name string `json:"name"`

	// Accumulated points, zero for a new user
	// example: 0
	TotalPoints int64 `json:"total_points"`
}

// CreateUserErrorResponse represents an error response for user creation
// swagger:model CreateUserErrorResponse
type CreateUserErrorResponse struct {
	// Error message
	// example: User with this name already exists
	Error string `json:"error"`
}

// NewCreateUserHandler returns an HTTP handler for adding a user.
// @Summary Add a new user
// @Description Creates a user with zero points. Names are unique; duplicates are rejected.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 201 {object} handlers.CreateUserResponse "User successfully created"
// @Failure 400 {object} handlers.CreateUserErrorResponse "User name is required / invalid request"
// @Failure 409 {object} handlers.CreateUserErrorResponse "User with this name already exists"
// @Failure 500 {object} handlers.CreateUserErrorResponse "Internal server error"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateUserErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		user, err := svc.Create(r.Context(), req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNameRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateUserErrorResponse{
					Error: "User name is required",
				})
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CreateUserErrorResponse{
					Error: "User with this name already exists",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateUserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateUserResponse{
			ID:          user.UserID.String(),
			Name:        user.Name,
			TotalPoints: user.TotalPoints,
		})
	}
}
