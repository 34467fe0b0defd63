package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/raghav2711/points-leaderboard/internal/logger"
	"github.com/raghav2711/points-leaderboard/internal/models"
)

// Award bounds for a single claim, inclusive.
const (
	awardMin = 1
	awardMax = 10
)

// ClaimWriter defines write operations for the claim history.
type ClaimWriter interface {
	Save(ctx context.Context, userID uuid.UUID, pointsClaimed int64) (*models.ClaimDB, error) // Appends a claim event
}

// ClaimReader defines read operations for the claim history.
type ClaimReader interface {
	ListAllOrderedByTime(ctx context.Context) ([]models.ClaimHistoryEntryDB, error) // Returns claim events newest first, with claimant names
}

// AwardRandomizer draws award amounts for claims.
type AwardRandomizer interface {
	IntInRange(min, max int) int // Returns a uniform integer in [min, max]
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ClaimService runs the points-claim transaction, the history query, and
// claim-event publishing.
type ClaimService struct {
	users       UserReader
	points      UserWriter
	claims      ClaimWriter
	history     ClaimReader
	cache       LeaderboardCache
	rand        AwardRandomizer
	kafkaWriter KafkaWriter
}

// NewClaimService creates a new ClaimService.
func NewClaimService(
	users UserReader,
	points UserWriter,
	claims ClaimWriter,
	history ClaimReader,
	cache LeaderboardCache,
	rand AwardRandomizer,
	kafkaWriter KafkaWriter,
) *ClaimService {
	return &ClaimService{
		users:       users,
		points:      points,
		claims:      claims,
		history:     history,
		cache:       cache,
		rand:        rand,
		kafkaWriter: kafkaWriter,
	}
}

// Claim awards a random number of points to the given user and records the
// event. Returns the updated user together with the amount awarded by this
// call, so callers can tell the running total apart from the delta.
//
// The user lookup happens before any write: an unknown user aborts with
// ErrUserNotFound and leaves both stores untouched. The increment and the
// history append are sequential, not atomic across stores. A failed increment
// never writes history; a failed history append after a durable increment is
// surfaced as an error while the points stay applied.
func (svc *ClaimService) Claim(ctx context.Context, userID uuid.UUID) (*models.UserDB, int64, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to resolve user for claim", "userID", userID, "err", err)
		return nil, 0, err
	}
	if user == nil {
		logger.Log.Warnw("claim for unknown user", "userID", userID)
		return nil, 0, ErrUserNotFound
	}

	award := int64(svc.rand.IntInRange(awardMin, awardMax))

	updated, err := svc.points.IncrementPoints(ctx, userID, award)
	if err != nil {
		logger.Log.Errorw("failed to increment points", "userID", userID, "award", award, "err", err)
		return nil, 0, err
	}
	if updated == nil {
		// The user vanished between the read and the update.
		logger.Log.Warnw("user disappeared before increment", "userID", userID)
		return nil, 0, ErrUserNotFound
	}

	claim, err := svc.claims.Save(ctx, userID, award)
	if err != nil {
		// The points were already applied; the missing history row is the
		// known anomaly of this two-write sequence.
		logger.Log.Errorw("claim history append failed after points were applied",
			"userID", userID, "award", award, "err", err)
		return nil, 0, err
	}

	svc.invalidateLeaderboard(ctx)

	event := models.ClaimEvent{
		ClaimID:       claim.ClaimID.String(),
		UserID:        updated.UserID.String(),
		UserName:      updated.Name,
		PointsClaimed: award,
		TotalPoints:   updated.TotalPoints,
		Timestamp:     time.Now().Unix(),
	}
	svc.publishClaim(ctx, event)

	return updated, award, nil
}

// History returns all claim events newest first, with claimant names joined in.
func (svc *ClaimService) History(ctx context.Context) ([]models.ClaimHistoryEntryDB, error) {
	entries, err := svc.history.ListAllOrderedByTime(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list claim history", "err", err)
		return nil, err
	}
	return entries, nil
}

// invalidateLeaderboard drops the cached leaderboard after a successful claim.
func (svc *ClaimService) invalidateLeaderboard(ctx context.Context) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Invalidate(ctx); err != nil {
		logger.Log.Warnw("failed to invalidate leaderboard cache", "err", err)
	}
}

// publishClaim publishes a claim event to Kafka. Publishing is best-effort:
// failures are logged and never fail the claim itself.
func (svc *ClaimService) publishClaim(ctx context.Context, event models.ClaimEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "claim_id", event.ClaimID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal claim event for Kafka", "claim_id", event.ClaimID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish claim event to Kafka", "claim_id", event.ClaimID, "error", err)
	} else {
		logger.Log.Infow("Claim event published to Kafka", "claim_id", event.ClaimID, "points", event.PointsClaimed)
	}
}
