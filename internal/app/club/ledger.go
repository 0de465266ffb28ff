package club

import (
	"context"
	"fmt"
	"time"

	"github.com/club59/pongking/internal/domains/entities"
	"github.com/club59/pongking/internal/metrics"
	"github.com/club59/pongking/pkg/logging"
	"github.com/club59/pongking/pkg/rating"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MatchSubmission struct {
	Player1Id string
	Player2Id string
	Score1    int
	Score2    int
	BetTag    string
}

// SubmitMatch validates the submission, appends the match and applies
// the rating change to both players.
//
// The append and the two rating writes are not wrapped in a
// transaction: a store failure mid-sequence leaves the system
// partially applied and is surfaced to the caller as-is.
func (s *Service) SubmitMatch(
	ctx context.Context,
	submission MatchSubmission,
) (entities.Match, error) {
	if submission.Player1Id == submission.Player2Id {
		return entities.Match{}, ErrSamePlayer
	}
	if submission.Score1 < 0 || submission.Score2 < 0 {
		return entities.Match{}, ErrNegativeScore
	}
	if submission.Score1 == submission.Score2 {
		return entities.Match{}, ErrTieScore
	}

	player1, err := s.store.GetPlayer(ctx, submission.Player1Id)
	if err != nil {
		return entities.Match{}, err
	}
	player2, err := s.store.GetPlayer(ctx, submission.Player2Id)
	if err != nil {
		return entities.Match{}, err
	}

	winner, loser := player1, player2
	if submission.Score2 > submission.Score1 {
		winner, loser = player2, player1
	}
	margin := submission.Score1 - submission.Score2
	if margin < 0 {
		margin = -margin
	}
	delta := rating.Update(winner.Rating, loser.Rating, margin)

	match := entities.Match{
		Id:        uuid.NewString(),
		Player1Id: submission.Player1Id,
		Player2Id: submission.Player2Id,
		Score1:    submission.Score1,
		Score2:    submission.Score2,
		WinnerId:  winner.Id,
		BetTag:    submission.BetTag,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.PutMatch(ctx, match); err != nil {
		return entities.Match{}, fmt.Errorf("failed to put match: %w", err)
	}

	if err := s.ApplyRatingDelta(ctx, winner.Id, delta); err != nil {
		return entities.Match{}, fmt.Errorf("match recorded but winner rating not applied: %w", err)
	}
	if err := s.ApplyRatingDelta(ctx, loser.Id, -delta); err != nil {
		return entities.Match{}, fmt.Errorf("match recorded but loser rating not applied: %w", err)
	}

	logging.Info("match recorded",
		zap.String("match_id", match.Id),
		zap.String("winner_id", winner.Id),
		zap.Int("rating_delta", delta),
	)
	metrics.MatchSubmissions.Inc()
	s.changed(ctx, "matches")
	return match, nil
}

func (s *Service) GetMatch(ctx context.Context, matchId string) (entities.Match, error) {
	return s.store.GetMatch(ctx, matchId)
}

// ListMatches returns the ledger newest first. Each call re-reads
// current state.
func (s *Service) ListMatches(ctx context.Context) ([]entities.Match, error) {
	return s.store.ListMatches(ctx)
}

// DeleteMatch removes the record. The rating changes the match caused
// stay in place; the ledger is never reconciled against deletions.
func (s *Service) DeleteMatch(ctx context.Context, matchId string) error {
	if err := s.store.DeleteMatch(ctx, matchId); err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	s.changed(ctx, "matches")
	return nil
}
