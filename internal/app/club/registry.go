package club

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/club59/pongking/internal/ai"
	"github.com/club59/pongking/internal/domains/entities"
	"github.com/club59/pongking/internal/domains/interfaces"
	"github.com/club59/pongking/internal/metrics"
	"github.com/club59/pongking/pkg/logging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fallbackStyle is used whenever the scouting gateway is unreachable
// or answers with something that does not parse. Never an error.
var fallbackStyle = ai.StyleReport{
	StyleLabel:       "all-rounder",
	StyleDescription: "Plays a balanced all-round game. Scouting report unavailable.",
}

const historyAnalysisDepth = 10

// PlayerUpdate is the caller-editable subset of a player. Rating and
// style text are owned by the service and cannot be set directly.
type PlayerUpdate struct {
	Name       *string
	Tier       *entities.Tier
	Attributes *entities.Attributes
}

func (s *Service) CreatePlayer(
	ctx context.Context,
	name string,
	tier entities.Tier,
	attrs entities.Attributes,
) (entities.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Player{}, ErrEmptyName
	}
	if !tier.Valid() {
		return entities.Player{}, ErrInvalidTier
	}
	if !attrs.InRange() {
		return entities.Player{}, ErrAttributeOutOfRange
	}

	style := s.generateStyle(ctx, name, attrs)

	player := entities.Player{
		Id:               uuid.NewString(),
		Name:             name,
		Tier:             tier,
		Attributes:       attrs,
		Rating:           entities.InitialRating,
		StyleLabel:       style.StyleLabel,
		StyleDescription: style.StyleDescription,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.store.PutPlayer(ctx, player); err != nil {
		return entities.Player{}, fmt.Errorf("failed to put player: %w", err)
	}
	s.changed(ctx, "players")
	return player, nil
}

func (s *Service) GetPlayer(ctx context.Context, playerId string) (entities.Player, error) {
	return s.store.GetPlayer(ctx, playerId)
}

func (s *Service) ListPlayers(ctx context.Context) ([]entities.Player, error) {
	return s.store.ListPlayers(ctx)
}

// UpdatePlayer applies a partial edit. The style annotation is
// regenerated only when the attributes actually change.
func (s *Service) UpdatePlayer(
	ctx context.Context,
	playerId string,
	update PlayerUpdate,
) (entities.Player, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return entities.Player{}, ErrEmptyName
	}
	if update.Tier != nil && !update.Tier.Valid() {
		return entities.Player{}, ErrInvalidTier
	}
	if update.Attributes != nil && !update.Attributes.InRange() {
		return entities.Player{}, ErrAttributeOutOfRange
	}

	player, err := s.store.GetPlayer(ctx, playerId)
	if err != nil {
		return entities.Player{}, err
	}

	opts := interfaces.PlayerUpdateOptions{
		Name:       update.Name,
		Tier:       update.Tier,
		Attributes: update.Attributes,
	}
	if update.Attributes != nil && *update.Attributes != player.Attributes {
		name := player.Name
		if update.Name != nil {
			name = *update.Name
		}
		style := s.generateStyle(ctx, name, *update.Attributes)
		opts.StyleLabel = &style.StyleLabel
		opts.StyleDescription = &style.StyleDescription
	}

	if err := s.store.UpdatePlayer(ctx, playerId, opts); err != nil {
		return entities.Player{}, fmt.Errorf("failed to update player: %w", err)
	}
	s.changed(ctx, "players")
	return s.store.GetPlayer(ctx, playerId)
}

// ApplyRatingDelta adds delta to the player's current rating. This is
// a plain read-modify-write: concurrent submissions touching the same
// player can overwrite each other's rating change.
func (s *Service) ApplyRatingDelta(ctx context.Context, playerId string, delta int) error {
	player, err := s.store.GetPlayer(ctx, playerId)
	if err != nil {
		return err
	}
	newRating := player.Rating + delta
	err = s.store.UpdatePlayer(ctx, playerId, interfaces.PlayerUpdateOptions{
		Rating: &newRating,
	})
	if err != nil {
		return fmt.Errorf("failed to update rating: %w", err)
	}
	return nil
}

// DeletePlayer removes the player. Matches referencing the player are
// kept; history views simply stop resolving the name.
func (s *Service) DeletePlayer(ctx context.Context, playerId string) error {
	if err := s.store.DeletePlayer(ctx, playerId); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	s.changed(ctx, "players")
	return nil
}

// AnalyzePlayerHistory asks the scouting gateway for commentary on the
// player's recent results and caches it on the player record. Unlike
// the style annotation this is an explicit request, so gateway
// failures surface to the caller.
func (s *Service) AnalyzePlayerHistory(ctx context.Context, playerId string) (string, error) {
	player, err := s.store.GetPlayer(ctx, playerId)
	if err != nil {
		return "", err
	}
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list players: %w", err)
	}
	matches, err := s.store.ListMatches(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list matches: %w", err)
	}

	summary := historySummary(player, players, matches)
	analysis, err := s.scout.AnalyzeHistory(ctx, player.Name, summary)
	if err != nil {
		return "", fmt.Errorf("failed to analyze history: %w", err)
	}

	err = s.store.UpdatePlayer(ctx, playerId, interfaces.PlayerUpdateOptions{
		HistoryAnalysis: &analysis,
	})
	if err != nil {
		return "", fmt.Errorf("failed to save history analysis: %w", err)
	}
	s.changed(ctx, "players")
	return analysis, nil
}

// PredictMatch asks for an outcome call on a hypothetical pairing.
// Nothing is persisted.
func (s *Service) PredictMatch(
	ctx context.Context,
	player1Id, player2Id string,
) (ai.Prediction, error) {
	if player1Id == player2Id {
		return ai.Prediction{}, ErrSamePlayer
	}
	player1, err := s.store.GetPlayer(ctx, player1Id)
	if err != nil {
		return ai.Prediction{}, err
	}
	player2, err := s.store.GetPlayer(ctx, player2Id)
	if err != nil {
		return ai.Prediction{}, err
	}
	return s.scout.PredictMatch(ctx, player1, player2)
}

func (s *Service) generateStyle(
	ctx context.Context,
	name string,
	attrs entities.Attributes,
) ai.StyleReport {
	style, err := s.scout.GenerateStyle(ctx, name, attrs)
	if err != nil {
		logging.Warn("scouting gateway degraded to fallback style",
			zap.String("player_name", name),
			zap.Error(err),
		)
		metrics.ScoutingFallbacks.Inc()
		return fallbackStyle
	}
	return style
}

// historySummary renders the player's most recent results as one line
// per match, newest first, for the scouting prompt.
func historySummary(
	player entities.Player,
	players []entities.Player,
	matches []entities.Match,
) string {
	names := make(map[string]string, len(players))
	for _, p := range players {
		names[p.Id] = p.Name
	}

	var lines []string
	for _, m := range matches {
		if !m.Involves(player.Id) {
			continue
		}
		opponentId := m.Player1Id
		playerScore, opponentScore := m.Score2, m.Score1
		if m.Player1Id == player.Id {
			opponentId = m.Player2Id
			playerScore, opponentScore = m.Score1, m.Score2
		}
		opponent, ok := names[opponentId]
		if !ok {
			opponent = "a departed member"
		}
		outcome := "L"
		if m.WinnerId == player.Id {
			outcome = "W"
		}
		lines = append(lines, fmt.Sprintf("%s %d-%d vs %s", outcome, playerScore, opponentScore, opponent))
		if len(lines) == historyAnalysisDepth {
			break
		}
	}
	if len(lines) == 0 {
		return "no recorded matches yet"
	}
	return strings.Join(lines, "\n")
}
