package club

import (
	"context"
	"errors"
	"testing"

	"github.com/club59/pongking/internal/ai"
	"github.com/club59/pongking/internal/domains/entities"
	"github.com/club59/pongking/internal/repositories"
	"github.com/stretchr/testify/require"
)

// stubScout is a canned ScoutingGateway for tests.
type stubScout struct {
	style       ai.StyleReport
	styleErr    error
	styleCalls  int
	analysis    string
	analysisErr error
	prediction  ai.Prediction
}

func (s *stubScout) GenerateStyle(
	_ context.Context,
	_ string,
	_ entities.Attributes,
) (ai.StyleReport, error) {
	s.styleCalls++
	if s.styleErr != nil {
		return ai.StyleReport{}, s.styleErr
	}
	return s.style, nil
}

func (s *stubScout) AnalyzeHistory(
	_ context.Context,
	_ string,
	_ string,
) (string, error) {
	if s.analysisErr != nil {
		return "", s.analysisErr
	}
	return s.analysis, nil
}

func (s *stubScout) PredictMatch(
	_ context.Context,
	_, _ entities.Player,
) (ai.Prediction, error) {
	return s.prediction, nil
}

var errScoutDown = errors.New("scouting gateway unreachable")

func newTestService(t *testing.T) (*Service, *repositories.MemoryStore, *stubScout) {
	t.Helper()
	store := repositories.NewMemoryStore()
	scout := &stubScout{
		style: ai.StyleReport{
			StyleLabel:       "counter driver",
			StyleDescription: "Thrives on fast rallies close to the table.",
		},
		analysis:   "Work on the backhand serve return.",
		prediction: ai.Prediction{Winner: "Lee", Score: "11-9", Point: "steadier under pressure"},
	}
	return NewService(store, scout), store, scout
}

// seedPlayer puts a player with a chosen rating directly into the
// store, bypassing create-time defaults.
func seedPlayer(t *testing.T, store *repositories.MemoryStore, id, name string, ratingValue int) entities.Player {
	t.Helper()
	player := entities.Player{
		Id:     id,
		Name:   name,
		Tier:   entities.TierRegular,
		Rating: ratingValue,
		Attributes: entities.Attributes{
			Power: 5, Spin: 5, Control: 5, Serve: 5, Footwork: 5,
		},
	}
	require.NoError(t, store.PutPlayer(context.Background(), player))
	return player
}
