package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/club59/pongking/internal/domains/entities"
	"github.com/club59/pongking/internal/domains/interfaces"
)

// MemoryStore keeps both collections in process memory. It backs tests
// and the "memory" storage backend for local runs.
type MemoryStore struct {
	mu      sync.RWMutex
	players map[string]entities.Player
	matches map[string]entities.Match
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		players: make(map[string]entities.Player),
		matches: make(map[string]entities.Match),
	}
}

func (s *MemoryStore) GetPlayer(_ context.Context, playerId string) (entities.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[playerId]
	if !ok {
		return entities.Player{}, interfaces.ErrPlayerNotFound
	}
	return player, nil
}

func (s *MemoryStore) ListPlayers(_ context.Context) ([]entities.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]entities.Player, 0, len(s.players))
	for _, p := range s.players {
		players = append(players, p)
	}
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].CreatedAt.Equal(players[j].CreatedAt) {
			return players[i].Id < players[j].Id
		}
		return players[i].CreatedAt.Before(players[j].CreatedAt)
	})
	return players, nil
}

func (s *MemoryStore) PutPlayer(_ context.Context, player entities.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.Id] = player
	return nil
}

func (s *MemoryStore) UpdatePlayer(
	_ context.Context,
	playerId string,
	opts interfaces.PlayerUpdateOptions,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	player, ok := s.players[playerId]
	if !ok {
		return interfaces.ErrPlayerNotFound
	}
	if opts.Name != nil {
		player.Name = *opts.Name
	}
	if opts.Tier != nil {
		player.Tier = *opts.Tier
	}
	if opts.Attributes != nil {
		player.Attributes = *opts.Attributes
	}
	if opts.Rating != nil {
		player.Rating = *opts.Rating
	}
	if opts.StyleLabel != nil {
		player.StyleLabel = *opts.StyleLabel
	}
	if opts.StyleDescription != nil {
		player.StyleDescription = *opts.StyleDescription
	}
	if opts.HistoryAnalysis != nil {
		player.HistoryAnalysis = *opts.HistoryAnalysis
	}
	s.players[playerId] = player
	return nil
}

func (s *MemoryStore) DeletePlayer(_ context.Context, playerId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, playerId)
	return nil
}

func (s *MemoryStore) GetMatch(_ context.Context, matchId string) (entities.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.matches[matchId]
	if !ok {
		return entities.Match{}, interfaces.ErrMatchNotFound
	}
	return match, nil
}

func (s *MemoryStore) ListMatches(_ context.Context) ([]entities.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := make([]entities.Match, 0, len(s.matches))
	for _, m := range s.matches {
		matches = append(matches, m)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].CreatedAt.Equal(matches[j].CreatedAt) {
			return matches[i].Id > matches[j].Id
		}
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	return matches, nil
}

func (s *MemoryStore) PutMatch(_ context.Context, match entities.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[match.Id] = match
	return nil
}

func (s *MemoryStore) DeleteMatch(_ context.Context, matchId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matches, matchId)
	return nil
}
