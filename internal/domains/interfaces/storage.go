package interfaces

import (
	"context"
	"errors"

	"github.com/club59/pongking/internal/domains/entities"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrMatchNotFound  = errors.New("match not found")
)

// PlayerUpdateOptions carries a partial player update; nil fields are
// left untouched by the store.
type PlayerUpdateOptions struct {
	Name             *string
	Tier             *entities.Tier
	Attributes       *entities.Attributes
	Rating           *int
	StyleLabel       *string
	StyleDescription *string
	HistoryAnalysis  *string
}

// PlayerStore is the "players" collection of the document store.
type PlayerStore interface {
	GetPlayer(ctx context.Context, playerId string) (entities.Player, error)
	ListPlayers(ctx context.Context) ([]entities.Player, error)
	PutPlayer(ctx context.Context, player entities.Player) error
	UpdatePlayer(ctx context.Context, playerId string, opts PlayerUpdateOptions) error
	DeletePlayer(ctx context.Context, playerId string) error
}

// MatchStore is the "matches" collection. Matches are only ever
// created whole and deleted whole.
type MatchStore interface {
	GetMatch(ctx context.Context, matchId string) (entities.Match, error)
	ListMatches(ctx context.Context) ([]entities.Match, error)
	PutMatch(ctx context.Context, match entities.Match) error
	DeleteMatch(ctx context.Context, matchId string) error
}

// Store combines both collections behind one handle.
type Store interface {
	PlayerStore
	MatchStore
}
