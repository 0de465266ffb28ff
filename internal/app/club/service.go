package club

import (
	"context"
	"fmt"

	"github.com/club59/pongking/internal/ai"
	"github.com/club59/pongking/internal/domains/entities"
	"github.com/club59/pongking/internal/domains/interfaces"
	"github.com/club59/pongking/pkg/logging"
	"go.uber.org/zap"
)

// ScoutingGateway produces the AI-generated texts. Implemented by
// ai.Client; tests plug in stubs.
type ScoutingGateway interface {
	GenerateStyle(ctx context.Context, name string, attrs entities.Attributes) (ai.StyleReport, error)
	AnalyzeHistory(ctx context.Context, playerName, summary string) (string, error)
	PredictMatch(ctx context.Context, player1, player2 entities.Player) (ai.Prediction, error)
}

// Notifier propagates a collection-changed event to other service
// instances. In-process delivery goes through the Bus instead.
type Notifier interface {
	Publish(ctx context.Context, collection string) error
}

// Service owns the registry and ledger rules. All collaborators are
// injected; there is no package-level state.
type Service struct {
	store    interfaces.Store
	scout    ScoutingGateway
	bus      *Bus
	notifier Notifier
}

type Option func(*Service)

// WithNotifier attaches a cross-instance change notifier.
func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

func NewService(store interfaces.Store, scout ScoutingGateway, opts ...Option) *Service {
	s := &Service{
		store: store,
		scout: scout,
		bus:   NewBus(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe hands out a snapshot channel; each subscriber recomputes
// its own derived state from the latest snapshot.
func (s *Service) Subscribe() (<-chan Snapshot, func()) {
	return s.bus.Subscribe()
}

// CurrentSnapshot reads both collections without publishing, for a
// subscriber that needs initial state before the first change.
func (s *Service) CurrentSnapshot(ctx context.Context) (Snapshot, error) {
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to list players: %w", err)
	}
	matches, err := s.store.ListMatches(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to list matches: %w", err)
	}
	return Snapshot{Players: players, Matches: matches}, nil
}

// Refresh re-reads both collections and publishes a fresh snapshot to
// every local subscriber.
func (s *Service) Refresh(ctx context.Context) error {
	snapshot, err := s.CurrentSnapshot(ctx)
	if err != nil {
		return err
	}
	s.bus.Publish(snapshot)
	return nil
}

// changed is called after every successful mutation. A failed refresh
// or notify never fails the mutation itself.
func (s *Service) changed(ctx context.Context, collection string) {
	if err := s.Refresh(ctx); err != nil {
		logging.Error("failed to refresh snapshot", zap.Error(err))
	}
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, collection); err != nil {
		logging.Error("failed to publish change notification",
			zap.String("collection", collection),
			zap.Error(err),
		)
	}
}
