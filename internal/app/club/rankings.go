package club

import (
	"context"
	"sort"

	"github.com/club59/pongking/internal/domains/entities"
)

// BuildStandings derives win/loss records and ranking order from a
// snapshot. Pure: same input, same output, nothing cached.
func BuildStandings(
	players []entities.Player,
	matches []entities.Match,
) []entities.Standing {
	standings := make([]entities.Standing, 0, len(players))
	for _, player := range players {
		var wins, losses int
		for _, match := range matches {
			if !match.Involves(player.Id) {
				continue
			}
			if match.WinnerId == player.Id {
				wins++
			} else {
				losses++
			}
		}
		winRate := 0.0
		if wins+losses > 0 {
			winRate = float64(wins) / float64(wins+losses)
		}
		standings = append(standings, entities.Standing{
			Player:  player,
			Wins:    wins,
			Losses:  losses,
			WinRate: winRate,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		pi, pj := standings[i].Player, standings[j].Player
		if pi.Tier.Precedence() != pj.Tier.Precedence() {
			return pi.Tier.Precedence() < pj.Tier.Precedence()
		}
		if pi.Rating != pj.Rating {
			return pi.Rating > pj.Rating
		}
		return pi.Name < pj.Name
	})
	return standings
}

// Rankings recomputes standings from current store state.
func (s *Service) Rankings(ctx context.Context) ([]entities.Standing, error) {
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := s.store.ListMatches(ctx)
	if err != nil {
		return nil, err
	}
	return BuildStandings(players, matches), nil
}
