package dtos

import (
	"github.com/club59/pongking/internal/domains/entities"
)

// SnapshotResponse is the full-state message pushed to live
// subscribers whenever either collection changes.
type SnapshotResponse struct {
	Type    string           `json:"type"`
	Players []PlayerResponse `json:"players"`
	Matches []MatchResponse  `json:"matches"`
}

func SnapshotResponseFromEntities(
	players []entities.Player,
	matches []entities.Match,
) SnapshotResponse {
	return SnapshotResponse{
		Type:    "snapshot",
		Players: PlayerListResponseFromEntities(players),
		Matches: MatchListResponseFromEntities(matches),
	}
}
