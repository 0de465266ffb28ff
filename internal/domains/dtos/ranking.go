package dtos

import (
	"github.com/club59/pongking/internal/domains/entities"
)

type StandingResponse struct {
	Player  PlayerResponse `json:"player"`
	Wins    int            `json:"wins"`
	Losses  int            `json:"losses"`
	WinRate float64        `json:"winRate"`
}

func StandingListResponseFromEntities(standings []entities.Standing) []StandingResponse {
	responses := make([]StandingResponse, 0, len(standings))
	for _, standing := range standings {
		responses = append(responses, StandingResponse{
			Player:  PlayerResponseFromEntity(standing.Player),
			Wins:    standing.Wins,
			Losses:  standing.Losses,
			WinRate: standing.WinRate,
		})
	}
	return responses
}
