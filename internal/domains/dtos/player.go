package dtos

import (
	"time"

	"github.com/club59/pongking/internal/domains/entities"
)

type PlayerCreateRequest struct {
	Name       string              `json:"name"`
	Tier       string              `json:"tier"`
	Attributes entities.Attributes `json:"attributes"`
}

type PlayerUpdateRequest struct {
	Name       *string              `json:"name,omitempty"`
	Tier       *string              `json:"tier,omitempty"`
	Attributes *entities.Attributes `json:"attributes,omitempty"`
}

type PlayerResponse struct {
	Id               string              `json:"id"`
	Name             string              `json:"name"`
	Tier             string              `json:"tier"`
	Attributes       entities.Attributes `json:"attributes"`
	Rating           int                 `json:"rating"`
	StyleLabel       string              `json:"styleLabel"`
	StyleDescription string              `json:"styleDescription"`
	HistoryAnalysis  string              `json:"historyAnalysis,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
}

func PlayerResponseFromEntity(player entities.Player) PlayerResponse {
	return PlayerResponse{
		Id:               player.Id,
		Name:             player.Name,
		Tier:             string(player.Tier),
		Attributes:       player.Attributes,
		Rating:           player.Rating,
		StyleLabel:       player.StyleLabel,
		StyleDescription: player.StyleDescription,
		HistoryAnalysis:  player.HistoryAnalysis,
		CreatedAt:        player.CreatedAt,
	}
}

func PlayerListResponseFromEntities(players []entities.Player) []PlayerResponse {
	responses := make([]PlayerResponse, 0, len(players))
	for _, player := range players {
		responses = append(responses, PlayerResponseFromEntity(player))
	}
	return responses
}
