package dtos

import (
	"time"

	"github.com/club59/pongking/internal/domains/entities"
)

type MatchCreateRequest struct {
	Player1Id string `json:"player1Id"`
	Player2Id string `json:"player2Id"`
	Score1    int    `json:"score1"`
	Score2    int    `json:"score2"`
	BetTag    string `json:"betTag,omitempty"`
}

type MatchResponse struct {
	Id        string    `json:"id"`
	Player1Id string    `json:"player1Id"`
	Player2Id string    `json:"player2Id"`
	Score1    int       `json:"score1"`
	Score2    int       `json:"score2"`
	WinnerId  string    `json:"winnerId"`
	BetTag    string    `json:"betTag,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func MatchResponseFromEntity(match entities.Match) MatchResponse {
	return MatchResponse{
		Id:        match.Id,
		Player1Id: match.Player1Id,
		Player2Id: match.Player2Id,
		Score1:    match.Score1,
		Score2:    match.Score2,
		WinnerId:  match.WinnerId,
		BetTag:    match.BetTag,
		CreatedAt: match.CreatedAt,
	}
}

func MatchListResponseFromEntities(matches []entities.Match) []MatchResponse {
	responses := make([]MatchResponse, 0, len(matches))
	for _, match := range matches {
		responses = append(responses, MatchResponseFromEntity(match))
	}
	return responses
}
