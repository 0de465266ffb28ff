package dtos

import (
	"github.com/club59/pongking/internal/ai"
)

type PredictionRequest struct {
	Player1Id string `json:"player1Id"`
	Player2Id string `json:"player2Id"`
}

type PredictionResponse struct {
	Winner string `json:"winner"`
	Score  string `json:"score"`
	Point  string `json:"point"`
}

func PredictionResponseFromReport(prediction ai.Prediction) PredictionResponse {
	return PredictionResponse{
		Winner: prediction.Winner,
		Score:  prediction.Score,
		Point:  prediction.Point,
	}
}

type HistoryAnalysisResponse struct {
	Analysis string `json:"analysis"`
}
