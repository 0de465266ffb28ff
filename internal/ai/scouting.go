package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/club59/pongking/internal/domains/entities"
)

// StyleReport is the short annotation shown on a player card.
type StyleReport struct {
	StyleLabel       string `json:"styleLabel"`
	StyleDescription string `json:"styleDescription"`
}

// Prediction is a pre-match call. It is returned to the caller and
// never persisted.
type Prediction struct {
	Winner string `json:"winner"`
	Score  string `json:"score"`
	Point  string `json:"point"`
}

// GenerateStyle asks for a style label/description from the player's
// skill attributes. The model is expected to answer with JSON, possibly
// wrapped in code-fence markers.
func (client *Client) GenerateStyle(
	ctx context.Context,
	name string,
	attrs entities.Attributes,
) (StyleReport, error) {
	prompt := fmt.Sprintf(
		"Table tennis player %s: power %d, spin %d, control %d, serve %d, footwork %d (each out of 10). "+
			"Summarize their playing style. Answer with JSON only: "+
			`{"styleLabel": "two or three words", "styleDescription": "one sentence"}`,
		name, attrs.Power, attrs.Spin, attrs.Control, attrs.Serve, attrs.Footwork,
	)
	content, err := client.complete(ctx, prompt)
	if err != nil {
		return StyleReport{}, err
	}
	var report StyleReport
	if err := json.Unmarshal([]byte(StripCodeFences(content)), &report); err != nil {
		return StyleReport{}, fmt.Errorf("failed to parse style report: %w", err)
	}
	return report, nil
}

// AnalyzeHistory turns a recent-results summary into free-text advice.
func (client *Client) AnalyzeHistory(
	ctx context.Context,
	playerName string,
	summary string,
) (string, error) {
	prompt := fmt.Sprintf(
		"Table tennis player %s has these recent results:\n%s\n"+
			"Give one short paragraph of coaching advice based on this record.",
		playerName, summary,
	)
	content, err := client.complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// PredictMatch calls the outcome of a hypothetical match between two players.
func (client *Client) PredictMatch(
	ctx context.Context,
	player1, player2 entities.Player,
) (Prediction, error) {
	prompt := fmt.Sprintf(
		"Predict a table tennis match: %s (rating %d) vs %s (rating %d). "+
			"Answer with JSON only: "+
			`{"winner": "name", "score": "11-9", "point": "reason"}`,
		player1.Name, player1.Rating, player2.Name, player2.Rating,
	)
	content, err := client.complete(ctx, prompt)
	if err != nil {
		return Prediction{}, err
	}
	var prediction Prediction
	if err := json.Unmarshal([]byte(StripCodeFences(content)), &prediction); err != nil {
		return Prediction{}, fmt.Errorf("failed to parse prediction: %w", err)
	}
	return prediction, nil
}

// StripCodeFences removes markdown code-fence wrappers some models put
// around JSON answers.
func StripCodeFences(content string) string {
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```", "")
	return strings.TrimSpace(content)
}
