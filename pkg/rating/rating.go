package rating

import "math"

const (
	// BaseK is the rating swing for a minimum-margin win between equals.
	BaseK = 32.0

	// marginStep scales K up by 25% for every point of margin beyond the first.
	marginStep = 0.25
)

// expectedScore is the probability the winner-side rating beats the
// loser-side rating under the logistic model with a 400-point spread.
func expectedScore(ratingWinner, ratingLoser int) float64 {
	return 1 / (1 + math.Pow(10, float64(ratingLoser-ratingWinner)/400))
}

// Update computes the rating delta for a decided match.
// The winner gains the delta, the loser drops by the same amount.
// scoreMargin is the absolute score difference and must be >= 1.
// There is no floor or ceiling on the resulting ratings.
func Update(ratingWinner, ratingLoser, scoreMargin int) int {
	expected := expectedScore(ratingWinner, ratingLoser)
	k := BaseK * (1 + float64(scoreMargin-1)*marginStep)
	return int(math.Round(k * (1 - expected)))
}
