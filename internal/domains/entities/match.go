package entities

import "time"

// Match is an immutable ledger record. WinnerId is derived once at
// creation from whichever side scored higher and is never recomputed.
// Deleting a match does not reverse the rating changes it caused.
type Match struct {
	Id        string    `dynamodbav:"Id"`
	Player1Id string    `dynamodbav:"Player1Id"`
	Player2Id string    `dynamodbav:"Player2Id"`
	Score1    int       `dynamodbav:"Score1"`
	Score2    int       `dynamodbav:"Score2"`
	WinnerId  string    `dynamodbav:"WinnerId"`
	BetTag    string    `dynamodbav:"BetTag"`
	CreatedAt time.Time `dynamodbav:"CreatedAt"`
}

// Margin is the absolute score difference; at least 1 on any persisted match.
func (m Match) Margin() int {
	if m.Score1 > m.Score2 {
		return m.Score1 - m.Score2
	}
	return m.Score2 - m.Score1
}

// Involves reports whether the player took part in the match.
func (m Match) Involves(playerId string) bool {
	return m.Player1Id == playerId || m.Player2Id == playerId
}

// Standing is a derived ranking row; it never lives in the store.
type Standing struct {
	Player  Player
	Wins    int
	Losses  int
	WinRate float64
}
