package entities

import (
	"time"
)

// Tier is the club division a player competes in. Precedence is fixed:
// captain outranks ace, ace outranks regular, regular outranks rookie.
type Tier string

const (
	TierCaptain Tier = "captain"
	TierAce     Tier = "ace"
	TierRegular Tier = "regular"
	TierRookie  Tier = "rookie"
)

var tierPrecedence = map[Tier]int{
	TierCaptain: 0,
	TierAce:     1,
	TierRegular: 2,
	TierRookie:  3,
}

// Precedence returns the sort rank of the tier, lower is stronger.
// Unknown tiers sort last.
func (t Tier) Precedence() int {
	p, ok := tierPrecedence[t]
	if !ok {
		return len(tierPrecedence)
	}
	return p
}

func (t Tier) Valid() bool {
	_, ok := tierPrecedence[t]
	return ok
}

const (
	AttributeMin = 1
	AttributeMax = 10
)

// Attributes are the five skill scores a player is registered with,
// each constrained to [AttributeMin, AttributeMax].
type Attributes struct {
	Power    int `dynamodbav:"Power" json:"power"`
	Spin     int `dynamodbav:"Spin" json:"spin"`
	Control  int `dynamodbav:"Control" json:"control"`
	Serve    int `dynamodbav:"Serve" json:"serve"`
	Footwork int `dynamodbav:"Footwork" json:"footwork"`
}

func (a Attributes) InRange() bool {
	for _, v := range []int{a.Power, a.Spin, a.Control, a.Serve, a.Footwork} {
		if v < AttributeMin || v > AttributeMax {
			return false
		}
	}
	return true
}

const InitialRating = 1000

type Player struct {
	Id               string     `dynamodbav:"Id"`
	Name             string     `dynamodbav:"Name"`
	Tier             Tier       `dynamodbav:"Tier"`
	Attributes       Attributes `dynamodbav:"Attributes"`
	Rating           int        `dynamodbav:"Rating"`
	StyleLabel       string     `dynamodbav:"StyleLabel"`
	StyleDescription string     `dynamodbav:"StyleDescription"`
	HistoryAnalysis  string     `dynamodbav:"HistoryAnalysis"`
	CreatedAt        time.Time  `dynamodbav:"CreatedAt"`
}
