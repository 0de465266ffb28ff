package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateEvenMatch(t *testing.T) {
	// Equal ratings, margin 2: expected 0.5, K = 32 * 1.25 = 40, delta = 20.
	delta := Update(1000, 1000, 2)
	assert.Equal(t, 20, delta)
}

func TestUpdateUnderdogWin(t *testing.T) {
	// 1000 beats 1200 with margin 1: expected ~0.240, delta = round(32 * 0.760) = 24.
	delta := Update(1000, 1200, 1)
	assert.Equal(t, 24, delta)
}

func TestUpdateFavoriteWin(t *testing.T) {
	// The favorite gains little from beating a much weaker opponent.
	delta := Update(1400, 1000, 1)
	assert.Equal(t, 3, delta)
}

func TestUpdateMonotonicInMargin(t *testing.T) {
	prev := Update(1000, 1000, 1)
	for margin := 2; margin <= 11; margin++ {
		delta := Update(1000, 1000, margin)
		assert.GreaterOrEqual(t, delta, prev, "margin %d", margin)
		prev = delta
	}
}

func TestUpdateMonotonicInRatingGap(t *testing.T) {
	prev := Update(1300, 700, 1)
	for loser := 750; loser <= 1900; loser += 50 {
		delta := Update(1300, loser, 1)
		assert.GreaterOrEqual(t, delta, prev, "loser rating %d", loser)
		prev = delta
	}
}

func TestUpdateSymmetricMagnitude(t *testing.T) {
	// The same delta applies to both sides with opposite sign, so swapping
	// who the underdog is must mirror the expected score.
	pairs := [][2]int{{1000, 1000}, {1200, 1000}, {900, 1450}}
	for _, p := range pairs {
		a := Update(p[0], p[1], 2)
		b := Update(p[1], p[0], 2)
		assert.Equal(t, 40, a+b, "ratings %v", p)
	}
}

func TestUpdateDeterministic(t *testing.T) {
	assert.Equal(t, Update(1111, 987, 5), Update(1111, 987, 5))
}
