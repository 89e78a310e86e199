package engine

import (
	"strconv"

	"github.com/ericogr/novel-tactics/internal/game"
)

// livingOpponents returns the living tokens the actor may fight, in board
// order.
func livingOpponents(actor game.Token, tokens []game.Token) []game.Token {
	out := make([]game.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.ID != actor.ID && t.Alive() && game.Opposes(actor.Side, t.Side) {
			out = append(out, t)
		}
	}
	return out
}

// nearest returns the token closest to from. Ties keep the earlier token.
func nearest(from game.Cell, tokens []game.Token) (game.Token, int, bool) {
	var best game.Token
	bestDist := -1
	for _, t := range tokens {
		d := game.Chebyshev(from, t.Cell())
		if bestDist < 0 || d < bestDist {
			best, bestDist = t, d
		}
	}
	return best, bestDist, bestDist >= 0
}

// minDistance returns the distance from c to the closest token.
func minDistance(c game.Cell, tokens []game.Token) int {
	_, d, ok := nearest(c, tokens)
	if !ok {
		return 0
	}
	return d
}

func cellText(c game.Cell) string {
	return "(" + strconv.Itoa(c.Col) + ", " + strconv.Itoa(c.Row) + ")"
}
