package engine

import "github.com/ericogr/novel-tactics/internal/game"

// AttackableTargets returns the living opposing tokens within the token's
// attack range (Chebyshev distance), in board order. Enemies target players
// and allies and vice versa; objectives and NPCs are never returned.
func AttackableTargets(token game.Token, tokens []game.Token) []game.Token {
	out := make([]game.Token, 0, 4)
	from := token.Cell()
	for _, t := range livingOpponents(token, tokens) {
		if game.Chebyshev(from, t.Cell()) <= token.AttackRange {
			out = append(out, t)
		}
	}
	return out
}

func canTarget(token game.Token, tokens []game.Token, targetID string) bool {
	for _, t := range AttackableTargets(token, tokens) {
		if t.ID == targetID {
			return true
		}
	}
	return false
}
