package engine

import (
	"strconv"

	"github.com/ericogr/novel-tactics/internal/game"
)

// AttackResult is the outcome of one resolved attack.
type AttackResult struct {
	Damage  int
	LogLine string
}

// ResolveAttack computes the damage of attacker against defender:
// attackPower minus defensePower, never less than 1.
func ResolveAttack(attacker, defender game.Token) AttackResult {
	dmg := attacker.AttackPower - defender.DefensePower
	floored := false
	if dmg < 1 {
		dmg = 1
		floored = true
	}
	line := attacker.DisplayName() + " attacks " + defender.DisplayName() +
		" for " + strconv.Itoa(dmg) + " damage (attack " + strconv.Itoa(attacker.AttackPower) +
		", defense " + strconv.Itoa(defender.DefensePower)
	if floored {
		line += ", minimum damage"
	}
	return AttackResult{Damage: dmg, LogLine: line + ")."}
}

// applyAttack resolves the exchange, clamps the defender at 0 hp and marks
// the attacker as having acted.
func (tc *turnContext) applyAttack(attacker, defender *game.Token) {
	res := ResolveAttack(*attacker, *defender)
	defender.HP -= res.Damage
	if defender.HP < 0 {
		defender.HP = 0
	}
	attacker.HasActed = true
	tc.add(res.LogLine)
	if defender.HP == 0 {
		tc.add(defender.DisplayName() + " is defeated!")
	}
}
