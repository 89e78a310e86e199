package engine

import (
	"strings"

	"github.com/ericogr/novel-tactics/internal/game"
)

// evaluateTerminal finishes the encounter when one side has no living
// members: victory when every enemy is down, defeat when every player and
// ally is down.
func (tc *turnContext) evaluateTerminal() {
	friendlyAlive, enemyAlive := false, false
	for _, t := range tc.enc.Tokens {
		if !t.Alive() {
			continue
		}
		switch {
		case t.Side.Friendly():
			friendlyAlive = true
		case t.Side == game.SideEnemy:
			enemyAlive = true
		}
	}
	switch {
	case !enemyAlive:
		tc.complete(game.ResultVictory, "Victory! All enemies have been defeated.")
	case !friendlyAlive:
		tc.complete(game.ResultDefeat, "Defeat. The party has fallen.")
	}
}

func (tc *turnContext) complete(result game.Result, line string) {
	tc.enc.Combat.IsComplete = true
	tc.enc.Combat.Result = result
	tc.add(line)
}

// Retreat ends the encounter with an escape. It is only allowed during the
// player phase and does not evaluate the terminal condition.
func Retreat(enc game.Encounter) (game.Encounter, error) {
	if enc.Combat.IsComplete {
		return enc, reject(ActionRetreat, ReasonEncounterComplete, "")
	}
	if enc.Combat.Phase != game.PhasePlayer {
		return enc, reject(ActionRetreat, ReasonNotPlayerPhase, string(enc.Combat.Phase))
	}
	tc := newTurnContext(enc)
	tc.complete(game.ResultEscape, "The party retreats from battle.")
	return tc.enc, nil
}

// Completion returns the result and a summary built from the last lines of
// the combat log. ok is false while the encounter is still running.
func Completion(enc game.Encounter, lines int) (result game.Result, summary string, ok bool) {
	if !enc.Combat.IsComplete {
		return game.ResultNone, "", false
	}
	log := enc.Combat.Log
	if lines > 0 && len(log) > lines {
		log = log[len(log)-lines:]
	}
	return enc.Combat.Result, strings.Join(log, "\n"), true
}
