package engine

import (
	"github.com/ericogr/novel-tactics/internal/game"
)

// Reduce applies one action and returns the resulting encounter. It never
// modifies enc. When the action is illegal the unchanged enc is returned
// together with a *RejectionError.
func Reduce(enc game.Encounter, a Action) (game.Encounter, error) {
	if enc.Combat.IsComplete {
		return enc, reject(a.Type, ReasonEncounterComplete, "")
	}
	var (
		next game.Encounter
		err  error
	)
	switch a.Type {
	case ActionMove:
		next, err = reduceMove(enc, a)
	case ActionAttack:
		next, err = reduceAttack(enc, a)
	case ActionEndTurn:
		next, err = reduceEndTurn(enc)
	case ActionEnemyTurn:
		next, err = reduceEnemyTurn(enc)
	case ActionApplyExternal:
		next, err = reduceApplyExternal(a)
	default:
		return enc, reject(a.Type, ReasonUnknownAction, "")
	}
	if err != nil {
		return enc, err
	}
	return next, nil
}

// PlayerAction applies a MOVE, ATTACK or END_TURN issued from the player's
// side. While an enemy holds the turn only ENEMY_TURN may advance it, so
// these are rejected with ReasonNotPlayerPhase.
func PlayerAction(enc game.Encounter, a Action) (game.Encounter, error) {
	switch a.Type {
	case ActionMove, ActionAttack, ActionEndTurn:
	default:
		return enc, reject(a.Type, ReasonUnknownAction, "")
	}
	if enc.Combat.IsComplete {
		return enc, reject(a.Type, ReasonEncounterComplete, "")
	}
	active := enc.ActiveToken()
	if enc.Combat.Phase != game.PhasePlayer || active == nil || !active.Side.Friendly() {
		return enc, reject(a.Type, ReasonNotPlayerPhase, string(enc.Combat.Phase))
	}
	return Reduce(enc, a)
}

// checkActor enforces that id names the living active token.
func checkActor(enc game.Encounter, action ActionType, id string) (*game.Token, error) {
	tok := enc.TokenByID(id)
	if tok == nil {
		return nil, reject(action, ReasonUnknownToken, id)
	}
	if enc.Combat.ActiveTokenID != id {
		return nil, reject(action, ReasonNotActiveToken, id)
	}
	if !tok.Alive() {
		return nil, reject(action, ReasonTokenDefeated, id)
	}
	return tok, nil
}

func reduceMove(enc game.Encounter, a Action) (game.Encounter, error) {
	tok, err := checkActor(enc, ActionMove, a.TokenID)
	if err != nil {
		return enc, err
	}
	if tok.HasMoved {
		return enc, reject(ActionMove, ReasonAlreadyMoved, a.TokenID)
	}
	dest := game.Cell{Col: a.Col, Row: a.Row}
	reachable := ReachableCells(*tok, enc.Tokens, enc.Terrain, enc.GridCols, enc.GridRows)
	if !game.ContainsCell(reachable, dest) {
		return enc, reject(ActionMove, ReasonUnreachableCell, cellText(dest))
	}

	tc := newTurnContext(enc)
	mover := tc.token(a.TokenID)
	mover.Col, mover.Row = dest.Col, dest.Row
	mover.HasMoved = true
	tc.add(mover.DisplayName() + " moves to " + cellText(dest) + ".")
	return tc.enc, nil
}

func reduceAttack(enc game.Encounter, a Action) (game.Encounter, error) {
	attacker, err := checkActor(enc, ActionAttack, a.AttackerID)
	if err != nil {
		return enc, err
	}
	if attacker.HasActed {
		return enc, reject(ActionAttack, ReasonAlreadyActed, a.AttackerID)
	}
	if enc.TokenByID(a.TargetID) == nil {
		return enc, reject(ActionAttack, ReasonUnknownToken, a.TargetID)
	}
	if !canTarget(*attacker, enc.Tokens, a.TargetID) {
		return enc, reject(ActionAttack, ReasonInvalidTarget, a.TargetID)
	}

	tc := newTurnContext(enc)
	tc.applyAttack(tc.token(a.AttackerID), tc.token(a.TargetID))
	tc.evaluateTerminal()
	return tc.enc, nil
}

func reduceEndTurn(enc game.Encounter) (game.Encounter, error) {
	if len(enc.Combat.TurnOrder) == 0 {
		return enc, reject(ActionEndTurn, ReasonEmptyTurnOrder, "")
	}
	tc := newTurnContext(enc)
	tc.advanceTurn()
	return tc.enc, nil
}

// reduceEnemyTurn lets the AI act for the active enemy: an optional move, an
// optional attack (re-evaluated after the move), then END_TURN. Nested
// reductions cannot be rejected for a legal intent; if one is, the step is
// treated as a pass.
func reduceEnemyTurn(enc game.Encounter) (game.Encounter, error) {
	active := enc.ActiveToken()
	if active == nil || active.Side != game.SideEnemy {
		return enc, reject(ActionEnemyTurn, ReasonNotEnemyTurn, enc.Combat.ActiveTokenID)
	}
	id := active.ID
	next := enc
	acted := false

	intent := ComputeEnemyAction(*active, next)
	if intent.Kind == IntentMove {
		if moved, err := Reduce(next, Move(id, intent.Col, intent.Row)); err == nil {
			next = moved
			acted = true
			intent = ComputeEnemyAction(*next.TokenByID(id), next)
		}
	}
	if intent.Kind == IntentAttack {
		if attacked, err := Reduce(next, Attack(id, intent.TargetID)); err == nil {
			next = attacked
			acted = true
		}
	}

	if !acted {
		tc := newTurnContext(next)
		tc.add(active.DisplayName() + " holds position.")
		next = tc.enc
	}
	if next.Combat.IsComplete {
		return next, nil
	}
	return reduceEndTurn(next)
}

func reduceApplyExternal(a Action) (game.Encounter, error) {
	if a.Data == nil {
		return game.Encounter{}, reject(ActionApplyExternal, ReasonInvalidPayload, "missing data")
	}
	if err := game.ValidateEncounter(*a.Data); err != nil {
		return game.Encounter{}, reject(ActionApplyExternal, ReasonInvalidPayload, err.Error())
	}
	return a.Data.Clone(), nil
}
