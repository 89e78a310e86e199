package engine

import (
	"strconv"

	"github.com/ericogr/novel-tactics/internal/game"
)

// advanceTurn hands the turn to the next living token in the turn order.
// The finishing token is marked spent; the round increments once each time
// the order wraps back to its start; the new token's flags are reset.
func (tc *turnContext) advanceTurn() {
	cs := &tc.enc.Combat
	order := cs.TurnOrder
	if !tc.anyLivingInOrder() {
		return
	}

	cur := -1
	for i, id := range order {
		if id == cs.ActiveTokenID {
			cur = i
			break
		}
	}
	if done := tc.token(cs.ActiveTokenID); done != nil {
		done.HasMoved = true
		done.HasActed = true
	}

	idx := cur
	for {
		idx++
		if idx >= len(order) {
			idx = 0
			cs.Round++
			tc.add("Round " + strconv.Itoa(cs.Round) + " begins.")
		}
		if t := tc.token(order[idx]); t != nil && t.Alive() {
			break
		}
	}

	cs.ActiveTokenID = order[idx]
	next := tc.token(cs.ActiveTokenID)
	cs.Phase = game.PhaseForSide(next.Side)
	next.HasMoved = false
	next.HasActed = false
}

func (tc *turnContext) anyLivingInOrder() bool {
	for _, id := range tc.enc.Combat.TurnOrder {
		if t := tc.token(id); t != nil && t.Alive() {
			return true
		}
	}
	return false
}
