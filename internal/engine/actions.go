package engine

import "github.com/ericogr/novel-tactics/internal/game"

// ActionType names a reducer action.
type ActionType string

const (
	ActionMove          ActionType = "MOVE"
	ActionAttack        ActionType = "ATTACK"
	ActionEndTurn       ActionType = "END_TURN"
	ActionEnemyTurn     ActionType = "ENEMY_TURN"
	ActionApplyExternal ActionType = "APPLY_EXTERNAL"

	// ActionRetreat is not a reducer action; it labels rejections from
	// Retreat.
	ActionRetreat ActionType = "RETREAT"
)

// Action is a single intent applied by Reduce. Only the fields relevant to
// Type are read.
type Action struct {
	Type       ActionType      `json:"type"`
	TokenID    string          `json:"tokenId,omitempty"`
	Col        int             `json:"col"`
	Row        int             `json:"row"`
	AttackerID string          `json:"attackerId,omitempty"`
	TargetID   string          `json:"targetId,omitempty"`
	Data       *game.Encounter `json:"data,omitempty"`
}

func Move(tokenID string, col, row int) Action {
	return Action{Type: ActionMove, TokenID: tokenID, Col: col, Row: row}
}

func Attack(attackerID, targetID string) Action {
	return Action{Type: ActionAttack, AttackerID: attackerID, TargetID: targetID}
}

func EndTurn() Action { return Action{Type: ActionEndTurn} }

func EnemyTurn() Action { return Action{Type: ActionEnemyTurn} }

// ApplyExternal replaces the whole encounter with data once it passes
// structural validation.
func ApplyExternal(data game.Encounter) Action {
	return Action{Type: ActionApplyExternal, Data: &data}
}
