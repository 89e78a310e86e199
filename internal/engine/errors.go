package engine

import "errors"

// ErrRejected is wrapped by every RejectionError so callers can test for any
// rejected action with errors.Is.
var ErrRejected = errors.New("action rejected")

// RejectReason is a machine-readable reason for a rejected action.
type RejectReason string

const (
	ReasonEncounterComplete RejectReason = "encounter_complete"
	ReasonUnknownAction     RejectReason = "unknown_action"
	ReasonUnknownToken      RejectReason = "unknown_token"
	ReasonNotActiveToken    RejectReason = "not_active_token"
	ReasonTokenDefeated     RejectReason = "token_defeated"
	ReasonAlreadyMoved      RejectReason = "already_moved"
	ReasonUnreachableCell   RejectReason = "unreachable_cell"
	ReasonAlreadyActed      RejectReason = "already_acted"
	ReasonInvalidTarget     RejectReason = "invalid_target"
	ReasonNotEnemyTurn      RejectReason = "not_enemy_turn"
	ReasonNotPlayerPhase    RejectReason = "not_player_phase"
	ReasonEmptyTurnOrder    RejectReason = "empty_turn_order"
	ReasonInvalidPayload    RejectReason = "invalid_payload"
)

// RejectionError reports an illegal action. The encounter returned alongside
// it is the unchanged input.
type RejectionError struct {
	Action ActionType
	Reason RejectReason
	Detail string
}

func (e *RejectionError) Error() string {
	msg := string(e.Action) + " rejected: " + string(e.Reason)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *RejectionError) Unwrap() error { return ErrRejected }

func reject(action ActionType, reason RejectReason, detail string) *RejectionError {
	return &RejectionError{Action: action, Reason: reason, Detail: detail}
}
