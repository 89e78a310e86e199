package service

import (
	"errors"

	"github.com/ericogr/novel-tactics/internal/constants"
	"github.com/ericogr/novel-tactics/internal/engine"
	"github.com/ericogr/novel-tactics/internal/game"
	"github.com/ericogr/novel-tactics/internal/logging"
)

// DispatchAction applies a player action (MOVE, ATTACK or END_TURN) to the
// stored encounter. Actions outside the player phase and other illegal
// actions return the *engine.RejectionError and leave the stored state
// untouched.
func DispatchAction(repo EncounterRepo, encounterID string, action engine.Action, s Settings) (*game.EncounterRecord, error) {
	switch action.Type {
	case engine.ActionMove, engine.ActionAttack, engine.ActionEndTurn:
	default:
		return nil, ErrActionNotAllowed
	}
	return apply(repo, encounterID, s, func(enc game.Encounter) (game.Encounter, error) {
		return engine.PlayerAction(enc, action)
	}, action.Type)
}

// ApplyExternal replaces the live state with a scripted one from the
// narrative layer. The payload must pass structural validation.
func ApplyExternal(repo EncounterRepo, encounterID string, data game.Encounter, s Settings) (*game.EncounterRecord, error) {
	if err := game.ValidateEncounter(data); err != nil {
		return nil, err
	}
	return apply(repo, encounterID, s, func(enc game.Encounter) (game.Encounter, error) {
		return engine.Reduce(enc, engine.ApplyExternal(data))
	}, engine.ActionApplyExternal)
}

// Retreat ends the encounter with an escape on the player's behalf.
func Retreat(repo EncounterRepo, encounterID string, s Settings) (*game.EncounterRecord, error) {
	return apply(repo, encounterID, s, engine.Retreat, engine.ActionRetreat)
}

// apply loads the encounter under its lock, runs step on the state and
// commits the result.
func apply(repo EncounterRepo, encounterID string, s Settings, step func(game.Encounter) (game.Encounter, error), kind engine.ActionType) (*game.EncounterRecord, error) {
	unlock := encounterLocks.lock(encounterID)
	defer unlock()

	rec, err := loadEncounter(repo, encounterID)
	if err != nil {
		return nil, err
	}
	if rec.Status == game.StatusComplete || rec.State.Combat.IsComplete {
		return nil, ErrEncounterComplete
	}

	next, err := step(rec.State)
	if err != nil {
		var rej *engine.RejectionError
		if errors.As(err, &rej) {
			logging.Debug("action rejected", logging.Fields{
				constants.LogFieldEncounterID: encounterID,
				constants.LogFieldAction:      string(rej.Action),
				constants.LogFieldReason:      string(rej.Reason),
			})
		}
		return nil, err
	}
	if err := commit(repo, rec, next, s); err != nil {
		return nil, err
	}
	logging.Debug("action applied", logging.Fields{
		constants.LogFieldEncounterID: encounterID,
		constants.LogFieldAction:      string(kind),
		constants.LogFieldRevision:    rec.Revision,
	})
	return rec, nil
}
