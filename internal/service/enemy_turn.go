package service

import (
	"errors"

	"github.com/ericogr/novel-tactics/internal/constants"
	"github.com/ericogr/novel-tactics/internal/dedupe"
	"github.com/ericogr/novel-tactics/internal/engine"
	"github.com/ericogr/novel-tactics/internal/game"
	"github.com/ericogr/novel-tactics/internal/logging"
)

// RunEnemyTurn dispatches ENEMY_TURN for the active enemy of the encounter.
// Concurrent calls for the same encounter share a single execution.
func RunEnemyTurn(repo EncounterRepo, encounterID string, s Settings) (*game.EncounterRecord, error) {
	v, err, _ := dedupe.EnemyTurnGroup.Do(encounterID, func() (interface{}, error) {
		return apply(repo, encounterID, s, func(enc game.Encounter) (game.Encounter, error) {
			if active := enc.ActiveToken(); active == nil || active.Side != game.SideEnemy {
				return enc, ErrNotEnemyTurn
			}
			return engine.Reduce(enc, engine.EnemyTurn())
		}, engine.ActionEnemyTurn)
	})
	if err != nil {
		return nil, err
	}
	return v.(*game.EncounterRecord), nil
}

// HandleDueEnemyTurn runs the enemy turn of an encounter claimed by the
// pacer. Any failure releases the claim so another tick can retry once the
// lease is gone; an encounter whose state moved on simply drops its claim.
func HandleDueEnemyTurn(repo interface {
	EncounterRepo
	ReleaseClaim(id, workerID string) error
}, encounterID, workerID string, s Settings) (*game.EncounterRecord, error) {
	rec, err := RunEnemyTurn(repo, encounterID, s)
	if err == nil {
		return rec, nil
	}
	fields := logging.Fields{
		constants.LogFieldEncounterID: encounterID,
		constants.LogFieldWorkerID:    workerID,
	}
	switch {
	case errors.Is(err, ErrNotEnemyTurn), errors.Is(err, ErrEncounterComplete), errors.Is(err, ErrEncounterNotFound):
		logging.Info("due enemy turn no longer applies", fields)
	default:
		logging.Error("enemy turn failed", err, fields)
	}
	if relErr := repo.ReleaseClaim(encounterID, workerID); relErr != nil {
		logging.Error("failed to release enemy turn claim", relErr, fields)
	}
	return nil, err
}
