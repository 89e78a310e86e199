package service

import (
	"errors"
	"fmt"

	"github.com/ericogr/novel-tactics/internal/constants"
	"github.com/ericogr/novel-tactics/internal/engine"
	"github.com/ericogr/novel-tactics/internal/game"
	"github.com/ericogr/novel-tactics/internal/logging"
	"github.com/ericogr/novel-tactics/internal/storage"
)

// schedule derives the status and enemy-turn due time from the encounter.
// Any new state replaces whatever was scheduled before.
func schedule(rec *game.EncounterRecord, s Settings) {
	rec.EnemyTurnDueAt = nil
	rec.ClaimedBy, rec.ClaimedUntil = "", nil
	if rec.State.Combat.IsComplete {
		rec.Status = game.StatusComplete
		return
	}
	rec.Status = game.StatusActive
	if active := rec.State.ActiveToken(); active != nil && active.Side == game.SideEnemy {
		due := s.now().Add(s.EnemyTurnDelay)
		rec.EnemyTurnDueAt = &due
	}
}

// commit stores next as the new state of rec and, when the encounter has just
// finished, records the outcome for the narrative layer.
func commit(repo EncounterRepo, rec *game.EncounterRecord, next game.Encounter, s Settings) error {
	prev := rec.Revision
	wasComplete := rec.Status == game.StatusComplete
	rec.State = next
	rec.Revision++
	schedule(rec, s)

	if err := repo.UpdateEncounter(rec, prev); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return ErrEncounterNotFound
		case errors.Is(err, storage.ErrStaleRevision):
			return ErrConcurrentUpdate
		}
		return fmt.Errorf("update encounter %s: %w", rec.ID, err)
	}

	result, summary, done := engine.Completion(next, s.SummaryLines)
	if !done || wasComplete {
		return nil
	}
	outcome := &game.OutcomeRecord{
		EncounterID: rec.ID,
		Result:      result,
		Summary:     summary,
		Rounds:      next.Combat.Round,
	}
	if err := repo.SaveOutcome(outcome); err != nil {
		return fmt.Errorf("save outcome for %s: %w", rec.ID, err)
	}
	logging.Info("encounter complete", logging.Fields{
		constants.LogFieldEncounterID: rec.ID,
		constants.LogFieldResult:      string(result),
		constants.LogFieldRound:       next.Combat.Round,
	})
	return nil
}
