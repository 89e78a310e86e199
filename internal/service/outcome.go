package service

import (
	"errors"

	"github.com/ericogr/novel-tactics/internal/game"
	"github.com/ericogr/novel-tactics/internal/storage"
)

// GetOutcome returns the completion report of a finished encounter.
func GetOutcome(repo OutcomeRepo, encounterID string) (*game.OutcomeRecord, error) {
	rec, err := loadEncounter(repo, encounterID)
	if err != nil {
		return nil, err
	}
	if rec.Status != game.StatusComplete {
		return nil, ErrEncounterStillRunning
	}
	o, err := repo.GetOutcomeByEncounterID(encounterID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrEncounterNotFound
	}
	return o, err
}
