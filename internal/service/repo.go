package service

import (
	"errors"
	"time"

	"github.com/ericogr/novel-tactics/internal/game"
	"github.com/ericogr/novel-tactics/internal/storage"
)

// EncounterRepo is the minimal repository interface required to load and
// advance an encounter.
type EncounterRepo interface {
	CreateEncounter(rec *game.EncounterRecord) error
	GetEncounterByID(id string) (*game.EncounterRecord, error)
	UpdateEncounter(rec *game.EncounterRecord, prevRevision int) error
	SaveOutcome(o *game.OutcomeRecord) error
}

type PresetRepo interface {
	GetPresetByKey(key string) (*game.PresetRecord, error)
}

type OutcomeRepo interface {
	GetEncounterByID(id string) (*game.EncounterRecord, error)
	GetOutcomeByEncounterID(encounterID string) (*game.OutcomeRecord, error)
}

var (
	ErrEncounterNotFound     = errors.New("encounter not found")
	ErrEncounterComplete     = errors.New("encounter is already complete")
	ErrEncounterStillRunning = errors.New("encounter is still running")
	ErrNotEnemyTurn          = errors.New("active token is not an enemy")
	ErrActionNotAllowed      = errors.New("action type is not accepted here")
	ErrPresetNotFound        = errors.New("preset not found")
	ErrConcurrentUpdate      = errors.New("encounter was updated concurrently")
)

// Settings carries the knobs the services need from configuration.
type Settings struct {
	// Rules are the defaults for requests that omit their own.
	Rules game.Rules
	// EnemyTurnDelay is the pause between an enemy becoming active and its
	// turn being dispatched.
	EnemyTurnDelay time.Duration
	// SummaryLines is how many trailing log lines form the outcome summary.
	SummaryLines int
	// Now defaults to time.Now in UTC.
	Now func() time.Time
}

func (s Settings) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func loadEncounter(repo interface {
	GetEncounterByID(string) (*game.EncounterRecord, error)
}, id string) (*game.EncounterRecord, error) {
	rec, err := repo.GetEncounterByID(id)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && rec == nil) {
		return nil, ErrEncounterNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}
