package storage

import (
	"errors"
	"time"

	"github.com/ericogr/novel-tactics/internal/game"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrStaleRevision is returned by UpdateEncounter when the stored
	// revision no longer matches the one the caller read.
	ErrStaleRevision = errors.New("encounter revision is stale")
)

type Repository interface {
	CreateEncounter(rec *game.EncounterRecord) error
	GetEncounterByID(id string) (*game.EncounterRecord, error)
	// UpdateEncounter stores rec only if the row still carries
	// prevRevision.
	UpdateEncounter(rec *game.EncounterRecord, prevRevision int) error

	SaveOutcome(o *game.OutcomeRecord) error
	GetOutcomeByEncounterID(encounterID string) (*game.OutcomeRecord, error)

	ListPresets() ([]game.PresetRecord, error)
	GetPresetByKey(key string) (*game.PresetRecord, error)

	// ClaimDueEnemyTurns leases up to limit active encounters whose enemy
	// turn is due at or before now and that no other worker holds. It
	// returns the ids this worker now owns.
	ClaimDueEnemyTurns(now time.Time, limit int, lease time.Duration, workerID string) ([]string, error)
	// ReleaseClaim drops a lease held by workerID.
	ReleaseClaim(id, workerID string) error
}
