package game

import (
	"time"

	"gorm.io/gorm"
)

// EncounterStatus is the lifecycle status of a stored encounter.
type EncounterStatus string

const (
	StatusActive   EncounterStatus = "active"
	StatusComplete EncounterStatus = "complete"
)

// EncounterRecord is the persisted envelope around a live encounter. The
// encounter itself is stored as a JSON document so the reducer's output is
// saved exactly as produced.
type EncounterRecord struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Setting   string    `json:"setting"`
	Theme     string    `json:"theme"`
	PresetKey string    `json:"preset_key,omitempty" gorm:"size:64"`
	// Status mirrors Encounter.Combat.IsComplete for cheap filtering.
	Status   EncounterStatus `json:"status" gorm:"index;size:16"`
	Revision int             `json:"revision"`
	State    Encounter       `json:"encounter" gorm:"type:text;serializer:json"`
	// EnemyTurnDueAt is set while an enemy token is active; the pacer
	// dispatches ENEMY_TURN once it has passed. Any newer state recomputes it.
	EnemyTurnDueAt *time.Time `json:"enemy_turn_due_at,omitempty" gorm:"index"`
	ClaimedBy      string     `json:"-" gorm:"size:64"`
	ClaimedUntil   *time.Time `json:"-"`
}

// TableName stores encounters in `encounters`.
func (EncounterRecord) TableName() string { return "encounters" }

// OutcomeRecord is the completion report handed back to the narrative layer.
type OutcomeRecord struct {
	gorm.Model
	EncounterID string `json:"encounter_id" gorm:"uniqueIndex;size:36"`
	Result      Result `json:"result" gorm:"size:16"`
	Summary     string `json:"summary"`
	Rounds      int    `json:"rounds"`
}

func (OutcomeRecord) TableName() string { return "encounter_outcomes" }

// PresetRecord is a named initialization request seeded from configuration.
type PresetRecord struct {
	gorm.Model
	Key     string      `json:"key" gorm:"column:preset_key;uniqueIndex;size:64"`
	Name    string      `json:"name"`
	Request InitRequest `json:"request" gorm:"type:text;serializer:json"`
}

func (PresetRecord) TableName() string { return "encounter_presets" }
