package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ericogr/novel-tactics/internal/game"
)

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (r *gormRepository) CreateEncounter(rec *game.EncounterRecord) error {
	return r.db.Create(rec).Error
}

func (r *gormRepository) GetEncounterByID(id string) (*game.EncounterRecord, error) {
	var rec game.EncounterRecord
	if err := r.db.Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, notFound(err)
	}
	return &rec, nil
}

func (r *gormRepository) UpdateEncounter(rec *game.EncounterRecord, prevRevision int) error {
	res := r.db.Model(&game.EncounterRecord{}).
		Where("id = ? AND revision = ?", rec.ID, prevRevision).
		Select("*").Omit("id", "created_at").
		Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&game.EncounterRecord{}).Where("id = ?", rec.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrStaleRevision
	}
	return nil
}

func (r *gormRepository) SaveOutcome(o *game.OutcomeRecord) error {
	var existing game.OutcomeRecord
	err := r.db.Where("encounter_id = ?", o.EncounterID).First(&existing).Error
	switch {
	case err == nil:
		o.ID = existing.ID
		o.CreatedAt = existing.CreatedAt
		return r.db.Save(o).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.Create(o).Error
	default:
		return err
	}
}

func (r *gormRepository) GetOutcomeByEncounterID(encounterID string) (*game.OutcomeRecord, error) {
	var o game.OutcomeRecord
	if err := r.db.Where("encounter_id = ?", encounterID).First(&o).Error; err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func (r *gormRepository) ListPresets() ([]game.PresetRecord, error) {
	var out []game.PresetRecord
	if err := r.db.Order("preset_key asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gormRepository) GetPresetByKey(key string) (*game.PresetRecord, error) {
	var p game.PresetRecord
	if err := r.db.Where("preset_key = ?", key).First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *gormRepository) ClaimDueEnemyTurns(now time.Time, limit int, lease time.Duration, workerID string) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	due := func(tx *gorm.DB) *gorm.DB {
		return tx.Where("status = ? AND enemy_turn_due_at IS NOT NULL AND enemy_turn_due_at <= ?", game.StatusActive, now).
			Where("(claimed_until IS NULL OR claimed_until < ?)", now)
	}

	var candidates []string
	err := due(r.db.Model(&game.EncounterRecord{})).
		Order("enemy_turn_due_at asc").
		Limit(limit).
		Pluck("id", &candidates).Error
	if err != nil {
		return nil, err
	}

	until := now.Add(lease)
	claimed := make([]string, 0, len(candidates))
	for _, id := range candidates {
		// The due condition is repeated so a concurrent worker that won
		// the row makes this update match nothing.
		res := due(r.db.Model(&game.EncounterRecord{}).Where("id = ?", id)).
			Updates(map[string]interface{}{"claimed_by": workerID, "claimed_until": until})
		if res.Error != nil {
			return claimed, res.Error
		}
		if res.RowsAffected == 1 {
			claimed = append(claimed, id)
		}
	}
	return claimed, nil
}

func (r *gormRepository) ReleaseClaim(id, workerID string) error {
	return r.db.Model(&game.EncounterRecord{}).
		Where("id = ? AND claimed_by = ?", id, workerID).
		Updates(map[string]interface{}{"claimed_by": "", "claimed_until": nil}).Error
}
