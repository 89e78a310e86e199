package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ericogr/novel-tactics/internal/constants"
	"github.com/ericogr/novel-tactics/internal/game"
	"github.com/ericogr/novel-tactics/internal/keys"
	"github.com/ericogr/novel-tactics/internal/logging"
	"github.com/ericogr/novel-tactics/internal/storage"
)

// CreateEncounter builds an encounter from an initialization request and
// stores it at revision 1. Invalid requests return a *game.ValidationError.
func CreateEncounter(repo EncounterRepo, req game.InitRequest, s Settings) (*game.EncounterRecord, error) {
	return createEncounter(repo, req, "", s)
}

// CreateEncounterFromPreset starts a new encounter from a seeded preset.
func CreateEncounterFromPreset(repo interface {
	EncounterRepo
	PresetRepo
}, presetKey string, s Settings) (*game.EncounterRecord, error) {
	key := keys.PresetKeyFromName(presetKey)
	p, err := repo.GetPresetByKey(key)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && p == nil) {
		return nil, ErrPresetNotFound
	}
	if err != nil {
		return nil, err
	}
	return createEncounter(repo, p.Request, p.Key, s)
}

func createEncounter(repo EncounterRepo, req game.InitRequest, presetKey string, s Settings) (*game.EncounterRecord, error) {
	enc, err := game.NewEncounter(req, s.Rules)
	if err != nil {
		return nil, err
	}
	rec := &game.EncounterRecord{
		ID:        uuid.NewString(),
		Setting:   req.Setting,
		Theme:     req.Theme,
		PresetKey: presetKey,
		Revision:  1,
		State:     enc,
	}
	schedule(rec, s)
	if err := repo.CreateEncounter(rec); err != nil {
		return nil, fmt.Errorf("create encounter: %w", err)
	}
	logging.Info("encounter created", logging.Fields{
		constants.LogFieldEncounterID: rec.ID,
		constants.LogFieldPresetKey:   presetKey,
		constants.LogFieldCount:       len(enc.Tokens),
	})
	return rec, nil
}
