package api

import (
	"sync"
	"time"

	"github.com/ericogr/novel-tactics/internal/game"
	"github.com/ericogr/novel-tactics/internal/storage"
)

type mockRepo struct {
	mu       sync.Mutex
	records  map[string]game.EncounterRecord
	outcomes map[string]game.OutcomeRecord
	presets  []game.PresetRecord
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		records:  map[string]game.EncounterRecord{},
		outcomes: map[string]game.OutcomeRecord{},
	}
}

func (m *mockRepo) CreateEncounter(rec *game.EncounterRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *rec
	cp.State = rec.State.Clone()
	m.records[rec.ID] = cp
	return nil
}

func (m *mockRepo) GetEncounterByID(id string) (*game.EncounterRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	rec.State = rec.State.Clone()
	return &rec, nil
}

func (m *mockRepo) UpdateEncounter(rec *game.EncounterRecord, prevRevision int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.records[rec.ID]
	if !ok {
		return storage.ErrNotFound
	}
	if cur.Revision != prevRevision {
		return storage.ErrStaleRevision
	}
	cp := *rec
	cp.State = rec.State.Clone()
	m.records[rec.ID] = cp
	return nil
}

func (m *mockRepo) SaveOutcome(o *game.OutcomeRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[o.EncounterID] = *o
	return nil
}

func (m *mockRepo) GetOutcomeByEncounterID(id string) (*game.OutcomeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.outcomes[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &o, nil
}

func (m *mockRepo) ListPresets() ([]game.PresetRecord, error) { return m.presets, nil }

func (m *mockRepo) GetPresetByKey(key string) (*game.PresetRecord, error) {
	for _, p := range m.presets {
		if p.Key == key {
			return &p, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *mockRepo) ClaimDueEnemyTurns(time.Time, int, time.Duration, string) ([]string, error) {
	return nil, nil
}

func (m *mockRepo) ReleaseClaim(string, string) error { return nil }
