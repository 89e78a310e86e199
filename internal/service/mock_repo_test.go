package service

import (
	"sync"
	"time"

	"github.com/ericogr/novel-tactics/internal/game"
	"github.com/ericogr/novel-tactics/internal/storage"
)

// mockRepo keeps copies of records in memory and enforces revisions the
// same way the gorm repository does.
type mockRepo struct {
	mu        sync.Mutex
	records   map[string]game.EncounterRecord
	outcomes  map[string]game.OutcomeRecord
	presets   map[string]game.PresetRecord
	released  []string
	saveCalls int
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		records:  map[string]game.EncounterRecord{},
		outcomes: map[string]game.OutcomeRecord{},
		presets:  map[string]game.PresetRecord{},
	}
}

func copyRecord(rec game.EncounterRecord) game.EncounterRecord {
	rec.State = rec.State.Clone()
	return rec
}

func (m *mockRepo) CreateEncounter(rec *game.EncounterRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = copyRecord(*rec)
	return nil
}

func (m *mockRepo) GetEncounterByID(id string) (*game.EncounterRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := copyRecord(rec)
	return &out, nil
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
	m.records[rec.ID] = copyRecord(*rec)
	return nil
}

func (m *mockRepo) SaveOutcome(o *game.OutcomeRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveCalls++
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

func (m *mockRepo) GetPresetByKey(key string) (*game.PresetRecord, error) {
	p, ok := m.presets[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (m *mockRepo) ReleaseClaim(id, workerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.released = append(m.released, id)
	return nil
}

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func testSettings() Settings {
	return Settings{
		Rules:          game.DefaultRules(),
		EnemyTurnDelay: 2 * time.Second,
		SummaryLines:   2,
		Now:            func() time.Time { return fixedNow },
	}
}

func duelRequest() game.InitRequest {
	return game.InitRequest{
		Setting:  "Crossroads",
		GridCols: 5,
		GridRows: 1,
		Tokens: []game.TokenSpec{
			{ID: "hero", Side: game.SidePlayer, Label: "Hero", Col: 0, Row: 0, HP: 10, AttackPower: 6},
			{ID: "wolf", Side: game.SideEnemy, Label: "Wolf", Col: 3, Row: 0, HP: 4, AttackPower: 3, AIPattern: game.AIAggressive},
		},
	}
}
