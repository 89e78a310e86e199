package service

import (
	"errors"
	"testing"

	"github.com/ericogr/novel-tactics/internal/engine"
	"github.com/ericogr/novel-tactics/internal/game"
)

func createDuel(t *testing.T, repo *mockRepo) *game.EncounterRecord {
	t.Helper()
	rec, err := CreateEncounter(repo, duelRequest(), testSettings())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return rec
}

func TestCreateEncounter(t *testing.T) {
	repo := newMockRepo()
	rec := createDuel(t, repo)
	if rec.ID == "" || rec.Revision != 1 || rec.Status != game.StatusActive {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.EnemyTurnDueAt != nil {
		t.Fatalf("no enemy turn should be scheduled while the hero acts")
	}

	bad := duelRequest()
	bad.GridCols = 0
	_, err := CreateEncounter(repo, bad, testSettings())
	var ve *game.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *game.ValidationError, got %v", err)
	}
}

func TestCreateEncounterFromPreset(t *testing.T) {
	repo := newMockRepo()
	repo.presets["crossroads_duel"] = game.PresetRecord{Key: "crossroads_duel", Name: "Crossroads Duel", Request: duelRequest()}

	rec, err := CreateEncounterFromPreset(repo, "Crossroads Duel", testSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.PresetKey != "crossroads_duel" {
		t.Fatalf("expected preset key on record, got %q", rec.PresetKey)
	}
	if _, err := CreateEncounterFromPreset(repo, "missing", testSettings()); !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("expected ErrPresetNotFound, got %v", err)
	}
}

func TestDispatchAction_SchedulesEnemyTurn(t *testing.T) {
	repo := newMockRepo()
	rec := createDuel(t, repo)

	got, err := DispatchAction(repo, rec.ID, engine.Move("hero", 1, 0), testSettings())
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if got.Revision != 2 {
		t.Fatalf("expected revision 2, got %d", got.Revision)
	}

	got, err = DispatchAction(repo, rec.ID, engine.EndTurn(), testSettings())
	if err != nil {
		t.Fatalf("end turn: %v", err)
	}
	want := fixedNow.Add(testSettings().EnemyTurnDelay)
	if got.EnemyTurnDueAt == nil || !got.EnemyTurnDueAt.Equal(want) {
		t.Fatalf("expected enemy turn due at %v, got %v", want, got.EnemyTurnDueAt)
	}
}

func TestDispatchAction_RejectionLeavesStoreUntouched(t *testing.T) {
	repo := newMockRepo()
	rec := createDuel(t, repo)

	_, err := DispatchAction(repo, rec.ID, engine.Move("hero", 4, 0), testSettings())
	if !errors.Is(err, engine.ErrRejected) {
		t.Fatalf("expected rejection, got %v", err)
	}
	stored, _ := repo.GetEncounterByID(rec.ID)
	if stored.Revision != 1 || stored.State.TokenByID("hero").Col != 0 {
		t.Fatalf("rejected action changed the stored encounter")
	}
}

func TestDispatchAction_RefusedDuringEnemyPhase(t *testing.T) {
	repo := newMockRepo()
	rec := enemyActive(t, repo)

	for _, a := range []engine.Action{
		engine.Move("wolf", 4, 0),
		engine.Attack("wolf", "hero"),
		engine.EndTurn(),
	} {
		_, err := DispatchAction(repo, rec.ID, a, testSettings())
		var rej *engine.RejectionError
		if !errors.As(err, &rej) || rej.Reason != engine.ReasonNotPlayerPhase {
			t.Fatalf("%s: expected not_player_phase, got %v", a.Type, err)
		}
	}
	stored, _ := repo.GetEncounterByID(rec.ID)
	if stored.Revision != rec.Revision || stored.State.Combat.ActiveTokenID != "wolf" || stored.State.TokenByID("wolf").Col != 3 {
		t.Fatalf("enemy turn was played from the player route: %+v", stored.State.Combat)
	}
}

func TestDispatchAction_RefusesEngineOnlyActions(t *testing.T) {
	repo := newMockRepo()
	rec := createDuel(t, repo)
	for _, a := range []engine.Action{engine.EnemyTurn(), engine.ApplyExternal(rec.State)} {
		if _, err := DispatchAction(repo, rec.ID, a, testSettings()); !errors.Is(err, ErrActionNotAllowed) {
			t.Fatalf("%s: expected ErrActionNotAllowed, got %v", a.Type, err)
		}
	}
	if _, err := DispatchAction(repo, "nope", engine.EndTurn(), testSettings()); !errors.Is(err, ErrEncounterNotFound) {
		t.Fatalf("expected ErrEncounterNotFound, got %v", err)
	}
}

func TestVictoryStoresOutcome(t *testing.T) {
	repo := newMockRepo()
	req := duelRequest()
	req.Tokens[1].Col = 1
	rec, err := CreateEncounter(repo, req, testSettings())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := DispatchAction(repo, rec.ID, engine.Attack("hero", "wolf"), testSettings())
	if err != nil {
		t.Fatalf("attack: %v", err)
	}
	if got.Status != game.StatusComplete || got.EnemyTurnDueAt != nil {
		t.Fatalf("expected completed record, got %+v", got)
	}

	o, err := GetOutcome(repo, rec.ID)
	if err != nil {
		t.Fatalf("outcome: %v", err)
	}
	if o.Result != game.ResultVictory || o.Rounds != 1 {
		t.Fatalf("unexpected outcome: %+v", o)
	}
	if o.Summary != "Wolf is defeated!\nVictory! All enemies have been defeated." {
		t.Fatalf("unexpected summary %q", o.Summary)
	}

	if _, err := DispatchAction(repo, rec.ID, engine.EndTurn(), testSettings()); !errors.Is(err, ErrEncounterComplete) {
		t.Fatalf("expected ErrEncounterComplete, got %v", err)
	}
}

func TestGetOutcome_StillRunning(t *testing.T) {
	repo := newMockRepo()
	rec := createDuel(t, repo)
	if _, err := GetOutcome(repo, rec.ID); !errors.Is(err, ErrEncounterStillRunning) {
		t.Fatalf("expected ErrEncounterStillRunning, got %v", err)
	}
}

func TestRetreat(t *testing.T) {
	repo := newMockRepo()
	rec := createDuel(t, repo)

	got, err := Retreat(repo, rec.ID, testSettings())
	if err != nil {
		t.Fatalf("retreat: %v", err)
	}
	if got.State.Combat.Result != game.ResultEscape {
		t.Fatalf("expected escape, got %q", got.State.Combat.Result)
	}
	if o, _ := GetOutcome(repo, rec.ID); o == nil || o.Result != game.ResultEscape {
		t.Fatalf("expected escape outcome, got %+v", o)
	}
}

func TestApplyExternal(t *testing.T) {
	repo := newMockRepo()
	rec := createDuel(t, repo)

	injected := rec.State.Clone()
	injected.Tokens = append(injected.Tokens, game.Token{
		ID: "wolf2", Side: game.SideEnemy, Label: "Second Wolf", Col: 4, Row: 0, HP: 4, MaxHP: 4, AttackPower: 3, MoveRange: 3, AttackRange: 1,
	})
	injected.Combat.TurnOrder = append(injected.Combat.TurnOrder, "wolf2")
	injected.AppendLog("Another wolf howls.")

	got, err := ApplyExternal(repo, rec.ID, injected, testSettings())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got.State.TokenByID("wolf2") == nil || got.Revision != 2 {
		t.Fatalf("injected state not stored: %+v", got)
	}

	broken := injected.Clone()
	broken.Tokens[0].HP = 99
	_, err = ApplyExternal(repo, rec.ID, broken, testSettings())
	if !errors.Is(err, game.ErrInvalidEncounter) {
		t.Fatalf("expected ErrInvalidEncounter, got %v", err)
	}
}
