package engine

import (
	"testing"

	"github.com/ericogr/novel-tactics/internal/game"
)

func TestComputeEnemyAction_AggressivePrefersWeakestTarget(t *testing.T) {
	strong := player("strong", 1, 1)
	weak := player("weak", 3, 1)
	weak.HP = 3
	e := enemy("e", 2, 1)
	enc := activate(board(5, 5, strong, weak, e), "e")

	got := ComputeEnemyAction(e, enc)
	if got.Kind != IntentAttack || got.TargetID != "weak" {
		t.Fatalf("expected attack on weak, got %+v", got)
	}
}

func TestComputeEnemyAction_AggressiveApproaches(t *testing.T) {
	e := enemy("e", 3, 0)
	enc := activate(board(5, 1, player("p", 0, 0), e), "e")

	got := ComputeEnemyAction(e, enc)
	if got.Kind != IntentMove || got.Col != 1 || got.Row != 0 {
		t.Fatalf("expected move to (1,0), got %+v", got)
	}
}

func TestComputeEnemyAction_EmptyPatternIsAggressive(t *testing.T) {
	e := enemy("e", 3, 0)
	e.AIPattern = ""
	enc := activate(board(5, 1, player("p", 0, 0), e), "e")

	if got := ComputeEnemyAction(e, enc); got.Kind != IntentMove {
		t.Fatalf("expected a move, got %+v", got)
	}
}

func TestComputeEnemyAction_RespectsTurnFlags(t *testing.T) {
	e := enemy("e", 3, 0)
	e.HasMoved = true
	enc := activate(board(5, 1, player("p", 0, 0), e), "e")
	if got := ComputeEnemyAction(e, enc); got.Kind != IntentIdle {
		t.Fatalf("moved enemy out of range should idle, got %+v", got)
	}

	adjacent := enemy("a", 1, 0)
	adjacent.HasActed = true
	enc = activate(board(5, 1, player("p", 0, 0), adjacent), "a")
	if got := ComputeEnemyAction(adjacent, enc); got.Kind == IntentAttack {
		t.Fatalf("enemy that already acted must not attack")
	}
}

func TestComputeEnemyAction_DefensiveHoldsWhenHealthy(t *testing.T) {
	e := enemy("e", 2, 0)
	e.AIPattern = game.AIDefensive
	enc := activate(board(7, 1, player("p", 0, 0), e), "e")

	if got := ComputeEnemyAction(e, enc); got.Kind != IntentIdle {
		t.Fatalf("expected idle, got %+v", got)
	}
}

func TestComputeEnemyAction_DefensiveRetreatsWhenHurt(t *testing.T) {
	e := enemy("e", 2, 0)
	e.AIPattern = game.AIDefensive
	e.HP = 2
	e.MoveRange = 2
	enc := activate(board(7, 1, player("p", 0, 0), e), "e")

	got := ComputeEnemyAction(e, enc)
	if got.Kind != IntentMove || got.Col != 4 || got.Row != 0 {
		t.Fatalf("expected retreat to (4,0), got %+v", got)
	}
}

func TestComputeEnemyAction_DefensiveStrikesInRange(t *testing.T) {
	e := enemy("e", 1, 0)
	e.AIPattern = game.AIDefensive
	e.HP = 1
	enc := activate(board(7, 1, player("p", 0, 0), e), "e")

	if got := ComputeEnemyAction(e, enc); got.Kind != IntentAttack || got.TargetID != "p" {
		t.Fatalf("expected attack, got %+v", got)
	}
}

func TestComputeEnemyAction_PatrolWalksTheLoop(t *testing.T) {
	e := enemy("e", 2, 2)
	e.AIPattern = game.AIPatrol
	enc := activate(board(10, 10, player("p", 9, 9), e), "e")

	got := ComputeEnemyAction(e, enc)
	if got.Kind != IntentMove || got.Col != 5 || got.Row != 2 {
		t.Fatalf("round 1 should head east to (5,2), got %+v", got)
	}

	enc.Combat.Round = 2
	got = ComputeEnemyAction(e, enc)
	if got.Kind != IntentMove || got.Col != 2 || got.Row != 5 {
		t.Fatalf("round 2 should head south to (2,5), got %+v", got)
	}

	enc.Combat.Round = 3
	got = ComputeEnemyAction(e, enc)
	if got.Kind != IntentMove || got.Col != 0 || got.Row != 2 {
		t.Fatalf("round 3 should head west as far as the edge, got %+v", got)
	}
}

func TestComputeEnemyAction_PatrolEngagesNearbyTarget(t *testing.T) {
	e := enemy("e", 2, 2)
	e.AIPattern = game.AIPatrol
	enc := activate(board(10, 10, player("p", 2, 6), e), "e")

	got := ComputeEnemyAction(e, enc)
	if got.Kind != IntentMove || got.Row != 5 {
		t.Fatalf("expected patrol to close in on the player, got %+v", got)
	}
}

func shrine(col, row int) game.Token {
	return game.Token{ID: "shrine", Side: game.SideObjective, Label: "Shrine", Col: col, Row: row, HP: 5, MaxHP: 5}
}

func TestComputeEnemyAction_GuardIgnoresDistantOpponents(t *testing.T) {
	e := enemy("e", 5, 3)
	e.AIPattern = game.AIGuardObjective
	enc := activate(board(10, 10, player("p", 0, 0), shrine(5, 5), e), "e")

	if got := ComputeEnemyAction(e, enc); got.Kind != IntentIdle {
		t.Fatalf("expected idle, got %+v", got)
	}
}

func TestComputeEnemyAction_GuardEngagesIntruders(t *testing.T) {
	e := enemy("e", 5, 3)
	e.AIPattern = game.AIGuardObjective
	enc := activate(board(10, 10, player("p", 7, 7), shrine(5, 5), e), "e")

	got := ComputeEnemyAction(e, enc)
	if got.Kind != IntentMove || got.Col != 6 || got.Row != 6 {
		t.Fatalf("expected move to (6,6), got %+v", got)
	}
	if d := game.Chebyshev(game.Cell{Col: got.Col, Row: got.Row}, game.Cell{Col: 5, Row: 5}); d > GuardRadius {
		t.Fatalf("guard left its radius: distance %d", d)
	}
}

func TestComputeEnemyAction_GuardReturnsToObjective(t *testing.T) {
	e := enemy("e", 0, 5)
	e.AIPattern = game.AIGuardObjective
	enc := activate(board(10, 10, player("p", 9, 0), shrine(5, 5), e), "e")

	got := ComputeEnemyAction(e, enc)
	if got.Kind != IntentMove {
		t.Fatalf("expected a move back toward the objective, got %+v", got)
	}
	if d := game.Chebyshev(game.Cell{Col: got.Col, Row: got.Row}, game.Cell{Col: 5, Row: 5}); d > GuardRadius {
		t.Fatalf("expected to end within the radius, got distance %d", d)
	}
}

func TestComputeEnemyAction_GuardWithoutObjectiveIsAggressive(t *testing.T) {
	e := enemy("e", 3, 0)
	e.AIPattern = game.AIGuardObjective
	enc := activate(board(5, 1, player("p", 0, 0), e), "e")

	if got := ComputeEnemyAction(e, enc); got.Kind != IntentMove || got.Col != 1 {
		t.Fatalf("expected aggressive approach, got %+v", got)
	}
}
