package engine

import (
	"testing"

	"github.com/ericogr/novel-tactics/internal/game"
)

func TestReachableCells_OpenGround(t *testing.T) {
	p := player("p", 2, 2)
	p.MoveRange = 1
	got := ReachableCells(p, []game.Token{p}, nil, 5, 5)
	want := cells(1, 1, 2, 1, 3, 1, 1, 2, 3, 2, 1, 3, 2, 3, 3, 3)
	if !sameCells(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestReachableCells_ClipsToBoard(t *testing.T) {
	p := player("p", 0, 0)
	p.MoveRange = 1
	got := ReachableCells(p, []game.Token{p}, nil, 3, 3)
	want := cells(1, 0, 0, 1, 1, 1)
	if !sameCells(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestReachableCells_DifficultTerrainCostsTwo(t *testing.T) {
	p := player("p", 0, 0)
	p.MoveRange = 3
	terrain := []game.TerrainCell{{Col: 1, Row: 0, Kind: game.TerrainDifficult}}
	got := ReachableCells(p, []game.Token{p}, terrain, 5, 1)
	want := cells(1, 0, 2, 0)
	if !sameCells(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestReachableCells_HazardAndCoverCostOne(t *testing.T) {
	p := player("p", 0, 0)
	p.MoveRange = 2
	terrain := []game.TerrainCell{
		{Col: 1, Row: 0, Kind: game.TerrainHazard},
		{Col: 2, Row: 0, Kind: game.TerrainCover},
	}
	got := ReachableCells(p, []game.Token{p}, terrain, 5, 1)
	want := cells(1, 0, 2, 0)
	if !sameCells(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestReachableCells_BlockedCellsCannotBeCrossed(t *testing.T) {
	p := player("p", 0, 0)
	terrain := []game.TerrainCell{{Col: 2, Row: 0, Kind: game.TerrainBlocked}}
	got := ReachableCells(p, []game.Token{p}, terrain, 5, 1)
	if want := cells(1, 0); !sameCells(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestReachableCells_LivingTokensBlockDefeatedDoNot(t *testing.T) {
	p := player("p", 0, 0)
	e := enemy("e", 2, 0)
	got := ReachableCells(p, []game.Token{p, e}, nil, 5, 1)
	if want := cells(1, 0); !sameCells(got, want) {
		t.Fatalf("expected %v with a living blocker, got %v", want, got)
	}

	e.HP = 0
	got = ReachableCells(p, []game.Token{p, e}, nil, 5, 1)
	if want := cells(1, 0, 2, 0, 3, 0, 4, 0); !sameCells(got, want) {
		t.Fatalf("expected %v past a defeated token, got %v", want, got)
	}
}

func TestReachableCells_WalksAroundWalls(t *testing.T) {
	// A wall across column 1 with a gap at row 2.
	p := player("p", 0, 0)
	p.MoveRange = 3
	terrain := []game.TerrainCell{
		{Col: 1, Row: 0, Kind: game.TerrainBlocked},
		{Col: 1, Row: 1, Kind: game.TerrainBlocked},
	}
	got := ReachableCells(p, []game.Token{p}, terrain, 3, 3)
	if !game.ContainsCell(got, game.Cell{Col: 2, Row: 1}) {
		t.Fatalf("expected (2,1) to be reachable through the gap, got %v", got)
	}
	if game.ContainsCell(got, game.Cell{Col: 1, Row: 0}) {
		t.Fatalf("blocked cell returned as reachable")
	}
}

func TestReachableCells_ZeroMoveRange(t *testing.T) {
	p := player("p", 1, 1)
	p.MoveRange = 0
	if got := ReachableCells(p, []game.Token{p}, nil, 3, 3); len(got) != 0 {
		t.Fatalf("expected no cells, got %v", got)
	}
}
