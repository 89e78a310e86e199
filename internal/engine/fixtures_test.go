package engine

import (
	"testing"

	"github.com/ericogr/novel-tactics/internal/game"
)

// board builds an encounter by hand so tests can place tokens freely. The
// turn order is the friendly tokens followed by the enemies, in slice order.
func board(cols, rows int, tokens ...game.Token) game.Encounter {
	var friendly, enemies []string
	for i := range tokens {
		if tokens[i].MaxHP == 0 {
			tokens[i].MaxHP = tokens[i].HP
		}
		switch {
		case tokens[i].Side.Friendly():
			friendly = append(friendly, tokens[i].ID)
		case tokens[i].Side == game.SideEnemy:
			enemies = append(enemies, tokens[i].ID)
		}
	}
	order := append(friendly, enemies...)
	enc := game.Encounter{
		GridCols: cols,
		GridRows: rows,
		Tokens:   tokens,
		Rules:    game.DefaultRules(),
		Combat: game.CombatState{
			Round:     1,
			Phase:     game.PhasePlayer,
			TurnOrder: order,
			Log:       []string{"Combat begins."},
		},
	}
	if len(order) > 0 {
		enc.Combat.ActiveTokenID = order[0]
		enc.Combat.Phase = game.PhaseForSide(enc.ActiveToken().Side)
	}
	return enc
}

func player(id string, col, row int) game.Token {
	return game.Token{ID: id, Side: game.SidePlayer, Label: id, Col: col, Row: row, HP: 20, MaxHP: 20, AttackPower: 5, DefensePower: 1, MoveRange: 4, AttackRange: 1}
}

func enemy(id string, col, row int) game.Token {
	return game.Token{ID: id, Side: game.SideEnemy, Label: id, Col: col, Row: row, HP: 10, MaxHP: 10, AttackPower: 4, DefensePower: 0, MoveRange: 3, AttackRange: 1, AIPattern: game.AIAggressive}
}

// activate hands the turn to id, as if END_TURN had just reached it.
func activate(enc game.Encounter, id string) game.Encounter {
	enc.Combat.ActiveTokenID = id
	enc.Combat.Phase = game.PhaseForSide(enc.TokenByID(id).Side)
	return enc
}

func mustReduce(t *testing.T, enc game.Encounter, a Action) game.Encounter {
	t.Helper()
	next, err := Reduce(enc, a)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", a.Type, err)
	}
	return next
}

func lastLog(enc game.Encounter) string {
	if len(enc.Combat.Log) == 0 {
		return ""
	}
	return enc.Combat.Log[len(enc.Combat.Log)-1]
}

func cells(pairs ...int) []game.Cell {
	out := make([]game.Cell, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, game.Cell{Col: pairs[i], Row: pairs[i+1]})
	}
	return out
}

func sameCells(a, b []game.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
