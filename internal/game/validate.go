package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEncounter is wrapped by every ValidationError.
var ErrInvalidEncounter = errors.New("invalid encounter")

// ValidationError lists every structural problem found in an encounter.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return ErrInvalidEncounter.Error() + ": " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidEncounter }

type problems []string

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

// ValidateEncounter checks the structural shape of an encounter: board size,
// terrain, tokens and the combat run state. It does not judge narrative
// plausibility.
func ValidateEncounter(e Encounter) error {
	var p problems
	validateBoard(&p, e)
	validateCombat(&p, e)
	if len(p) > 0 {
		return &ValidationError{Problems: p}
	}
	return nil
}

func validateBoard(p *problems, e Encounter) {
	if e.GridCols < 1 || e.GridCols > MaxGridDimension || e.GridRows < 1 || e.GridRows > MaxGridDimension {
		p.addf("grid must be between 1x1 and %dx%d, got %dx%d", MaxGridDimension, MaxGridDimension, e.GridCols, e.GridRows)
		// Nothing below is meaningful without a usable board.
		return
	}

	terrain := make(map[Cell]TerrainKind, len(e.Terrain))
	for _, t := range e.Terrain {
		c := t.Cell()
		if !t.Kind.Valid() {
			p.addf("terrain at (%d,%d) has unknown kind %q", c.Col, c.Row, t.Kind)
		}
		if !InBounds(c, e.GridCols, e.GridRows) {
			p.addf("terrain at (%d,%d) is out of bounds", c.Col, c.Row)
		}
		if _, dup := terrain[c]; dup {
			p.addf("terrain at (%d,%d) is listed more than once", c.Col, c.Row)
		}
		terrain[c] = t.Kind
	}

	if len(e.Tokens) == 0 {
		p.addf("encounter has no tokens")
		return
	}
	ids := make(map[string]struct{}, len(e.Tokens))
	occupied := make(map[Cell]string, len(e.Tokens))
	friendly, enemies := 0, 0
	for i, t := range e.Tokens {
		name := t.ID
		if strings.TrimSpace(t.ID) == "" {
			p.addf("token #%d is missing an id", i)
			name = fmt.Sprintf("#%d", i)
		} else if _, dup := ids[t.ID]; dup {
			p.addf("token id %q is used more than once", t.ID)
		}
		ids[t.ID] = struct{}{}

		if !t.Side.Valid() {
			p.addf("token %s has unknown side %q", name, t.Side)
		}
		if !t.AIPattern.Valid() {
			p.addf("token %s has unknown aiPattern %q", name, t.AIPattern)
		}
		if t.MaxHP < 1 {
			p.addf("token %s must have maxHp >= 1", name)
		}
		if t.HP < 0 || t.HP > t.MaxHP {
			p.addf("token %s has hp %d outside 0..%d", name, t.HP, t.MaxHP)
		}
		if t.AttackPower < 0 || t.DefensePower < 0 || t.MoveRange < 0 || t.AttackRange < 0 {
			p.addf("token %s has a negative stat", name)
		}

		c := t.Cell()
		if !InBounds(c, e.GridCols, e.GridRows) {
			p.addf("token %s at (%d,%d) is out of bounds", name, c.Col, c.Row)
			continue
		}
		if terrain[c] == TerrainBlocked {
			p.addf("token %s stands on blocked terrain at (%d,%d)", name, c.Col, c.Row)
		}
		if t.Alive() {
			if other, taken := occupied[c]; taken {
				p.addf("tokens %s and %s share cell (%d,%d)", other, name, c.Col, c.Row)
			}
			occupied[c] = name
		}
		switch {
		case t.Side.Friendly():
			friendly++
		case t.Side == SideEnemy:
			enemies++
		}
	}
	if friendly == 0 {
		p.addf("encounter needs at least one player or ally token")
	}
	if enemies == 0 {
		p.addf("encounter needs at least one enemy token")
	}
}

func validateCombat(p *problems, e Encounter) {
	cs := e.Combat
	if cs.Round < 1 {
		p.addf("combat round must be >= 1, got %d", cs.Round)
	}
	if cs.Phase != PhasePlayer && cs.Phase != PhaseEnemy {
		p.addf("combat phase %q is unknown", cs.Phase)
	}
	if !cs.Result.Valid() {
		p.addf("combat result %q is unknown", cs.Result)
	}
	if cs.IsComplete != (cs.Result != ResultNone) {
		p.addf("combat isComplete and result disagree")
	}

	seen := make(map[string]struct{}, len(cs.TurnOrder))
	for _, id := range cs.TurnOrder {
		if _, dup := seen[id]; dup {
			p.addf("turn order lists %q more than once", id)
		}
		seen[id] = struct{}{}
		t := e.TokenByID(id)
		if t == nil {
			p.addf("turn order references unknown token %q", id)
			continue
		}
		if !t.Side.Acts() {
			p.addf("turn order includes non-acting %s token %q", t.Side, id)
		}
	}
	if cs.IsComplete {
		return
	}
	// A running encounter needs both sides standing, otherwise no ATTACK
	// could ever reach the terminal condition.
	friendlyAlive, enemyAlive := false, false
	for _, t := range e.Tokens {
		if !t.Alive() {
			continue
		}
		friendlyAlive = friendlyAlive || t.Side.Friendly()
		enemyAlive = enemyAlive || t.Side == SideEnemy
	}
	if !friendlyAlive {
		p.addf("running encounter has no living player or ally token")
	}
	if !enemyAlive {
		p.addf("running encounter has no living enemy token")
	}
	if len(cs.TurnOrder) == 0 {
		p.addf("turn order is empty")
		return
	}
	if _, ok := seen[cs.ActiveTokenID]; !ok {
		p.addf("active token %q is not in the turn order", cs.ActiveTokenID)
		return
	}
	if active := e.ActiveToken(); active != nil && active.Side.Acts() && PhaseForSide(active.Side) != cs.Phase {
		p.addf("phase %q does not match active %s token %q", cs.Phase, active.Side, active.ID)
	}
}
