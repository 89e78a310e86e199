package engine

import (
	"github.com/ericogr/novel-tactics/internal/game"
)

// IntentKind is the action an enemy wants to take this turn.
type IntentKind string

const (
	IntentIdle   IntentKind = "idle"
	IntentMove   IntentKind = "move"
	IntentAttack IntentKind = "attack"
)

// GuardRadius is how far a guard-objective enemy may stray from the
// objective it protects.
const GuardRadius = 3

// EnemyIntent is the AI's decision. Col and Row are set for moves and
// TargetID for attacks.
type EnemyIntent struct {
	Kind     IntentKind `json:"action"`
	Col      int        `json:"col"`
	Row      int        `json:"row"`
	TargetID string     `json:"targetId,omitempty"`
}

var idle = EnemyIntent{Kind: IntentIdle}

// patrolLegs is the square loop walked by patrolling enemies: east, south,
// west, north, one leg per round.
var patrolLegs = [4]game.Cell{{Col: 1}, {Row: 1}, {Col: -1}, {Row: -1}}

// ComputeEnemyAction decides what enemy does next. It only reads the
// encounter; the decision depends on the current board alone. A token that
// already moved is never asked to move again, and one that already acted
// never attacks.
func ComputeEnemyAction(enemy game.Token, enc game.Encounter) EnemyIntent {
	if !enemy.Alive() || enc.Combat.IsComplete {
		return idle
	}
	p := planner{enemy: enemy, enc: enc}
	switch enemy.AIPattern {
	case game.AIDefensive:
		return p.defensive()
	case game.AIPatrol:
		return p.patrol()
	case game.AIGuardObjective:
		return p.guard()
	default:
		return p.aggressive()
	}
}

type planner struct {
	enemy game.Token
	enc   game.Encounter
	costs map[game.Cell]int
}

func (p *planner) attack() (EnemyIntent, bool) {
	if p.enemy.HasActed {
		return idle, false
	}
	targets := AttackableTargets(p.enemy, p.enc.Tokens)
	if len(targets) == 0 {
		return idle, false
	}
	from := p.enemy.Cell()
	best := targets[0]
	for _, t := range targets[1:] {
		if t.HP < best.HP || (t.HP == best.HP && game.Chebyshev(from, t.Cell()) < game.Chebyshev(from, best.Cell())) {
			best = t
		}
	}
	return EnemyIntent{Kind: IntentAttack, TargetID: best.ID}, true
}

// reachable lazily computes the enemy's movement costs. It is empty when the
// enemy has already moved.
func (p *planner) reachable() map[game.Cell]int {
	if p.costs == nil {
		if p.enemy.HasMoved {
			p.costs = map[game.Cell]int{}
		} else {
			p.costs = reachableCosts(p.enemy, p.enc.Tokens, game.IndexTerrain(p.enc.Terrain), p.enc.GridCols, p.enc.GridRows)
		}
	}
	return p.costs
}

func moveTo(c game.Cell) EnemyIntent {
	return EnemyIntent{Kind: IntentMove, Col: c.Col, Row: c.Row}
}

func (p *planner) aggressive() EnemyIntent {
	if in, ok := p.attack(); ok {
		return in
	}
	target, _, ok := nearest(p.enemy.Cell(), livingOpponents(p.enemy, p.enc.Tokens))
	if !ok {
		return idle
	}
	return p.approach(target.Cell(), p.enemy.AttackRange, nil)
}

// approach moves toward target, preferring the cell that leaves the smallest
// gap to within reach of it, then the cheapest path, then row and column.
// allow, when set, limits the candidate cells. The enemy only moves when the
// gap shrinks.
func (p *planner) approach(target game.Cell, reach int, allow func(game.Cell) bool) EnemyIntent {
	gap := func(c game.Cell) int {
		return max(0, game.Chebyshev(c, target)-reach)
	}
	costs := p.reachable()
	bestGap := gap(p.enemy.Cell())
	var best game.Cell
	found := false
	bestCost := 0
	for _, c := range sortedCells(costs) {
		if allow != nil && !allow(c) {
			continue
		}
		g, cost := gap(c), costs[c]
		if g < bestGap || (found && g == bestGap && cost < bestCost) {
			best, bestGap, bestCost, found = c, g, cost, true
		}
	}
	if !found {
		return idle
	}
	return moveTo(best)
}

// defensive only engages targets already in range. A badly hurt defender
// backs away to the cell farthest from its opponents.
func (p *planner) defensive() EnemyIntent {
	if in, ok := p.attack(); ok {
		return in
	}
	if p.enemy.HP*2 > p.enemy.MaxHP {
		return idle
	}
	opponents := livingOpponents(p.enemy, p.enc.Tokens)
	if len(opponents) == 0 {
		return idle
	}
	costs := p.reachable()
	bestDist := minDistance(p.enemy.Cell(), opponents)
	var best game.Cell
	found := false
	bestCost := 0
	for _, c := range sortedCells(costs) {
		d, cost := minDistance(c, opponents), costs[c]
		if d > bestDist || (found && d == bestDist && cost < bestCost) {
			best, bestDist, bestCost, found = c, d, cost, true
		}
	}
	if !found {
		return idle
	}
	return moveTo(best)
}

// patrol walks one leg of a square per round and turns aggressive when an
// opponent comes within striking distance.
func (p *planner) patrol() EnemyIntent {
	if in, ok := p.attack(); ok {
		return in
	}
	opponents := livingOpponents(p.enemy, p.enc.Tokens)
	if _, d, ok := nearest(p.enemy.Cell(), opponents); ok && d <= p.enemy.MoveRange+p.enemy.AttackRange {
		return p.aggressive()
	}
	round := max(p.enc.Combat.Round, 1)
	leg := patrolLegs[(round-1)%len(patrolLegs)]
	costs := p.reachable()
	from := p.enemy.Cell()
	for k := p.enemy.MoveRange; k >= 1; k-- {
		c := game.Cell{Col: from.Col + leg.Col*k, Row: from.Row + leg.Row*k}
		if _, ok := costs[c]; ok {
			return moveTo(c)
		}
	}
	return idle
}

// guard keeps the enemy within GuardRadius of the nearest objective and
// engages opponents that come inside that radius.
func (p *planner) guard() EnemyIntent {
	if in, ok := p.attack(); ok {
		return in
	}
	objectives := make([]game.Token, 0, 2)
	for _, t := range p.enc.Tokens {
		if t.Side == game.SideObjective {
			objectives = append(objectives, t)
		}
	}
	obj, _, ok := nearest(p.enemy.Cell(), objectives)
	if !ok {
		return p.aggressive()
	}
	center := obj.Cell()
	inside := func(c game.Cell) bool { return game.Chebyshev(c, center) <= GuardRadius }

	intruders := make([]game.Token, 0, 2)
	for _, t := range livingOpponents(p.enemy, p.enc.Tokens) {
		if inside(t.Cell()) {
			intruders = append(intruders, t)
		}
	}
	if target, _, ok := nearest(p.enemy.Cell(), intruders); ok {
		if in := p.approach(target.Cell(), p.enemy.AttackRange, inside); in.Kind == IntentMove {
			return in
		}
	}
	if inside(p.enemy.Cell()) {
		return idle
	}
	// Outside the radius: head back toward the objective.
	return p.approach(center, GuardRadius, nil)
}

func sortedCells(costs map[game.Cell]int) []game.Cell {
	out := make([]game.Cell, 0, len(costs))
	for c := range costs {
		out = append(out, c)
	}
	game.SortCells(out)
	return out
}
