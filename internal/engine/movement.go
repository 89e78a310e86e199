package engine

import (
	"container/heap"

	"github.com/ericogr/novel-tactics/internal/game"
)

// ReachableCells returns every cell the token can end its move on, spending
// at most token.MoveRange movement points. Movement is 8-directional;
// difficult terrain costs 2 to enter, other passable cells cost 1. Blocked
// cells, cells outside the board and cells held by another living token can
// be neither entered nor crossed. The token's own cell is never included.
// The result is sorted by row, then column.
func ReachableCells(token game.Token, tokens []game.Token, terrain []game.TerrainCell, gridCols, gridRows int) []game.Cell {
	costs := reachableCosts(token, tokens, game.IndexTerrain(terrain), gridCols, gridRows)
	out := make([]game.Cell, 0, len(costs))
	for c := range costs {
		out = append(out, c)
	}
	game.SortCells(out)
	return out
}

// reachableCosts runs a uniform-cost search from the token's cell and
// returns the cheapest cost to each reachable destination.
func reachableCosts(token game.Token, tokens []game.Token, terrain game.TerrainIndex, cols, rows int) map[game.Cell]int {
	if token.MoveRange <= 0 {
		return map[game.Cell]int{}
	}
	origin := token.Cell()
	best := map[game.Cell]int{origin: 0}

	occupied := make(map[game.Cell]struct{}, len(tokens))
	for _, t := range tokens {
		if t.ID != token.ID && t.Alive() {
			occupied[t.Cell()] = struct{}{}
		}
	}

	pq := &cellQueue{{cell: origin, cost: 0}}
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(queuedCell)
		if cur.cost > best[cur.cell] {
			continue
		}
		for _, n := range cur.cell.Neighbors() {
			if !game.InBounds(n, cols, rows) {
				continue
			}
			if _, taken := occupied[n]; taken {
				continue
			}
			step, ok := terrain.EnterCost(n)
			if !ok {
				continue
			}
			next := cur.cost + step
			if next > token.MoveRange {
				continue
			}
			if prev, seen := best[n]; seen && prev <= next {
				continue
			}
			best[n] = next
			heap.Push(pq, queuedCell{cell: n, cost: next})
		}
	}
	delete(best, origin)
	return best
}

type queuedCell struct {
	cell game.Cell
	cost int
}

// cellQueue is a min-heap on cost; ties break by row then column so the
// expansion order is stable.
type cellQueue []queuedCell

func (q cellQueue) Len() int { return len(q) }

func (q cellQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	if q[i].cell.Row != q[j].cell.Row {
		return q[i].cell.Row < q[j].cell.Row
	}
	return q[i].cell.Col < q[j].cell.Col
}

func (q cellQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *cellQueue) Push(x any) { *q = append(*q, x.(queuedCell)) }

func (q *cellQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
