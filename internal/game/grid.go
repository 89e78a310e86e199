package game

import "sort"

// MaxGridDimension bounds both grid axes. Boards larger than this are
// rejected at construction time.
const MaxGridDimension = 64

// Cell is a 0-indexed board coordinate.
type Cell struct {
	Col int `json:"col" yaml:"col"`
	Row int `json:"row" yaml:"row"`
}

// InBounds reports whether c lies on a cols x rows board.
func InBounds(c Cell, cols, rows int) bool {
	return c.Col >= 0 && c.Col < cols && c.Row >= 0 && c.Row < rows
}

// Chebyshev returns the 8-directional distance between two cells.
func Chebyshev(a, b Cell) int {
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	if dc > dr {
		return dc
	}
	return dr
}

// Neighbors returns the eight adjacent cells, clockwise from north. Cells may
// fall outside the board; callers filter with InBounds.
func (c Cell) Neighbors() [8]Cell {
	return [8]Cell{
		{c.Col, c.Row - 1},
		{c.Col + 1, c.Row - 1},
		{c.Col + 1, c.Row},
		{c.Col + 1, c.Row + 1},
		{c.Col, c.Row + 1},
		{c.Col - 1, c.Row + 1},
		{c.Col - 1, c.Row},
		{c.Col - 1, c.Row - 1},
	}
}

// SortCells orders cells by row, then column.
func SortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
}

// ContainsCell reports whether c is present in cells.
func ContainsCell(cells []Cell, c Cell) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}

// TerrainKind classifies a non-open cell.
type TerrainKind string

const (
	TerrainBlocked   TerrainKind = "blocked"
	TerrainDifficult TerrainKind = "difficult"
	// Hazard and cover are passable at normal cost. They carry no combat
	// modifier.
	TerrainHazard TerrainKind = "hazard"
	TerrainCover  TerrainKind = "cover"
)

// Valid reports whether k is one of the known terrain kinds.
func (k TerrainKind) Valid() bool {
	switch k {
	case TerrainBlocked, TerrainDifficult, TerrainHazard, TerrainCover:
		return true
	}
	return false
}

// EnterCost returns the movement points needed to step into a cell of this
// kind, and false when the cell cannot be entered at all.
func (k TerrainKind) EnterCost() (int, bool) {
	switch k {
	case TerrainBlocked:
		return 0, false
	case TerrainDifficult:
		return 2, true
	default:
		return 1, true
	}
}

// TerrainCell marks a single coordinate with a terrain kind.
type TerrainCell struct {
	Col  int         `json:"col" yaml:"col"`
	Row  int         `json:"row" yaml:"row"`
	Kind TerrainKind `json:"kind" yaml:"kind"`
}

func (t TerrainCell) Cell() Cell { return Cell{Col: t.Col, Row: t.Row} }

// TerrainIndex is a coordinate lookup over a terrain list. Coordinates not
// present are open ground.
type TerrainIndex map[Cell]TerrainKind

// IndexTerrain builds a TerrainIndex. If a coordinate repeats, the last entry
// wins; validation rejects such boards before they reach the engine.
func IndexTerrain(terrain []TerrainCell) TerrainIndex {
	idx := make(TerrainIndex, len(terrain))
	for _, t := range terrain {
		idx[t.Cell()] = t.Kind
	}
	return idx
}

// EnterCost returns the cost to enter c and whether it is passable.
func (ti TerrainIndex) EnterCost(c Cell) (int, bool) {
	kind, ok := ti[c]
	if !ok {
		return 1, true
	}
	return kind.EnterCost()
}
