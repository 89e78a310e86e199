package game

import "strings"

// Default ranges for tokens that omit them. Player and ally ranges come from
// the encounter rules instead.
const (
	DefaultEnemyMoveRange   = 3
	DefaultEnemyAttackRange = 1
)

// TokenSpec describes a token in an initialization request. Nil ranges fall
// back to the rules (players and allies) or the enemy defaults.
type TokenSpec struct {
	ID            string    `json:"id" yaml:"id"`
	Side          Side      `json:"side" yaml:"side"`
	Label         string    `json:"label" yaml:"label"`
	Icon          string    `json:"icon" yaml:"icon"`
	Col           int       `json:"col" yaml:"col"`
	Row           int       `json:"row" yaml:"row"`
	HP            int       `json:"hp" yaml:"hp"`
	MaxHP         int       `json:"maxHp" yaml:"max_hp"`
	AttackPower   int       `json:"attackPower" yaml:"attack_power"`
	DefensePower  int       `json:"defensePower" yaml:"defense_power"`
	MoveRange     *int      `json:"moveRange,omitempty" yaml:"move_range,omitempty"`
	AttackRange   *int      `json:"attackRange,omitempty" yaml:"attack_range,omitempty"`
	AIPattern     AIPattern `json:"aiPattern,omitempty" yaml:"ai_pattern,omitempty"`
	StatusEffects []string  `json:"statusEffects,omitempty" yaml:"status_effects,omitempty"`
}

// InitRequest is the initialization contract consumed from the narrative
// layer.
type InitRequest struct {
	Setting     string        `json:"setting" yaml:"setting"`
	Theme       string        `json:"theme" yaml:"theme"`
	GridCols    int           `json:"gridCols" yaml:"grid_cols"`
	GridRows    int           `json:"gridRows" yaml:"grid_rows"`
	Tokens      []TokenSpec   `json:"tokens" yaml:"tokens"`
	Terrain     []TerrainCell `json:"terrain,omitempty" yaml:"terrain,omitempty"`
	MapImageURL string        `json:"mapImageUrl,omitempty" yaml:"map_image_url,omitempty"`
	Rules       *Rules        `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// NewEncounter builds a validated encounter at round 1. Players and allies
// are placed first in the turn order, then enemies, each group in request
// order; objectives and NPCs never take turns.
func NewEncounter(req InitRequest, defaults Rules) (Encounter, error) {
	rules := defaults
	if req.Rules != nil {
		rules = *req.Rules
	}

	tokens := make([]Token, 0, len(req.Tokens))
	var friendly, enemies []string
	for _, s := range req.Tokens {
		t := Token{
			ID:            strings.TrimSpace(s.ID),
			Side:          s.Side,
			Label:         s.Label,
			Icon:          s.Icon,
			Col:           s.Col,
			Row:           s.Row,
			HP:            s.HP,
			MaxHP:         s.MaxHP,
			AttackPower:   s.AttackPower,
			DefensePower:  s.DefensePower,
			AIPattern:     s.AIPattern,
			StatusEffects: append([]string{}, s.StatusEffects...),
		}
		if t.MaxHP == 0 {
			t.MaxHP = t.HP
		}
		t.MoveRange, t.AttackRange = defaultRanges(s.Side, rules)
		if s.MoveRange != nil {
			t.MoveRange = *s.MoveRange
		}
		if s.AttackRange != nil {
			t.AttackRange = *s.AttackRange
		}
		tokens = append(tokens, t)

		switch {
		case t.Side.Friendly():
			friendly = append(friendly, t.ID)
		case t.Side == SideEnemy:
			enemies = append(enemies, t.ID)
		}
	}

	order := append(friendly, enemies...)
	enc := Encounter{
		GridCols:    req.GridCols,
		GridRows:    req.GridRows,
		Tokens:      tokens,
		Terrain:     append([]TerrainCell{}, req.Terrain...),
		MapImageURL: req.MapImageURL,
		Rules:       rules,
		Combat: CombatState{
			Round:     1,
			Phase:     PhasePlayer,
			TurnOrder: order,
			Log:       []string{openingLine(req)},
		},
	}
	if len(order) > 0 {
		enc.Combat.ActiveTokenID = order[0]
		if first := enc.ActiveToken(); first != nil {
			enc.Combat.Phase = PhaseForSide(first.Side)
		}
	}
	if err := ValidateEncounter(enc); err != nil {
		return Encounter{}, err
	}
	return enc, nil
}

func defaultRanges(side Side, rules Rules) (move, attack int) {
	switch {
	case side.Friendly():
		return rules.PlayerMoveRange, rules.PlayerAttackRange
	case side == SideEnemy:
		return DefaultEnemyMoveRange, DefaultEnemyAttackRange
	default:
		return 0, 0
	}
}

func openingLine(req InitRequest) string {
	setting := strings.TrimSpace(req.Setting)
	if setting == "" {
		return "Combat begins."
	}
	return "Combat begins: " + setting + "."
}
