package game

// Phase tells whether a player-controlled or an enemy token is acting.
type Phase string

const (
	PhasePlayer Phase = "player"
	PhaseEnemy  Phase = "enemy"
)

// PhaseForSide derives the phase from the side of the active token.
func PhaseForSide(s Side) Phase {
	if s.Friendly() {
		return PhasePlayer
	}
	return PhaseEnemy
}

// Result is the terminal outcome of an encounter. Empty while combat runs.
type Result string

const (
	ResultNone    Result = ""
	ResultVictory Result = "victory"
	ResultDefeat  Result = "defeat"
	ResultEscape  Result = "escape"
)

func (r Result) Valid() bool {
	switch r {
	case ResultNone, ResultVictory, ResultDefeat, ResultEscape:
		return true
	}
	return false
}

// CombatState is the run state of the encounter's state machine.
type CombatState struct {
	Round         int      `json:"round"`
	Phase         Phase    `json:"phase"`
	TurnOrder     []string `json:"turnOrder"`
	ActiveTokenID string   `json:"activeTokenId"`
	Log           []string `json:"log"`
	IsComplete    bool     `json:"isComplete"`
	Result        Result   `json:"result,omitempty"`
}

// Rules carries defaults and display hints. The engine reads the movement
// defaults only while building an encounter.
type Rules struct {
	PlayerMoveRange   int  `json:"playerMoveRange" yaml:"player_move_range"`
	PlayerAttackRange int  `json:"playerAttackRange" yaml:"player_attack_range"`
	ShowGrid          bool `json:"showGrid" yaml:"show_grid"`
}

// DefaultRules returns the rules used when neither the request nor the
// configuration provides any.
func DefaultRules() Rules {
	return Rules{PlayerMoveRange: 4, PlayerAttackRange: 1, ShowGrid: true}
}

// Encounter is the full tactical encounter exchanged with the narrative and
// rendering layers.
type Encounter struct {
	GridCols    int           `json:"gridCols"`
	GridRows    int           `json:"gridRows"`
	Tokens      []Token       `json:"tokens"`
	Terrain     []TerrainCell `json:"terrain"`
	MapImageURL string        `json:"mapImageUrl"`
	Combat      CombatState   `json:"combat"`
	Rules       Rules         `json:"rules"`
}

// TokenIndex returns the slice index of the token with the given id, or -1.
func (e *Encounter) TokenIndex(id string) int {
	if id == "" {
		return -1
	}
	for i := range e.Tokens {
		if e.Tokens[i].ID == id {
			return i
		}
	}
	return -1
}

// TokenByID returns a pointer into the token slice, or nil.
func (e *Encounter) TokenByID(id string) *Token {
	if i := e.TokenIndex(id); i >= 0 {
		return &e.Tokens[i]
	}
	return nil
}

// ActiveToken returns the token whose turn it is, or nil.
func (e *Encounter) ActiveToken() *Token {
	return e.TokenByID(e.Combat.ActiveTokenID)
}

// AppendLog adds lines to the combat log.
func (e *Encounter) AppendLog(lines ...string) {
	e.Combat.Log = append(e.Combat.Log, lines...)
}

// Clone returns a deep copy that shares no slices with e.
func (e Encounter) Clone() Encounter {
	out := e
	if e.Tokens != nil {
		out.Tokens = make([]Token, len(e.Tokens))
		for i, t := range e.Tokens {
			if t.StatusEffects != nil {
				t.StatusEffects = append([]string(nil), t.StatusEffects...)
			}
			out.Tokens[i] = t
		}
	}
	if e.Terrain != nil {
		out.Terrain = append([]TerrainCell(nil), e.Terrain...)
	}
	if e.Combat.TurnOrder != nil {
		out.Combat.TurnOrder = append([]string(nil), e.Combat.TurnOrder...)
	}
	if e.Combat.Log != nil {
		out.Combat.Log = append([]string(nil), e.Combat.Log...)
	}
	return out
}
