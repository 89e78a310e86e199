package game

// Side is the allegiance of a token on the board.
type Side string

const (
	SidePlayer    Side = "player"
	SideAlly      Side = "ally"
	SideEnemy     Side = "enemy"
	SideObjective Side = "objective"
	SideNPC       Side = "npc"
)

func (s Side) Valid() bool {
	switch s {
	case SidePlayer, SideAlly, SideEnemy, SideObjective, SideNPC:
		return true
	}
	return false
}

// Friendly reports whether the side is controlled by the player.
func (s Side) Friendly() bool { return s == SidePlayer || s == SideAlly }

// Acts reports whether tokens of this side take turns.
func (s Side) Acts() bool { return s.Friendly() || s == SideEnemy }

// Opposes reports whether an actor on side a may target a token on side b.
// Objectives and NPCs are never opposing.
func Opposes(a, b Side) bool {
	return (a.Friendly() && b == SideEnemy) || (a == SideEnemy && b.Friendly())
}

// AIPattern selects the enemy decision routine. The empty pattern behaves as
// AIAggressive.
type AIPattern string

const (
	AIAggressive     AIPattern = "aggressive"
	AIDefensive      AIPattern = "defensive"
	AIPatrol         AIPattern = "patrol"
	AIGuardObjective AIPattern = "guard-objective"
)

func (p AIPattern) Valid() bool {
	switch p {
	case "", AIAggressive, AIDefensive, AIPatrol, AIGuardObjective:
		return true
	}
	return false
}

// Token is a combatant or objective marker placed on the grid. Turn flags
// live on the token itself and are reset when its own turn begins.
type Token struct {
	ID            string    `json:"id"`
	Side          Side      `json:"side"`
	Label         string    `json:"label"`
	Icon          string    `json:"icon"`
	Col           int       `json:"col"`
	Row           int       `json:"row"`
	HP            int       `json:"hp"`
	MaxHP         int       `json:"maxHp"`
	AttackPower   int       `json:"attackPower"`
	DefensePower  int       `json:"defensePower"`
	MoveRange     int       `json:"moveRange"`
	AttackRange   int       `json:"attackRange"`
	AIPattern     AIPattern `json:"aiPattern,omitempty"`
	HasMoved      bool      `json:"hasMoved"`
	HasActed      bool      `json:"hasActed"`
	StatusEffects []string  `json:"statusEffects"`
}

func (t Token) Cell() Cell { return Cell{Col: t.Col, Row: t.Row} }

func (t Token) Alive() bool { return t.HP > 0 }

// DisplayName returns the label when present, otherwise the id.
func (t Token) DisplayName() string {
	if t.Label != "" {
		return t.Label
	}
	return t.ID
}
