package engine

import "github.com/ericogr/novel-tactics/internal/game"

// --- Turn context ------------------------------------------------------
// turnContext owns a private copy of the encounter while one action is
// applied. The caller's encounter is never touched.
type turnContext struct {
	enc game.Encounter
}

func newTurnContext(enc game.Encounter) *turnContext {
	return &turnContext{enc: enc.Clone()}
}

func (tc *turnContext) add(msg string) { tc.enc.AppendLog(msg) }

func (tc *turnContext) token(id string) *game.Token { return tc.enc.TokenByID(id) }
