package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/novel-tactics/internal/constants"
	"github.com/ericogr/novel-tactics/internal/engine"
	"github.com/ericogr/novel-tactics/internal/game"
	"github.com/ericogr/novel-tactics/internal/service"
	"github.com/ericogr/novel-tactics/internal/storage"
)

func (h *EncounterHandler) load(c *gin.Context) (*game.EncounterRecord, bool) {
	id, ok := encounterIDParam(c)
	if !ok {
		return nil, false
	}
	rec, err := h.repo.GetEncounterByID(id)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && rec == nil) {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrEncounterNotFound})
		return nil, false
	}
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedFetchEncounter)
		return nil, false
	}
	return rec, true
}

func (h *EncounterHandler) loadToken(c *gin.Context) (*game.EncounterRecord, *game.Token, bool) {
	rec, ok := h.load(c)
	if !ok {
		return nil, nil, false
	}
	tok := rec.State.TokenByID(c.Param(constants.RouteParamTokenID))
	if tok == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrTokenNotFound})
		return nil, nil, false
	}
	return rec, tok, true
}

// GetEncounter returns the current state of an encounter.
func (h *EncounterHandler) GetEncounter(c *gin.Context) {
	rec, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ReachableCells lists the cells the token could move to, for highlighting.
func (h *EncounterHandler) ReachableCells(c *gin.Context) {
	rec, tok, ok := h.loadToken(c)
	if !ok {
		return
	}
	enc := rec.State
	cells := engine.ReachableCells(*tok, enc.Tokens, enc.Terrain, enc.GridCols, enc.GridRows)
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyCells: cells})
}

// AttackableTargets lists the tokens the token could attack right now.
func (h *EncounterHandler) AttackableTargets(c *gin.Context) {
	rec, tok, ok := h.loadToken(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyTargets: engine.AttackableTargets(*tok, rec.State.Tokens)})
}

// GetOutcome returns the completion report once the encounter has ended.
func (h *EncounterHandler) GetOutcome(c *gin.Context) {
	id, ok := encounterIDParam(c)
	if !ok {
		return
	}
	o, err := service.GetOutcome(h.repo, id)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedFetchOutcome)
		return
	}
	out, err := MarshalIntoSnakeTimestamps(o)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedFetchOutcome)
		return
	}
	c.JSON(http.StatusOK, out)
}
