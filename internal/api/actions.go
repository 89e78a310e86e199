package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/novel-tactics/internal/constants"
	"github.com/ericogr/novel-tactics/internal/engine"
	"github.com/ericogr/novel-tactics/internal/service"
)

// ActionRequest is a player action as sent by the UI, e.g.
// {"type":"MOVE","tokenId":"hero","col":5,"row":3}.
type ActionRequest struct {
	Type       engine.ActionType `json:"type" binding:"required"`
	TokenID    string            `json:"tokenId"`
	Col        int               `json:"col"`
	Row        int               `json:"row"`
	AttackerID string            `json:"attackerId"`
	TargetID   string            `json:"targetId"`
}

func (r ActionRequest) action() engine.Action {
	return engine.Action{
		Type:       r.Type,
		TokenID:    r.TokenID,
		Col:        r.Col,
		Row:        r.Row,
		AttackerID: r.AttackerID,
		TargetID:   r.TargetID,
	}
}

// DispatchAction applies a MOVE, ATTACK or END_TURN from the UI.
func (h *EncounterHandler) DispatchAction(c *gin.Context) {
	id, ok := encounterIDParam(c)
	if !ok {
		return
	}
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	rec, err := service.DispatchAction(h.repo, id, req.action(), h.settings)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedUpdateEncounter)
		return
	}
	h.hub.Publish(rec)
	c.JSON(http.StatusOK, rec)
}

// Retreat ends the encounter with an escape.
func (h *EncounterHandler) Retreat(c *gin.Context) {
	id, ok := encounterIDParam(c)
	if !ok {
		return
	}
	rec, err := service.Retreat(h.repo, id, h.settings)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedUpdateEncounter)
		return
	}
	h.hub.Publish(rec)
	c.JSON(http.StatusOK, rec)
}
