package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/novel-tactics/internal/constants"
	"github.com/ericogr/novel-tactics/internal/game"
	"github.com/ericogr/novel-tactics/internal/service"
)

// CreateEncounter initialises an encounter from the narrative layer's
// request.
func (h *EncounterHandler) CreateEncounter(c *gin.Context) {
	var req game.InitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	rec, err := service.CreateEncounter(h.repo, req, h.settings)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedCreateEncounter)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// CreateFromPreset starts an encounter from a seeded preset.
func (h *EncounterHandler) CreateFromPreset(c *gin.Context) {
	rec, err := service.CreateEncounterFromPreset(h.repo, c.Param(constants.RouteParamPresetKey), h.settings)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedCreateEncounter)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// InjectEncounter replaces the live state with a scripted one.
func (h *EncounterHandler) InjectEncounter(c *gin.Context) {
	id, ok := encounterIDParam(c)
	if !ok {
		return
	}
	var data game.Encounter
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	rec, err := service.ApplyExternal(h.repo, id, data, h.settings)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedUpdateEncounter)
		return
	}
	h.hub.Publish(rec)
	c.JSON(http.StatusOK, rec)
}

// ListPresets returns the presets seeded from configuration.
func (h *EncounterHandler) ListPresets(c *gin.Context) {
	presets, err := h.repo.ListPresets()
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedFetchPresets)
		return
	}
	out, err := MarshalIntoSnakeTimestamps(presets)
	if err != nil {
		writeServiceError(c, err, constants.ErrFailedFetchPresets)
		return
	}
	c.JSON(http.StatusOK, out)
}
