package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ericogr/novel-tactics/internal/constants"
	"github.com/ericogr/novel-tactics/internal/engine"
	"github.com/ericogr/novel-tactics/internal/game"
	"github.com/ericogr/novel-tactics/internal/logging"
	"github.com/ericogr/novel-tactics/internal/service"
)

// writeServiceError maps service, engine and validation errors to HTTP
// responses. Unknown errors are logged and reported as fallback with 500.
func writeServiceError(c *gin.Context, err error, fallback string) {
	var rej *engine.RejectionError
	var ve *game.ValidationError
	switch {
	case errors.As(err, &rej):
		msg := constants.ErrActionRejected
		if rej.Action == engine.ActionRetreat && rej.Reason == engine.ReasonNotPlayerPhase {
			msg = constants.ErrRetreatNotAllowed
		}
		c.JSON(http.StatusConflict, gin.H{
			constants.JSONKeyError:   msg,
			constants.JSONKeyReason:  string(rej.Reason),
			constants.JSONKeyDetails: rej.Error(),
		})
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{
			constants.JSONKeyError:   constants.ErrInvalidEncounterPayload,
			constants.JSONKeyDetails: ve.Problems,
		})
	case errors.Is(err, service.ErrEncounterNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrEncounterNotFound})
	case errors.Is(err, service.ErrPresetNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrPresetNotFound})
	case errors.Is(err, service.ErrEncounterComplete):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrEncounterComplete})
	case errors.Is(err, service.ErrEncounterStillRunning):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrEncounterStillRunning})
	case errors.Is(err, service.ErrNotEnemyTurn):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrNotEnemyTurn})
	case errors.Is(err, service.ErrConcurrentUpdate):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
	case errors.Is(err, service.ErrActionNotAllowed):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrActionNotAllowed})
	default:
		logging.Error(fallback, err, logging.Fields{constants.LogFieldSource: c.FullPath()})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: fallback})
	}
}
