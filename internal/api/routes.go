package api

import (
	"github.com/gin-gonic/gin"

	"github.com/ericogr/novel-tactics/internal/constants"
)

// RegisterRoutes mounts every encounter endpoint under /api. Routes used by
// the narrative layer go through narrativeAuth; UI routes are open.
func RegisterRoutes(r *gin.Engine, h *EncounterHandler, narrativeAuth gin.HandlerFunc) {
	api := r.Group(constants.RouteAPIPrefix)
	api.GET(constants.RouteVersion, Version)
	api.GET(constants.RoutePresets, h.ListPresets)

	narrative := api.Group("")
	if narrativeAuth != nil {
		narrative.Use(narrativeAuth)
	}
	narrative.POST(constants.RouteEncounters, h.CreateEncounter)
	narrative.POST(constants.RouteEncounterFromPreset, h.CreateFromPreset)
	narrative.POST(constants.RouteEncounterInject, h.InjectEncounter)
	narrative.GET(constants.RouteEncounterOutcome, h.GetOutcome)

	api.GET(constants.RouteEncounterByID, h.GetEncounter)
	api.POST(constants.RouteEncounterActions, h.DispatchAction)
	api.POST(constants.RouteEncounterRetreat, h.Retreat)
	api.GET(constants.RouteEncounterReachable, h.ReachableCells)
	api.GET(constants.RouteEncounterTargets, h.AttackableTargets)
	api.GET(constants.RouteEncounterStream, h.Stream)
}
