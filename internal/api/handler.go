package api

import (
	"github.com/ericogr/novel-tactics/internal/service"
	"github.com/ericogr/novel-tactics/internal/storage"
)

// EncounterHandler groups all encounter-related HTTP handlers.
type EncounterHandler struct {
	repo     storage.Repository
	settings service.Settings
	hub      *StreamHub
}

// NewEncounterHandler creates a new EncounterHandler. hub may be nil when no
// live stream is served.
func NewEncounterHandler(repo storage.Repository, settings service.Settings, hub *StreamHub) *EncounterHandler {
	return &EncounterHandler{repo: repo, settings: settings, hub: hub}
}
