package constants

// Centralized constants for headers, env keys, routes and log fields.
const (
	// Environment variable keys
	EnvConfigPath       = "NOVEL_TACTICS_CONFIG"
	EnvDatabaseDSN      = "NOVEL_TACTICS_DB"
	EnvListenAddr       = "NOVEL_TACTICS_ADDR"
	EnvNarrativeSecret  = "NOVEL_TACTICS_NARRATIVE_SECRET"
	EnvWorkerID         = "NOVEL_TACTICS_WORKER_ID"
	EnvLogLevel         = "NOVEL_TACTICS_LOG_LEVEL"
	DefaultConfigPath   = "./novel_tactics.yaml"
	DefaultDatabaseDSN  = "novel_tactics.db"
	DefaultListenAddr   = ":8080"
	DefaultSummaryLines = 5

	// HTTP headers and content types
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"

	ContentTypeJSON = "application/json"

	CacheControlHeader  = "Cache-Control"
	CacheControlNoCache = "no-cache, no-store, must-revalidate"

	// Authorization prefix
	BearerPrefix = "Bearer "

	// Narrative-layer token claims
	NarrativeIssuer   = "novel-tactics"
	NarrativeAudience = "narrative"
)

// Routes used by the backend router
const (
	RouteAPIPrefix            = "/api"
	RouteVersion              = "/version"
	RoutePresets              = "/presets"
	RouteEncounters           = "/encounters"
	RouteEncounterFromPreset  = "/presets/:presetKey/encounters"
	RouteEncounterByID        = "/encounters/:encounterID"
	RouteEncounterInject      = "/encounters/:encounterID/inject"
	RouteEncounterActions     = "/encounters/:encounterID/actions"
	RouteEncounterRetreat     = "/encounters/:encounterID/retreat"
	RouteEncounterReachable   = "/encounters/:encounterID/tokens/:tokenID/reachable"
	RouteEncounterTargets     = "/encounters/:encounterID/tokens/:tokenID/targets"
	RouteEncounterOutcome     = "/encounters/:encounterID/outcome"
	RouteEncounterStream      = "/encounters/:encounterID/stream"
	RouteParamEncounterID     = "encounterID"
	RouteParamTokenID         = "tokenID"
	RouteParamPresetKey       = "presetKey"
	DefaultHealthcheckAddress = "http://127.0.0.1:8080"
)

// Common JSON response keys
const (
	JSONKeyError     = "error"
	JSONKeyMessage   = "message"
	JSONKeyDetails   = "details"
	JSONKeyReason    = "reason"
	JSONKeyStatus    = "status"
	JSONKeyEncounter = "encounter"
	JSONKeyCells     = "cells"
	JSONKeyTargets   = "targets"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest          = "Invalid request"
	ErrInvalidEncounterID      = "Invalid encounter ID"
	ErrEncounterNotFound       = "Encounter not found"
	ErrEncounterComplete       = "Encounter is already complete"
	ErrEncounterStillRunning   = "Encounter is still running"
	ErrPresetNotFound          = "Preset not found"
	ErrTokenNotFound           = "Token not found"
	ErrActionRejected          = "Action rejected"
	ErrActionNotAllowed        = "Action type is not accepted on this route"
	ErrNotEnemyTurn            = "Active token is not an enemy"
	ErrRetreatNotAllowed       = "Retreat is only allowed during the player phase"
	ErrInvalidEncounterPayload = "Invalid encounter"
	ErrFailedCreateEncounter   = "Failed to create encounter"
	ErrFailedUpdateEncounter   = "Failed to update encounter"
	ErrFailedFetchEncounter    = "Failed to fetch encounter"
	ErrFailedFetchPresets      = "Failed to fetch presets"
	ErrFailedFetchOutcome      = "Failed to fetch outcome"

	ErrAuthRequired = "Authentication required"
	ErrInvalidToken = "Invalid token"
)

// Logging field names
const (
	LogFieldEncounterID = "encounter_id"
	LogFieldTokenID     = "token_id"
	LogFieldAction      = "action"
	LogFieldReason      = "reason"
	LogFieldResult      = "result"
	LogFieldRound       = "round"
	LogFieldRevision    = "revision"
	LogFieldPresetKey   = "preset_key"
	LogFieldWorkerID    = "worker_id"
	LogFieldCount       = "count"
	LogFieldSource      = "source"
	LogFieldName        = "name"
	LogFieldKey         = "key"
	LogFieldAddr        = "addr"
)
