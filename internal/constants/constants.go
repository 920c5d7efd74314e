package constants

// Centralized constants for env keys, routes and API messages.
const (
	// Environment variable keys
	EnvConfigPath = "POOLSTATS_CONFIG"
	EnvDBPath     = "POOLSTATS_DB"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Routes used by the backend router
const (
	RouteAPIPrefix         = "/api"
	RouteVersion           = "/version"
	RouteRecords           = "/records"
	RouteMatches           = "/matches"
	RouteMatchByCode       = "/matches/:matchCode"
	RouteMatchActions      = "/matches/:matchCode/actions"
	RouteMatchUndo         = "/matches/:matchCode/undo"
	RouteMatchReset        = "/matches/:matchCode/reset"
	RouteMatchToggleLabels = "/matches/:matchCode/toggle-labels"
	RouteMatchComplete     = "/matches/:matchCode/complete"
	RouteMatchExport       = "/matches/:matchCode/export"
	RouteMatchStream       = "/matches/:matchCode/stream"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyWarning = "warning"
	JSONKeyMessage = "message"
	JSONKeyCode    = "code"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest     = "Invalid request"
	ErrInvalidMatchCode   = "Invalid match code"
	ErrMatchNotFound      = "Match not found"
	ErrInvalidSide        = "Unknown side"
	ErrInvalidAction      = "Unknown action kind"
	ErrMatchCompleted     = "Match already completed"
	ErrWrongSideShot      = "That side is not at the table"
	ErrIncorrectVisits    = "Action would unbalance the visit counts"
	ErrFailedSaveRecord   = "Failed to save match record"
	ErrFailedFetchRecords = "Failed to fetch match records"

	WarnDuplicateBreak = "Only one break shot allowed!"
	WarnEmptyHistory   = "Cannot undo anymore!"
)

// Logging field names
const (
	LogFieldMatchCode = "match_code"
	LogFieldSide      = "side"
	LogFieldAction    = "action"
	LogFieldAddr      = "addr"
	LogFieldURL       = "url"
	LogFieldRecordID  = "record_id"
)
