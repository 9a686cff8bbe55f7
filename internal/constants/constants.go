package constants

// Centralized constants for env keys, routes and API messages.
const (
	// Environment variable keys
	EnvConfigPath = "SEEJAM_CONFIG"
	EnvDBPath     = "SEEJAM_DB"

	// Headers
	HeaderUserID = "X-User-ID"
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"

	RouteCards     = "/cards"
	RouteCardByID  = "/cards/:cardID"
	RouteNpcs      = "/npcs"
	RouteEquipment = "/equipment"

	RouteUsers         = "/users"
	RouteUserByID      = "/users/:userID"
	RouteUserDecks     = "/users/:userID/decks"
	RouteUserInventory = "/users/:userID/inventory"
	RouteUserEquip     = "/users/:userID/equip"

	RouteDuels        = "/duels"
	RouteDuelByID     = "/duels/:duelID"
	RouteDuelPlayCard = "/duels/:duelID/play-card"
	RouteDuelEndTurn  = "/duels/:duelID/end-turn"
)

// Common JSON response keys
const (
	JSONKeyError = "error"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest   = "Invalid request"
	ErrAuthRequired     = "Authentication required"
	ErrInvalidDuelID    = "Invalid duel ID"
	ErrInvalidUserID    = "Invalid user ID"
	ErrInvalidCardID    = "Invalid card ID"
	ErrFailedFetchCards = "Failed to fetch cards"
	ErrFailedFetchNpcs  = "Failed to fetch NPCs"
	ErrFailedFetchItems = "Failed to fetch equipment"
	ErrFailedCreateUser = "Failed to create user"
)

// Logging field names
const (
	LogFieldAddr      = "addr"
	LogFieldDuelID    = "duel_id"
	LogFieldUserID    = "user_id"
	LogFieldCardID    = "card_id"
	LogFieldErrorKind = "error_kind"
)
