package constants

// Context keys
const (
	ContextTokenData = "token_data"
)

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Defaults for the occupancy rules; overridable via config.
const (
	DefaultReservationWindowSeconds = 300
	DefaultSweepIntervalSeconds     = 60
	DefaultMinVisitMinutes          = 3
	DefaultHistoryQueryLimit        = 100
	DefaultChatRecentLimit          = 50
)

// Redis pub/sub channels
const (
	ChannelRoomsUpdated = "rooms:updated"
	ChannelChatPosted   = "chat:messages"
)
