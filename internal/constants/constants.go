package constants

import "time"

const (
	GameID      = "lol"
	MaxAttempts = 8
)

const (
	RosterCacheTTL = 30 * time.Minute
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	SearchSuggestionLimit = 5
	MinSearchTermLength   = 2
	MaxHistorySize        = 100
)
