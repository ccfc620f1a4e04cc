package constants

// Redis key prefixes
const (
	RateLimitIPKeyPrefix = "rate:ip"
)
