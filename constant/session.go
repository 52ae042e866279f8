package constant

import "time"

// Session storage keys
const (
	// SessionTokenKey holds the bearer token
	SessionTokenKey = "token"
	// SessionUserKey holds the serialized current user
	SessionUserKey = "user"
)

// Cache configuration for the in-memory session store
const (
	// CacheNumCounters is the number of keys to track frequency
	CacheNumCounters = 1e4
	// CacheMaxCost is the maximum cost of cache (1MB)
	CacheMaxCost = 1 << 20
	// CacheBufferItems is the number of keys per Get buffer
	CacheBufferItems = 64
	// NoExpiry keeps session entries until they are removed
	NoExpiry time.Duration = 0
)

// RedactedHashLength is how many hex characters of the token hash appear in logs
const RedactedHashLength = 12
