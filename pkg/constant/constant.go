package constant

import "time"

const (
	// MaxLoginAttempts is the number of consecutive failures after which an
	// account is blocked for the remainder of the lockout window.
	MaxLoginAttempts = 5

	// LoginLockoutWindow is the TTL of the failure counter. Refreshed by
	// failures only, never by blocked attempts.
	LoginLockoutWindow = 5 * time.Minute

	// RecentLocationTTL bounds how long the last accepted login country is
	// trusted as the fast path for the anomaly check.
	RecentLocationTTL = 30 * 24 * time.Hour

	// RecentCountryLimit is how many history records the anomaly detector
	// loads when the location cache misses.
	RecentCountryLimit = 10

	// DefaultCompactionInterval is how often the revoked-token set is swept.
	DefaultCompactionInterval = 24 * time.Hour
)

const (
	AttemptKeyPrefix  = "login:fail:"
	LocationKeyPrefix = "login:loc:"
)
