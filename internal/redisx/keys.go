package redisx

import "time"

const (
	// Access token of a browser session: session:{sid}:access -> "Bearer ..."
	KeyAccessToken = "session:%s:access"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	// Used when the access token carries no readable exp claim.
	TTLAccessToken = 20 * time.Minute
	TTLDedup       = 48 * time.Hour
)
