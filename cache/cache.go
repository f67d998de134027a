package cache

import "time"

// Store is the narrow key/value surface the server needs. Implementations
// must be safe for concurrent use.
type Store interface {
	// Get returns the cached bytes for key, or ok=false on a miss. A
	// backend error is reported as an error and treated by callers as a
	// miss.
	Get(key string) ([]byte, bool, error)
	// Set stores val under key for the given TTL.
	Set(key string, val []byte, ttl time.Duration) error
}

// Key derives the cache key for one endpoint and format. The layout is
// path + "-" + format, e.g. "/gtfs/realtime/trip-updates.pbf-json".
func Key(path, format string) string {
	return path + "-" + format
}
