// Package eventcache remembers recently handled webhook event IDs so that
// redelivered events are processed once.
package eventcache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// DefaultTTL is how long a handled event ID is remembered.
const DefaultTTL = 10 * time.Minute

// EventCache is safe for concurrent use.
type EventCache struct {
	cache *cache.Cache
}

// New creates an EventCache. A non-positive ttl uses DefaultTTL.
func New(ttl time.Duration) *EventCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &EventCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

// MarkHandled records eventID and reports whether it was new. Empty IDs are
// always treated as new since they cannot be deduplicated.
func (e *EventCache) MarkHandled(eventID string) bool {
	if eventID == "" {
		return true
	}
	// Add fails when the key is already present and unexpired.
	return e.cache.Add(eventID, struct{}{}, cache.DefaultExpiration) == nil
}

// Forget removes eventID so a later delivery is processed again.
func (e *EventCache) Forget(eventID string) {
	e.cache.Delete(eventID)
}
