package leaderboard

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/osse101/ApexPredict_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedSeasonEntry wraps a season leaderboard page with version metadata
type cachedSeasonEntry struct {
	Version  string                          `json:"version"`
	Entries  []domain.SeasonLeaderboardEntry `json:"entries"`
	CachedAt time.Time                       `json:"cached_at"`
}

// seasonCache provides an in-memory LRU cache for season leaderboard reads
// with time-based expiration and version-based invalidation to prevent stale data.
type seasonCache struct {
	lru *expirable.LRU[string, *cachedSeasonEntry]
}

// newSeasonCache creates a new season leaderboard cache.
// size: maximum number of cached (season, category) pages
// ttl: time-to-live for cached entries
func newSeasonCache(size int, ttl time.Duration) *seasonCache {
	return &seasonCache{
		lru: expirable.NewLRU[string, *cachedSeasonEntry](size, nil, ttl),
	}
}

// Get retrieves a season leaderboard page from the cache.
// Returns (entries, true) if found and version matches.
// Automatically invalidates entries with mismatched versions.
func (c *seasonCache) Get(season, category string) ([]domain.SeasonLeaderboardEntry, bool) {
	key := season + ":" + category
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}

	return entry.Entries, true
}

// Set stores a season leaderboard page with current schema version.
func (c *seasonCache) Set(season, category string, entries []domain.SeasonLeaderboardEntry) {
	key := season + ":" + category
	c.lru.Add(key, &cachedSeasonEntry{
		Version:  CacheSchemaVersion,
		Entries:  entries,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a season leaderboard page from the cache.
// Called after new results land or a recount runs.
func (c *seasonCache) Invalidate(season, category string) {
	c.lru.Remove(season + ":" + category)
}

// Clear removes all entries from the cache.
func (c *seasonCache) Clear() {
	c.lru.Purge()
}
