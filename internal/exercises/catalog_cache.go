package exercises

import (
	"errors"

	"github.com/2beens/workoutplanner/internal/telemetry/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const catalogCacheSize = 8 * 1024 * 1024

// CatalogCache holds rendered exercise listings. Any exercise or detail
// write clears it. A nil *CatalogCache is a valid, always-missing cache.
type CatalogCache struct {
	cache          *freecache.Cache
	ttlSeconds     int
	metricsManager *metrics.Manager
}

// NewCatalogCache returns nil when ttlSeconds is not positive, which
// disables caching.
func NewCatalogCache(ttlSeconds int, metricsManager *metrics.Manager) *CatalogCache {
	if ttlSeconds <= 0 {
		return nil
	}
	return &CatalogCache{
		cache:          freecache.NewCache(catalogCacheSize),
		ttlSeconds:     ttlSeconds,
		metricsManager: metricsManager,
	}
}

func (c *CatalogCache) Get(key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	val, err := c.cache.Get([]byte(key))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Warnf("catalog cache get [%s]: %s", key, err)
		}
		c.count("miss")
		return nil, false
	}

	c.count("hit")
	return val, true
}

func (c *CatalogCache) Set(key string, val []byte) {
	if c == nil {
		return
	}
	if err := c.cache.Set([]byte(key), val, c.ttlSeconds); err != nil {
		// entry larger than the segment size; serve uncached
		log.Warnf("catalog cache set [%s]: %s", key, err)
	}
}

func (c *CatalogCache) Clear() {
	if c == nil {
		return
	}
	c.cache.Clear()
	c.count("clear")
}

func (c *CatalogCache) count(result string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterCatalogCache.WithLabelValues(result).Inc()
	}
}
