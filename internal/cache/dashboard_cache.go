package cache

import (
	"encoding/json"
	"time"

	"alcyxob/workout-tracker/internal/stats"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

// minCacheSize is the smallest segment size freecache accepts.
const minCacheSize = 512 * 1024

// DashboardCache keeps the latest dashboard of each user. An entry is only
// valid for the day it was built for.
type DashboardCache interface {
	Get(userID, day string) (*stats.Dashboard, bool)
	Set(userID string, dashboard *stats.Dashboard)
	Invalidate(userID string)
}

type freeDashboardCache struct {
	cache *freecache.Cache
	ttl   time.Duration
}

func NewDashboardCache(sizeMB int, ttl time.Duration) DashboardCache {
	size := sizeMB * 1024 * 1024
	if size < minCacheSize {
		size = minCacheSize
	}
	return &freeDashboardCache{
		cache: freecache.NewCache(size),
		ttl:   ttl,
	}
}

func (c *freeDashboardCache) Get(userID, day string) (*stats.Dashboard, bool) {
	raw, err := c.cache.Get([]byte(userID))
	if err != nil {
		return nil, false
	}

	var dashboard stats.Dashboard
	if err := json.Unmarshal(raw, &dashboard); err != nil {
		log.Warnf("dashboard cache: drop undecodable entry for %s: %v", userID, err)
		c.cache.Del([]byte(userID))
		return nil, false
	}
	if dashboard.Date != day {
		return nil, false
	}
	return &dashboard, true
}

func (c *freeDashboardCache) Set(userID string, dashboard *stats.Dashboard) {
	raw, err := json.Marshal(dashboard)
	if err != nil {
		log.Warnf("dashboard cache: encode for %s: %v", userID, err)
		return
	}
	if err := c.cache.Set([]byte(userID), raw, int(c.ttl.Seconds())); err != nil {
		log.Warnf("dashboard cache: set for %s: %v", userID, err)
	}
}

func (c *freeDashboardCache) Invalidate(userID string) {
	c.cache.Del([]byte(userID))
}

// Noop never caches anything.
type Noop struct{}

func (Noop) Get(string, string) (*stats.Dashboard, bool) { return nil, false }
func (Noop) Set(string, *stats.Dashboard) {}
func (Noop) Invalidate(string) {}
