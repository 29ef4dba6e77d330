package mylog

import (
	"time"

	"github.com/agilira/go-timecache"
)

// clock supplies the wall-clock timestamp recorded in a formatted log line.
// Calling time.Now() on every record is the dominant cost of formatting
// under sustained log storms, so records are stamped from a background-
// refreshed cache instead, the same trick the sibling rotation library in
// this lineage (agilira/lethe) uses for its own hot path.
type clock struct {
	cache *timecache.TimeCache
}

// newClock starts a cache refreshed at one-second resolution: the wire
// format only carries HH:MM:SS, so sub-second precision would be wasted.
func newClock() *clock {
	return &clock{cache: timecache.NewWithResolution(time.Second)}
}

func (c *clock) now() time.Time {
	return c.cache.CachedTime()
}

func (c *clock) stop() {
	c.cache.Stop()
}
