// Package cache keeps assembled levels in memory in front of a LevelStore.
package cache

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/nickmafra/sym-balls/internal/assembler"
	"github.com/nickmafra/sym-balls/internal/domain"
	"github.com/nickmafra/sym-balls/internal/ports"
	"github.com/nickmafra/sym-balls/internal/telemetry"
)

type entry struct {
	level  *domain.Level
	config *domain.PuzzleConfig
}

// Levels caches loaded levels and their assembled configuration by id. Concurrent misses for the same id
// share a single load and assemble.
//
// Invalidate and Purge bump a generation. A load started under an older
// generation still returns to its callers but is never stored, and later
// misses do not join it.
//
// Safe for concurrent use.
type Levels struct {
	store   ports.LevelStore
	mu      sync.RWMutex
	entries map[string]*entry
	gens    map[string]uint64
	epoch   uint64
	flight  singleflight.Group
}

func NewLevels(store ports.LevelStore) *Levels {
	return &Levels{store: store, entries: make(map[string]*entry), gens: make(map[string]uint64)}
}

// Get returns the cached level or loads and assembles it. Both results are
// shared and must not be modified.
func (c *Levels) Get(ctx context.Context, id string) (*domain.Level, *domain.PuzzleConfig, error) {
	c.mu.RLock()
	e, ok := c.entries[id]
	gen, epoch := c.gens[id], c.epoch
	c.mu.RUnlock()
	if ok {
		telemetry.LevelCacheLookups.WithLabelValues("hit").Inc()
		return e.level, e.config, nil
	}
	telemetry.LevelCacheLookups.WithLabelValues("miss").Inc()

	key := id + "@" + strconv.FormatUint(epoch, 10) + "." + strconv.FormatUint(gen, 10)
	v, err, _ := c.flight.Do(key, func() (interface{}, error) {
		l, err := c.store.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		cfg, err := assembler.Assemble(l.LevelSchema)
		if err != nil {
			return nil, err
		}
		e := &entry{level: l, config: cfg}
		c.mu.Lock()
		if c.gens[id] == gen && c.epoch == epoch {
			c.entries[id] = e
		}
		c.mu.Unlock()
		return e, nil
	})
	if err != nil {
		return nil, nil, err
	}
	e = v.(*entry)
	return e.level, e.config, nil
}

// Invalidate drops one id.
func (c *Levels) Invalidate(id string) {
	c.mu.Lock()
	delete(c.entries, id)
	c.gens[id]++
	c.mu.Unlock()
}

// Purge drops every entry, e.g. after the level directory changed.
func (c *Levels) Purge() {
	c.mu.Lock()
	c.entries = make(map[string]*entry)
	c.gens = make(map[string]uint64)
	c.epoch++
	c.mu.Unlock()
}

// Len reports the number of cached entries.
func (c *Levels) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close releases cached entries. The backing store is owned by the caller.
func (c *Levels) Close() error {
	c.Purge()
	return nil
}
