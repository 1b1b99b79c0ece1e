// Package cache is a small in-process byte cache with a fixed time to live.
package cache

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"
	"time"

	"github.com/allegro/bigcache/v3"
)

const headerSize = 8

// Cache stores byte values for a fixed TTL. Expiry is checked on read, so a
// stale entry is never returned even before bigcache evicts it.
//
// Every Reset bumps a generation number. Readers that load from the backing
// store record the generation first and write back with SetIfGeneration, so a
// value read before a Reset is never cached after it.
type Cache struct {
	store *bigcache.BigCache
	ttl   time.Duration
	now   func() time.Time

	mu  sync.RWMutex
	gen uint64
}

func New(ctx context.Context, ttl time.Duration) (*Cache, error) {
	if ttl <= 0 {
		return nil, errors.New("cache: ttl must be positive")
	}
	cfg := bigcache.DefaultConfig(ttl)
	cfg.Shards = 16
	cfg.CleanWindow = ttl
	cfg.Verbose = false
	store, err := bigcache.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Cache{store: store, ttl: ttl, now: time.Now}, nil
}

func (c *Cache) Get(key string) ([]byte, bool) {
	raw, err := c.store.Get(key)
	if err != nil || len(raw) < headerSize {
		return nil, false
	}
	storedAt := time.Unix(0, int64(binary.BigEndian.Uint64(raw[:headerSize])))
	if c.now().Sub(storedAt) >= c.ttl {
		_ = c.store.Delete(key)
		return nil, false
	}
	out := make([]byte, len(raw)-headerSize)
	copy(out, raw[headerSize:])
	return out, true
}

func (c *Cache) Set(key string, val []byte) error {
	buf := make([]byte, headerSize+len(val))
	binary.BigEndian.PutUint64(buf[:headerSize], uint64(c.now().UnixNano()))
	copy(buf[headerSize:], val)
	return c.store.Set(key, buf)
}

func (c *Cache) Delete(key string) error {
	err := c.store.Delete(key)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return nil
	}
	return err
}

// Generation returns the number of Resets so far.
func (c *Cache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// SetIfGeneration stores val only if no Reset happened since gen was read.
// It reports whether the value was stored.
func (c *Cache) SetIfGeneration(key string, val []byte, gen uint64) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.gen != gen {
		return false, nil
	}
	if err := c.Set(key, val); err != nil {
		return false, err
	}
	return true, nil
}

// Reset drops every entry and starts a new generation.
func (c *Cache) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	return c.store.Reset()
}

func (c *Cache) Close() error {
	return c.store.Close()
}
