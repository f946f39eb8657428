package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/paralint/internal/jsonvalue"
	"github.com/erraggy/paralint/linterrors"
)

// payloadInput represents the two ways a request payload can be provided to
// a tool. Exactly one of File or Content must be set.
type payloadInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON payload file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline JSON payload"`
}

// cacheEntry holds a decoded payload with LRU ordering and TTL expiry.
type cacheEntry struct {
	value     *jsonvalue.Value
	insertAt  time.Time
	expiresAt time.Time
}

// payloadCacheStore provides a session-scoped cache for decoded payloads.
// File inputs are keyed by (absolutePath, modTime). Content inputs are keyed
// by a SHA-256 hash. A background sweeper removes expired entries.
type payloadCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var payloadCache = &payloadCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached value or nil. Expired entries are lazily removed.
func (c *payloadCacheStore) get(key string) *jsonvalue.Value {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e.value
	}
	return nil
}

// put stores a value with the given TTL, evicting the least recently used
// entry if at capacity.
func (c *payloadCacheStore) put(key string, value *jsonvalue.Value, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{value: value, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *payloadCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a goroutine that periodically removes expired
// entries until ctx is cancelled. Only the first call spawns a sweeper.
func (c *payloadCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries and applies the configured size. Used at
// startup and in tests.
func (c *payloadCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
	c.maxSize = max(cfg.CacheMaxSize, 1)
}

// size returns the number of cached entries.
func (c *payloadCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given input, or "" when the
// input cannot be keyed.
func makeCacheKey(p payloadInput) string {
	switch {
	case p.File != "":
		absPath, err := filepath.Abs(p.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case p.Content != "":
		h := sha256.Sum256([]byte(p.Content))
		return "content:" + hex.EncodeToString(h[:])
	default:
		return ""
	}
}

// resolve decodes the payload from whichever input was provided, using the
// cache when enabled.
func (p payloadInput) resolve() (*jsonvalue.Value, error) {
	if (p.File == "") == (p.Content == "") {
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
	if p.Content != "" && int64(len(p.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set PARALINT_MCP__MAX_INLINE_SIZE to increase",
			len(p.Content), cfg.MaxInlineSize)
	}

	var key string
	if cfg.CacheEnabled {
		key = makeCacheKey(p)
	}
	if key != "" {
		if cached := payloadCache.get(key); cached != nil {
			return cached, nil
		}
	}

	data := []byte(p.Content)
	if p.File != "" {
		var err error
		data, err = os.ReadFile(p.File)
		if err != nil {
			return nil, &linterrors.ParseError{Source: p.File, Message: "failed to read input", Cause: err}
		}
	}
	v, err := jsonvalue.Parse(data)
	if err != nil {
		return nil, &linterrors.ParseError{Source: p.File, Message: "invalid JSON", Cause: err}
	}

	if key != "" {
		payloadCache.put(key, &v, cfg.CacheTTL)
	}
	return &v, nil
}
