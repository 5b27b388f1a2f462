package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// Cache is a read-through cache for the aggregate read models. Entries are
// keyed by (operation, recipient scope, query params) and expire after a
// short TTL. Invalidate drops every entry of one scope at once; correctness
// is preferred over hit rate, so there is no fine-grained patching.
type Cache interface {
	Get(ctx context.Context, scope Scope, op string, params string, dest interface{}) (bool, error)
	Set(ctx context.Context, scope Scope, op string, params string, value interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, scope Scope) error
}

// Scope invalidation works by versioning: every key embeds the scope's
// current version, and invalidating bumps the version so all previous keys
// become unreachable and age out via their TTL.
func cacheKey(scope Scope, version int64, op string, params string) string {
	return fmt.Sprintf("notifications:%s:%s:%s:v%d:%s", op, scope.RecipientID, scope.Role, version, params)
}

func scopeVersionKey(scope Scope) string {
	return fmt.Sprintf("notifications:ver:%s:%s", scope.RecipientID, scope.Role)
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryCache is the in-process Cache used by tests and by deployments
// without Redis. Entries of an invalidated scope are dropped eagerly, and
// expired entries are swept on every write, so the maps stay bounded in a
// long-running process.
type MemoryCache struct {
	mu       sync.Mutex
	entries  map[string]memoryEntry
	versions map[string]int64
	byScope  map[string]map[string]struct{} // version key -> live cache keys
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries:  make(map[string]memoryEntry),
		versions: make(map[string]int64),
		byScope:  make(map[string]map[string]struct{}),
	}
}

func (c *MemoryCache) Get(ctx context.Context, scope Scope, op string, params string, dest interface{}) (bool, error) {
	c.mu.Lock()
	key := cacheKey(scope, c.versions[scopeVersionKey(scope)], op, params)
	entry, ok := c.entries[key]
	if ok && time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(entry.data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *MemoryCache) Set(ctx context.Context, scope Scope, op string, params string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.sweepExpiredLocked(time.Now())

	verKey := scopeVersionKey(scope)
	key := cacheKey(scope, c.versions[verKey], op, params)
	c.entries[key] = memoryEntry{data: data, expiresAt: time.Now().Add(ttl)}
	if c.byScope[verKey] == nil {
		c.byScope[verKey] = make(map[string]struct{})
	}
	c.byScope[verKey][key] = struct{}{}
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Invalidate(ctx context.Context, scope Scope) error {
	c.mu.Lock()
	verKey := scopeVersionKey(scope)
	for key := range c.byScope[verKey] {
		delete(c.entries, key)
	}
	delete(c.byScope, verKey)
	c.versions[verKey]++
	c.mu.Unlock()
	return nil
}

// sweepExpiredLocked drops every entry past its TTL. Every entry is
// registered in byScope, so walking those sets covers the whole cache.
func (c *MemoryCache) sweepExpiredLocked(now time.Time) {
	for verKey, keys := range c.byScope {
		for key := range keys {
			if entry, ok := c.entries[key]; !ok || now.After(entry.expiresAt) {
				delete(c.entries, key)
				delete(keys, key)
			}
		}
		if len(keys) == 0 {
			delete(c.byScope, verKey)
		}
	}
}
