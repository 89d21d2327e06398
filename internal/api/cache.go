package api

import (
	"encoding/json"
	"sync"
)

// Tag groups cached responses so a mutation can drop every read it affects.
type Tag string

const (
	TagUser       Tag = "User"
	TagTask       Tag = "Task"
	TagNote       Tag = "Note"
	TagAILearning Tag = "AiLearning"
)

type cacheEntry struct {
	tag  Tag
	data json.RawMessage
}

// Cache holds unwrapped GET responses keyed by request path.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Get returns the cached payload for key.
func (cache *Cache) Get(key string) (json.RawMessage, bool) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	entry, ok := cache.entries[key]
	return entry.data, ok
}

// Put stores a payload under key. The last write wins.
func (cache *Cache) Put(key string, tag Tag, data json.RawMessage) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.entries[key] = cacheEntry{tag: tag, data: append(json.RawMessage(nil), data...)}
}

// Invalidate drops every entry provided under tag.
func (cache *Cache) Invalidate(tag Tag) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	for key, entry := range cache.entries {
		if entry.tag == tag {
			delete(cache.entries, key)
		}
	}
}

// Clear drops everything.
func (cache *Cache) Clear() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.entries = make(map[string]cacheEntry)
}

// Len returns the number of cached entries.
func (cache *Cache) Len() int {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	return len(cache.entries)
}
