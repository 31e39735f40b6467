package memory

import (
	"sync"

	"github.com/custodia-labs/resrank/internal/core/domain"
	"github.com/custodia-labs/resrank/internal/core/ports/driven"
)

// Ensure ExtractionCache implements the interface.
var _ driven.ExtractionCache = (*ExtractionCache)(nil)

// ExtractionCache is an unbounded in-memory driven.ExtractionCache.
// Entries are copied on the way in and out.
type ExtractionCache struct {
	mu      sync.RWMutex
	entries map[string]domain.Extraction
}

// NewExtractionCache creates an empty cache.
func NewExtractionCache() *ExtractionCache {
	return &ExtractionCache{
		entries: make(map[string]domain.Extraction),
	}
}

// Get returns the cached extraction for key.
func (c *ExtractionCache) Get(key string) (*domain.Extraction, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return &e, true
}

// Put stores an extraction under key. Nil extractions are ignored.
func (c *ExtractionCache) Put(key string, extraction *domain.Extraction) {
	if extraction == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = *extraction
}

// Len returns the number of cached entries.
func (c *ExtractionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
