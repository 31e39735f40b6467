package extractors

import (
	"context"

	"github.com/custodia-labs/resrank/internal/core/domain"
	"github.com/custodia-labs/resrank/internal/core/ports/driven"
	"github.com/custodia-labs/resrank/internal/metrics"
)

// Ensure CachingRegistry implements the interface.
var _ driven.ExtractorRegistry = (*CachingRegistry)(nil)

// CachingRegistry memoises another registry's successful extractions by
// format and content hash. Failures are not cached.
type CachingRegistry struct {
	next  driven.ExtractorRegistry
	cache driven.ExtractionCache
}

// NewCachingRegistry wraps next with cache.
func NewCachingRegistry(next driven.ExtractorRegistry, cache driven.ExtractionCache) *CachingRegistry {
	return &CachingRegistry{next: next, cache: cache}
}

// CacheKey returns the cache key for content in format.
func CacheKey(format domain.Format, content []byte) string {
	return format.String() + ":" + domain.ContentHash(content)
}

// Extract returns the cached extraction or delegates and caches the result.
func (r *CachingRegistry) Extract(ctx context.Context, content []byte, format domain.Format) (*domain.Extraction, error) {
	key := CacheKey(format, content)
	if cached, ok := r.cache.Get(key); ok {
		metrics.ExtractionCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.ExtractionCacheTotal.WithLabelValues("miss").Inc()

	extraction, err := r.next.Extract(ctx, content, format)
	if err != nil {
		return nil, err
	}
	r.cache.Put(key, extraction)
	return extraction, nil
}

// Register adds an extractor to the wrapped registry.
// Entries cached for its format stay valid: extraction is pure.
func (r *CachingRegistry) Register(extractor driven.Extractor) {
	r.next.Register(extractor)
}

// Formats returns the wrapped registry's formats.
func (r *CachingRegistry) Formats() []domain.Format {
	return r.next.Formats()
}
