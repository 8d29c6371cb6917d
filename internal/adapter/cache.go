package adapter

import (
	"context"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedTranslator memoizes successful translations so a run that appears in
// many names hits the backend once per process. Failures are not cached.
type CachedTranslator struct {
	inner Translator
	cache *lru.Cache[string, string]
}

// NewCachedTranslator wraps inner with an LRU cache of the given size.
func NewCachedTranslator(inner Translator, size int) (*CachedTranslator, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}

	return &CachedTranslator{inner: inner, cache: cache}, nil
}

// Translate returns the cached translation when available, otherwise
// delegates to the wrapped translator and stores the result.
func (c *CachedTranslator) Translate(ctx context.Context, text string) (string, error) {
	if cached, ok := c.cache.Get(text); ok {
		slog.Debug("translation cache hit", "text", text)
		return cached, nil
	}

	translated, err := c.inner.Translate(ctx, text)
	if err != nil {
		return "", err
	}

	c.cache.Add(text, translated)

	return translated, nil
}
