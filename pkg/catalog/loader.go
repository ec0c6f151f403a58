package catalog

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kiraxlabs/kirax/pkg/llm"
)

// DefaultModels is the catalog offered when the provider cannot be reached
// or no credential is configured.
var DefaultModels = []string{
	"google/gemini-2.0-flash-001",
	"anthropic/claude-3.5-sonnet",
	"openai/gpt-4o-mini",
	"deepseek/deepseek-chat",
}

// Loader fetches the provider catalog and memoizes the result per API key.
// Load never fails: every error path substitutes DefaultModels, and the
// substituted result is cached like any other so a key triggers at most one
// remote call per process lifetime.
type Loader struct {
	lister llm.ModelLister
	cache  *lru.Cache[string, []string]
}

func NewLoader(lister llm.ModelLister) *Loader {
	// Cache size is generous: in practice a process sees a single key.
	cache, _ := lru.New[string, []string](16)
	return &Loader{lister: lister, cache: cache}
}

// Load returns the ordered model catalog for the given key. An empty key
// skips the network entirely and yields DefaultModels.
func (l *Loader) Load(ctx context.Context, apiKey string) []string {
	if apiKey == "" {
		return defaults()
	}
	if cached, ok := l.cache.Get(apiKey); ok {
		return cached
	}
	models, err := l.lister.ListModels(ctx, apiKey)
	if err != nil || len(models) == 0 {
		models = defaults()
	}
	l.cache.Add(apiKey, models)
	return models
}

func defaults() []string {
	out := make([]string, len(DefaultModels))
	copy(out, DefaultModels)
	return out
}
