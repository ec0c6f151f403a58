package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	models   []string
	err      error
	calls    int
	lastKeys []string
}

func (f *fakeLister) ListModels(ctx context.Context, apiKey string) ([]string, error) {
	f.calls++
	f.lastKeys = append(f.lastKeys, apiKey)
	return f.models, f.err
}

func TestLoaderEmptyKeySkipsNetwork(t *testing.T) {
	lister := &fakeLister{models: []string{"openai/gpt-4o"}}
	l := NewLoader(lister)

	models := l.Load(context.Background(), "")

	assert.Equal(t, DefaultModels, models)
	assert.Equal(t, 0, lister.calls)
}

func TestLoaderReturnsRemoteCatalog(t *testing.T) {
	lister := &fakeLister{models: []string{"a/one", "b/two"}}
	l := NewLoader(lister)

	models := l.Load(context.Background(), "sk-test")

	assert.Equal(t, []string{"a/one", "b/two"}, models)
}

func TestLoaderFallsBackOnError(t *testing.T) {
	lister := &fakeLister{err: errors.New("connection refused")}
	l := NewLoader(lister)

	models := l.Load(context.Background(), "sk-test")

	assert.Equal(t, DefaultModels, models)
}

func TestLoaderFallsBackOnEmptyCatalog(t *testing.T) {
	lister := &fakeLister{models: []string{}}
	l := NewLoader(lister)

	models := l.Load(context.Background(), "sk-test")

	assert.Equal(t, DefaultModels, models)
}

func TestLoaderMemoizesPerKey(t *testing.T) {
	lister := &fakeLister{models: []string{"a/one"}}
	l := NewLoader(lister)

	first := l.Load(context.Background(), "sk-test")
	second := l.Load(context.Background(), "sk-test")

	require.Equal(t, first, second)
	assert.Equal(t, 1, lister.calls)
}

func TestLoaderMemoizesFallbackToo(t *testing.T) {
	lister := &fakeLister{err: errors.New("timeout")}
	l := NewLoader(lister)

	l.Load(context.Background(), "sk-test")
	models := l.Load(context.Background(), "sk-test")

	assert.Equal(t, DefaultModels, models)
	assert.Equal(t, 1, lister.calls)
}

func TestLoaderDistinctKeysLoadSeparately(t *testing.T) {
	lister := &fakeLister{models: []string{"a/one"}}
	l := NewLoader(lister)

	l.Load(context.Background(), "sk-a")
	l.Load(context.Background(), "sk-b")

	assert.Equal(t, 2, lister.calls)
}

func TestLoaderFetchesWithTheKeyItCaches(t *testing.T) {
	lister := &fakeLister{models: []string{"a/one"}}
	l := NewLoader(lister)

	l.Load(context.Background(), "sk-a")
	l.Load(context.Background(), "sk-b")

	assert.Equal(t, []string{"sk-a", "sk-b"}, lister.lastKeys)
}

func TestDefaultCatalogHasFourEntries(t *testing.T) {
	require.Len(t, DefaultModels, 4)
	assert.Equal(t, "google/gemini-2.0-flash-001", DefaultModels[0])
}
