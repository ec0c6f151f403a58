package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateStartsOnDefaults(t *testing.T) {
	store := NewStore()

	sess := store.Create("openai/gpt-4o-mini")

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "Starter", sess.Plan)
	assert.Equal(t, "Pesquisa Geral", sess.Persona)
	assert.Equal(t, "openai/gpt-4o-mini", sess.Model)
	assert.False(t, sess.ShowPlans)
	assert.Empty(t, sess.Messages)

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)
}

func TestStoreDeleteEndsSession(t *testing.T) {
	store := NewStore()
	sess := store.Create("m")

	store.Delete(sess.ID)

	_, ok := store.Get(sess.ID)
	assert.False(t, ok)
}

func TestStoreGetUnknown(t *testing.T) {
	store := NewStore()
	_, ok := store.Get("missing")
	assert.False(t, ok)
}
