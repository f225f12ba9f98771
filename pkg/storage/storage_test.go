package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestSetAndGet(t *testing.T) {
	store := newTestStore(t)

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, store.Set("test:one", record{Name: "gin", Count: 2}))

	var got record
	require.NoError(t, store.Get("test:one", &got))
	assert.Equal(t, record{Name: "gin", Count: 2}, got)
}

func TestGetMissingKey(t *testing.T) {
	store := newTestStore(t)

	var got string
	err := store.Get("missing", &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("test:gone", "value"))
	require.NoError(t, store.Delete("test:gone"))

	var got string
	assert.ErrorIs(t, store.Get("test:gone", &got), ErrNotFound)
}

func TestListByPrefix(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("cocktail:Gimlet", "a"))
	require.NoError(t, store.Set("cocktail:Martini", "b"))
	require.NoError(t, store.Set("inventory:gin", "c"))

	keys, err := store.List("cocktail:")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"cocktail:Gimlet", "cocktail:Martini"}, keys)
}
