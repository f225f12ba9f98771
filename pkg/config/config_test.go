package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvDefaults(t *testing.T) {
	t.Setenv("BAR_DATA_DIR", "")
	t.Setenv("BAR_COCKTAIL_BOOK", "")
	t.Setenv("BAR_INVENTORY", "")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "fixtures/cocktail_book.json", cfg.CocktailBookPath)
	assert.Equal(t, "fixtures/inventory.json", cfg.InventoryPath)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("BAR_DATA_DIR", "/var/lib/bar")
	t.Setenv("BAR_COCKTAIL_BOOK", "/tmp/book.json")
	t.Setenv("BAR_INVENTORY", "/tmp/shelf.json")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/bar", cfg.DataDir)
	assert.Equal(t, "/tmp/book.json", cfg.CocktailBookPath)
	assert.Equal(t, "/tmp/shelf.json", cfg.InventoryPath)
}
