package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korjavin/homebar/pkg/models"
	"github.com/korjavin/homebar/pkg/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	store, err := storage.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return New(store)
}

func TestAddStoresUnderCanonicalName(t *testing.T) {
	svc := newTestService(t)

	key, err := svc.Add("Fresh Lime Juice", models.InventoryItem{
		Type:       "juice",
		Unit:       "ml",
		Quantity:   500,
		CurrAmount: 500,
	})
	require.NoError(t, err)
	assert.Equal(t, "lime", key)

	inv, err := svc.LoadAll()
	require.NoError(t, err)
	require.Contains(t, inv, "lime")
	assert.Equal(t, "juice", inv["lime"].Type)
}

func TestAddEmptyNameRejected(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add("   ", models.InventoryItem{Type: "gin"})
	assert.Error(t, err)
}

func TestSetAmount(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add("gin", models.InventoryItem{Type: "gin", Unit: "ml", Quantity: 700, CurrAmount: 700})
	require.NoError(t, err)

	require.NoError(t, svc.SetAmount("gin", 50))

	inv, err := svc.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, 50.0, inv["gin"].CurrAmount)
}

func TestSetAmountMissingBottle(t *testing.T) {
	svc := newTestService(t)
	assert.Error(t, svc.SetAmount("mezcal", 100))
}

func TestRemove(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add("gin", models.InventoryItem{Type: "gin", CurrAmount: 700})
	require.NoError(t, err)
	require.NoError(t, svc.Remove("gin"))

	inv, err := svc.LoadAll()
	require.NoError(t, err)
	assert.NotContains(t, inv, "gin")
}

func TestImportFromJSON(t *testing.T) {
	svc := newTestService(t)

	fixture := `[
		{"bottle_name": "Monkey 47", "type": "gin", "category": "spirit", "abv": 47, "unit": "ml", "quantity": 500, "is_open": true, "curr_amount": 350},
		{"bottle_name": "Fresh Lime Juice", "type": "juice", "unit": "ml", "quantity": 200}
	]`
	path := filepath.Join(t.TempDir(), "inventory.json")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	n, err := svc.ImportFromJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	inv, err := svc.LoadAll()
	require.NoError(t, err)

	require.Contains(t, inv, "monkey 47")
	assert.Equal(t, 350.0, inv["monkey 47"].CurrAmount)

	// curr_amount defaults to quantity when the fixture omits it.
	require.Contains(t, inv, "lime")
	assert.Equal(t, 200.0, inv["lime"].CurrAmount)
}
