package makeable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/korjavin/homebar/pkg/models"
)

func TestAvailable(t *testing.T) {
	t.Parallel()

	inv := models.Inventory{
		"monkey 47":         {Type: "Gin", CurrAmount: 500},
		"vodka":             {Type: "vodka", CurrAmount: 700},
		"blended scotch":    {Type: "Whiskey", CurrAmount: 350},
		"lime":              {Type: "juice", CurrAmount: 200},
		"empty bourbon":     {Type: "bourbon", CurrAmount: 0},
		"angostura bitters": {Type: "bitters", CurrAmount: -5},
	}

	tests := []struct {
		name        string
		requirement string
		want        bool
	}{
		{
			name:        "generic requirement matches declared type",
			requirement: "gin",
			want:        true,
		},
		{
			name:        "type comparison canonicalizes the declared type",
			requirement: "whiskey",
			want:        true,
		},
		{
			name:        "exact key match",
			requirement: "vodka",
			want:        true,
		},
		{
			name:        "substring fallback matches within a key",
			requirement: "monkey",
			want:        true,
		},
		{
			name:        "empty bottle never matches by type",
			requirement: "bourbon",
			want:        false,
		},
		{
			name:        "negative amount never matches",
			requirement: "bitters",
			want:        false,
		},
		{
			name:        "missing ingredient",
			requirement: "mezcal",
			want:        false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Available(inv, tc.requirement))
		})
	}
}

func TestAvailableZeroAmountFailsEveryTier(t *testing.T) {
	t.Parallel()

	inv := models.Inventory{
		"gin": {Type: "gin", CurrAmount: 0},
	}

	// Type, exact key, and substring would each hit — all gated on amount.
	assert.False(t, Available(inv, "gin"))
	assert.False(t, Available(inv, "gi"))
}

func TestAvailableMonotonicity(t *testing.T) {
	t.Parallel()

	inv := models.Inventory{
		"gin":  {Type: "gin", CurrAmount: 0},
		"lime": {Type: "juice", CurrAmount: 100},
	}

	requirements := []string{"gin", "lime", "vermouth"}
	before := make(map[string]bool, len(requirements))
	for _, r := range requirements {
		before[r] = Available(inv, r)
	}

	// Refill the empty bottle and add a new one: nothing that was
	// available may become unavailable.
	inv["gin"] = models.InventoryItem{Type: "gin", CurrAmount: 500}
	inv["dry vermouth"] = models.InventoryItem{Type: "vermouth", CurrAmount: 700}

	for _, r := range requirements {
		if before[r] {
			assert.True(t, Available(inv, r), "ingredient %q became unavailable after restock", r)
		}
	}
	assert.True(t, Available(inv, "gin"))
	assert.True(t, Available(inv, "vermouth"))
}
