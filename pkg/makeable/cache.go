package makeable

import (
	"github.com/korjavin/homebar/pkg/logger"
	"github.com/korjavin/homebar/pkg/models"
)

// FingerprintStore persists the last evaluation's fingerprint pair across
// process restarts. Load reports ok=false when no pair has been saved yet.
type FingerprintStore interface {
	Load() (inventoryFP, recipeFP uint64, ok bool, err error)
	Save(inventoryFP, recipeFP uint64) error
}

// Cache memoizes the makeable-set evaluation. It holds the last
// fingerprint pair and the last result in memory; only the fingerprints
// are durable. A fresh process therefore recomputes once even when
// nothing changed, because the result itself did not survive the restart.
//
// The cache is owned by the caller and is not safe for concurrent use;
// the caller serializes mutations and evaluations.
type Cache struct {
	fps FingerprintStore
	log *logger.Logger

	warm          bool
	lastInventory uint64
	lastRecipes   uint64
	lastResult    []models.Cocktail

	// persisted pair from a previous run, only used for logging that the
	// inputs did not change across the restart
	hasPersisted       bool
	persistedInventory uint64
	persistedRecipes   uint64

	evaluations int
}

// NewCache creates a cache backed by the given fingerprint store, which
// may be nil for a purely in-memory cache. A failed load of the persisted
// pair degrades to a cold start, it never propagates.
func NewCache(fps FingerprintStore) *Cache {
	c := &Cache{
		fps: fps,
		log: logger.New("makeable"),
	}

	if fps != nil {
		inv, rec, ok, err := fps.Load()
		if err != nil {
			c.log.Warn("Failed to load stored fingerprints, starting cold: %v", err)
		} else if ok {
			c.hasPersisted = true
			c.persistedInventory = inv
			c.persistedRecipes = rec
		}
	}

	return c
}

// GetMakeable returns the cocktails makeable from the inventory,
// re-evaluating only when either snapshot's fingerprint changed since the
// last call. On a recomputation the new fingerprint pair is written to the
// durable store; a failed write is logged and otherwise ignored.
func (c *Cache) GetMakeable(cocktails []models.Cocktail, inv models.Inventory) ([]models.Cocktail, error) {
	invFP, err := Fingerprint(inv)
	if err != nil {
		return nil, err
	}
	recFP, err := Fingerprint(cocktails)
	if err != nil {
		return nil, err
	}

	if c.warm && invFP == c.lastInventory && recFP == c.lastRecipes {
		c.log.Debug("Inventory and recipes unchanged, returning cached result")
		return c.lastResult, nil
	}

	if !c.warm && c.hasPersisted && invFP == c.persistedInventory && recFP == c.persistedRecipes {
		// The result list is not durable, so one recomputation is still
		// needed to warm up.
		c.log.Info("Inputs unchanged since last run, recomputing once to warm the cache")
	}

	result := Evaluate(cocktails, inv)
	c.evaluations++

	c.warm = true
	c.lastInventory = invFP
	c.lastRecipes = recFP
	c.lastResult = result

	if c.fps != nil {
		if err := c.fps.Save(invFP, recFP); err != nil {
			c.log.Warn("Failed to persist fingerprints: %v", err)
		}
	}

	return result, nil
}
