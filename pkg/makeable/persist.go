package makeable

import (
	"errors"

	"github.com/korjavin/homebar/pkg/storage"
)

const fingerprintsKey = "fingerprints:last"

// fingerprintRecord is the durable form: exactly the two fingerprints,
// never the result set.
type fingerprintRecord struct {
	InventoryFingerprint uint64 `json:"inventory_fingerprint"`
	RecipeFingerprint    uint64 `json:"recipe_fingerprint"`
}

// StoredFingerprints keeps the last fingerprint pair in the BadgerDB store
type StoredFingerprints struct {
	store *storage.Store
}

// NewStoredFingerprints creates a FingerprintStore over the given store
func NewStoredFingerprints(store *storage.Store) *StoredFingerprints {
	return &StoredFingerprints{store: store}
}

// Load reads the stored pair. A missing record is not an error: it simply
// reports ok=false, the normal first-run case.
func (s *StoredFingerprints) Load() (uint64, uint64, bool, error) {
	var rec fingerprintRecord
	err := s.store.Get(fingerprintsKey, &rec)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, err
	}
	return rec.InventoryFingerprint, rec.RecipeFingerprint, true, nil
}

// Save overwrites the stored pair
func (s *StoredFingerprints) Save(inventoryFP, recipeFP uint64) error {
	return s.store.Set(fingerprintsKey, fingerprintRecord{
		InventoryFingerprint: inventoryFP,
		RecipeFingerprint:    recipeFP,
	})
}
