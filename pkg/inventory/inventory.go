package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/korjavin/homebar/pkg/ingredient"
	"github.com/korjavin/homebar/pkg/logger"
	"github.com/korjavin/homebar/pkg/models"
	"github.com/korjavin/homebar/pkg/storage"
)

const keyPrefix = "inventory:"

// Service provides bar inventory management functionality
type Service struct {
	store  *storage.Store
	logger *logger.Logger
}

// New creates a new inventory service
func New(store *storage.Store) *Service {
	return &Service{
		store:  store,
		logger: logger.New("inventory"),
	}
}

// Add stores a bottle under the canonical form of its name and returns
// that canonical key. Adding a bottle whose name canonicalizes to an
// existing key overwrites the old record.
func (s *Service) Add(bottleName string, item models.InventoryItem) (string, error) {
	key := ingredient.Canonicalize(bottleName)
	if key == "" {
		return "", fmt.Errorf("bottle name %q canonicalizes to an empty key", bottleName)
	}

	if err := s.store.Set(keyPrefix+key, item); err != nil {
		return "", fmt.Errorf("failed to store bottle %q: %w", key, err)
	}

	return key, nil
}

// Remove deletes a bottle by name (canonicalized before lookup)
func (s *Service) Remove(bottleName string) error {
	key := ingredient.Canonicalize(bottleName)
	return s.store.Delete(keyPrefix + key)
}

// SetAmount updates the current amount of a bottle, for restock or
// consumption. The matcher treats any amount <= 0 as an empty bottle.
func (s *Service) SetAmount(bottleName string, amount float64) error {
	key := ingredient.Canonicalize(bottleName)

	var item models.InventoryItem
	if err := s.store.Get(keyPrefix+key, &item); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("no bottle %q in the inventory", key)
		}
		return err
	}

	item.CurrAmount = amount
	return s.store.Set(keyPrefix+key, item)
}

// LoadAll returns a snapshot of the whole inventory keyed by canonical
// bottle name. The snapshot is a copy; mutating it does not touch the store.
func (s *Service) LoadAll() (models.Inventory, error) {
	keys, err := s.store.List(keyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}

	inv := make(models.Inventory, len(keys))
	for _, key := range keys {
		var item models.InventoryItem
		if err := s.store.Get(key, &item); err != nil {
			return nil, fmt.Errorf("failed to load bottle %q: %w", key, err)
		}
		inv[strings.TrimPrefix(key, keyPrefix)] = item
	}

	return inv, nil
}

// importItem mirrors the fixture format: one object per bottle, with
// curr_amount defaulting to quantity when absent.
type importItem struct {
	BottleName string   `json:"bottle_name"`
	Type       string   `json:"type"`
	Category   string   `json:"category"`
	ABV        float64  `json:"abv"`
	Unit       string   `json:"unit"`
	Quantity   float64  `json:"quantity"`
	IsOpen     bool     `json:"is_open"`
	CurrAmount *float64 `json:"curr_amount"`
}

// ImportFromJSON loads bottles from a JSON fixture file (an array of
// bottle objects) into the store. Returns the number of bottles imported.
func (s *Service) ImportFromJSON(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read inventory fixture: %w", err)
	}

	var items []importItem
	if err := json.Unmarshal(data, &items); err != nil {
		return 0, fmt.Errorf("failed to parse inventory fixture: %w", err)
	}

	imported := 0
	for _, in := range items {
		amount := in.Quantity
		if in.CurrAmount != nil {
			amount = *in.CurrAmount
		}

		key, err := s.Add(in.BottleName, models.InventoryItem{
			Type:       in.Type,
			Category:   in.Category,
			ABV:        in.ABV,
			Unit:       in.Unit,
			Quantity:   in.Quantity,
			IsOpen:     in.IsOpen,
			CurrAmount: amount,
		})
		if err != nil {
			s.logger.Warn("Skipping bottle %q: %v", in.BottleName, err)
			continue
		}

		s.logger.Debug("Imported bottle %q", key)
		imported++
	}

	s.logger.Info("Imported %d bottles from %s", imported, path)
	return imported, nil
}
