package cocktail

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/korjavin/homebar/pkg/logger"
	"github.com/korjavin/homebar/pkg/models"
	"github.com/korjavin/homebar/pkg/storage"
)

const keyPrefix = "cocktail:"

// ErrDuplicateName is returned by Add when a cocktail with the same name
// already exists. The existing record is left unchanged.
var ErrDuplicateName = errors.New("cocktail already exists")

// ErrNotFound is returned when a cocktail name is not in the book
var ErrNotFound = errors.New("cocktail not found")

// Service provides cocktail book management functionality
type Service struct {
	store  *storage.Store
	logger *logger.Logger
}

// New creates a new cocktail book service
func New(store *storage.Store) *Service {
	return &Service{
		store:  store,
		logger: logger.New("cocktail"),
	}
}

// Add inserts a new cocktail into the book. Names are unique; adding a
// cocktail whose name already exists fails with ErrDuplicateName.
func (s *Service) Add(c models.Cocktail) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("cocktail name must not be empty")
	}
	c.Name = name

	var existing models.Cocktail
	err := s.store.Get(keyPrefix+name, &existing)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to check for existing cocktail: %w", err)
	}

	return s.store.Set(keyPrefix+name, c)
}

// Get retrieves a single cocktail by name
func (s *Service) Get(name string) (models.Cocktail, error) {
	var c models.Cocktail
	err := s.store.Get(keyPrefix+name, &c)
	if errors.Is(err, storage.ErrNotFound) {
		return models.Cocktail{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return c, err
}

// LoadAll returns a snapshot of the whole book, sorted by cocktail name.
// The sort keeps the snapshot order independent of store iteration order.
func (s *Service) LoadAll() ([]models.Cocktail, error) {
	keys, err := s.store.List(keyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list cocktails: %w", err)
	}

	cocktails := make([]models.Cocktail, 0, len(keys))
	for _, key := range keys {
		var c models.Cocktail
		if err := s.store.Get(key, &c); err != nil {
			return nil, fmt.Errorf("failed to load cocktail %q: %w", key, err)
		}
		cocktails = append(cocktails, c)
	}

	sort.Slice(cocktails, func(i, j int) bool {
		return cocktails[i].Name < cocktails[j].Name
	})

	return cocktails, nil
}

// RecordMade increments the times-made counter for a cocktail
func (s *Service) RecordMade(name string) error {
	c, err := s.Get(name)
	if err != nil {
		return err
	}

	c.TimesMade++
	return s.store.Set(keyPrefix+c.Name, c)
}

// SetFavorite marks or unmarks a cocktail as a favorite
func (s *Service) SetFavorite(name string, favorite bool) error {
	c, err := s.Get(name)
	if err != nil {
		return err
	}

	c.IsFavorite = favorite
	return s.store.Set(keyPrefix+c.Name, c)
}

// ImportFromJSON loads recipes from a cocktail book fixture (a JSON object
// keyed by an arbitrary id, each value a recipe) into the store. Recipes
// whose name already exists are skipped with a warning. Returns the number
// of recipes imported.
func (s *Service) ImportFromJSON(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read cocktail book: %w", err)
	}

	var book map[string]models.Cocktail
	if err := json.Unmarshal(data, &book); err != nil {
		return 0, fmt.Errorf("failed to parse cocktail book: %w", err)
	}

	// Stable import order, so duplicate handling does not depend on map
	// iteration.
	ids := make([]string, 0, len(book))
	for id := range book {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	imported := 0
	for _, id := range ids {
		c := book[id]
		if err := s.Add(c); err != nil {
			if errors.Is(err, ErrDuplicateName) {
				s.logger.Warn("Skipping %q: %v", c.Name, err)
				continue
			}
			return imported, err
		}
		imported++
	}

	s.logger.Info("Imported %d cocktails from %s", imported, path)
	return imported, nil
}
