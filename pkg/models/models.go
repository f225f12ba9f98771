package models

// Cocktail represents a single recipe in the cocktail book
type Cocktail struct {
	Name          string   `json:"name"`
	ABV           float64  `json:"abv,omitempty"`
	IsEasyToMake  bool     `json:"is_easy_to_make"`
	Ingredients   []string `json:"ingredients"`
	Instructions  string   `json:"instructions,omitempty"`
	PersonalNotes string   `json:"personal_notes,omitempty"`
	IsFavorite    bool     `json:"is_favorite"`
	TimesMade     int      `json:"times_made"`
	PrepMethod    string   `json:"method,omitempty"`
	MadeFrom      MadeFrom `json:"made_from,omitempty"`
	Flavor        string   `json:"flavor,omitempty"`
	GlassType     string   `json:"glass_type,omitempty"`
	Garnish       string   `json:"garnish,omitempty"`
}

// InventoryItem represents one bottle on the shelf. The canonical bottle
// name is the Inventory map key, not a field.
type InventoryItem struct {
	Type       string  `json:"type"`
	Category   string  `json:"category,omitempty"`
	Unit       string  `json:"unit"`
	Quantity   float64 `json:"quantity"`
	ABV        float64 `json:"abv,omitempty"`
	IsOpen     bool    `json:"is_open"`
	CurrAmount float64 `json:"curr_amount"`
}

// Inventory is a snapshot of the bar, keyed by canonical bottle name
type Inventory map[string]InventoryItem
