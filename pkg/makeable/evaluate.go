package makeable

import (
	"strings"

	"github.com/korjavin/homebar/pkg/ingredient"
	"github.com/korjavin/homebar/pkg/models"
)

// Evaluate returns the cocktails whose every requirement clause is
// satisfied by the inventory, preserving the order of the input slice.
// A cocktail with no requirements is trivially makeable.
func Evaluate(cocktails []models.Cocktail, inv models.Inventory) []models.Cocktail {
	result := make([]models.Cocktail, 0, len(cocktails))
	for _, c := range cocktails {
		if canMake(c, inv) {
			result = append(result, c)
		}
	}
	return result
}

// canMake checks every clause of the cocktail's made_from field, stopping
// at the first one the inventory cannot satisfy.
func canMake(c models.Cocktail, inv models.Inventory) bool {
	for _, clause := range c.MadeFrom.Clauses() {
		if !clauseSatisfied(clause, inv) {
			return false
		}
	}
	return true
}

// clauseSatisfied resolves one requirement clause. A clause containing
// " or " is an alternative group satisfied by any one of its terms; any
// other clause is a single requirement.
func clauseSatisfied(clause string, inv models.Inventory) bool {
	lower := strings.ToLower(clause)
	if strings.Contains(lower, " or ") {
		for _, alt := range strings.Split(lower, " or ") {
			alt = strings.TrimSpace(alt)
			if alt == "" {
				continue
			}
			if Available(inv, ingredient.Canonicalize(alt)) {
				return true
			}
		}
		return false
	}

	return Available(inv, ingredient.Canonicalize(clause))
}
