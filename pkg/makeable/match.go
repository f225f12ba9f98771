package makeable

import (
	"strings"

	"github.com/korjavin/homebar/pkg/ingredient"
	"github.com/korjavin/homebar/pkg/models"
)

// Available reports whether the inventory satisfies one canonical
// requirement. Matching runs in precedence order and stops at the first
// success:
//
//  1. type match: some bottle's declared type canonicalizes to the
//     requirement — this is how a generic requirement like "whiskey"
//     matches any bottle typed whiskey;
//  2. exact match: the requirement is itself an inventory key;
//  3. substring match: the requirement occurs inside an inventory key,
//     which tolerates slightly mismatched free-text bottle names.
//
// A bottle with curr_amount <= 0 never matches, whatever its name.
func Available(inv models.Inventory, canonical string) bool {
	for _, item := range inv {
		if ingredient.Canonicalize(item.Type) == canonical && item.CurrAmount > 0 {
			return true
		}
	}

	if item, ok := inv[canonical]; ok && item.CurrAmount > 0 {
		return true
	}

	for key, item := range inv {
		if strings.Contains(key, canonical) && item.CurrAmount > 0 {
			return true
		}
	}

	return false
}
