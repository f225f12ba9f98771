package ingredient

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dropMarks decomposes text and removes combining marks, so "Beyoncé"
// becomes "Beyonce" before any further processing.
var dropMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// rewrite is one ordered pattern substitution applied during canonicalization
type rewrite struct {
	pattern     *regexp.Regexp
	replacement string
}

// rewrites run in order over the whole string; earlier rewrites may
// produce text that later patterns match.
var rewrites = []rewrite{
	{regexp.MustCompile(`(freshly\s*squeezed\s*)?lime(\s*juice)?`), "lime juice"},
	{regexp.MustCompile(`(freshly\s*squeezed\s*)?lemon(\s*juice)?`), "lemon juice"},
	{regexp.MustCompile(`chilled champagne`), "sparkling wine"},
	{regexp.MustCompile(`champagne`), "sparkling wine"},
	{regexp.MustCompile(`prosecco`), "sparkling wine"},
	{regexp.MustCompile(`(freshly\s*squeezed\s*)?pineapple(\s*juice)?`), "pineapple juice"},
}

// synonyms maps a fully rewritten string to its canonical form. Keys are
// lowercase ASCII because the lookup happens after the earlier steps.
var synonyms = map[string]string{
	// Fruits, juices, garnish
	"lemon twist":        "lemon garnish",
	"fresh basil leaves": "basil leaves",
	"fresh lemon juice":  "lemon",
	"lemon juice":        "lemon",
	"fresh lime juice":   "lime",
	"lime juice":         "lime",

	// Spirits
	"tennessee whiskey":              "bourbon",
	"scotch whisky":                  "blended scotch whisky",
	"old tom gin":                    "gin",
	"light rum":                      "white rum",
	"malibu rum":                     "coconut rum",
	"st-germain elderflower liqueur": "elderflower liqueur",
	"orange curacao":                 "orange liqueur",
	"triple sec":                     "orange liqueur",
	"grenadine syrup":                "grenadine",

	// Coffee and dairy
	"freshly brewed espresso": "espresso",
	"half-and-half cream":     "cooking cream",

	// Sugar and sweeteners
	"sugar cube":  "white sugar",
	"sugar":       "white sugar",
	"honey syrup": "honey",
	"sugar syrup": "simple syrup",

	// Mixers
	"tonic water": "tonic",
	"club soda":   "soda",
	"soda water":  "soda",
}

// Canonicalize maps free-text ingredient or bottle names to the canonical
// key used for all inventory and requirement comparisons. It is pure and
// total: any input yields a string, possibly unchanged.
//
// Steps, in fixed order: strip diacritics (non-ASCII leftovers are dropped,
// not substituted), lowercase and trim, apply the ordered pattern rewrites,
// then look the result up in the synonym table.
func Canonicalize(raw string) string {
	text := stripDiacritics(raw)
	text = strings.TrimSpace(strings.ToLower(text))

	for _, rw := range rewrites {
		text = rw.pattern.ReplaceAllString(text, rw.replacement)
	}

	if canonical, ok := synonyms[text]; ok {
		return canonical
	}
	return text
}

// stripDiacritics removes combining marks and drops any rune that still
// is not representable as ASCII.
func stripDiacritics(s string) string {
	decomposed, _, err := transform.String(dropMarks, s)
	if err != nil {
		decomposed = s
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r < utf8.RuneSelf {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}
