package models

import (
	"encoding/json"
	"strings"
)

// MadeFrom holds a cocktail's required main ingredients. The cocktail book
// stores this field either as a comma-separated string ("gin, lime juice")
// or as a list; both decode to the same ordered clause sequence. A clause
// may name alternatives ("gin or vodka"), which the evaluator resolves.
type MadeFrom struct {
	clauses []string
}

// NewMadeFrom builds a MadeFrom from already-split clause texts
func NewMadeFrom(clauses ...string) MadeFrom {
	return MadeFrom{clauses: cleanClauses(clauses)}
}

// ParseMadeFrom builds a MadeFrom from a comma-separated string
func ParseMadeFrom(s string) MadeFrom {
	return MadeFrom{clauses: cleanClauses(strings.Split(s, ","))}
}

// Clauses returns the ordered requirement clause texts
func (m MadeFrom) Clauses() []string {
	return m.clauses
}

// IsEmpty reports whether there are no requirement clauses
func (m MadeFrom) IsEmpty() bool {
	return len(m.clauses) == 0
}

// UnmarshalJSON accepts a string, a list of strings, or null. Anything
// else decodes to the empty clause list, so a malformed field makes the
// cocktail trivially makeable instead of failing the whole load.
func (m *MadeFrom) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		m.clauses = cleanClauses(strings.Split(s, ","))
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		m.clauses = cleanClauses(list)
		return nil
	}

	m.clauses = nil
	return nil
}

// MarshalJSON always emits the resolved list form
func (m MadeFrom) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.clauses)
}

// cleanClauses trims whitespace and drops empty entries
func cleanClauses(parts []string) []string {
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
