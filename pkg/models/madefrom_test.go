package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMadeFromUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		json string
		want []string
	}{
		{
			name: "comma separated string",
			json: `"gin, lime juice, simple syrup"`,
			want: []string{"gin", "lime juice", "simple syrup"},
		},
		{
			name: "string with alternative group stays one clause",
			json: `"gin or vodka, dry vermouth"`,
			want: []string{"gin or vodka", "dry vermouth"},
		},
		{
			name: "list form",
			json: `["gin", "lime juice"]`,
			want: []string{"gin", "lime juice"},
		},
		{
			name: "list entries are trimmed and empties dropped",
			json: `[" gin ", "", "  "]`,
			want: []string{"gin"},
		},
		{
			name: "empty clauses in string are dropped",
			json: `"gin,, , lime juice"`,
			want: []string{"gin", "lime juice"},
		},
		{
			name: "null means no requirements",
			json: `null`,
			want: nil,
		},
		{
			name: "empty string means no requirements",
			json: `""`,
			want: nil,
		},
		{
			name: "malformed value degrades to no requirements",
			json: `{"unexpected": true}`,
			want: nil,
		},
		{
			name: "numeric value degrades to no requirements",
			json: `42`,
			want: nil,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var m MadeFrom
			require.NoError(t, json.Unmarshal([]byte(tc.json), &m))
			assert.Equal(t, tc.want, m.Clauses())
			assert.Equal(t, len(tc.want) == 0, m.IsEmpty())
		})
	}
}

func TestMadeFromMarshalEmitsListForm(t *testing.T) {
	t.Parallel()

	m := ParseMadeFrom("gin, lime juice")
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `["gin","lime juice"]`, string(data))
}

func TestMadeFromRoundTripInsideCocktail(t *testing.T) {
	t.Parallel()

	raw := `{"name":"Gimlet","ingredients":["gin","lime juice"],"made_from":"gin, lime juice"}`

	var c Cocktail
	require.NoError(t, json.Unmarshal([]byte(raw), &c))
	assert.Equal(t, []string{"gin", "lime juice"}, c.MadeFrom.Clauses())

	// Both stored forms of the field re-decode to the same clauses.
	data, err := json.Marshal(c)
	require.NoError(t, err)

	var again Cocktail
	require.NoError(t, json.Unmarshal(data, &again))
	assert.Equal(t, c.MadeFrom.Clauses(), again.MadeFrom.Clauses())
}
