package tcg_test

import (
	"net/url"
	"testing"

	"github.com/cardindex-io/tcgpricing/pkg/tcg"
	"github.com/stretchr/testify/assert"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestParams_Values(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		params   tcg.Params
		expected url.Values
	}{
		{
			name:     "empty params",
			params:   tcg.NewParams(),
			expected: url.Values{},
		},
		{
			name: "with pagination window",
			params: tcg.NewParams().
				WithLimit(50).
				WithOffset(100),
			expected: url.Values{
				"limit":  []string{"50"},
				"offset": []string{"100"},
			},
		},
		{
			name: "search text renamed to wire key",
			params: tcg.NewParams().
				WithQuery("charizard"),
			expected: url.Values{
				"q": []string{"charizard"},
			},
		},
		{
			name: "absent fields omitted",
			params: tcg.Params{
				"game":      "pokemon",
				"set":       nil,
				"query":     "",
				"condition": []string{},
			},
			expected: url.Values{
				"game": []string{"pokemon"},
			},
		},
		{
			name: "arrays joined with commas",
			params: tcg.NewParams().
				WithCondition("Near Mint", "Lightly Played").
				WithPrinting("Holofoil"),
			expected: url.Values{
				"condition": []string{"Near Mint,Lightly Played"},
				"printing":  []string{"Holofoil"},
			},
		},
		{
			name: "booleans and ordering",
			params: tcg.NewParams().
				With("include_variants", true).
				WithOrderBy("price").
				WithOrder("desc"),
			expected: url.Values{
				"include_variants": []string{"true"},
				"orderBy":          []string{"price"},
				"order":            []string{"desc"},
			},
		},
		{
			name: "all options",
			params: tcg.NewParams().
				WithQuery("pikachu").
				WithGame("pokemon").
				WithSet("base-set").
				WithLimit(20).
				WithOffset(40).
				WithCondition("Near Mint"),
			expected: url.Values{
				"q":         []string{"pikachu"},
				"game":      []string{"pokemon"},
				"set":       []string{"base-set"},
				"limit":     []string{"20"},
				"offset":    []string{"40"},
				"condition": []string{"Near Mint"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := tt.params.Values()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParams_Body(t *testing.T) {
	t.Parallel()

	t.Run("arrays stay arrays", func(t *testing.T) {
		t.Parallel()

		params := tcg.NewParams().
			WithGame("pokemon").
			WithCondition("Near Mint", "Lightly Played")

		body := params.Body()

		assert.Equal(t, "pokemon", body["game"])
		assert.Equal(t, []string{"Near Mint", "Lightly Played"}, body["condition"])
	})

	t.Run("absent fields omitted", func(t *testing.T) {
		t.Parallel()

		params := tcg.Params{
			"game":      "magic",
			"set":       nil,
			"query":     "",
			"condition": []string{},
		}

		body := params.Body()

		assert.Equal(t, map[string]any{"game": "magic"}, body)
	})

	t.Run("alias applied", func(t *testing.T) {
		t.Parallel()

		body := tcg.NewParams().WithQuery("black lotus").Body()

		assert.Equal(t, "black lotus", body["q"])
		assert.NotContains(t, body, "query")
	})
}

func TestParams_Clone(t *testing.T) {
	t.Parallel()

	original := tcg.NewParams().
		WithGame("pokemon").
		WithCondition("Near Mint")

	clone := original.Clone().
		WithLimit(10).
		WithCondition("Damaged")

	// The original is untouched by serialization and by mutating the clone.
	assert.NotContains(t, original, "limit")
	assert.Equal(t, []string{"Near Mint"}, original["condition"])
	assert.Equal(t, []string{"Damaged"}, clone["condition"])

	_ = original.Values()
	assert.Equal(t, tcg.NewParams().WithGame("pokemon").WithCondition("Near Mint"), original)
}

func TestParams_UnexpectedTypePassesThrough(t *testing.T) {
	t.Parallel()

	type custom struct{ V string }

	values := tcg.NewParams().With("odd", custom{V: "x"}).Values()

	// Serialization never fails; unexpected types render with their default
	// format.
	assert.NotEmpty(t, values.Get("odd"))
}
