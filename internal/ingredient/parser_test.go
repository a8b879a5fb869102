package ingredient

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mealwise/mealwise/internal/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  model.Ingredient
	}{
		{
			name:  "quantity unit name",
			input: "2 tablespoons olive oil",
			want:  model.Ingredient{Name: "olive oil", Quantity: 2.0, Unit: "tablespoons"},
		},
		{
			name:  "fraction quantity",
			input: "1/2 cup rice",
			want:  model.Ingredient{Name: "rice", Quantity: 0.5, Unit: "cup"},
		},
		{
			name:  "decimal quantity",
			input: "1.5 kg potato",
			want:  model.Ingredient{Name: "potato", Quantity: 1.5, Unit: "kg"},
		},
		{
			name:  "descriptive suffix dropped at comma",
			input: "1 onion, chopped",
			want:  model.Ingredient{Name: "onion", Quantity: 1.0, Unit: "piece"},
		},
		{
			name:  "unit then comma suffix",
			input: "2 cups flour, sifted",
			want:  model.Ingredient{Name: "flour", Quantity: 2.0, Unit: "cups"},
		},
		{
			name:  "no quantity falls back",
			input: "salt to taste",
			want:  model.Ingredient{Name: "salt to taste", Quantity: 1.0, Unit: "piece"},
		},
		{
			name:  "quantity with single token name",
			input: "3 eggs",
			want:  model.Ingredient{Name: "eggs", Quantity: 3.0, Unit: "piece"},
		},
		{
			name:  "zero denominator falls back",
			input: "1/0 cup rice",
			want:  model.Ingredient{Name: "1/0 cup rice", Quantity: 1.0, Unit: "piece"},
		},
		{
			name:  "zero quantity falls back",
			input: "0 gram salt",
			want:  model.Ingredient{Name: "0 gram salt", Quantity: 1.0, Unit: "piece"},
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  model.Ingredient{Name: "", Quantity: 1.0, Unit: "piece"},
		},
		{
			name:  "non-alphabetic second token stays in name",
			input: "2 7-grain bars",
			want:  model.Ingredient{Name: "7-grain bars", Quantity: 2.0, Unit: "piece"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNeverFailsAndQuantityPositive(t *testing.T) {
	inputs := []string{
		"", "   ", ",", "1/0", "0", "-5 gram sugar", "….", "2",
		"a pinch of salt", "1000000 gram rice", "3/4 teaspoon turmeric",
		"1 / 2 cup milk",
	}

	for _, input := range inputs {
		got := Parse(input)
		assert.Greater(t, got.Quantity, 0.0, "input %q", input)
		assert.NotEmpty(t, got.Unit, "input %q", input)
	}
}

func TestParseLinesSkipsBlanks(t *testing.T) {
	got := ParseLines([]string{"2 tablespoons olive oil", "", "  ", "1 onion"})
	assert.Len(t, got, 2)
	assert.Equal(t, "olive oil", got[0].Name)
	assert.Equal(t, "onion", got[1].Name)
}
