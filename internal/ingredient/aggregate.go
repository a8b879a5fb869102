package ingredient

import (
	"strings"

	"github.com/mealwise/mealwise/internal/model"
)

// Key identifies an aggregation bucket. Ingredients sharing a normalized
// name and unit are summed together; the same name under different units
// stays separate (no unit conversion is attempted).
type Key struct {
	Name string
	Unit string
}

// NewKey normalizes a name/unit pair into an aggregation key. Both parts are
// lowercased and trimmed so "Olive Oil"/"ML" and "olive oil"/"ml" land in the
// same bucket.
func NewKey(name, unit string) Key {
	return Key{
		Name: strings.ToLower(strings.TrimSpace(name)),
		Unit: strings.ToLower(strings.TrimSpace(unit)),
	}
}

// Aggregate sums ingredient quantities by normalized (name, unit). The
// result is order-independent: aggregating a permutation of the same input
// yields identical totals.
func Aggregate(ingredients []model.Ingredient) map[Key]float64 {
	totals := make(map[Key]float64, len(ingredients))
	for _, ing := range ingredients {
		totals[NewKey(ing.Name, ing.Unit)] += ing.Quantity
	}
	return totals
}

// AggregateMenu validates the menu and aggregates every ingredient across
// all days and meals.
func AggregateMenu(menu model.Menu) (map[Key]float64, error) {
	if err := menu.Validate(); err != nil {
		return nil, err
	}

	totals := make(map[Key]float64)
	for _, day := range menu.Days {
		for _, meal := range day.Meals {
			for _, ing := range meal.Ingredients {
				totals[NewKey(ing.Name, ing.Unit)] += ing.Quantity
			}
		}
	}
	return totals, nil
}

// FromRecipeJSON validates a section-keyed recipe and parses every free-text
// line into structured ingredients.
func FromRecipeJSON(rec model.RecipeIngredients) ([]model.Ingredient, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	var parsed []model.Ingredient
	for _, lines := range rec.Ingredients {
		parsed = append(parsed, ParseLines(lines)...)
	}
	return parsed, nil
}
