// Package model defines the core domain types shared across the pipeline.
package model

import (
	"fmt"

	"github.com/mealwise/mealwise/internal/common"
)

// Ingredient represents a single structured ingredient requirement.
type Ingredient struct {
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
}

// Meal is one planned meal with its ingredient requirements.
type Meal struct {
	Type        string       `json:"type"` // breakfast, lunch, dinner
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
	Servings    int          `json:"servings"`
}

// DayPlan holds the meals planned for a single day.
type DayPlan struct {
	Meals []Meal `json:"meals"`
	Day   int    `json:"day"` // 1..7
}

// Menu is a week's worth of planned meals.
type Menu struct {
	Days []DayPlan `json:"days"`
}

// Validate checks the structural integrity of the menu. The pipeline edge is
// strict: a malformed menu fails fast instead of producing an empty report.
func (m Menu) Validate() error {
	if len(m.Days) == 0 {
		return common.ErrEmptyMenu
	}
	for _, day := range m.Days {
		if len(day.Meals) == 0 {
			return fmt.Errorf("day %d: %w", day.Day, common.ErrEmptyDay)
		}
		for _, meal := range day.Meals {
			if meal.Ingredients == nil {
				return fmt.Errorf("day %d, meal %q: %w", day.Day, meal.Name, common.ErrNoIngredients)
			}
		}
	}
	return nil
}

// RecipeIngredients is the raw recipe form: free-text ingredient lines
// grouped by section (e.g. "For the Sauce").
type RecipeIngredients struct {
	Ingredients map[string][]string `json:"ingredients"`
	RecipeName  string              `json:"recipe_name"`
}

// Validate checks that the recipe carries at least one ingredient section.
func (r RecipeIngredients) Validate() error {
	if len(r.Ingredients) == 0 {
		return fmt.Errorf("recipe %q: %w", r.RecipeName, common.ErrEmptyRecipe)
	}
	return nil
}
