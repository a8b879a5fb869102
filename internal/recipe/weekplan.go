package recipe

import (
	"fmt"
	"strings"

	"github.com/mealwise/mealwise/internal/common"
	"github.com/mealwise/mealwise/internal/ingredient"
	"github.com/mealwise/mealwise/internal/model"
)

// daysPerWeek is the planning horizon.
const daysPerWeek = 7

// mealTypes is the fixed daily meal structure, in serving order.
var mealTypes = []string{"breakfast", "lunch", "dinner"}

// FilterExcluded drops recipes whose ingredient lines mention an excluded
// term. Matching is case-insensitive substring, so excluding "chicken"
// removes "400 gram chicken" recipes.
func FilterExcluded(recipes []model.Recipe, exclude []string) []model.Recipe {
	if len(exclude) == 0 {
		return recipes
	}

	lowered := make([]string, 0, len(exclude))
	for _, e := range exclude {
		if term := strings.ToLower(strings.TrimSpace(e)); term != "" {
			lowered = append(lowered, term)
		}
	}

	var kept []model.Recipe
	for _, r := range recipes {
		if !mentionsAny(r, lowered) {
			kept = append(kept, r)
		}
	}
	return kept
}

func mentionsAny(r model.Recipe, terms []string) bool {
	for _, line := range r.Ingredients {
		lowLine := strings.ToLower(line)
		for _, term := range terms {
			if strings.Contains(lowLine, term) {
				return true
			}
		}
	}
	return false
}

// GenerateWeekPlan builds a 7-day plan from the built-in library, honoring
// the profile's exclusions and servings. Recipes rotate deterministically
// through each meal slot so the same profile always yields the same plan.
func GenerateWeekPlan(profile model.UserProfile) (model.WeekPlan, error) {
	candidates := FilterExcluded(Library(), profile.ExcludeIngredients)
	if len(candidates) == 0 {
		return model.WeekPlan{}, common.ErrNoRecipes
	}

	byType := make(map[string][]model.Recipe, len(mealTypes))
	for _, r := range candidates {
		byType[r.MealType] = append(byType[r.MealType], r)
	}
	for _, mt := range mealTypes {
		if len(byType[mt]) == 0 {
			return model.WeekPlan{}, fmt.Errorf("%s: %w", mt, common.ErrEmptyMealSlot)
		}
	}

	servings := profile.Servings
	if servings <= 0 {
		servings = 2
	}

	plan := model.WeekPlan{Days: make([]model.DayPlan, 0, daysPerWeek)}
	for day := 1; day <= daysPerWeek; day++ {
		meals := make([]model.Meal, 0, len(mealTypes))
		for _, mt := range mealTypes {
			pool := byType[mt]
			r := pool[(day-1)%len(pool)]
			meals = append(meals, model.Meal{
				Type:        mt,
				Name:        r.Title,
				Servings:    servings,
				Ingredients: ingredient.ParseLines(r.Ingredients),
			})
		}
		plan.Days = append(plan.Days, model.DayPlan{Day: day, Meals: meals})
	}
	return plan, nil
}
