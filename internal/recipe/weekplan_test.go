package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealwise/mealwise/internal/common"
	"github.com/mealwise/mealwise/internal/model"
)

func TestGenerateWeekPlanShape(t *testing.T) {
	plan, err := GenerateWeekPlan(model.UserProfile{Servings: 4})
	require.NoError(t, err)

	require.Len(t, plan.Days, 7)
	for i, day := range plan.Days {
		assert.Equal(t, i+1, day.Day)
		require.Len(t, day.Meals, 3)
		assert.Equal(t, "breakfast", day.Meals[0].Type)
		assert.Equal(t, "lunch", day.Meals[1].Type)
		assert.Equal(t, "dinner", day.Meals[2].Type)
		for _, meal := range day.Meals {
			assert.Equal(t, 4, meal.Servings)
			assert.NotEmpty(t, meal.Ingredients, "meal %s", meal.Name)
		}
	}

	// The generated plan must pass the strict pipeline-edge validation.
	assert.NoError(t, plan.Menu().Validate())
}

func TestGenerateWeekPlanIsDeterministic(t *testing.T) {
	profile := model.UserProfile{Servings: 2, ExcludeIngredients: []string{"salmon"}}

	a, err := GenerateWeekPlan(profile)
	require.NoError(t, err)
	b, err := GenerateWeekPlan(profile)
	require.NoError(t, err)

	assert.Equal(t, a.Days, b.Days)
}

func TestGenerateWeekPlanDefaultsServings(t *testing.T) {
	plan, err := GenerateWeekPlan(model.UserProfile{})
	require.NoError(t, err)

	assert.Equal(t, 2, plan.Days[0].Meals[0].Servings)
}

func TestGenerateWeekPlanHonorsExclusions(t *testing.T) {
	plan, err := GenerateWeekPlan(model.UserProfile{
		ExcludeIngredients: []string{"chicken", "salmon"},
	})
	require.NoError(t, err)

	for _, day := range plan.Days {
		for _, meal := range day.Meals {
			for _, ing := range meal.Ingredients {
				assert.NotContains(t, ing.Name, "chicken")
				assert.NotContains(t, ing.Name, "salmon")
			}
		}
	}
}

func TestGenerateWeekPlanFailsWhenMealSlotEmpties(t *testing.T) {
	// Excluding these wipes out every breakfast recipe.
	_, err := GenerateWeekPlan(model.UserProfile{
		ExcludeIngredients: []string{"oats", "egg", "rice flakes"},
	})
	assert.ErrorIs(t, err, common.ErrEmptyMealSlot)
}

func TestFilterExcluded(t *testing.T) {
	recipes := []model.Recipe{
		{ID: "a", Ingredients: []string{"200 gram chicken"}},
		{ID: "b", Ingredients: []string{"150 gram lentil"}},
	}

	kept := FilterExcluded(recipes, []string{"Chicken"})

	require.Len(t, kept, 1)
	assert.Equal(t, "b", kept[0].ID)
}

func TestFilterExcludedNoTerms(t *testing.T) {
	recipes := Library()
	assert.Equal(t, recipes, FilterExcluded(recipes, nil))
}

func TestLibraryCoversAllMealTypes(t *testing.T) {
	byType := make(map[string]int)
	for _, r := range Library() {
		byType[r.MealType]++
		assert.NotEmpty(t, r.ID)
		assert.NotEmpty(t, r.Ingredients)
	}

	for _, mt := range mealTypes {
		assert.GreaterOrEqual(t, byType[mt], 2, "meal type %s", mt)
	}
}
