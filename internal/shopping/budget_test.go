package shopping

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealwise/mealwise/internal/model"
)

func lineItem(name, cat string, cost float64) model.ShoppingLineItem {
	return model.ShoppingLineItem{Item: name, Category: cat, EffectiveCost: cost}
}

func TestEvaluateBudgetWithinBudget(t *testing.T) {
	list := []model.ShoppingLineItem{
		lineItem("paneer", "dairy", 120),
		lineItem("chicken", "protein", 30),
	}

	report := EvaluateBudget(list, 150, 1000)

	assert.True(t, report.WithinBudget)
	assert.Zero(t, report.AmountOverBudget)
	assert.Empty(t, report.Suggestions)
}

func TestEvaluateBudgetExactlyAtBudgetIsWithin(t *testing.T) {
	report := EvaluateBudget(nil, 500, 500)

	assert.True(t, report.WithinBudget)
	assert.Zero(t, report.AmountOverBudget)
	assert.Empty(t, report.Suggestions)
}

func TestEvaluateBudgetOverBudget(t *testing.T) {
	list := []model.ShoppingLineItem{
		lineItem("chicken", "protein", 200),  // > 150: high, 50% savings
		lineItem("paneer", "dairy", 120),     // > 100: high, 40% savings
		lineItem("rice", "grains", 120),      // > 100: medium, 30% savings
		lineItem("tomato", "vegetables", 90), // > 80: medium, 25% savings
		lineItem("olive oil", "oils", 60),    // > 50: low, 20% savings
		lineItem("cumin", "spices", 20),      // below every threshold
	}

	report := EvaluateBudget(list, 150, 100)

	assert.False(t, report.WithinBudget)
	assert.InDelta(t, 50.0, report.AmountOverBudget, 1e-9)

	require.Len(t, report.Suggestions, 6) // summary + 5 item suggestions
	summary := report.Suggestions[0]
	assert.Equal(t, model.ImpactCritical, summary.Impact)
	assert.Equal(t, "budget", summary.Category)
	assert.Contains(t, summary.Description, "50.00 over budget")

	// Item suggestions follow cost-descending order.
	wantItems := []string{"chicken", "paneer", "rice", "tomato", "olive oil"}
	wantImpacts := []model.Impact{
		model.ImpactHigh, model.ImpactHigh, model.ImpactMedium, model.ImpactMedium, model.ImpactLow,
	}
	wantSavings := []float64{100, 48, 36, 22.5, 12}

	var savingsSum float64
	for i, s := range report.Suggestions[1:] {
		assert.Equal(t, wantItems[i], s.Item)
		assert.Equal(t, wantImpacts[i], s.Impact)
		assert.InDelta(t, wantSavings[i], s.EstimatedSavings, 1e-9)
		savingsSum += s.EstimatedSavings
	}

	// The summary's estimated savings is the sum of the item savings.
	assert.InDelta(t, savingsSum, summary.EstimatedSavings, 1e-9)
}

func TestEvaluateBudgetCapsItemSuggestions(t *testing.T) {
	var list []model.ShoppingLineItem
	for i := 0; i < 8; i++ {
		list = append(list, lineItem(fmt.Sprintf("protein-%d", i), "protein", 300+float64(i)))
	}

	report := EvaluateBudget(list, 2400, 100)

	// Summary plus at most 5 item suggestions.
	assert.Len(t, report.Suggestions, 6)
}

func TestEvaluateBudgetBelowThresholdItemsDoNotCountTowardCap(t *testing.T) {
	list := []model.ShoppingLineItem{
		lineItem("cumin", "spices", 45), // no suggestion
		lineItem("salt", "spices", 30),  // no suggestion
		lineItem("chicken", "protein", 200),
		lineItem("paneer", "dairy", 150),
	}

	report := EvaluateBudget(list, 425, 100)

	require.Len(t, report.Suggestions, 3) // summary + 2 qualifying items
	assert.Equal(t, model.ImpactCritical, report.Suggestions[0].Impact)
	assert.Equal(t, "chicken", report.Suggestions[1].Item)
	assert.Equal(t, "paneer", report.Suggestions[2].Item)
}

func TestEvaluateBudgetZeroAndNegativeBudgets(t *testing.T) {
	list := []model.ShoppingLineItem{lineItem("chicken", "protein", 200)}

	for _, budget := range []float64{0, -50} {
		report := EvaluateBudget(list, 200, budget)

		assert.False(t, report.WithinBudget, "budget %v", budget)
		assert.InDelta(t, 200-budget, report.AmountOverBudget, 1e-9, "budget %v", budget)
		require.NotEmpty(t, report.Suggestions, "budget %v", budget)
		assert.Equal(t, model.ImpactCritical, report.Suggestions[0].Impact)
	}
}

func TestEvaluateBudgetGenericItemThreshold(t *testing.T) {
	tests := []struct {
		name    string
		cost    float64
		wantLen int
	}{
		{"just above generic threshold", 50.01, 2},
		{"at generic threshold", 50, 1}, // strictly greater than 50 required
		{"below generic threshold", 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := []model.ShoppingLineItem{lineItem("mystery", "other", tt.cost)}
			report := EvaluateBudget(list, tt.cost, 1)
			assert.Len(t, report.Suggestions, tt.wantLen)
		})
	}
}
