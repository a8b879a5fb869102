package shopping

import (
	"fmt"
	"sort"

	"github.com/mealwise/mealwise/internal/category"
	"github.com/mealwise/mealwise/internal/model"
	"github.com/mealwise/mealwise/internal/pricing"
)

// maxItemSuggestions caps the per-item suggestions in one report; the
// critical summary does not count against it.
const maxItemSuggestions = 5

// EvaluateBudget compares the list's total cost against the budget. Within
// budget the suggestion list is empty; over budget it ranks items by
// effective cost and emits category-tailored savings suggestions, headed by
// a critical summary of the overage.
func EvaluateBudget(list []model.ShoppingLineItem, totalCost, budget float64) model.BudgetReport {
	report := model.BudgetReport{
		WithinBudget:     totalCost <= budget,
		AmountOverBudget: max(0, totalCost-budget),
		Suggestions:      []model.Suggestion{},
	}
	if report.WithinBudget {
		return report
	}

	ranked := make([]model.ShoppingLineItem, len(list))
	copy(ranked, list)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EffectiveCost > ranked[j].EffectiveCost
	})

	var suggestions []model.Suggestion
	for _, item := range ranked {
		if len(suggestions) >= maxItemSuggestions {
			break
		}
		if s, ok := suggestItem(item); ok {
			suggestions = append(suggestions, s)
		}
	}

	// Always over budget in this branch, so the summary always applies.
	var itemSavings float64
	for _, s := range suggestions {
		itemSavings += s.EstimatedSavings
	}
	summary := model.Suggestion{
		Impact:   model.ImpactCritical,
		Category: "budget",
		Item:     "Overall Budget",
		Description: fmt.Sprintf(
			"You are %.2f over budget. Consider implementing the suggestions below to reduce costs.",
			pricing.Round2(report.AmountOverBudget)),
		EstimatedSavings: pricing.Round2(itemSavings),
	}
	report.Suggestions = append([]model.Suggestion{summary}, suggestions...)

	return report
}

// suggestItem produces a category-tailored suggestion for one expensive line
// item. Items under every threshold produce none and do not count toward the
// suggestion cap.
func suggestItem(item model.ShoppingLineItem) (model.Suggestion, bool) {
	cost := item.EffectiveCost
	s := model.Suggestion{Category: item.Category, Item: item.Item}

	switch {
	case item.Category == string(category.Dairy) && cost > 100:
		s.Impact = model.ImpactHigh
		s.Description = fmt.Sprintf("Consider reducing '%s' quantity or using a cheaper alternative like plant-based options.", item.Item)
		s.EstimatedSavings = pricing.Round2(0.4 * cost)
	case item.Category == string(category.Protein) && cost > 150:
		s.Impact = model.ImpactHigh
		s.Description = fmt.Sprintf("Replace '%s' with more economical protein sources like lentils, chickpeas, or eggs.", item.Item)
		s.EstimatedSavings = pricing.Round2(0.5 * cost)
	case item.Category == string(category.Vegetables) && cost > 80:
		s.Impact = model.ImpactMedium
		s.Description = fmt.Sprintf("Buy '%s' from local markets instead of premium stores for better prices.", item.Item)
		s.EstimatedSavings = pricing.Round2(0.25 * cost)
	case item.Category == string(category.Grains) && cost > 100:
		s.Impact = model.ImpactMedium
		s.Description = fmt.Sprintf("Purchase '%s' in bulk quantities to reduce per-unit cost.", item.Item)
		s.EstimatedSavings = pricing.Round2(0.3 * cost)
	case cost > 50:
		s.Impact = model.ImpactLow
		s.Description = fmt.Sprintf("Consider reducing '%s' quantity or finding cheaper alternatives.", item.Item)
		s.EstimatedSavings = pricing.Round2(0.2 * cost)
	default:
		return model.Suggestion{}, false
	}
	return s, true
}
