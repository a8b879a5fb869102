package shopping

import (
	"fmt"
	"log/slog"

	"github.com/mealwise/mealwise/internal/ingredient"
	"github.com/mealwise/mealwise/internal/model"
)

// DefaultCurrency is assumed when the caller does not set one.
const DefaultCurrency = "INR"

// Planner runs the shopping and budget pipeline end to end. It holds no
// mutable state; every call produces a fresh result and calls are
// independent of each other.
type Planner struct {
	currency string
}

// NewPlanner creates a planner emitting prices in the given currency code.
func NewPlanner(currency string) *Planner {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Planner{currency: currency}
}

// BuildShoppingPlan aggregates a week's menu into a priced shopping list and
// evaluates it against the budget. A structurally invalid menu fails fast.
func (p *Planner) BuildShoppingPlan(menu model.Menu, vendors []string, budget float64) (*model.ShoppingPlanResult, error) {
	agg, err := ingredient.AggregateMenu(menu)
	if err != nil {
		return nil, fmt.Errorf("invalid menu: %w", err)
	}

	return p.plan(agg, vendors, budget), nil
}

// ProcessRecipeIngredients runs the same pipeline over a single recipe's
// section-keyed free-text ingredient lists.
func (p *Planner) ProcessRecipeIngredients(rec model.RecipeIngredients, vendors []string, budget float64) (*model.ShoppingPlanResult, error) {
	parsed, err := ingredient.FromRecipeJSON(rec)
	if err != nil {
		return nil, fmt.Errorf("invalid recipe: %w", err)
	}

	result := p.plan(ingredient.Aggregate(parsed), vendors, budget)
	result.RecipeName = rec.RecipeName
	return result, nil
}

func (p *Planner) plan(agg map[ingredient.Key]float64, vendors []string, budget float64) *model.ShoppingPlanResult {
	list, totalCost := BuildList(agg, vendors, p.currency)
	report := EvaluateBudget(list, totalCost, budget)

	slog.Debug("shopping plan built",
		"items", len(list),
		"total_cost", totalCost,
		"budget", budget,
		"within_budget", report.WithinBudget)

	return &model.ShoppingPlanResult{
		ShoppingList:       list,
		EstimatedTotalCost: totalCost,
		Currency:           p.currency,
		Budget:             budget,
		WithinBudget:       report.WithinBudget,
		AmountOverBudget:   report.AmountOverBudget,
		Suggestions:        report.Suggestions,
	}
}
