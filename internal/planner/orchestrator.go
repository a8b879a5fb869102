// Package planner orchestrates the weekly planning pipeline: profile in,
// week plan, priced shopping list and health report out.
package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mealwise/mealwise/internal/health"
	"github.com/mealwise/mealwise/internal/model"
	"github.com/mealwise/mealwise/internal/recipe"
	"github.com/mealwise/mealwise/internal/shopping"
)

// WeeklyPlanningResult bundles everything one planning run produces.
type WeeklyPlanningResult struct {
	ShoppingPlan *model.ShoppingPlanResult `json:"shopping_plan"`
	WeekPlan     model.WeekPlan            `json:"week_plan"`
	HealthReport model.WeekHealthReport    `json:"health_report"`
}

// Orchestrator wires the planning phases together. It holds no per-run
// state; concurrent runs with different profiles are safe.
type Orchestrator struct{}

// NewOrchestrator creates an orchestrator.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{}
}

// RunWeeklyPlanning executes the full pipeline for one profile. Each phase
// is pure computation; ctx is consulted between phases so callers embedding
// this in a request scope can cancel early.
func (o *Orchestrator) RunWeeklyPlanning(ctx context.Context, profile model.UserProfile) (*WeeklyPlanningResult, error) {
	plan, err := recipe.GenerateWeekPlan(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to generate week plan: %w", err)
	}
	plan.ID = uuid.NewString()
	slog.Info("week plan generated", "plan_id", plan.ID, "days", len(plan.Days))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := shopping.NewPlanner(profile.Currency)
	shoppingPlan, err := p.BuildShoppingPlan(plan.Menu(), profile.PreferredVendors, profile.WeeklyBudget)
	if err != nil {
		return nil, fmt.Errorf("failed to build shopping plan: %w", err)
	}
	slog.Info("shopping plan built",
		"plan_id", plan.ID,
		"items", len(shoppingPlan.ShoppingList),
		"total_cost", shoppingPlan.EstimatedTotalCost,
		"within_budget", shoppingPlan.WithinBudget)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	healthReport := health.EvaluateWeek(plan)
	slog.Info("health report evaluated",
		"plan_id", plan.ID,
		"average_score", healthReport.AverageScore)

	return &WeeklyPlanningResult{
		WeekPlan:     plan,
		ShoppingPlan: shoppingPlan,
		HealthReport: healthReport,
	}, nil
}
