package cli

import (
	"fmt"
	"strings"

	"github.com/mealwise/mealwise/internal/model"
)

// RenderShoppingPlan formats a full shopping plan result for the terminal.
func RenderShoppingPlan(result *model.ShoppingPlanResult) string {
	var b strings.Builder

	title := "Weekly Shopping Plan"
	if result.RecipeName != "" {
		title = fmt.Sprintf("Shopping Plan: %s", result.RecipeName)
	}
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n")

	b.WriteString(renderShoppingTable(result.ShoppingList))
	b.WriteString("\n")
	b.WriteString(renderBudgetSummary(result))

	if len(result.Suggestions) > 0 {
		b.WriteString("\n\n")
		b.WriteString(RenderSuggestions(result.Suggestions))
	}
	return b.String()
}

func renderShoppingTable(items []model.ShoppingLineItem) string {
	var b strings.Builder

	header := fmt.Sprintf("%-22s %10s %-10s %-12s %-10s %10s",
		"Item", "Qty", "Unit", "Category", "Store", "Cost")
	b.WriteString(TableHeaderStyle.Render(header))
	b.WriteString("\n")

	for _, item := range items {
		b.WriteString(fmt.Sprintf("%-22s %10.2f %-10s %-12s %-10s %10.2f\n",
			truncate(item.Item, 22),
			item.RequiredQuantity,
			item.Unit,
			item.Category,
			item.ChosenStore,
			item.EffectiveCost))
	}
	return b.String()
}

func renderBudgetSummary(result *model.ShoppingPlanResult) string {
	total := fmt.Sprintf("Estimated total: %.2f %s (budget %.2f)",
		result.EstimatedTotalCost, result.Currency, result.Budget)

	if result.WithinBudget {
		return SuccessStyle.Render(total + " — within budget")
	}
	return ErrorStyle.Render(fmt.Sprintf("%s — over by %.2f", total, result.AmountOverBudget))
}

// RenderSuggestions formats cost-saving suggestions, colored by impact.
func RenderSuggestions(suggestions []model.Suggestion) string {
	var b strings.Builder
	b.WriteString(BoldStyle.Render("Cost-saving suggestions"))
	b.WriteString("\n")

	for _, s := range suggestions {
		style := ImpactStyle(string(s.Impact))
		b.WriteString(fmt.Sprintf("%s %s",
			style.Render(fmt.Sprintf("[%s]", s.Impact)),
			s.Description))
		if s.EstimatedSavings > 0 {
			b.WriteString(SubtleStyle.Render(fmt.Sprintf(" (save ~%.2f)", s.EstimatedSavings)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderHealthReport formats the week's nutrition scores.
func RenderHealthReport(report model.WeekHealthReport) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Health Report"))
	b.WriteString("\n")

	for _, day := range report.Days {
		b.WriteString(fmt.Sprintf("Day %d: %d vegetable servings, score %.1f/10\n",
			day.Day, day.VegetableServings, day.Score))
	}
	b.WriteString(InfoStyle.Render(
		fmt.Sprintf("Week average: %.1f/10 (%d vegetable servings total)",
			report.AverageScore, report.TotalVegetableServings)))
	return b.String()
}

// RenderWeekPlan formats the generated menu.
func RenderWeekPlan(plan model.WeekPlan) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Week Plan"))
	b.WriteString("\n")

	for _, day := range plan.Days {
		b.WriteString(BoldStyle.Render(fmt.Sprintf("Day %d", day.Day)))
		b.WriteString("\n")
		for _, meal := range day.Meals {
			b.WriteString(fmt.Sprintf("  %-10s %s\n", meal.Type+":", meal.Name))
		}
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
