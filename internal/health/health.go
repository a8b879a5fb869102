// Package health scores the nutritional alignment of a week plan. The
// heuristic is simple vegetable coverage: more distinct vegetable
// ingredients per day means a higher score.
package health

import (
	"math"
	"strings"

	"github.com/mealwise/mealwise/internal/category"
	"github.com/mealwise/mealwise/internal/model"
)

// targetVegetableServings is the per-day count that earns a full score.
const targetVegetableServings = 5

// ScoreMeal counts the vegetable ingredients in one meal.
func ScoreMeal(meal model.Meal) int {
	count := 0
	for _, ing := range meal.Ingredients {
		if category.Categorize(strings.ToLower(ing.Name)) == category.Vegetables {
			count++
		}
	}
	return count
}

// EvaluateWeek produces per-day vegetable counts and 0-10 scores plus the
// week aggregate.
func EvaluateWeek(plan model.WeekPlan) model.WeekHealthReport {
	report := model.WeekHealthReport{
		Days: make([]model.DayHealthScore, 0, len(plan.Days)),
	}

	for _, day := range plan.Days {
		servings := 0
		for _, meal := range day.Meals {
			servings += ScoreMeal(meal)
		}

		score := 10 * float64(servings) / targetVegetableServings
		if score > 10 {
			score = 10
		}

		report.Days = append(report.Days, model.DayHealthScore{
			Day:               day.Day,
			VegetableServings: servings,
			Score:             round2(score),
		})
		report.TotalVegetableServings += servings
	}

	if len(report.Days) > 0 {
		var sum float64
		for _, d := range report.Days {
			sum += d.Score
		}
		report.AverageScore = round2(sum / float64(len(report.Days)))
	}
	return report
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
