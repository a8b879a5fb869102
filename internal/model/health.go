package model

// DayHealthScore is the nutrition score for one planned day.
type DayHealthScore struct {
	Day               int     `json:"day"`
	VegetableServings int     `json:"vegetable_servings"`
	Score             float64 `json:"score"` // 0..10
}

// WeekHealthReport aggregates per-day nutrition scores for the week.
type WeekHealthReport struct {
	Days                   []DayHealthScore `json:"days"`
	AverageScore           float64          `json:"average_score"`
	TotalVegetableServings int              `json:"total_vegetable_servings"`
}
