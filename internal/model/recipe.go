package model

// Recipe is a library recipe usable in a week plan.
type Recipe struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	MealType    string   `json:"meal_type"` // breakfast, lunch, dinner
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// UserProfile captures the preferences driving weekly planning.
type UserProfile struct {
	Currency           string   `json:"currency"`
	ExcludeIngredients []string `json:"exclude_ingredients"`
	PreferredVendors   []string `json:"preferred_vendors"`
	Servings           int      `json:"servings"`
	WeeklyBudget       float64  `json:"weekly_budget"`
}

// WeekPlan is a generated week of meals, ready for shopping aggregation.
type WeekPlan struct {
	ID   string    `json:"id"`
	Days []DayPlan `json:"days"`
}

// Menu converts the plan into the menu form consumed by the shopping pipeline.
func (w WeekPlan) Menu() Menu {
	return Menu{Days: w.Days}
}
