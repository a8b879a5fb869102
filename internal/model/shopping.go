package model

// Impact indicates the severity of a cost-saving suggestion.
type Impact string

const (
	// ImpactCritical marks the overall over-budget summary.
	ImpactCritical Impact = "critical"
	// ImpactHigh marks suggestions with large expected savings.
	ImpactHigh Impact = "high"
	// ImpactMedium marks moderate-savings suggestions.
	ImpactMedium Impact = "medium"
	// ImpactLow marks minor-savings suggestions.
	ImpactLow Impact = "low"
)

// VendorOption is one vendor's package offer for an ingredient.
type VendorOption struct {
	Store       string  `json:"store"`
	PackageUnit string  `json:"package_unit"`
	Currency    string  `json:"currency"`
	PackageSize float64 `json:"package_size"`
	Price       float64 `json:"price"`
}

// ShoppingLineItem is one consolidated shopping list entry with the cheapest
// vendor choice resolved.
type ShoppingLineItem struct {
	Item             string         `json:"item"`
	Category         string         `json:"category"`
	Unit             string         `json:"unit"`
	ChosenStore      string         `json:"chosen_store"`
	StoreOptions     []VendorOption `json:"store_options"`
	RequiredQuantity float64        `json:"required_quantity"`
	PackagesNeeded   int            `json:"packages_needed"`
	ChosenPrice      float64        `json:"chosen_price"`
	EffectiveCost    float64        `json:"effective_cost"`
}

// Suggestion is a single cost-saving recommendation.
type Suggestion struct {
	Impact           Impact  `json:"impact"`
	Category         string  `json:"category"`
	Item             string  `json:"item"`
	Description      string  `json:"description"`
	EstimatedSavings float64 `json:"estimated_savings"`
}

// BudgetReport is the outcome of comparing total cost against the budget.
type BudgetReport struct {
	Suggestions      []Suggestion `json:"recipe_change_suggestions"`
	AmountOverBudget float64      `json:"amount_over_budget"`
	WithinBudget     bool         `json:"within_budget"`
}

// ShoppingPlanResult is the full pipeline output. Built fresh per invocation
// and never mutated after construction.
type ShoppingPlanResult struct {
	RecipeName         string             `json:"recipe_name,omitempty"`
	Currency           string             `json:"currency"`
	ShoppingList       []ShoppingLineItem `json:"shopping_list"`
	Suggestions        []Suggestion       `json:"recipe_change_suggestions"`
	EstimatedTotalCost float64            `json:"estimated_total_cost"`
	Budget             float64            `json:"budget"`
	AmountOverBudget   float64            `json:"amount_over_budget"`
	WithinBudget       bool               `json:"within_budget"`
}
