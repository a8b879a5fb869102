// Package category maps ingredient names onto a fixed set of grocery
// categories via ordered keyword matching.
package category

import "strings"

// Category is one of the fixed grocery categories.
type Category string

const (
	// Vegetables covers fresh produce other than fruit.
	Vegetables Category = "vegetables"
	// Fruits covers fresh and dried fruit.
	Fruits Category = "fruits"
	// Grains covers rice, pasta, flour and other staples.
	Grains Category = "grains"
	// Dairy covers milk products.
	Dairy Category = "dairy"
	// Protein covers meat, fish, eggs and legumes.
	Protein Category = "protein"
	// Spices covers spices and fresh herbs.
	Spices Category = "spices"
	// Oils covers oils, sauces and pastes.
	Oils Category = "oils"
	// Other is the fallback for unmatched names.
	Other Category = "other"
)

// keywordTable is evaluated top to bottom; the first category whose keyword
// is a substring of the name wins. The priority order is fixed and must not
// be reordered: names matching multiple lists (e.g. "pepper" appears under
// both vegetables and spices) resolve to the earliest category.
var keywordTable = []struct {
	category Category
	keywords []string
}{
	{Vegetables, []string{
		"onion", "tomato", "potato", "bell pepper", "pepper", "zucchini",
		"carrot", "spinach", "lettuce", "cabbage", "broccoli", "cauliflower",
		"mushroom", "garlic", "ginger", "celery", "cucumber",
	}},
	{Fruits, []string{
		"apple", "banana", "orange", "lemon", "lime", "mango", "berry",
		"strawberry", "grape", "pineapple",
	}},
	{Grains, []string{
		"rice", "pasta", "penne", "rigatoni", "spaghetti", "flour", "wheat",
		"bread", "oats", "quinoa", "barley", "noodle",
	}},
	{Dairy, []string{
		"milk", "cheese", "mozzarella", "parmesan", "cheddar", "ricotta",
		"yogurt", "butter", "cream", "paneer",
	}},
	{Protein, []string{
		"chicken", "beef", "pork", "fish", "salmon", "tuna", "egg",
		"tofu", "lentil", "bean", "chickpea",
	}},
	{Spices, []string{
		"salt", "pepper", "chili", "oregano", "basil", "thyme", "rosemary",
		"cumin", "coriander", "turmeric", "paprika", "cinnamon", "garam masala",
		"bay leaf", "mint", "cilantro", "parsley", "fenugreek", "kasuri methi",
	}},
	{Oils, []string{
		"oil", "olive oil", "vegetable oil", "butter", "ghee", "sauce",
		"tomato sauce", "soy sauce", "vinegar", "paste", "tomato paste",
	}},
}

// Categorize returns the category for an ingredient name. Matching is
// case-insensitive substring lookup over the fixed keyword table; unmatched
// names fall back to Other.
func Categorize(name string) Category {
	lowered := strings.ToLower(strings.TrimSpace(name))
	if lowered == "" {
		return Other
	}

	for _, entry := range keywordTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lowered, kw) {
				return entry.category
			}
		}
	}
	return Other
}

// All lists every category in priority order, Other last.
func All() []Category {
	cats := make([]Category, 0, len(keywordTable)+1)
	for _, entry := range keywordTable {
		cats = append(cats, entry.category)
	}
	return append(cats, Other)
}
