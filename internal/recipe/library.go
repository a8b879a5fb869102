// Package recipe holds the built-in recipe library and generates weekly
// meal plans from it.
package recipe

import "github.com/mealwise/mealwise/internal/model"

// library is the built-in recipe set, grouped by meal type through the
// MealType field. Ingredient lines are free text and go through the
// ingredient parser when a plan is assembled.
var library = []model.Recipe{
	{
		ID:       "masala-oats",
		Title:    "Masala Oats",
		MealType: "breakfast",
		Ingredients: []string{
			"50 gram oats",
			"1 onion, chopped",
			"1 tomato, diced",
			"1 teaspoon cumin",
			"1 tablespoon vegetable oil",
		},
		Steps: []string{
			"Toast the oats in a dry pan.",
			"Saute onion, tomato and cumin in oil, add oats and water, simmer.",
		},
	},
	{
		ID:       "veggie-omelette",
		Title:    "Vegetable Omelette",
		MealType: "breakfast",
		Ingredients: []string{
			"2 egg",
			"1 onion, finely chopped",
			"1 bell pepper, diced",
			"1 tablespoon butter",
			"1 pinch salt",
		},
		Steps: []string{
			"Whisk eggs with salt.",
			"Cook vegetables in butter, pour eggs over, fold when set.",
		},
	},
	{
		ID:       "banana-porridge",
		Title:    "Banana Porridge",
		MealType: "breakfast",
		Ingredients: []string{
			"60 gram oats",
			"250 ml milk",
			"1 banana, sliced",
			"1 teaspoon cinnamon",
		},
		Steps: []string{
			"Simmer oats in milk until creamy.",
			"Top with banana and cinnamon.",
		},
	},
	{
		ID:       "poha",
		Title:    "Poha",
		MealType: "breakfast",
		Ingredients: []string{
			"100 gram rice flakes",
			"1 onion, sliced",
			"1 potato, diced",
			"1 teaspoon turmeric",
			"1 tablespoon vegetable oil",
		},
		Steps: []string{
			"Rinse the rice flakes.",
			"Fry onion, potato and turmeric, fold in the flakes and steam briefly.",
		},
	},
	{
		ID:       "chickpea-salad",
		Title:    "Chickpea Salad",
		MealType: "lunch",
		Ingredients: []string{
			"200 gram chickpea",
			"1 cucumber, diced",
			"2 tomato, diced",
			"1/2 lemon",
			"2 tablespoons olive oil",
			"1 pinch salt",
		},
		Steps: []string{
			"Combine chickpeas and vegetables.",
			"Dress with lemon juice, olive oil and salt.",
		},
	},
	{
		ID:       "dal-tadka",
		Title:    "Dal Tadka",
		MealType: "lunch",
		Ingredients: []string{
			"150 gram lentil",
			"1 onion, chopped",
			"2 tomato, chopped",
			"1 teaspoon cumin",
			"1 teaspoon turmeric",
			"1 tablespoon ghee",
		},
		Steps: []string{
			"Pressure-cook lentils with turmeric.",
			"Temper cumin and onion in ghee, stir into the dal with tomatoes.",
		},
	},
	{
		ID:       "penne-arrabbiata",
		Title:    "Penne Arrabbiata",
		MealType: "lunch",
		Ingredients: []string{
			"250 gram penne",
			"400 gram tomato sauce",
			"3 garlic cloves",
			"1 teaspoon chili flakes",
			"2 tablespoons olive oil",
			"20 gram parmesan",
		},
		Steps: []string{
			"Cook the penne until al dente.",
			"Simmer garlic and chili in oil with the sauce, toss with pasta and parmesan.",
		},
	},
	{
		ID:       "veg-fried-rice",
		Title:    "Vegetable Fried Rice",
		MealType: "lunch",
		Ingredients: []string{
			"200 gram rice",
			"1 carrot, diced",
			"100 gram bean",
			"2 tablespoons soy sauce",
			"1 tablespoon vegetable oil",
			"1 egg",
		},
		Steps: []string{
			"Cook and cool the rice.",
			"Stir-fry vegetables and egg, add rice and soy sauce over high heat.",
		},
	},
	{
		ID:       "paneer-curry",
		Title:    "Paneer Curry",
		MealType: "dinner",
		Ingredients: []string{
			"200 gram paneer",
			"2 tomato, pureed",
			"1 onion, chopped",
			"100 ml cream",
			"1 teaspoon garam masala",
			"1 tablespoon butter",
		},
		Steps: []string{
			"Cook onion and tomato puree into a gravy.",
			"Add paneer, cream and garam masala, simmer gently.",
		},
	},
	{
		ID:       "grilled-chicken",
		Title:    "Grilled Chicken with Vegetables",
		MealType: "dinner",
		Ingredients: []string{
			"400 gram chicken",
			"1 zucchini, sliced",
			"1 bell pepper, sliced",
			"2 tablespoons olive oil",
			"1 teaspoon paprika",
			"1 pinch salt",
		},
		Steps: []string{
			"Rub chicken with oil, paprika and salt.",
			"Grill with the vegetables until cooked through.",
		},
	},
	{
		ID:       "salmon-rice-bowl",
		Title:    "Salmon Rice Bowl",
		MealType: "dinner",
		Ingredients: []string{
			"250 gram salmon",
			"200 gram rice",
			"1 cucumber, sliced",
			"2 tablespoons soy sauce",
			"1 teaspoon ginger, grated",
		},
		Steps: []string{
			"Pan-sear the salmon.",
			"Serve over rice with cucumber, soy and ginger.",
		},
	},
	{
		ID:       "veggie-stir-fry",
		Title:    "Tofu Vegetable Stir Fry",
		MealType: "dinner",
		Ingredients: []string{
			"200 gram tofu",
			"1 broccoli head",
			"1 carrot, sliced",
			"2 tablespoons soy sauce",
			"1 tablespoon vegetable oil",
			"1 teaspoon ginger",
		},
		Steps: []string{
			"Crisp the tofu in oil.",
			"Stir-fry vegetables, return tofu, glaze with soy and ginger.",
		},
	},
}

// Library returns a copy of the built-in recipe set.
func Library() []model.Recipe {
	out := make([]model.Recipe, len(library))
	copy(out, library)
	return out
}
