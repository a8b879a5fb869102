package config

import (
	"github.com/spf13/viper"

	"github.com/mealwise/mealwise/internal/model"
)

// ProfileFromViper assembles the user profile from the resolved
// configuration (file, environment, and bound flags).
func ProfileFromViper() model.UserProfile {
	return model.UserProfile{
		Servings:           viper.GetInt("servings"),
		WeeklyBudget:       viper.GetFloat64("budget"),
		Currency:           viper.GetString("currency"),
		ExcludeIngredients: viper.GetStringSlice("exclude_ingredients"),
		PreferredVendors:   viper.GetStringSlice("vendors"),
	}
}
