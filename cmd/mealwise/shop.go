package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mealwise/mealwise/internal/cli"
	"github.com/mealwise/mealwise/internal/common"
	"github.com/mealwise/mealwise/internal/config"
	"github.com/mealwise/mealwise/internal/model"
	"github.com/mealwise/mealwise/internal/shopping"
)

func shopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Price an existing menu or recipe against a budget",
		Long: `Run the shopping and budget pipeline over a menu or recipe JSON file.

A menu file carries structured days/meals/ingredients; a recipe file
carries free-text ingredient lines grouped by section, which are parsed
before aggregation.`,
		RunE: runShop,
	}

	// Flags
	cmd.Flags().String("menu", "", "Path to a menu JSON file")
	cmd.Flags().String("recipe", "", "Path to a recipe ingredients JSON file")
	cmd.Flags().Float64P("budget", "b", 0, "Grocery budget")
	cmd.Flags().StringP("currency", "c", "", "Currency code for prices")
	cmd.Flags().StringSlice("vendors", nil, "Vendors to price against (max 3)")
	cmd.Flags().Bool("json", false, "Emit the result as JSON instead of a styled report")

	// Bind to viper
	_ = viper.BindPFlag("budget", cmd.Flags().Lookup("budget"))
	_ = viper.BindPFlag("currency", cmd.Flags().Lookup("currency"))
	_ = viper.BindPFlag("vendors", cmd.Flags().Lookup("vendors"))

	return cmd
}

func runShop(cmd *cobra.Command, _ []string) error {
	menuPath, _ := cmd.Flags().GetString("menu")
	recipePath, _ := cmd.Flags().GetString("recipe")
	if (menuPath == "") == (recipePath == "") {
		return common.NewUserError("exactly one of --menu or --recipe is required", nil)
	}

	budget := viper.GetFloat64("budget")
	vendors := viper.GetStringSlice("vendors")
	p := shopping.NewPlanner(viper.GetString("currency"))

	var result *model.ShoppingPlanResult
	if menuPath != "" {
		var menu model.Menu
		if err := readJSONFile(menuPath, &menu); err != nil {
			return common.NewUserError("could not read menu file", err)
		}
		plan, err := p.BuildShoppingPlan(menu, vendors, budget)
		if err != nil {
			return err
		}
		result = plan
	} else {
		var rec model.RecipeIngredients
		if err := readJSONFile(recipePath, &rec); err != nil {
			return common.NewUserError("could not read recipe file", err)
		}
		plan, err := p.ProcessRecipeIngredients(rec, vendors, budget)
		if err != nil {
			return err
		}
		result = plan
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Println(cli.RenderShoppingPlan(result))
	return nil
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(config.ExpandPath(path))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return nil
}
