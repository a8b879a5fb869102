package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mealwise/mealwise/internal/cli"
	"github.com/mealwise/mealwise/internal/config"
	"github.com/mealwise/mealwise/internal/planner"
)

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and price a full weekly meal plan",
		Long: `Generate a week of meals from the built-in recipe library, build the
consolidated grocery list with per-vendor pricing, evaluate it against
your weekly budget, and score the plan's nutrition.`,
		RunE: runPlan,
	}

	// Flags
	cmd.Flags().Float64P("budget", "b", 0, "Weekly grocery budget")
	cmd.Flags().StringP("currency", "c", "", "Currency code for prices")
	cmd.Flags().StringSlice("vendors", nil, "Vendors to price against (max 3)")
	cmd.Flags().IntP("servings", "s", 0, "Servings per meal")
	cmd.Flags().StringSlice("exclude", nil, "Ingredients to exclude from recipes")
	cmd.Flags().Bool("json", false, "Emit the result as JSON instead of a styled report")

	// Bind to viper
	_ = viper.BindPFlag("budget", cmd.Flags().Lookup("budget"))
	_ = viper.BindPFlag("currency", cmd.Flags().Lookup("currency"))
	_ = viper.BindPFlag("vendors", cmd.Flags().Lookup("vendors"))
	_ = viper.BindPFlag("servings", cmd.Flags().Lookup("servings"))
	_ = viper.BindPFlag("exclude_ingredients", cmd.Flags().Lookup("exclude"))

	return cmd
}

func runPlan(cmd *cobra.Command, _ []string) error {
	profile := config.ProfileFromViper()

	orch := planner.NewOrchestrator()
	result, err := orch.RunWeeklyPlanning(cmd.Context(), profile)
	if err != nil {
		return fmt.Errorf("weekly planning failed: %w", err)
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Println(cli.RenderWeekPlan(result.WeekPlan))
	fmt.Println(cli.RenderShoppingPlan(result.ShoppingPlan))
	fmt.Println(cli.RenderHealthReport(result.HealthReport))
	return nil
}
