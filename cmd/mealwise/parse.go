package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mealwise/mealwise/internal/category"
	"github.com/mealwise/mealwise/internal/ingredient"
)

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [ingredient lines...]",
		Short: "Parse free-text ingredient lines",
		Long: `Parse ingredient lines into quantity/unit/name triples and show the
category each resolves to. Lines are taken from arguments, or from
stdin when no arguments are given. Useful for checking how a recipe
line will aggregate.`,
		RunE: runParse,
	}
}

func runParse(_ *cobra.Command, args []string) error {
	lines := args
	if len(lines) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	for _, line := range lines {
		ing := ingredient.Parse(line)
		cat := category.Categorize(ing.Name)
		fmt.Printf("%-30q -> %g %s %q [%s]\n", line, ing.Quantity, ing.Unit, ing.Name, cat)
	}
	return nil
}
