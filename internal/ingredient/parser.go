// Package ingredient parses free-text ingredient lines and aggregates
// structured requirements across a week of meals.
package ingredient

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mealwise/mealwise/internal/model"
)

// DefaultUnit is assumed when a line carries no recognizable unit token.
const DefaultUnit = "piece"

// quantityPattern matches a leading decimal or simple a/b fraction.
var quantityPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?(?:\s*/\s*[0-9]+(?:\.[0-9]+)?)?)\s+(.+)$`)

// Parse converts a free-text ingredient line like "2 tablespoons olive oil"
// into a structured Ingredient. Parsing never fails: any line that does not
// match the quantity-unit-name shape degrades to the whole trimmed string as
// the name with quantity 1 and unit "piece". The returned quantity is always
// positive.
func Parse(text string) model.Ingredient {
	trimmed := strings.TrimSpace(text)
	fallback := model.Ingredient{Name: trimmed, Quantity: 1, Unit: DefaultUnit}
	if trimmed == "" {
		return fallback
	}

	m := quantityPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return fallback
	}

	qty, ok := parseQuantity(m[1])
	if !ok || qty <= 0 {
		return fallback
	}

	// Descriptive suffixes after a comma ("onion, chopped") are discarded
	// before splitting off the unit token.
	rest := strings.TrimSpace(m[2])
	if idx := strings.Index(rest, ","); idx >= 0 {
		rest = strings.TrimSpace(rest[:idx])
	}
	if rest == "" {
		return fallback
	}

	unit := DefaultUnit
	name := rest
	if fields := strings.Fields(rest); len(fields) > 1 && isAlpha(fields[0]) {
		unit = fields[0]
		name = strings.TrimSpace(strings.Join(fields[1:], " "))
	}

	return model.Ingredient{Name: name, Quantity: qty, Unit: unit}
}

// ParseLines parses a batch of free-text ingredient lines, skipping blanks.
func ParseLines(lines []string) []model.Ingredient {
	parsed := make([]model.Ingredient, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parsed = append(parsed, Parse(line))
	}
	return parsed
}

// parseQuantity handles plain decimals and simple a/b fractions. A zero
// denominator is a parse failure, not a crash.
func parseQuantity(s string) (float64, bool) {
	if num, den, found := strings.Cut(s, "/"); found {
		n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, false
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}

	q, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return q, true
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
