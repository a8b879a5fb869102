// Package shopping builds consolidated shopping lists from aggregated
// ingredient requirements and evaluates them against a budget.
package shopping

import (
	"math"
	"sort"

	"github.com/mealwise/mealwise/internal/category"
	"github.com/mealwise/mealwise/internal/ingredient"
	"github.com/mealwise/mealwise/internal/model"
	"github.com/mealwise/mealwise/internal/pricing"
)

// BuildList turns aggregated requirements into line items, choosing the
// cheapest vendor option per item. Selection is a stable fold over the quote
// sequence: the first option achieving the minimum effective cost wins, so
// the documented tie-break (encounter order) holds. The returned total is
// the exact sum of every chosen effective cost.
func BuildList(agg map[ingredient.Key]float64, vendors []string, currency string) ([]model.ShoppingLineItem, float64) {
	// Map iteration order is random; sort keys so output order is stable.
	// Totals do not depend on this, only display does.
	keys := make([]ingredient.Key, 0, len(agg))
	for k := range agg {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Name != keys[j].Name {
			return keys[i].Name < keys[j].Name
		}
		return keys[i].Unit < keys[j].Unit
	})

	items := make([]model.ShoppingLineItem, 0, len(keys))
	var totalCost float64

	for _, key := range keys {
		item := buildLineItem(key, agg[key], vendors, currency)
		totalCost += item.EffectiveCost
		items = append(items, item)
	}
	return items, totalCost
}

// buildLineItem categorizes one requirement, fetches vendor quotes, and
// resolves the cheapest whole-package purchase covering the quantity.
func buildLineItem(key ingredient.Key, qty float64, vendors []string, currency string) model.ShoppingLineItem {
	cat := category.Categorize(key.Name)
	options := pricing.Lookup(key.Name, key.Unit, cat, vendors, currency)

	item := model.ShoppingLineItem{
		Item:             key.Name,
		Category:         string(cat),
		RequiredQuantity: qty,
		Unit:             key.Unit,
		StoreOptions:     options,
	}
	chooseOption(&item, qty, options)
	return item
}

// chooseOption folds over the vendor quotes in order, keeping the first one
// that achieves the minimum effective cost. A fold rather than a sort keeps
// the documented tie-break: on equal costs the earlier quote wins.
func chooseOption(item *model.ShoppingLineItem, qty float64, options []model.VendorOption) {
	best := -1.0
	for _, opt := range options {
		packages := int(math.Ceil(qty / opt.PackageSize))
		effective := float64(packages) * opt.Price

		if best < 0 || effective < best {
			best = effective
			item.ChosenStore = opt.Store
			item.PackagesNeeded = packages
			item.ChosenPrice = opt.Price
			item.EffectiveCost = effective
		}
	}
}
