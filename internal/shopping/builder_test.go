package shopping

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealwise/mealwise/internal/ingredient"
	"github.com/mealwise/mealwise/internal/model"
)

func testAggregate() map[ingredient.Key]float64 {
	return map[ingredient.Key]float64{
		{Name: "onion", Unit: "piece"}:      3,
		{Name: "paneer", Unit: "gram"}:      400,
		{Name: "rice", Unit: "gram"}:        1500,
		{Name: "olive oil", Unit: "ml"}:     250,
		{Name: "mystery item", Unit: "box"}: 2, // prices as "other"
	}
}

func TestBuildListTotalsMatchLineItems(t *testing.T) {
	items, total := BuildList(testAggregate(), nil, "INR")

	require.Len(t, items, 5)

	var sum float64
	for _, item := range items {
		sum += item.EffectiveCost
	}
	assert.Equal(t, sum, total, "total must be the exact sum of chosen effective costs")
}

func TestBuildListChoosesCheapestOption(t *testing.T) {
	items, _ := BuildList(testAggregate(), nil, "INR")

	for _, item := range items {
		require.NotEmpty(t, item.StoreOptions, "item %s", item.Item)

		// Recompute every option's effective cost; the chosen one must be
		// the first option achieving the minimum.
		bestCost := math.Inf(1)
		bestStore := ""
		for _, opt := range item.StoreOptions {
			packages := math.Ceil(item.RequiredQuantity / opt.PackageSize)
			cost := packages * opt.Price
			if cost < bestCost {
				bestCost = cost
				bestStore = opt.Store
			}
		}

		assert.Equal(t, bestStore, item.ChosenStore, "item %s", item.Item)
		assert.InDelta(t, bestCost, item.EffectiveCost, 1e-9, "item %s", item.Item)
		assert.InDelta(t, item.EffectiveCost, float64(item.PackagesNeeded)*item.ChosenPrice, 1e-9,
			"item %s: effective cost must equal packages * price", item.Item)
	}
}

func TestBuildListPackagesRoundUp(t *testing.T) {
	agg := map[ingredient.Key]float64{
		// Grains package size is 1000g, so 1500g needs 2 packages.
		{Name: "rice", Unit: "gram"}: 1500,
	}

	items, _ := BuildList(agg, nil, "INR")

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].PackagesNeeded)
	assert.Equal(t, "grains", items[0].Category)
}

func TestChooseOptionFirstMinimumWinsOnTies(t *testing.T) {
	options := []model.VendorOption{
		{Store: "First", PackageSize: 500, Price: 40},
		{Store: "Tied", PackageSize: 500, Price: 40},
		{Store: "Pricier", PackageSize: 500, Price: 55},
	}

	var item model.ShoppingLineItem
	chooseOption(&item, 300, options)

	assert.Equal(t, "First", item.ChosenStore)
	assert.Equal(t, 1, item.PackagesNeeded)
	assert.InDelta(t, 40.0, item.EffectiveCost, 1e-9)
}

func TestChooseOptionPrefersFewerPackagesWhenCheaper(t *testing.T) {
	// A bigger package at a slightly higher price beats two small ones.
	options := []model.VendorOption{
		{Store: "Small", PackageSize: 500, Price: 40},
		{Store: "Bulk", PackageSize: 1000, Price: 60},
	}

	var item model.ShoppingLineItem
	chooseOption(&item, 800, options)

	assert.Equal(t, "Bulk", item.ChosenStore)
	assert.Equal(t, 1, item.PackagesNeeded)
	assert.InDelta(t, 60.0, item.EffectiveCost, 1e-9)
}

func TestBuildListOutputOrderIsStable(t *testing.T) {
	items, _ := BuildList(testAggregate(), nil, "INR")

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Item
	}
	assert.True(t, sort.StringsAreSorted(names), "line items should come out name-sorted: %v", names)
}

func TestBuildListCategorizesItems(t *testing.T) {
	items, _ := BuildList(testAggregate(), nil, "INR")

	byName := make(map[string]string, len(items))
	for _, item := range items {
		byName[item.Item] = item.Category
	}

	assert.Equal(t, "vegetables", byName["onion"])
	assert.Equal(t, "dairy", byName["paneer"])
	assert.Equal(t, "grains", byName["rice"])
	assert.Equal(t, "oils", byName["olive oil"])
	assert.Equal(t, "other", byName["mystery item"])
}

func TestBuildListEmptyAggregate(t *testing.T) {
	items, total := BuildList(map[ingredient.Key]float64{}, nil, "INR")

	assert.Empty(t, items)
	assert.Zero(t, total)
}
