// Package pricing produces deterministic per-vendor package quotes for
// ingredient categories. Prices are synthetic but reproducible: the same
// item name always yields the same quotes, across calls and across runs.
package pricing

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/mealwise/mealwise/internal/category"
	"github.com/mealwise/mealwise/internal/model"
)

// maxVendors caps how many vendor quotes a lookup returns.
const maxVendors = 3

// DefaultVendors is used when the caller supplies no vendor list.
var DefaultVendors = []string{"VendorA", "VendorB", "VendorC"}

// categoryPricing holds the base package offer for one category.
type categoryPricing struct {
	packageUnit string
	basePrice   float64
	packageSize float64
	variance    float64 // fractional spread between vendors
}

// priceTable drives quote generation. The "other" row echoes the caller's
// unit as the package unit, so its packageUnit stays empty here.
var priceTable = map[category.Category]categoryPricing{
	category.Vegetables: {basePrice: 40, packageSize: 500, packageUnit: "gram", variance: 0.3},
	category.Fruits:     {basePrice: 60, packageSize: 500, packageUnit: "gram", variance: 0.25},
	category.Grains:     {basePrice: 50, packageSize: 1000, packageUnit: "gram", variance: 0.2},
	category.Dairy:      {basePrice: 180, packageSize: 200, packageUnit: "gram", variance: 0.15},
	category.Protein:    {basePrice: 250, packageSize: 500, packageUnit: "gram", variance: 0.25},
	category.Spices:     {basePrice: 30, packageSize: 50, packageUnit: "gram", variance: 0.4},
	category.Oils:       {basePrice: 150, packageSize: 500, packageUnit: "ml", variance: 0.2},
	category.Other:      {basePrice: 100, packageSize: 500, variance: 0.3},
}

// Lookup returns up to three vendor quotes for an ingredient. Vendors are
// taken in input order; unknown categories price as "other". Quotes depend
// only on the item name and vendor position, never on process state.
func Lookup(itemName, unit string, cat category.Category, vendors []string, currency string) []model.VendorOption {
	info, ok := priceTable[cat]
	if !ok {
		info = priceTable[category.Other]
	}
	packageUnit := info.packageUnit
	if packageUnit == "" {
		packageUnit = unit
	}

	if len(vendors) == 0 {
		vendors = DefaultVendors
	}
	if len(vendors) > maxVendors {
		vendors = vendors[:maxVendors]
	}

	options := make([]model.VendorOption, 0, len(vendors))
	for i, vendor := range vendors {
		u := unitInterval(itemName, i)
		multiplier := 1 + (2*u-1)*info.variance
		options = append(options, model.VendorOption{
			Store:       vendor,
			PackageSize: info.packageSize,
			PackageUnit: packageUnit,
			Price:       Round2(info.basePrice * multiplier),
			Currency:    currency,
		})
	}
	return options
}

// unitInterval maps an item name and vendor position to a stable value in
// [0, 1). An explicit hash keeps the reproducibility contract independent of
// any PRNG implementation.
func unitInterval(itemName string, vendorIndex int) float64 {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%d", itemName, vendorIndex)))
	n := binary.BigEndian.Uint64(sum[:8])
	return float64(n>>11) / float64(1<<53)
}

// Round2 rounds to two decimal places, the precision all prices carry.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
