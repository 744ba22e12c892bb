// Package pricing assigns estimated costs to shopping items from a
// category/unit rate table. Rates are configuration data: currency and
// values come from the injected table, never from code.
package pricing

import (
	"github.com/shopspring/decimal"

	"shopping-optimizer/internal/packaging"
	"shopping-optimizer/internal/recipe"
)

// DefaultRateKey is the per-category fallback used when a category has no
// rate for the item's specific unit.
const DefaultRateKey = "default"

// RateTable maps category → canonical unit → price per unit. Each category
// may carry a DefaultRateKey entry; the "other" category is the fallback for
// categories absent from the table.
type RateTable map[string]map[string]float64

// Estimator computes estimated prices from an injected rate table.
type Estimator struct {
	rates RateTable
}

// NewEstimator creates an Estimator over the given rate table.
func NewEstimator(rates RateTable) *Estimator {
	return &Estimator{rates: rates}
}

// Estimate returns the estimated cost of one shopping item.
//
// With a resolved package selection the price reflects what is actually
// bought, surplus included: quantity × package amount × rate. Without one
// the consolidated amount is priced directly and rounded to whole currency
// units.
func (e *Estimator) Estimate(category recipe.Category, unit string, totalAmount float64, pkg *packaging.Selection) float64 {
	rate := decimal.NewFromFloat(e.rateFor(category, unit))

	if pkg != nil {
		price := decimal.NewFromInt(int64(pkg.Quantity)).
			Mul(decimal.NewFromFloat(pkg.Amount)).
			Mul(rate)
		return price.Round(2).InexactFloat64()
	}

	price := decimal.NewFromFloat(totalAmount).Mul(rate)
	return price.Round(0).InexactFloat64()
}

// rateFor resolves the unit rate: exact category+unit, then the category's
// default rate, then the same lookups under the "other" category, then zero.
func (e *Estimator) rateFor(category recipe.Category, unit string) float64 {
	for _, cat := range []string{string(category), string(recipe.CategoryOther)} {
		byUnit, ok := e.rates[cat]
		if !ok {
			continue
		}
		if rate, ok := byUnit[unit]; ok {
			return rate
		}
		if rate, ok := byUnit[DefaultRateKey]; ok {
			return rate
		}
	}
	return 0
}
