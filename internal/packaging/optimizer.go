// Package packaging picks retail package sizes for consolidated quantities.
package packaging

import (
	"math"
	"sort"
	"strings"
)

// Size is one retail package size an ingredient is sold in.
type Size struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Catalog maps normalized ingredient names to their known retail sizes.
type Catalog map[string][]Size

// SizesFor returns the catalog entry for a normalized ingredient name.
func (c Catalog) SizesFor(name string) []Size {
	return c[strings.ToLower(strings.TrimSpace(name))]
}

// Selection is the chosen package size and how many of it to buy.
type Selection struct {
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
	Quantity int     `json:"quantity"`
}

// maxWasteFraction is the acceptable surplus relative to the required
// amount when picking a package size.
const maxWasteFraction = 0.20

// Optimize picks a package size and count covering requiredAmount.
//
// Candidates matching the item's canonical unit are tried largest first; the
// first whose waste fraction stays under maxWasteFraction wins. When every
// candidate wastes too much, the smallest one is used anyway: sufficiency
// beats waste. This is a greedy single-size heuristic; it deliberately does
// not search combinations of different package sizes.
//
// Returns nil when the catalog has no size in the item's unit, meaning the
// item is bought loose in its standardized unit.
func Optimize(requiredAmount float64, unit string, sizes []Size) *Selection {
	if requiredAmount <= 0 {
		return nil
	}

	var candidates []Size
	for _, s := range sizes {
		if s.Unit == unit && s.Amount > 0 {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Amount > candidates[j].Amount
	})

	for _, c := range candidates {
		quantity := int(math.Ceil(requiredAmount / c.Amount))
		bought := float64(quantity) * c.Amount
		waste := (bought - requiredAmount) / requiredAmount
		if waste < maxWasteFraction {
			return &Selection{Amount: c.Amount, Unit: c.Unit, Quantity: quantity}
		}
	}

	smallest := candidates[len(candidates)-1]
	quantity := int(math.Ceil(requiredAmount / smallest.Amount))
	return &Selection{Amount: smallest.Amount, Unit: smallest.Unit, Quantity: quantity}
}
