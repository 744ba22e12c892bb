// Package consolidator merges ingredient occurrences across recipes into one
// aggregated quantity per distinct (normalized name, canonical unit) pair.
package consolidator

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"shopping-optimizer/internal/normalizer"
	"shopping-optimizer/internal/recipe"
	"shopping-optimizer/internal/units"
)

// Source records one contributing ingredient line and the recipe it came from.
type Source struct {
	Recipe     string
	Ingredient recipe.Ingredient
}

// Entry is one consolidated ingredient. Amounts are only ever summed between
// occurrences that share both the normalized name and the canonical unit.
type Entry struct {
	Key            string
	NormalizedName string
	TotalAmount    float64
	Unit           string
	Category       recipe.Category
	RecipeNames    []string
	Sources        []Source
}

// WarningKind classifies non-fatal per-ingredient problems.
type WarningKind string

// WarningInvalidQuantity marks an ingredient whose amount is not a positive
// finite number. The ingredient is skipped, the run continues.
const WarningInvalidQuantity WarningKind = "invalid_quantity"

// Warning is a recoverable per-ingredient problem surfaced to the caller
// alongside the consolidated result.
type Warning struct {
	Kind       WarningKind `json:"kind"`
	Recipe     string      `json:"recipe"`
	Ingredient string      `json:"ingredient"`
	Message    string      `json:"message"`
}

// entryKey is the value tuple the consolidation map is keyed by. Keying by
// (name, unit) makes cross-unit addition structurally impossible.
type entryKey struct {
	name string
	unit string
}

// Consolidator merges recipe ingredients using the injected unit table and
// name normalizer.
type Consolidator struct {
	units units.Table
	names *normalizer.Normalizer
	log   zerolog.Logger
}

// New creates a Consolidator.
func New(unitTable units.Table, names *normalizer.Normalizer, log zerolog.Logger) *Consolidator {
	return &Consolidator{units: unitTable, names: names, log: log}
}

// Consolidate merges every ingredient of every recipe. The returned map is
// keyed by display key: the first canonical unit seen for a name owns the
// plain name key; the "same" ingredient in an incompatible unit gets a
// separate "name(unit)" entry rather than ever being added across units.
// Ingredients with invalid amounts are skipped and reported as warnings.
func (c *Consolidator) Consolidate(recipes []recipe.Recipe) (map[string]*Entry, []Warning) {
	entries := make(map[entryKey]*Entry)
	firstUnit := make(map[string]string)
	byKey := make(map[string]*Entry)
	var warnings []Warning

	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			if ing.Amount <= 0 || math.IsNaN(ing.Amount) || math.IsInf(ing.Amount, 0) {
				warnings = append(warnings, Warning{
					Kind:       WarningInvalidQuantity,
					Recipe:     r.Name,
					Ingredient: ing.Name,
					Message:    fmt.Sprintf("invalid amount %v for %q in recipe %q, ingredient skipped", ing.Amount, ing.Name, r.Name),
				})
				c.log.Warn().Str("recipe", r.Name).Str("ingredient", ing.Name).
					Float64("amount", ing.Amount).Msg("skipping ingredient with invalid amount")
				continue
			}

			name := c.names.Normalize(ing.Name)
			if name == "" {
				continue
			}
			if !c.units.Recognized(ing.Unit) {
				c.log.Debug().Str("unit", ing.Unit).Str("ingredient", ing.Name).
					Msg("unknown unit, passing through unchanged")
			}
			amount, unit := c.units.Standardize(ing.Amount, ing.Unit)

			key := entryKey{name: name, unit: unit}
			entry, ok := entries[key]
			if !ok {
				entry = &Entry{
					Key:            displayKey(name, unit, firstUnit),
					NormalizedName: name,
					Unit:           unit,
					Category:       categoryFor(ing),
				}
				entries[key] = entry
				byKey[entry.Key] = entry
			}
			entry.TotalAmount += amount
			entry.RecipeNames = append(entry.RecipeNames, r.Name)
			entry.Sources = append(entry.Sources, Source{Recipe: r.Name, Ingredient: ing})
		}
	}

	return byKey, warnings
}

// displayKey assigns the plain name to the first unit seen for that name and
// a "name(unit)" disambiguated key to any later unit of the same name.
func displayKey(name, unit string, firstUnit map[string]string) string {
	owner, seen := firstUnit[name]
	if !seen {
		firstUnit[name] = unit
		return name
	}
	if owner == unit {
		return name
	}
	return name + "(" + unit + ")"
}

// categoryFor trusts the supplied category when it is one of the known ones
// and otherwise infers it from the ingredient name.
func categoryFor(ing recipe.Ingredient) recipe.Category {
	if ing.Category.Known() {
		return ing.Category
	}
	return recipe.InferCategory(ing.Name)
}
