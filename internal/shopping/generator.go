package shopping

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"shopping-optimizer/internal/config"
	"shopping-optimizer/internal/consolidator"
	"shopping-optimizer/internal/normalizer"
	"shopping-optimizer/internal/packaging"
	"shopping-optimizer/internal/pricing"
	"shopping-optimizer/internal/recipe"
)

// Generator runs the full pipeline: consolidation, package optimization,
// price estimation, and category routing. It holds only the immutable
// configuration tables, so one Generator may serve concurrent callers.
type Generator struct {
	tables       *config.Tables
	consolidator *consolidator.Consolidator
	estimator    *pricing.Estimator
	log          zerolog.Logger
}

// NewGenerator creates a Generator from the injected configuration tables.
// Construction fails when the required tables are missing rather than
// producing silently wrong lists at call time.
func NewGenerator(tables *config.Tables, log zerolog.Logger) (*Generator, error) {
	if tables == nil {
		return nil, fmt.Errorf("configuration missing: no tables provided")
	}
	if len(tables.Units) == 0 {
		return nil, fmt.Errorf("configuration missing: unit conversion table is empty")
	}
	if len(tables.Rates) == 0 {
		return nil, fmt.Errorf("configuration missing: price rate table is empty")
	}

	names := normalizer.New(tables.Synonyms, tables.Modifiers)
	return &Generator{
		tables:       tables,
		consolidator: consolidator.New(tables.Units, names, log),
		estimator:    pricing.NewEstimator(tables.Rates),
		log:          log,
	}, nil
}

// Generate builds the shopping list for one user and week from the recipes
// consumed in that period. Malformed ingredients are reported as warnings,
// never abort the run; zero recipes yields a valid empty list.
func (g *Generator) Generate(userID string, weekStart time.Time, recipes []recipe.Recipe) (*List, []consolidator.Warning) {
	entries, warnings := g.consolidator.Consolidate(recipes)

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	caser := cases.Title(language.Spanish)
	items := make([]Item, 0, len(entries))
	var total float64
	for _, key := range keys {
		item := g.buildItem(caser, entries[key])
		total += item.EstimatedPrice
		items = append(items, item)
	}

	now := time.Now().UTC()
	return &List{
		ID:             uuid.NewString(),
		UserID:         userID,
		WeekStart:      weekStart,
		Items:          items,
		Categories:     GroupByRoute(items),
		EstimatedTotal: total,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, warnings
}

func (g *Generator) buildItem(caser cases.Caser, entry *consolidator.Entry) Item {
	pkg := packaging.Optimize(entry.TotalAmount, entry.Unit, g.tables.Catalog.SizesFor(entry.NormalizedName))
	price := g.estimator.Estimate(entry.Category, entry.Unit, entry.TotalAmount, pkg)

	name := caser.String(entry.NormalizedName)
	if entry.Key != entry.NormalizedName {
		// disambiguated entry: same ingredient consolidated separately
		// under an incompatible unit
		name += " (" + entry.Unit + ")"
	}

	return Item{
		ID:             uuid.NewString(),
		Name:           name,
		TotalAmount:    int(math.Ceil(entry.TotalAmount)),
		Unit:           entry.Unit,
		Category:       entry.Category,
		Recipes:        dedupe(entry.RecipeNames),
		Purchased:      false,
		Notes:          buildNotes(entry.Sources),
		Package:        pkg,
		EstimatedPrice: price,
	}
}

// dedupe removes duplicate recipe names, preserving first-seen order.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// buildNotes concatenates optional-ingredient flags and free-text notes from
// every contributing line, one sentence each, skipping exact repeats.
func buildNotes(sources []consolidator.Source) string {
	seen := make(map[string]struct{})
	var sentences []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if !strings.HasSuffix(s, ".") {
			s += "."
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		sentences = append(sentences, s)
	}

	for _, src := range sources {
		if src.Ingredient.Optional {
			add(fmt.Sprintf("Opcional para %s", src.Recipe))
		}
		add(src.Ingredient.Notes)
	}
	return strings.Join(sentences, " ")
}
