package shopping

import "shopping-optimizer/internal/recipe"

// RouteOrder is the canonical store walkthrough sequence. It is the single
// source of truth for category ordering; categories with no items are
// omitted from the output.
var RouteOrder = []recipe.Category{
	recipe.CategoryProduce,
	recipe.CategoryMeat,
	recipe.CategoryDairy,
	recipe.CategoryGrains,
	recipe.CategoryPantry,
	recipe.CategoryFrozen,
	recipe.CategoryBeverages,
	recipe.CategorySpices,
	recipe.CategoryOther,
}

// GroupByRoute groups items by category in RouteOrder and computes each
// group's subtotal from the item prices. Items with a category outside the
// route are folded into "other".
func GroupByRoute(items []Item) []CategoryGroup {
	byCategory := make(map[recipe.Category][]Item)
	for _, item := range items {
		cat := item.Category
		if !cat.Known() {
			cat = recipe.CategoryOther
		}
		byCategory[cat] = append(byCategory[cat], item)
	}

	groups := make([]CategoryGroup, 0, len(byCategory))
	for _, cat := range RouteOrder {
		catItems, ok := byCategory[cat]
		if !ok {
			continue
		}
		var subtotal float64
		for _, item := range catItems {
			subtotal += item.EstimatedPrice
		}
		groups = append(groups, CategoryGroup{Name: cat, Items: catItems, Subtotal: subtotal})
	}
	return groups
}
