// Package shopping assembles consolidated ingredients into the final
// shopping list: one priced, package-optimized item per consolidated entry,
// grouped by category in store-route order.
package shopping

import (
	"time"

	"shopping-optimizer/internal/packaging"
	"shopping-optimizer/internal/recipe"
)

// Item is a single line of the shopping list.
type Item struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	TotalAmount    int                  `json:"total_amount"`
	Unit           string               `json:"unit"`
	Category       recipe.Category      `json:"category"`
	Recipes        []string             `json:"recipes"`
	Purchased      bool                 `json:"purchased"`
	Notes          string               `json:"notes,omitempty"`
	Package        *packaging.Selection `json:"package,omitempty"`
	EstimatedPrice float64              `json:"estimated_price"`
}

// CategoryGroup is one store section of the list with its subtotal.
type CategoryGroup struct {
	Name     recipe.Category `json:"name"`
	Items    []Item          `json:"items"`
	Subtotal float64         `json:"subtotal"`
}

// List is the generated shopping list for one user and week. It is built
// once per generation call and immutable afterwards; persistence is the
// caller's concern.
type List struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	WeekStart      time.Time       `json:"week_start"`
	Items          []Item          `json:"items"`
	Categories     []CategoryGroup `json:"categories"`
	EstimatedTotal float64         `json:"estimated_total"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
