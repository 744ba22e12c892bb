package recipe

// Category identifies the store section an ingredient belongs to.
type Category string

const (
	CategoryProduce   Category = "produce"
	CategoryMeat      Category = "meat"
	CategoryDairy     Category = "dairy"
	CategoryGrains    Category = "grains"
	CategoryPantry    Category = "pantry"
	CategoryFrozen    Category = "frozen"
	CategoryBeverages Category = "beverages"
	CategorySpices    Category = "spices"
	CategoryOther     Category = "other"
)

// Known reports whether c is one of the defined categories.
func (c Category) Known() bool {
	switch c {
	case CategoryProduce, CategoryMeat, CategoryDairy, CategoryGrains,
		CategoryPantry, CategoryFrozen, CategoryBeverages, CategorySpices, CategoryOther:
		return true
	}
	return false
}

// Ingredient is a single ingredient line as supplied by the meal-plan collaborator.
type Ingredient struct {
	Name     string   `json:"name"`
	Amount   float64  `json:"amount"`
	Unit     string   `json:"unit"`
	Category Category `json:"category"`
	Notes    string   `json:"notes,omitempty"`
	Optional bool     `json:"is_optional,omitempty"`
}

// Recipe is the slice of an external recipe this engine cares about:
// a name for provenance and the ingredient lines to consolidate.
type Recipe struct {
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
}
