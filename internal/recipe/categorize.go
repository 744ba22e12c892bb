package recipe

import "strings"

// InferCategory guesses the store category for an ingredient name.
// Matching is case-insensitive: exact match first, then substring match in
// declaration order (more specific keywords listed before shorter ones).
// Falls back to CategoryOther.
func InferCategory(name string) Category {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return CategoryOther
	}

	if cat, ok := exactCategory[n]; ok {
		return cat
	}

	for _, entry := range substringCategories {
		if strings.Contains(n, entry.keyword) {
			return entry.category
		}
	}

	return CategoryOther
}

var exactCategory = map[string]Category{
	// produce
	"tomate":    CategoryProduce,
	"cebolla":   CategoryProduce,
	"ajo":       CategoryProduce,
	"papa":      CategoryProduce,
	"zanahoria": CategoryProduce,
	"lechuga":   CategoryProduce,
	"morron":    CategoryProduce,
	"morrón":    CategoryProduce,
	"limon":     CategoryProduce,
	"limón":     CategoryProduce,
	"banana":    CategoryProduce,
	"manzana":   CategoryProduce,
	"palta":     CategoryProduce,
	"zapallo":   CategoryProduce,
	"espinaca":  CategoryProduce,
	"perejil":   CategoryProduce,

	// meat
	"pollo":        CategoryMeat,
	"carne":        CategoryMeat,
	"cerdo":        CategoryMeat,
	"pescado":      CategoryMeat,
	"merluza":      CategoryMeat,
	"atun":         CategoryMeat,
	"atún":         CategoryMeat,
	"jamon":        CategoryMeat,
	"jamón":        CategoryMeat,
	"chorizo":      CategoryMeat,
	"milanesa":     CategoryMeat,
	"carne picada": CategoryMeat,

	// dairy
	"leche":   CategoryDairy,
	"queso":   CategoryDairy,
	"manteca": CategoryDairy,
	"yogur":   CategoryDairy,
	"yogurt":  CategoryDairy,
	"crema":   CategoryDairy,
	"huevo":   CategoryDairy,
	"ricota":  CategoryDairy,

	// grains
	"arroz":     CategoryGrains,
	"fideos":    CategoryGrains,
	"harina":    CategoryGrains,
	"pan":       CategoryGrains,
	"avena":     CategoryGrains,
	"polenta":   CategoryGrains,
	"lentejas":  CategoryGrains,
	"garbanzos": CategoryGrains,

	// pantry
	"aceite":    CategoryPantry,
	"vinagre":   CategoryPantry,
	"azucar":    CategoryPantry,
	"azúcar":    CategoryPantry,
	"mermelada": CategoryPantry,
	"mayonesa":  CategoryPantry,
	"levadura":  CategoryPantry,

	// beverages
	"agua":    CategoryBeverages,
	"vino":    CategoryBeverages,
	"cerveza": CategoryBeverages,
	"jugo":    CategoryBeverages,
	"gaseosa": CategoryBeverages,
	"cafe":    CategoryBeverages,
	"café":    CategoryBeverages,
	"te":      CategoryBeverages,
	"té":      CategoryBeverages,
	"yerba":   CategoryBeverages,

	// spices
	"sal":          CategorySpices,
	"pimienta":     CategorySpices,
	"oregano":      CategorySpices,
	"orégano":      CategorySpices,
	"comino":       CategorySpices,
	"pimenton":     CategorySpices,
	"pimentón":     CategorySpices,
	"nuez moscada": CategorySpices,
	"laurel":       CategorySpices,
	"canela":       CategorySpices,
}

var substringCategories = []struct {
	keyword  string
	category Category
}{
	{"congelad", CategoryFrozen},
	{"helado", CategoryFrozen},
	{"pechuga", CategoryMeat},
	{"bife", CategoryMeat},
	{"costilla", CategoryMeat},
	{"salchicha", CategoryMeat},
	{"queso", CategoryDairy},
	{"leche", CategoryDairy},
	{"yogur", CategoryDairy},
	{"harina", CategoryGrains},
	{"fideo", CategoryGrains},
	{"arroz", CategoryGrains},
	{"aceite", CategoryPantry},
	{"salsa", CategoryPantry},
	{"caldo", CategoryPantry},
	{"tomate", CategoryProduce},
	{"cebolla", CategoryProduce},
	{"verdura", CategoryProduce},
	{"fruta", CategoryProduce},
	{"jugo", CategoryBeverages},
	{"especia", CategorySpices},
}
