package packaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizeExactFit(t *testing.T) {
	sizes := []Size{{Amount: 1000, Unit: "ml"}, {Amount: 500, Unit: "ml"}}

	sel := Optimize(1000, "ml", sizes)
	require.NotNil(t, sel)
	assert.Equal(t, 1000.0, sel.Amount)
	assert.Equal(t, 1, sel.Quantity)
}

func TestOptimizePrefersLargestUnderThreshold(t *testing.T) {
	sizes := []Size{{Amount: 500, Unit: "g"}, {Amount: 1000, Unit: "g"}}

	// 1900 g: 2×1000 g wastes 100/1900 ≈ 5.3%, accepted before 500 g is tried.
	sel := Optimize(1900, "g", sizes)
	require.NotNil(t, sel)
	assert.Equal(t, 1000.0, sel.Amount)
	assert.Equal(t, 2, sel.Quantity)
}

// Full fallback chain: for 1200 g against {1000 g, 500 g} no size stays under
// 20% waste (2×1000 g → 66.7%, 3×500 g → 25%), so the optimizer settles on
// the smallest size, 3×500 g, guaranteeing sufficiency over minimal waste.
func TestOptimizeFallsBackToSmallest(t *testing.T) {
	sizes := []Size{{Amount: 1000, Unit: "g"}, {Amount: 500, Unit: "g"}}

	sel := Optimize(1200, "g", sizes)
	require.NotNil(t, sel)
	assert.Equal(t, 500.0, sel.Amount)
	assert.Equal(t, "g", sel.Unit)
	assert.Equal(t, 3, sel.Quantity)
}

func TestOptimizeIgnoresOtherUnits(t *testing.T) {
	sizes := []Size{{Amount: 1000, Unit: "ml"}}

	assert.Nil(t, Optimize(500, "g", sizes))
}

func TestOptimizeNoCatalog(t *testing.T) {
	assert.Nil(t, Optimize(500, "g", nil))
}

func TestOptimizeNonPositiveRequired(t *testing.T) {
	sizes := []Size{{Amount: 500, Unit: "g"}}
	assert.Nil(t, Optimize(0, "g", sizes))
}

func TestCatalogSizesFor(t *testing.T) {
	cat := Catalog{"arroz": {{Amount: 500, Unit: "g"}, {Amount: 1000, Unit: "g"}}}

	assert.Len(t, cat.SizesFor(" Arroz "), 2)
	assert.Nil(t, cat.SizesFor("quinoa"))
}
