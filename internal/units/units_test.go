package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTable() Table {
	return Table{
		"g":      {Unit: "g", Factor: 1},
		"gr":     {Unit: "g", Factor: 1},
		"kg":     {Unit: "g", Factor: 1000},
		"ml":     {Unit: "ml", Factor: 1},
		"l":      {Unit: "ml", Factor: 1000},
		"taza":   {Unit: "ml", Factor: 250},
		"unidad": {Unit: "unidad", Factor: 1},
		"docena": {Unit: "unidad", Factor: 12},
	}
}

func TestStandardize(t *testing.T) {
	tbl := testTable()

	t.Run("MassToGrams", func(t *testing.T) {
		amount, unit := tbl.Standardize(2, "kg")
		assert.Equal(t, 2000.0, amount)
		assert.Equal(t, "g", unit)
	})

	t.Run("VolumeToMilliliters", func(t *testing.T) {
		amount, unit := tbl.Standardize(3, "taza")
		assert.Equal(t, 750.0, amount)
		assert.Equal(t, "ml", unit)
	})

	t.Run("CountMultiplier", func(t *testing.T) {
		amount, unit := tbl.Standardize(2, "docena")
		assert.Equal(t, 24.0, amount)
		assert.Equal(t, "unidad", unit)
	})

	t.Run("CaseInsensitiveAndTrimmed", func(t *testing.T) {
		amount, unit := tbl.Standardize(500, "  KG ")
		assert.Equal(t, 500000.0, amount)
		assert.Equal(t, "g", unit)
	})

	t.Run("UnknownUnitPassesThrough", func(t *testing.T) {
		amount, unit := tbl.Standardize(1, " Pizca ")
		assert.Equal(t, 1.0, amount)
		assert.Equal(t, "pizca", unit)
	})
}

func TestRecognized(t *testing.T) {
	tbl := testTable()
	assert.True(t, tbl.Recognized("KG"))
	assert.False(t, tbl.Recognized("pizca"))
}
