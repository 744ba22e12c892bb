package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testNormalizer() *Normalizer {
	synonyms := []Synonym{
		{Match: "pechuga de pollo", Canonical: "pollo"},
		{Match: "pollo", Canonical: "pollo"},
		{Match: "leche descremada", Canonical: "leche"},
		{Match: "queso rallado", Canonical: "queso"},
	}
	modifiers := []string{
		"fresco", "fresca", "frescos", "frescas",
		"grande", "grandes", "pequeño", "pequeña",
		"maduro", "madura", "picado", "picada",
	}
	return New(synonyms, modifiers)
}

func TestNormalize(t *testing.T) {
	n := testNormalizer()

	t.Run("LowercaseAndTrim", func(t *testing.T) {
		assert.Equal(t, "arroz", n.Normalize("  Arroz "))
	})

	t.Run("SynonymSubstringMatch", func(t *testing.T) {
		assert.Equal(t, "pollo", n.Normalize("Pechuga de Pollo deshuesada"))
		assert.Equal(t, "leche", n.Normalize("leche descremada"))
	})

	t.Run("SynonymOrderWins", func(t *testing.T) {
		// "pechuga de pollo" is declared before "pollo"; both are
		// substrings of the input and the first declared entry applies.
		assert.Equal(t, "pollo", n.Normalize("pechuga de pollo"))
	})

	t.Run("ModifierStripping", func(t *testing.T) {
		assert.Equal(t, "tomate", n.Normalize("Tomate maduro"))
		assert.Equal(t, "cebolla", n.Normalize("cebolla  grande picada"))
	})

	t.Run("ModifiersOnlyKeepsOriginal", func(t *testing.T) {
		assert.Equal(t, "fresca", n.Normalize("Fresca"))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "", n.Normalize("   "))
	})
}

func TestNormalizeIdempotent(t *testing.T) {
	n := testNormalizer()
	inputs := []string{
		"Pechuga de Pollo",
		"leche descremada",
		"Tomate maduro grande",
		"arroz",
		"pizca de oregano",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		assert.Equal(t, once, n.Normalize(once), "input %q", in)
	}
}
