package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-optimizer/internal/recipe"
	"shopping-optimizer/internal/shopping"
)

const recipesJSON = `[
  {
    "name": "Arroz con pollo",
    "ingredients": [
      {"name": "arroz", "amount": 500, "unit": "g", "category": "grains"},
      {"name": "pollo", "amount": 1, "unit": "kg", "category": "meat"}
    ]
  }
]`

func TestLoadRecipesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "week.json")
	require.NoError(t, os.WriteFile(path, []byte(recipesJSON), 0644))

	recipes, err := LoadRecipesFile(path)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Arroz con pollo", recipes[0].Name)
	require.Len(t, recipes[0].Ingredients, 2)
	assert.Equal(t, recipe.CategoryGrains, recipes[0].Ingredients[0].Category)
}

func TestLoadRecipesFileMissing(t *testing.T) {
	_, err := LoadRecipesFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestRecipeSourceLoadAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(recipesJSON), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.json"), []byte(recipesJSON), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	src, err := NewRecipeSource(dir)
	require.NoError(t, err)

	recipes, err := src.LoadAll()
	require.NoError(t, err)
	assert.Len(t, recipes, 2)
}

func TestNewRecipeSourceNotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.json")
	require.NoError(t, os.WriteFile(file, []byte("[]"), 0644))

	_, err := NewRecipeSource(file)
	assert.Error(t, err)
}

func TestWriteListFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.json")

	list := &shopping.List{ID: "abc", UserID: "user-1"}
	require.NoError(t, WriteListFile(path, list))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"user_id": "user-1"`)
}
