// Package storage reads the recipe JSON files handed over by the meal-plan
// collaborator and writes generated lists back to disk for export.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"shopping-optimizer/internal/recipe"
	"shopping-optimizer/internal/shopping"
)

// LoadRecipesFile reads a JSON file containing an array of recipes.
func LoadRecipesFile(path string) ([]recipe.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipes file: %w", err)
	}

	var recipes []recipe.Recipe
	if err := json.Unmarshal(data, &recipes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipes: %w", err)
	}
	return recipes, nil
}

// RecipeSource loads recipe files from a directory, one JSON array per file.
type RecipeSource struct {
	basePath string
}

// NewRecipeSource creates a RecipeSource over an existing directory.
func NewRecipeSource(basePath string) (*RecipeSource, error) {
	info, err := os.Stat(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipe directory %s: %w", basePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("recipe path %s is not a directory", basePath)
	}
	return &RecipeSource{basePath: basePath}, nil
}

// LoadAll reads every *.json file in the directory and concatenates the
// recipes, in file name order.
func (s *RecipeSource) LoadAll() ([]recipe.Recipe, error) {
	matches, err := filepath.Glob(filepath.Join(s.basePath, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob recipe files: %w", err)
	}

	var all []recipe.Recipe
	for _, match := range matches {
		recipes, err := LoadRecipesFile(match)
		if err != nil {
			return nil, err
		}
		all = append(all, recipes...)
	}
	return all, nil
}

// WriteListFile writes a generated shopping list to a file as indented JSON.
func WriteListFile(path string, list *shopping.List) error {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal shopping list: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write shopping list file: %w", err)
	}
	return nil
}
