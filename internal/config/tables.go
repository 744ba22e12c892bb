package config

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"

	"shopping-optimizer/internal/normalizer"
	"shopping-optimizer/internal/packaging"
	"shopping-optimizer/internal/pricing"
	"shopping-optimizer/internal/units"
)

//go:embed tables/*.json
var defaultTablesFS embed.FS

// Tables bundles the five data tables the engine is constructed with: unit
// conversions, name synonyms, modifier strip-words, the retail package
// catalog, and the price rate table. All five are locale data, versioned
// independently of the code, and must be treated as immutable once loaded.
type Tables struct {
	Units     units.Table
	Synonyms  []normalizer.Synonym
	Modifiers []string
	Catalog   packaging.Catalog
	Rates     pricing.RateTable
}

// LoadTables reads the five table files from dir, or the built-in defaults
// when dir is empty. File names are fixed: units.json, synonyms.json,
// modifiers.json, catalog.json, rates.json.
func LoadTables(dir string) (*Tables, error) {
	var fsys fs.FS
	var root string
	if dir == "" {
		fsys = defaultTablesFS
		root = "tables"
	} else {
		fsys = os.DirFS(dir)
		root = "."
	}

	t := &Tables{}
	if err := loadJSON(fsys, path.Join(root, "units.json"), &t.Units); err != nil {
		return nil, err
	}
	if err := loadJSON(fsys, path.Join(root, "synonyms.json"), &t.Synonyms); err != nil {
		return nil, err
	}
	if err := loadJSON(fsys, path.Join(root, "modifiers.json"), &t.Modifiers); err != nil {
		return nil, err
	}
	if err := loadJSON(fsys, path.Join(root, "catalog.json"), &t.Catalog); err != nil {
		return nil, err
	}
	if err := loadJSON(fsys, path.Join(root, "rates.json"), &t.Rates); err != nil {
		return nil, err
	}
	return t, nil
}

func loadJSON(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read table file %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse table file %s: %w", name, err)
	}
	return nil
}
