package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		os.Unsetenv("SHOPPING_DB_PATH")
		os.Unsetenv("SHOPPING_TABLES_DIR")
		os.Unsetenv("SHOPPING_LOG_LEVEL")

		cfg, err := NewFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "data/shopping.db", cfg.DatabasePath)
		assert.Equal(t, "", cfg.TablesDir)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("FromEnvironment", func(t *testing.T) {
		t.Setenv("SHOPPING_DB_PATH", "/tmp/test.db")
		t.Setenv("SHOPPING_TABLES_DIR", "/tmp/tables")
		t.Setenv("SHOPPING_LOG_LEVEL", "debug")

		cfg, err := NewFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/test.db", cfg.DatabasePath)
		assert.Equal(t, "/tmp/tables", cfg.TablesDir)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}

func TestLoadTablesDefaults(t *testing.T) {
	tables, err := LoadTables("")
	require.NoError(t, err)

	assert.NotEmpty(t, tables.Units)
	assert.NotEmpty(t, tables.Synonyms)
	assert.NotEmpty(t, tables.Modifiers)
	assert.NotEmpty(t, tables.Catalog)
	assert.NotEmpty(t, tables.Rates)

	// spot checks against the shipped locale data
	amount, unit := tables.Units.Standardize(1, "kg")
	assert.Equal(t, 1000.0, amount)
	assert.Equal(t, "g", unit)
	assert.NotEmpty(t, tables.Catalog.SizesFor("arroz"))
}

func TestLoadTablesFromDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"units.json":     `{"g": {"unit": "g", "factor": 1}}`,
		"synonyms.json":  `[{"match": "pollo", "canonical": "pollo"}]`,
		"modifiers.json": `["fresco"]`,
		"catalog.json":   `{"arroz": [{"amount": 500, "unit": "g"}]}`,
		"rates.json":     `{"other": {"default": 100}}`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	tables, err := LoadTables(dir)
	require.NoError(t, err)
	assert.Len(t, tables.Units, 1)
	assert.Len(t, tables.Synonyms, 1)
}

func TestLoadTablesMissingFile(t *testing.T) {
	dir := t.TempDir()
	// only one of the five required files present
	require.NoError(t, os.WriteFile(filepath.Join(dir, "units.json"), []byte(`{}`), 0644))

	_, err := LoadTables(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "synonyms.json")
}
