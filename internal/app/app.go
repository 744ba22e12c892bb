// Package app wires the engine to its collaborators: recipe files in,
// generated lists out to stdout-facing callers, sqlite persistence, and
// generation metrics.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"shopping-optimizer/internal/consolidator"
	"shopping-optimizer/internal/metrics"
	"shopping-optimizer/internal/shopping"
	"shopping-optimizer/internal/storage"
)

// App holds the application's dependencies.
type App struct {
	generator    *shopping.Generator
	lists        *shopping.Repository
	metricsStore *metrics.Store
	log          zerolog.Logger
}

// NewApp creates and initializes a new App instance.
func NewApp(generator *shopping.Generator, lists *shopping.Repository, metricsStore *metrics.Store, log zerolog.Logger) *App {
	return &App{
		generator:    generator,
		lists:        lists,
		metricsStore: metricsStore,
		log:          log,
	}
}

// GenerateOptions controls a single list generation.
type GenerateOptions struct {
	UserID      string
	WeekStart   time.Time
	RecipesPath string
	OutPath     string
	Save        bool
}

// GenerateList loads the recipes file, generates the shopping list, logs any
// per-ingredient warnings, optionally persists the result, and records a
// generation metric. Warnings never fail the run.
func (a *App) GenerateList(ctx context.Context, opts GenerateOptions) (*shopping.List, []consolidator.Warning, error) {
	recipes, err := storage.LoadRecipesFile(opts.RecipesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load recipes: %w", err)
	}

	started := time.Now()
	list, warnings := a.generator.Generate(opts.UserID, opts.WeekStart, recipes)

	for _, w := range warnings {
		a.log.Warn().Str("kind", string(w.Kind)).Str("recipe", w.Recipe).
			Str("ingredient", w.Ingredient).Msg(w.Message)
	}
	a.log.Info().Int("recipes", len(recipes)).Int("items", len(list.Items)).
		Float64("estimated_total", list.EstimatedTotal).Msg("shopping list generated")

	if opts.Save {
		if err := a.lists.DeleteByUserAndWeek(ctx, opts.UserID, opts.WeekStart); err != nil {
			return nil, nil, fmt.Errorf("failed to replace existing list: %w", err)
		}
		if err := a.lists.Save(ctx, list); err != nil {
			return nil, nil, fmt.Errorf("failed to save shopping list: %w", err)
		}
	}

	if opts.OutPath != "" {
		if err := storage.WriteListFile(opts.OutPath, list); err != nil {
			return nil, nil, err
		}
	}

	if err := a.metricsStore.Record(ctx, metrics.GenerationMetric{
		UserID:         opts.UserID,
		RecipeCount:    len(recipes),
		ItemCount:      len(list.Items),
		WarningCount:   len(warnings),
		EstimatedTotal: list.EstimatedTotal,
		Duration:       time.Since(started),
	}); err != nil {
		// metrics are best effort
		a.log.Warn().Err(err).Msg("failed to record generation metric")
	}

	return list, warnings, nil
}

// ShowList loads a previously saved list for a user and week.
func (a *App) ShowList(ctx context.Context, userID string, weekStart time.Time) (*shopping.List, error) {
	list, err := a.lists.GetByUserAndWeek(ctx, userID, weekStart)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, fmt.Errorf("no shopping list found for %s starting %s", userID, weekStart.Format("2006-01-02"))
	}
	return list, nil
}
