// Package metrics records per-generation statistics to SQLite so list
// quality (warning rates, list sizes) can be watched over time.
package metrics

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// GenerationMetric records metadata for a single shopping list generation.
type GenerationMetric struct {
	UserID         string
	RecipeCount    int
	ItemCount      int
	WarningCount   int
	EstimatedTotal float64
	Duration       time.Duration
	Timestamp      time.Time
}

// Store handles persistence of metrics to SQLite.
type Store struct {
	db *sql.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Record saves a metric to the database.
func (s *Store) Record(ctx context.Context, m GenerationMetric) error {
	ts := m.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO generation_metrics
		 (user_id, recipe_count, item_count, warning_count, estimated_total, duration_ms, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.UserID, m.RecipeCount, m.ItemCount, m.WarningCount,
		m.EstimatedTotal, m.Duration.Milliseconds(), ts,
	)
	if err != nil {
		return fmt.Errorf("failed to insert generation metric: %w", err)
	}
	return nil
}

// Cleanup removes records older than the specified number of days and
// returns how many were deleted.
func (s *Store) Cleanup(ctx context.Context, olderThanDays int) (int64, error) {
	threshold := time.Now().UTC().AddDate(0, 0, -olderThanDays)
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM generation_metrics WHERE timestamp < ?`, threshold)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up generation metrics: %w", err)
	}
	return res.RowsAffected()
}
