package shopping

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Repository handles persistence of generated shopping lists. It is the
// caller-side storage collaborator: the Generator never touches it.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new shopping list repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Save stores a generated shopping list.
func (r *Repository) Save(ctx context.Context, list *List) error {
	payload, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal shopping list: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO shopping_lists (id, user_id, week_start, payload, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		list.ID, list.UserID, list.WeekStart.Format("2006-01-02"), string(payload), list.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert shopping list: %w", err)
	}
	return nil
}

// GetByUserAndWeek retrieves the most recent shopping list for a user and
// week start date. Returns nil, nil when none exists.
func (r *Repository) GetByUserAndWeek(ctx context.Context, userID string, weekStart time.Time) (*List, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM shopping_lists
		 WHERE user_id = ? AND week_start = ?
		 ORDER BY created_at DESC LIMIT 1`,
		userID, weekStart.Format("2006-01-02"),
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shopping list by user and week: %w", err)
	}

	var list List
	if err := json.Unmarshal([]byte(payload), &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shopping list: %w", err)
	}
	return &list, nil
}

// DeleteByUserAndWeek removes all stored lists for a user and week.
func (r *Repository) DeleteByUserAndWeek(ctx context.Context, userID string, weekStart time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM shopping_lists WHERE user_id = ? AND week_start = ?`,
		userID, weekStart.Format("2006-01-02"),
	)
	if err != nil {
		return fmt.Errorf("failed to delete shopping lists: %w", err)
	}
	return nil
}
