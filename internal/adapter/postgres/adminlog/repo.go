// Package adminlog implements the append-only admin log repository using PostgreSQL.
package adminlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/clientforge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

const table = "admin_logs"

var columns = []string{"id", "admin_id", "action", "target_id", "target_table", "details", "created_at"}

// Repo provides admin_logs persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new admin log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends an entry. There is no update or delete.
func (r *Repo) Create(ctx context.Context, entry domain.AdminLogEntry) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	details := entry.Details
	if details == nil {
		details = map[string]any{}
	}
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("admin_log marshal details: %w", err)
	}

	b := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(entry.ID, entry.AdminID, string(entry.Action), entry.TargetID, entry.TargetTable, detailsJSON, entry.CreatedAt)

	if _, err := postgres.Exec(ctx, q, b); err != nil {
		return postgres.MapError(err, "admin_log", entry.ID)
	}
	return nil
}

// ListRecent returns the newest limit entries, ordered by created_at DESC.
func (r *Repo) ListRecent(ctx context.Context, limit uint64) ([]domain.AdminLogEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Select(columns...).From(table).
		OrderBy("created_at DESC").
		Limit(limit)

	entries := []domain.AdminLogEntry{}
	if err := postgres.Select(ctx, q, &entries, b); err != nil {
		return nil, postgres.MapError(err, "admin_log", uuid.Nil)
	}
	return entries, nil
}
