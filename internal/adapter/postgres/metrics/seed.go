package metrics

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/clientforge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

// Dataset is a batch of metric rows written by InsertDataset.
type Dataset = domain.MetricsDataset

// InsertDataset writes all rows of ds in a single batch round-trip.
// Leads are queued first so conversions can reference them.
func (r *Repo) InsertDataset(ctx context.Context, ds Dataset) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	batch := &pgx.Batch{}
	for _, l := range ds.Leads {
		batch.Queue(`INSERT INTO leads (id, owner_id, email, name, source, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
			l.ID, l.OwnerID, l.Email, l.Name, l.Source, l.CreatedAt)
	}
	for _, c := range ds.Conversions {
		batch.Queue(`INSERT INTO conversions (id, owner_id, lead_id, value, created_at) VALUES ($1, $2, $3, $4, $5)`,
			c.ID, c.OwnerID, c.LeadID, c.Value, c.CreatedAt)
	}
	for _, e := range ds.Revenue {
		batch.Queue(`INSERT INTO revenue (id, owner_id, amount, description, recognized_at) VALUES ($1, $2, $3, $4, $5)`,
			e.ID, e.OwnerID, e.Amount, e.Description, e.RecognizedAt)
	}
	for _, c := range ds.Campaigns {
		batch.Queue(`INSERT INTO campaigns (id, owner_id, name, status, created_at) VALUES ($1, $2, $3, $4, $5)`,
			c.ID, c.OwnerID, c.Name, string(c.Status), c.CreatedAt)
	}

	if batch.Len() == 0 {
		return nil
	}

	br := q.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return postgres.MapError(err, "metrics_batch", uuid.Nil)
		}
	}
	return br.Close()
}
