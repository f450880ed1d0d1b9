package admin

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

const (
	actorBatch = 100
	actorWait  = 2 * time.Millisecond
)

// newActorLoader batches profile lookups by user ID. Create one per call;
// the loader caches results for its lifetime.
func newActorLoader(repo profileRepo) *dataloader.Loader[uuid.UUID, *domain.Profile] {
	batchFn := func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Profile] {
		results := make([]*dataloader.Result[*domain.Profile], len(keys))

		profiles, err := repo.ListByUserIDs(ctx, keys)
		if err != nil {
			for i := range results {
				results[i] = &dataloader.Result[*domain.Profile]{Error: err}
			}
			return results
		}

		byUser := make(map[uuid.UUID]*domain.Profile, len(profiles))
		for i := range profiles {
			byUser[profiles[i].UserID] = &profiles[i]
		}
		for i, k := range keys {
			results[i] = &dataloader.Result[*domain.Profile]{Data: byUser[k]}
		}
		return results
	}

	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, *domain.Profile](actorWait),
		dataloader.WithBatchCapacity[uuid.UUID, *domain.Profile](actorBatch),
	)
}

// withActors attaches the actor's e-mail and name to each entry. Entries
// whose actor has no profile keep empty fields.
func withActors(ctx context.Context, loader *dataloader.Loader[uuid.UUID, *domain.Profile], entries []domain.AdminLogEntry) ([]domain.AuditLogView, error) {
	seen := make(map[uuid.UUID]struct{}, len(entries))
	keys := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.AdminID]; ok {
			continue
		}
		seen[e.AdminID] = struct{}{}
		keys = append(keys, e.AdminID)
	}

	actors := make(map[uuid.UUID]*domain.Profile, len(keys))
	if len(keys) > 0 {
		profiles, errs := loader.LoadMany(ctx, keys)()
		if err := errors.Join(errs...); err != nil {
			return nil, err
		}
		for i, k := range keys {
			actors[k] = profiles[i]
		}
	}

	views := make([]domain.AuditLogView, len(entries))
	for i, e := range entries {
		views[i] = domain.AuditLogView{AdminLogEntry: e}
		if p := actors[e.AdminID]; p != nil {
			views[i].ActorEmail = p.Email
			views[i].ActorName = p.FullName
		}
	}
	return views, nil
}
