// Package seeder generates demo dashboard data for existing accounts.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

// OwnerLookup resolves an account by e-mail. Implemented by authuser.Repo.
type OwnerLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.AuthUser, error)
}

// DatasetWriter bulk-loads metric rows. Implemented by metrics.Repo.
type DatasetWriter interface {
	InsertDataset(ctx context.Context, ds domain.MetricsDataset) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// OwnerResult holds the outcome for a single owner.
type OwnerResult struct {
	Email       string
	Leads       int
	Conversions int
	Revenue     float64
	Duration    time.Duration
	Err         error
}

// Pipeline seeds every configured owner, one transaction per owner.
type Pipeline struct {
	log     *slog.Logger
	owners  OwnerLookup
	writer  DatasetWriter
	tx      txManager
	cfg     Config
	now     func() time.Time
	results []OwnerResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, owners OwnerLookup, writer DatasetWriter, tx txManager, cfg Config) *Pipeline {
	return &Pipeline{
		log:    log,
		owners: owners,
		writer: writer,
		tx:     tx,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Results returns per-owner results after Run completes.
func (p *Pipeline) Results() []OwnerResult {
	return p.results
}

// HasErrors returns true if any owner failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run seeds each owner in turn. A failing owner is recorded and skipped;
// a cancelled context stops the run.
func (p *Pipeline) Run(ctx context.Context) error {
	p.results = p.results[:0]

	for _, email := range p.cfg.Owners() {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		result := p.seedOwner(ctx, email)
		result.Duration = time.Since(start)
		p.results = append(p.results, result)

		if result.Err != nil {
			p.log.Warn("owner failed",
				slog.String("email", email),
				slog.String("error", result.Err.Error()),
			)
			continue
		}
		p.log.Info("owner seeded",
			slog.String("email", email),
			slog.Int("leads", result.Leads),
			slog.Int("conversions", result.Conversions),
			slog.String("revenue", "$"+humanize.CommafWithDigits(result.Revenue, 2)),
			slog.Bool("dry_run", p.cfg.DryRun),
			slog.Duration("duration", result.Duration),
		)
	}
	return nil
}

func (p *Pipeline) seedOwner(ctx context.Context, email string) OwnerResult {
	result := OwnerResult{Email: email}

	user, err := p.owners.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			result.Err = fmt.Errorf("no account with e-mail %q", email)
		} else {
			result.Err = fmt.Errorf("lookup owner: %w", err)
		}
		return result
	}

	ds := Generate(p.cfg, user.ID, p.now())
	result.Leads = len(ds.Leads)
	result.Conversions = len(ds.Conversions)
	for _, r := range ds.Revenue {
		result.Revenue += r.Amount
	}

	if p.cfg.DryRun {
		return result
	}

	err = p.tx.RunInTx(ctx, func(ctx context.Context) error {
		return p.writer.InsertDataset(ctx, ds)
	})
	if err != nil {
		result.Err = fmt.Errorf("insert dataset: %w", err)
	}
	return result
}
