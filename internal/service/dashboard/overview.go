package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/clientforge-backend/internal/analytics"
	"github.com/heartmarshall/clientforge-backend/internal/config"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

// Overview is the dashboard landing view.
type Overview struct {
	Summary         analytics.Summary        `json:"summary"`
	LeadsOverTime   []analytics.Bucket       `json:"leads_over_time"`
	RevenueOverTime []analytics.Bucket       `json:"revenue_over_time"`
	RecentActivity  []analytics.ActivityItem `json:"recent_activity"`
}

// Report is the analytics sub-view: every monthly series side by side.
type Report struct {
	Leads          []analytics.Bucket `json:"leads"`
	Conversions    []analytics.Bucket `json:"conversions"`
	Revenue        []analytics.Bucket `json:"revenue"`
	ConversionRate string             `json:"conversion_rate"`
}

type collections struct {
	leads       []domain.Lead
	conversions []domain.Conversion
	revenue     []domain.RevenueEntry
	campaigns   []domain.Campaign
}

// loadAll reads the four collections concurrently. The first failure
// cancels the rest.
func (s *Service) loadAll(ctx context.Context) (collections, error) {
	var c collections

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		c.leads, err = s.FetchLeads(gctx)
		return err
	})
	g.Go(func() (err error) {
		c.conversions, err = s.FetchConversions(gctx)
		return err
	})
	g.Go(func() (err error) {
		c.revenue, err = s.FetchRevenue(gctx)
		return err
	})
	g.Go(func() (err error) {
		c.campaigns, err = s.FetchCampaigns(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return collections{}, err
	}
	return c, nil
}

// Overview returns the summary numbers, the two headline series and the
// recent-activity feed.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	c, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		Summary:         analytics.Summarize(c.leads, c.conversions, c.revenue, c.campaigns),
		LeadsOverTime:   analytics.LeadsOverTime(c.leads),
		RevenueOverTime: analytics.RevenueOverTime(c.revenue),
		RecentActivity:  s.activity(c.leads, c.conversions),
	}, nil
}

func (s *Service) activity(leads []domain.Lead, conversions []domain.Conversion) []analytics.ActivityItem {
	now := s.now()
	if s.cfg.ActivityMode == config.ActivityModeMerge {
		return analytics.MergeRecentActivity(leads, conversions, now, s.cfg.ActivityLimit)
	}
	return analytics.RecentActivity(leads, conversions, now)
}

// Analytics returns monthly leads, conversions and revenue.
func (s *Service) Analytics(ctx context.Context) (*Report, error) {
	g, gctx := errgroup.WithContext(ctx)

	var (
		leads       []domain.Lead
		conversions []domain.Conversion
		revenue     []domain.RevenueEntry
	)
	g.Go(func() (err error) {
		leads, err = s.FetchLeads(gctx)
		return err
	})
	g.Go(func() (err error) {
		conversions, err = s.FetchConversions(gctx)
		return err
	})
	g.Go(func() (err error) {
		revenue, err = s.FetchRevenue(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{
		Leads:          analytics.LeadsOverTime(leads),
		Conversions:    analytics.ConversionsOverTime(conversions),
		Revenue:        analytics.RevenueOverTime(revenue),
		ConversionRate: analytics.ConversionRate(len(leads), len(conversions)),
	}, nil
}
