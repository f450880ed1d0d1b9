package seeder

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

var (
	leadSources    = []string{"organic", "referral", "paid_search", "social", "newsletter"}
	firstNames     = []string{"Ada", "Grace", "Alan", "Edsger", "Barbara", "Ken", "Margaret", "Linus"}
	campaignNames  = []string{"Spring Launch", "Webinar Series", "Partner Push", "Retargeting", "Holiday Promo"}
	campaignStates = []domain.CampaignStatus{
		domain.CampaignStatusActive, domain.CampaignStatusPaused,
		domain.CampaignStatusCompleted, domain.CampaignStatusDraft,
	}
)

// Generate builds a deterministic dataset for one owner covering the cfg.Months
// calendar months that end with the month containing now.
func Generate(cfg Config, ownerID uuid.UUID, now time.Time) domain.MetricsDataset {
	rng := rand.New(rand.NewPCG(cfg.RandomSeed, ownerSeed(ownerID)))
	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(cfg.Months - 1), 0)

	var ds domain.MetricsDataset

	for m := 0; m < cfg.Months; m++ {
		monthStart := first.AddDate(0, m, 0)
		span := monthStart.AddDate(0, 1, 0).Sub(monthStart)
		if monthStart.AddDate(0, 1, 0).After(now) {
			span = now.Sub(monthStart)
		}

		for i := 0; i < cfg.LeadsPerMonth; i++ {
			at := monthStart.Add(time.Duration(rng.Int64N(int64(span) + 1)))
			lead := newLead(rng, ownerID, at, len(ds.Leads))
			ds.Leads = append(ds.Leads, lead)

			if rng.Float64() >= cfg.ConversionRate {
				continue
			}
			value := math.Round((29+rng.Float64()*470)*100) / 100
			convertedAt := at.Add(time.Duration(rng.Int64N(int64(72 * time.Hour))))
			if convertedAt.After(now) {
				convertedAt = now
			}
			leadID := lead.ID
			ds.Conversions = append(ds.Conversions, domain.Conversion{
				ID:        uuid.New(),
				OwnerID:   ownerID,
				LeadID:    &leadID,
				Value:     value,
				CreatedAt: convertedAt,
			})
			desc := fmt.Sprintf("Conversion from %s", lead.Email)
			ds.Revenue = append(ds.Revenue, domain.RevenueEntry{
				ID:           uuid.New(),
				OwnerID:      ownerID,
				Amount:       value,
				Description:  &desc,
				RecognizedAt: convertedAt,
			})
		}
	}

	for i := 0; i < cfg.Campaigns; i++ {
		ds.Campaigns = append(ds.Campaigns, domain.Campaign{
			ID:        uuid.New(),
			OwnerID:   ownerID,
			Name:      campaignNames[i%len(campaignNames)],
			Status:    campaignStates[rng.IntN(len(campaignStates))],
			CreatedAt: first.Add(time.Duration(i) * 24 * time.Hour),
		})
	}

	return ds
}

func newLead(rng *rand.Rand, ownerID uuid.UUID, at time.Time, n int) domain.Lead {
	name := firstNames[rng.IntN(len(firstNames))]
	source := leadSources[rng.IntN(len(leadSources))]
	lead := domain.Lead{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Email:     fmt.Sprintf("lead%04d@example.test", n+1),
		Source:    &source,
		CreatedAt: at,
	}
	// Roughly a third of leads arrive without a name.
	if rng.IntN(3) > 0 {
		lead.Name = &name
	}
	return lead
}

func ownerSeed(id uuid.UUID) uint64 {
	var s uint64
	for _, b := range id[:8] {
		s = s<<8 | uint64(b)
	}
	return s
}
