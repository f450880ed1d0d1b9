package analytics

import (
	"strconv"
	"time"

	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

// Summary holds the dashboard's headline numbers.
type Summary struct {
	TotalLeads       int     `json:"total_leads"`
	TotalConversions int     `json:"total_conversions"`
	ConversionRate   string  `json:"conversion_rate"`
	TotalRevenue     float64 `json:"total_revenue"`
	ActiveCampaigns  int     `json:"active_campaigns"`
}

// ConversionRate returns conversions/leads*100 with one decimal ("25.0"),
// or "0" when there are no leads.
func ConversionRate(leads, conversions int) string {
	if leads == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(conversions)/float64(leads)*100, 'f', 1, 64)
}

// TotalRevenue sums Amount across rows.
func TotalRevenue(rows []domain.RevenueEntry) float64 {
	var total float64
	for _, r := range rows {
		total += r.Amount
	}
	return total
}

// ActiveCampaigns counts campaigns with status active.
func ActiveCampaigns(rows []domain.Campaign) int {
	n := 0
	for _, c := range rows {
		if c.Status == domain.CampaignStatusActive {
			n++
		}
	}
	return n
}

// Summarize computes every headline number at once.
func Summarize(leads []domain.Lead, conversions []domain.Conversion, revenue []domain.RevenueEntry, campaigns []domain.Campaign) Summary {
	return Summary{
		TotalLeads:       len(leads),
		TotalConversions: len(conversions),
		ConversionRate:   ConversionRate(len(leads), len(conversions)),
		TotalRevenue:     TotalRevenue(revenue),
		ActiveCampaigns:  ActiveCampaigns(campaigns),
	}
}

// LeadsOverTime counts leads per month of created_at.
func LeadsOverTime(leads []domain.Lead) []Bucket {
	return CountByMonth(leads, func(l domain.Lead) time.Time { return l.CreatedAt })
}

// RevenueOverTime sums revenue per month of recognized_at.
func RevenueOverTime(rows []domain.RevenueEntry) []Bucket {
	return SumByMonth(rows,
		func(r domain.RevenueEntry) time.Time { return r.RecognizedAt },
		func(r domain.RevenueEntry) float64 { return r.Amount },
	)
}

// ConversionsOverTime counts conversions per month of created_at.
func ConversionsOverTime(rows []domain.Conversion) []Bucket {
	return CountByMonth(rows, func(c domain.Conversion) time.Time { return c.CreatedAt })
}
