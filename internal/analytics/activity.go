package analytics

import (
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

// Feed sizes for the positional heuristic.
const (
	activityLeads       = 3
	activityConversions = 2
	activityLimit       = 5
)

// ActivityKind tags the source of an activity item.
type ActivityKind string

const (
	ActivityLead       ActivityKind = "lead"
	ActivityConversion ActivityKind = "conversion"
)

// ActivityItem is one line of the recent-activity feed.
type ActivityItem struct {
	Kind     ActivityKind `json:"kind"`
	ID       uuid.UUID    `json:"id"`
	Action   string       `json:"action"`
	Detail   string       `json:"detail"`
	At       time.Time    `json:"at"`
	Relative string       `json:"time"`
}

func leadItem(l domain.Lead, now time.Time) ActivityItem {
	detail := l.Email
	if l.Name != nil && *l.Name != "" {
		detail = *l.Name + " <" + l.Email + ">"
	}
	return ActivityItem{
		Kind:     ActivityLead,
		ID:       l.ID,
		Action:   "New lead captured",
		Detail:   detail,
		At:       l.CreatedAt,
		Relative: humanize.RelTime(l.CreatedAt, now, "ago", "from now"),
	}
}

func conversionItem(c domain.Conversion, now time.Time) ActivityItem {
	return ActivityItem{
		Kind:     ActivityConversion,
		ID:       c.ID,
		Action:   "Conversion recorded",
		Detail:   "$" + humanize.FormatFloat("#,###.##", c.Value),
		At:       c.CreatedAt,
		Relative: humanize.RelTime(c.CreatedAt, now, "ago", "from now"),
	}
}

// RecentActivity takes the last three leads and the last two conversions by
// position (inputs are expected in ascending time order), reverses each group
// so the newest comes first, and returns leads then conversions, at most five
// items. It does not merge the two sources by time; see MergeRecentActivity.
func RecentActivity(leads []domain.Lead, conversions []domain.Conversion, now time.Time) []ActivityItem {
	items := make([]ActivityItem, 0, activityLimit)

	for i := len(leads) - 1; i >= 0 && i >= len(leads)-activityLeads; i-- {
		items = append(items, leadItem(leads[i], now))
	}
	for i := len(conversions) - 1; i >= 0 && i >= len(conversions)-activityConversions; i-- {
		items = append(items, conversionItem(conversions[i], now))
	}

	if len(items) > activityLimit {
		items = items[:activityLimit]
	}
	return items
}

// MergeRecentActivity returns the limit newest items across both sources,
// ordered by timestamp descending. Ties keep leads before conversions.
func MergeRecentActivity(leads []domain.Lead, conversions []domain.Conversion, now time.Time, limit int) []ActivityItem {
	items := make([]ActivityItem, 0, len(leads)+len(conversions))
	for _, l := range leads {
		items = append(items, leadItem(l, now))
	}
	for _, c := range conversions {
		items = append(items, conversionItem(c, now))
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].At.After(items[b].At)
	})

	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
