// Package analytics reshapes raw metric rows into chart series, summary
// scalars and the recent-activity feed. Every function is pure.
package analytics

import (
	"sort"
	"time"
)

// MonthLabel is the bucket label layout ("Jan 2024").
const MonthLabel = "Jan 2006"

// Bucket is one calendar month of an aggregated series.
type Bucket struct {
	Label string    `json:"label"`
	Month time.Time `json:"month"`
	Value float64   `json:"value"`
}

// MonthlyBuckets groups records by the UTC calendar month of timeOf and sums
// valueOf per month. Buckets are returned in chronological order, whatever
// the order of records.
func MonthlyBuckets[T any](records []T, timeOf func(T) time.Time, valueOf func(T) float64) []Bucket {
	idx := make(map[time.Time]int)
	buckets := make([]Bucket, 0)

	for _, r := range records {
		at := timeOf(r).UTC()
		month := time.Date(at.Year(), at.Month(), 1, 0, 0, 0, 0, time.UTC)

		i, ok := idx[month]
		if !ok {
			i = len(buckets)
			idx[month] = i
			buckets = append(buckets, Bucket{Label: month.Format(MonthLabel), Month: month})
		}
		buckets[i].Value += valueOf(r)
	}

	sort.SliceStable(buckets, func(a, b int) bool {
		return buckets[a].Month.Before(buckets[b].Month)
	})
	return buckets
}

// CountByMonth counts records per month.
func CountByMonth[T any](records []T, timeOf func(T) time.Time) []Bucket {
	return MonthlyBuckets(records, timeOf, func(T) float64 { return 1 })
}

// SumByMonth sums valueOf per month.
func SumByMonth[T any](records []T, timeOf func(T) time.Time, valueOf func(T) float64) []Bucket {
	return MonthlyBuckets(records, timeOf, valueOf)
}
