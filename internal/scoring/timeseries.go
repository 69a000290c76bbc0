package scoring

import "time"

// DatedRecord is the minimal projection bucketed by BucketByMonth.
type DatedRecord struct {
	Category string
	Date     time.Time
}

// MonthBucket is one calendar month of per-category counts. Every bucket
// carries every requested category key, so stacked charts get a uniform
// shape regardless of data.
type MonthBucket struct {
	Month  string         `json:"month"` // e.g. "2026-03"
	Start  time.Time      `json:"start"`
	End    time.Time      `json:"end"`
	Counts map[string]int `json:"counts"`
}

// BucketByMonth groups records into monthsBack consecutive calendar months
// ending at the month containing now, oldest first. Bucket boundaries are
// calendar-aligned, not rolling windows, so a record on a month boundary
// lands in exactly one bucket. Records with a zero date are skipped; the
// result is independent of input order.
func BucketByMonth(records []DatedRecord, monthsBack int, categories []string, now time.Time) []MonthBucket {
	if monthsBack < 1 {
		return nil
	}

	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	buckets := make([]MonthBucket, monthsBack)
	for i := 0; i < monthsBack; i++ {
		start := currentStart.AddDate(0, i-monthsBack+1, 0)
		counts := make(map[string]int, len(categories))
		for _, c := range categories {
			counts[c] = 0
		}
		buckets[i] = MonthBucket{
			Month:  start.Format("2006-01"),
			Start:  start,
			End:    start.AddDate(0, 1, 0).Add(-time.Nanosecond),
			Counts: counts,
		}
	}

	first := buckets[0].Start
	limit := currentStart.AddDate(0, 1, 0)
	for _, r := range records {
		if r.Date.IsZero() {
			continue
		}
		d := r.Date.In(now.Location())
		if d.Before(first) || !d.Before(limit) {
			continue
		}
		idx := monthsSince(first, d)
		if idx < 0 || idx >= monthsBack {
			continue
		}
		buckets[idx].Counts[r.Category]++
	}
	return buckets
}

// monthsSince returns the number of whole calendar months between the month
// of start and the month of d.
func monthsSince(start, d time.Time) int {
	return (d.Year()-start.Year())*12 + int(d.Month()) - int(start.Month())
}
