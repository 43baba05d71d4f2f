// Package timeline buckets timestamped posts into daily activity counts.
package timeline

import (
	"sort"
	"time"

	"dotdigest/internal/forum"
)

// DayCount is the post count for one calendar day (UTC).
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ParseTimestamp parses an ISO-8601 timestamp. A trailing Z is read as
// the +00:00 offset; a timestamp without any offset is read as UTC. The
// second return is false for missing or malformed values.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Daily buckets posts into (date, count) pairs, one per calendar day with
// at least one post, sorted ascending by date. Posts without a parsable
// timestamp are skipped. The second return is false when no post carried
// a valid timestamp, so callers can tell "no timeline available" apart
// from an empty day list.
func Daily(posts []forum.Post) ([]DayCount, bool) {
	counts := make(map[string]int)
	for _, post := range posts {
		t, ok := ParseTimestamp(post.CreatedAt)
		if !ok {
			continue
		}
		counts[t.UTC().Format("2006-01-02")]++
	}

	if len(counts) == 0 {
		return nil, false
	}

	days := make([]DayCount, 0, len(counts))
	for date, count := range counts {
		days = append(days, DayCount{Date: date, Count: count})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, true
}
