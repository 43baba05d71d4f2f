package timeline

import (
	"reflect"
	"testing"

	"dotdigest/internal/forum"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"trailing Z", "2024-03-01T10:00:00Z", true},
		{"explicit offset", "2024-03-01T10:00:00+02:00", true},
		{"fractional seconds", "2024-03-01T10:00:00.123Z", true},
		{"no offset read as UTC", "2024-03-01T10:00:00", true},
		{"empty", "", false},
		{"garbage", "yesterday", false},
		{"date only", "2024-03-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := ParseTimestamp(tt.value); ok != tt.ok {
				t.Errorf("ParseTimestamp(%q) ok = %v, want %v", tt.value, ok, tt.ok)
			}
		})
	}
}

func TestDaily(t *testing.T) {
	posts := []forum.Post{
		{CreatedAt: "2024-03-02T10:00:00Z"},
		{CreatedAt: "2024-03-01T08:00:00Z"},
		{CreatedAt: "2024-03-01T23:59:59Z"},
		{CreatedAt: "not a timestamp"},
		{CreatedAt: ""},
	}

	days, ok := Daily(posts)
	if !ok {
		t.Fatal("Daily reported unavailable for a batch with valid timestamps")
	}

	want := []DayCount{{"2024-03-01", 2}, {"2024-03-02", 1}}
	if !reflect.DeepEqual(days, want) {
		t.Errorf("Daily = %v, want %v", days, want)
	}
}

func TestDailyBucketsInUTC(t *testing.T) {
	// 23:30 at +02:00 is 21:30 UTC, still the same day; 01:30 at +02:00
	// the next day is 23:30 UTC the previous day.
	posts := []forum.Post{
		{CreatedAt: "2024-03-02T01:30:00+02:00"},
		{CreatedAt: "2024-03-01T23:30:00+02:00"},
	}

	days, ok := Daily(posts)
	if !ok {
		t.Fatal("Daily reported unavailable")
	}
	want := []DayCount{{"2024-03-01", 2}}
	if !reflect.DeepEqual(days, want) {
		t.Errorf("Daily = %v, want %v", days, want)
	}
}

func TestDailyUnavailable(t *testing.T) {
	tests := []struct {
		name  string
		posts []forum.Post
	}{
		{"empty batch", nil},
		{"no valid timestamps", []forum.Post{{CreatedAt: "bogus"}, {CreatedAt: ""}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, ok := Daily(tt.posts)
			if ok {
				t.Error("Daily reported available, want unavailable")
			}
			if days != nil {
				t.Errorf("Daily returned %v, want nil", days)
			}
		})
	}
}
