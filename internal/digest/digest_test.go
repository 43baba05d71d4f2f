package digest

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"dotdigest/internal/forum"
)

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func TestAnalyzeDeterministic(t *testing.T) {
	batch := Batch{
		Categories: []forum.Category{{ID: 1, Name: "Governance"}},
		Topics: []forum.Topic{
			{ID: 100, Title: "Treasury proposal", CategoryID: 1, Views: 500,
				PostsCount: 10, Tags: []string{"treasury", "referendum-42"}},
		},
		Posts: []forum.Post{
			{ID: 1, TopicID: 100, Username: "alice",
				Cooked: "<p>@bob thoughts on the parachain?</p>", CreatedAt: "2024-03-14T09:00:00Z"},
		},
	}

	first := Analyze(batch, "https://forum.polkadot.network", now)
	second := Analyze(batch, "https://forum.polkadot.network", now)

	a, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(second)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("identical batches produced different reports")
	}
}

func TestAnalyzeEmptyBatch(t *testing.T) {
	r := Analyze(Batch{}, "https://forum.polkadot.network", now)
	if !r.NoData() {
		t.Error("empty batch should report no data")
	}
}

func TestWaitCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	if wait(ctx, time.Hour) {
		t.Error("wait returned true on a canceled context")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("wait blocked %v on a canceled context", elapsed)
	}
}

func TestWaitElapses(t *testing.T) {
	if !wait(context.Background(), time.Millisecond) {
		t.Error("wait returned false without cancellation")
	}
}

func TestReferendumAssociation(t *testing.T) {
	tests := []struct {
		name  string
		topic forum.Topic
		want  int
	}{
		{"tag", forum.Topic{Tags: []string{"treasury", "referendum-42"}}, 42},
		{"title", forum.Topic{Title: "Referendum #1337: runtime bump"}, 1337},
		{"title spacing", forum.Topic{Title: "referendum#7 notes"}, 7},
		{"tag beats title", forum.Topic{Title: "Referendum #1", Tags: []string{"referendum-2"}}, 2},
		{"partial tag ignored", forum.Topic{Tags: []string{"referendum-42-redux"}}, 0},
		{"none", forum.Topic{Title: "weekly digest", Tags: []string{"meta"}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := referendumAssociation(tt.topic); got != tt.want {
				t.Errorf("referendumAssociation = %d, want %d", got, tt.want)
			}
		})
	}
}
