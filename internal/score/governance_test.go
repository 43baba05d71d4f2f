package score

import (
	"testing"

	"dotdigest/internal/forum"
)

func TestIsGovernanceTopic(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"Treasury Proposal #42: Marketing", true},
		{"How should we VOTE on this?", true},
		{"Referendum 123 discussion", true},
		{"Parachain auctions explained", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsGovernanceTopic(tt.title); got != tt.want {
			t.Errorf("IsGovernanceTopic(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}

func TestGovernanceDiscussions(t *testing.T) {
	topics := []forum.Topic{
		{ID: 1, Title: "governance chat", Views: 10, PostsCount: 2},
		{ID: 2, Title: "validator setup guide", Views: 9999, PostsCount: 100},
		{ID: 3, Title: "big treasury proposal", Views: 100, PostsCount: 10},
	}

	got := GovernanceDiscussions(topics, "https://forum.polkadot.network")
	if len(got) != 2 {
		t.Fatalf("got %d discussions, want 2", len(got))
	}
	// Engagement: topic 3 = 100+50, topic 1 = 10+10.
	if got[0].ID != 3 || got[1].ID != 1 {
		t.Errorf("order = [%d %d], want [3 1]", got[0].ID, got[1].ID)
	}
	if got[0].URL != "https://forum.polkadot.network/t/3" {
		t.Errorf("URL = %q", got[0].URL)
	}
}
