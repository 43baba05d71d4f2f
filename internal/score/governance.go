package score

import (
	"fmt"
	"sort"
	"strings"

	"dotdigest/internal/forum"
)

var governanceTitleTerms = []string{
	"proposal", "referendum", "vote", "governance", "treasury",
}

// GovernanceDiscussion is a forum topic whose title signals a governance
// discussion.
type GovernanceDiscussion struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Views      int    `json:"views"`
	PostsCount int    `json:"posts_count"`
	CreatedAt  string `json:"created_at"`
	URL        string `json:"url"`
}

// IsGovernanceTopic reports whether the topic title carries a governance
// term.
func IsGovernanceTopic(title string) bool {
	title = strings.ToLower(title)
	for _, term := range governanceTitleTerms {
		if strings.Contains(title, term) {
			return true
		}
	}
	return false
}

// GovernanceDiscussions picks governance-titled topics and ranks them by
// engagement descending, ties keeping input order.
func GovernanceDiscussions(topics []forum.Topic, baseURL string) []GovernanceDiscussion {
	var discussions []GovernanceDiscussion
	engagement := make(map[int]int)
	for _, t := range topics {
		if !IsGovernanceTopic(t.Title) {
			continue
		}
		engagement[t.ID] = Engagement(t)
		discussions = append(discussions, GovernanceDiscussion{
			ID:         t.ID,
			Title:      t.Title,
			Views:      t.Views,
			PostsCount: t.PostsCount,
			CreatedAt:  t.CreatedAt,
			URL:        fmt.Sprintf("%s/t/%d", baseURL, t.ID),
		})
	}

	sort.SliceStable(discussions, func(i, j int) bool {
		return engagement[discussions[i].ID] > engagement[discussions[j].ID]
	})
	return discussions
}
