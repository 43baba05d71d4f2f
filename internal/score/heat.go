// Package score ranks topics, users, and governance proposals.
package score

import (
	"fmt"
	"sort"
	"time"

	"dotdigest/internal/forum"
	"dotdigest/internal/timeline"
)

// topN caps every ranked list the engine emits.
const topN = 50

// neutralRecency is used when a topic has no parsable last-activity
// timestamp.
const neutralRecency = 0.5

// TopicHeat is a topic with its computed heat score.
type TopicHeat struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Views        int     `json:"views"`
	PostsCount   int     `json:"posts_count"`
	CreatedAt    string  `json:"created_at"`
	LastPostedAt string  `json:"last_posted_at"`
	HeatScore    float64 `json:"heat_score"`
	URL          string  `json:"url"`
}

// RecencyFactor is the decay multiplier for a topic's last activity:
// activity within the last 29 days decays linearly from ~1.0, anything
// older floors at 1/30. Missing or malformed timestamps get the neutral
// 0.5.
func RecencyFactor(lastPostedAt string, now time.Time) float64 {
	t, ok := timeline.ParseTimestamp(lastPostedAt)
	if !ok {
		return neutralRecency
	}
	days := now.Sub(t).Seconds() / 86400
	boost := 30 - days
	if boost < 1 {
		boost = 1
	}
	return boost / 30
}

// HeatScore blends views, reply volume, and recency:
//
//	views*0.3 + posts*5*0.5 + posts*recency*0.2
func HeatScore(t forum.Topic, now time.Time) float64 {
	recency := RecencyFactor(t.LastPostedAt, now)
	views := float64(t.Views)
	posts := float64(t.PostsCount)
	return views*0.3 + posts*5*0.5 + posts*recency*0.2
}

// HotTopics ranks topics by heat score descending, top 50. Pinned topics
// are an editorial override, not an engagement signal, and are excluded.
// Ties keep input order.
func HotTopics(topics []forum.Topic, now time.Time, baseURL string) []TopicHeat {
	var hot []TopicHeat
	for _, t := range topics {
		if t.Pinned {
			continue
		}
		hot = append(hot, TopicHeat{
			ID:           t.ID,
			Title:        t.Title,
			Views:        t.Views,
			PostsCount:   t.PostsCount,
			CreatedAt:    t.CreatedAt,
			LastPostedAt: t.LastPostedAt,
			HeatScore:    HeatScore(t, now),
			URL:          fmt.Sprintf("%s/t/%d", baseURL, t.ID),
		})
	}

	sort.SliceStable(hot, func(i, j int) bool { return hot[i].HeatScore > hot[j].HeatScore })
	if len(hot) > topN {
		hot = hot[:topN]
	}
	return hot
}

// Engagement is the pre-detail-fetch relevance heuristic: raw views plus
// five per post.
func Engagement(t forum.Topic) int {
	return t.Views + t.PostsCount*5
}
