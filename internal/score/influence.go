package score

import (
	"sort"

	"dotdigest/internal/signal"
)

// UserInfluence is a user ranked by how often they are mentioned and how
// often they post.
type UserInfluence struct {
	Username       string `json:"username"`
	MentionCount   int    `json:"mention_count"`
	PostCount      int    `json:"post_count"`
	InfluenceScore int    `json:"influence_score"`
}

// UserRank is a user ranked by plain post count.
type UserRank struct {
	Username  string `json:"username"`
	PostCount int    `json:"post_count"`
}

// InfluentialUsers computes influence = mentions*3 + posts and ranks
// descending, top 50. Users with zero influence are dropped; ties keep
// input order.
func InfluentialUsers(users []signal.UserActivity) []UserInfluence {
	var ranked []UserInfluence
	for _, u := range users {
		influence := u.MentionCount*3 + u.PostCount
		if influence <= 0 {
			continue
		}
		ranked = append(ranked, UserInfluence{
			Username:       u.Username,
			MentionCount:   u.MentionCount,
			PostCount:      u.PostCount,
			InfluenceScore: influence,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].InfluenceScore > ranked[j].InfluenceScore
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// ActiveUsers ranks users by post count alone, top 50. Computed
// independently of influence: a user can be highly active but rarely
// mentioned, or the other way round.
func ActiveUsers(users []signal.UserActivity) []UserRank {
	var ranked []UserRank
	for _, u := range users {
		if u.PostCount == 0 {
			continue
		}
		ranked = append(ranked, UserRank{Username: u.Username, PostCount: u.PostCount})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PostCount > ranked[j].PostCount
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
