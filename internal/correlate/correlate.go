// Package correlate cross-references forum signals against on-chain
// governance proposals. Matching is substring containment only, so every
// match is deterministic and explainable.
package correlate

import (
	"strings"

	"dotdigest/internal/chain"
	"dotdigest/internal/forum"
	"dotdigest/internal/signal"
)

// KeywordMatch pairs a trending forum keyword with a proposal whose
// composed text contains it.
type KeywordMatch struct {
	Keyword         string `json:"keyword"`
	ReferendumIndex int    `json:"referendum_index"`
	ProposalText    string `json:"proposal_text"`
}

// TopicMatch pairs a referendum id with a forum topic associated to it
// by the fetch layer.
type TopicMatch struct {
	ReferendumIndex int    `json:"referendum_index"`
	TopicID         int    `json:"topic_id"`
	TopicTitle      string `json:"topic_title"`
	Views           int    `json:"views"`
	PostsCount      int    `json:"posts_count"`
}

// Keywords finds every (keyword, proposal) pair where the keyword is a
// case-insensitive substring of the proposal's composed text. An empty
// result is a valid "no correlation found" outcome.
func Keywords(keywords []signal.TokenCount, referenda []chain.Referendum) []KeywordMatch {
	var matches []KeywordMatch
	for _, ref := range referenda {
		composed := ref.ComposedText()
		lowered := strings.ToLower(composed)
		for _, kw := range keywords {
			if kw.Token == "" {
				continue
			}
			if strings.Contains(lowered, strings.ToLower(kw.Token)) {
				matches = append(matches, KeywordMatch{
					Keyword:         kw.Token,
					ReferendumIndex: ref.Index,
					ProposalText:    composed,
				})
			}
		}
	}
	return matches
}

// Topics emits a (referendum id, topic) pair for every topic the fetch
// layer tagged with a referendum id.
func Topics(topics []forum.Topic) []TopicMatch {
	var matches []TopicMatch
	for _, t := range topics {
		if t.ReferendumID == 0 {
			continue
		}
		matches = append(matches, TopicMatch{
			ReferendumIndex: t.ReferendumID,
			TopicID:         t.ID,
			TopicTitle:      t.Title,
			Views:           t.Views,
			PostsCount:      t.PostsCount,
		})
	}
	return matches
}
