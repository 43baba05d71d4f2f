// Package report assembles the ranked analysis results into the single
// serializable structure handed to external sinks. This is the one place
// numeric values are normalized for the output boundary: counts are plain
// ints, scores are float64 rounded to two decimals.
package report

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"dotdigest/internal/chain"
	"dotdigest/internal/correlate"
	"dotdigest/internal/forum"
	"dotdigest/internal/score"
	"dotdigest/internal/signal"
	"dotdigest/internal/timeline"
)

// Input is the collected batch for one analysis run.
type Input struct {
	Categories []forum.Category
	Topics     []forum.Topic
	Posts      []forum.Post
	Referenda  []chain.Referendum
	Treasury   []chain.TreasuryProposal
	BaseURL    string
}

// CategoryActivity ranks a category by its topic and post volume.
type CategoryActivity struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	TopicCount int    `json:"topic_count"`
	PostCount  int    `json:"post_count"`
}

// RiskyProposal is a referendum with its recomputed risk flag.
type RiskyProposal struct {
	Index           int             `json:"index"`
	Track           string          `json:"track"`
	Call            string          `json:"call"`
	SubmittedAt     string          `json:"submitted_at"`
	RiskLevel       score.RiskLevel `json:"risk_level"`
	MatchedKeywords []string        `json:"matched_keywords"`
	URL             string          `json:"url"`
}

// TreasuryItem is a pending treasury spend with its value normalized to
// DOT.
type TreasuryItem struct {
	ID          int     `json:"id"`
	Beneficiary string  `json:"beneficiary"`
	ValueDOT    float64 `json:"value_dot"`
	URL         string  `json:"url"`
}

// Correlations groups the forum-to-governance matches.
type Correlations struct {
	Keywords []correlate.KeywordMatch `json:"keywords"`
	Topics   []correlate.TopicMatch   `json:"topics"`
}

// Metrics summarizes the run.
type Metrics struct {
	TotalCategories int    `json:"total_categories"`
	TotalTopics     int    `json:"total_topics"`
	TotalPosts      int    `json:"total_posts"`
	TotalReferenda  int    `json:"total_referenda"`
	UniqueUsers     int    `json:"unique_users"`
	UniqueTags      int    `json:"unique_tags"`
	UniqueKeywords  int    `json:"unique_keywords"`
	AnalysisDate    string `json:"analysis_date"`
}

// Report is the output contract of one analysis run. Derived entirely
// from the input batch; re-running on the same batch reproduces it.
type Report struct {
	GeneratedAt           string                        `json:"generated_at"`
	TopTopics             []score.TopicHeat             `json:"top_topics"`
	TopUsers              []score.UserRank              `json:"top_users"`
	InfluentialUsers      []score.UserInfluence         `json:"influential_users"`
	TrendingKeywords      []signal.TokenCount           `json:"trending_keywords"`
	PopularTags           []signal.TokenCount           `json:"popular_tags"`
	TimelineAvailable     bool                          `json:"timeline_available"`
	ActivityTimeline      []timeline.DayCount           `json:"activity_timeline,omitempty"`
	CategoryActivity      []CategoryActivity            `json:"category_activity"`
	GovernanceDiscussions []score.GovernanceDiscussion  `json:"governance_discussions"`
	RiskyProposals        []RiskyProposal               `json:"risky_proposals"`
	TreasuryItems         []TreasuryItem                `json:"treasury_items"`
	Correlations          Correlations                  `json:"correlations"`
	Metrics               Metrics                       `json:"metrics"`
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Assemble combines extraction counters, scoring, and correlation into
// the final report. It never fails: an empty batch produces a report
// with zeroed metrics and an unavailable timeline.
func Assemble(in Input, acc *signal.Accumulator, now time.Time) *Report {
	users := acc.Users()

	r := &Report{
		GeneratedAt:           now.UTC().Format(time.RFC3339),
		TopTopics:             score.HotTopics(in.Topics, now, in.BaseURL),
		TopUsers:              score.ActiveUsers(users),
		InfluentialUsers:      score.InfluentialUsers(users),
		TrendingKeywords:      signal.TopTokens(acc.Keywords, 100),
		PopularTags:           signal.TopTokens(acc.Tags, 50),
		CategoryActivity:      categoryActivity(in.Categories, in.Topics),
		GovernanceDiscussions: score.GovernanceDiscussions(in.Topics, in.BaseURL),
		TreasuryItems:         treasuryItems(in.Treasury),
		Metrics: Metrics{
			TotalCategories: len(in.Categories),
			TotalTopics:     len(in.Topics),
			TotalPosts:      len(in.Posts),
			TotalReferenda:  len(in.Referenda),
			UniqueUsers:     len(users),
			UniqueTags:      len(acc.Tags),
			UniqueKeywords:  len(acc.Keywords),
			AnalysisDate:    now.UTC().Format(time.RFC3339),
		},
	}

	for i := range r.TopTopics {
		r.TopTopics[i].HeatScore = round2(r.TopTopics[i].HeatScore)
	}

	r.ActivityTimeline, r.TimelineAvailable = timeline.Daily(in.Posts)

	for _, ref := range in.Referenda {
		flag := score.AssessRisk(ref.ComposedText())
		r.RiskyProposals = append(r.RiskyProposals, RiskyProposal{
			Index:           ref.Index,
			Track:           ref.Track.Name,
			Call:            ref.CallName(),
			SubmittedAt:     ref.Status.Submitted,
			RiskLevel:       flag.Level,
			MatchedKeywords: flag.Matched,
			URL:             fmt.Sprintf("https://polkadot.polkassembly.io/referenda/%d", ref.Index),
		})
	}

	r.Correlations = Correlations{
		Keywords: correlate.Keywords(r.TrendingKeywords, in.Referenda),
		Topics:   correlate.Topics(in.Topics),
	}

	return r
}

// NoData reports whether the run had nothing to analyze. Distinct from a
// batch that merely produced empty rankings.
func (r *Report) NoData() bool {
	return r.Metrics.TotalTopics == 0 && r.Metrics.TotalPosts == 0 &&
		r.Metrics.TotalReferenda == 0
}

func categoryActivity(categories []forum.Category, topics []forum.Topic) []CategoryActivity {
	byCategory := make(map[int]*CategoryActivity)
	var ranked []CategoryActivity
	for _, c := range categories {
		byCategory[c.ID] = &CategoryActivity{ID: c.ID, Name: c.Name}
	}
	for _, t := range topics {
		if entry, ok := byCategory[t.CategoryID]; ok {
			entry.TopicCount++
			entry.PostCount += t.PostsCount
		}
	}
	for _, c := range categories {
		ranked = append(ranked, *byCategory[c.ID])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TopicCount+ranked[i].PostCount > ranked[j].TopicCount+ranked[j].PostCount
	})
	return ranked
}

// treasuryItems converts planck values to DOT and ranks by value
// descending.
func treasuryItems(proposals []chain.TreasuryProposal) []TreasuryItem {
	var items []TreasuryItem
	for _, p := range proposals {
		value, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			value = 0
		}
		items = append(items, TreasuryItem{
			ID:          p.ID,
			Beneficiary: p.Beneficiary,
			ValueDOT:    round2(value / 1e10),
			URL:         fmt.Sprintf("https://polkadot.polkassembly.io/treasury/%d", p.ID),
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].ValueDOT > items[j].ValueDOT })
	return items
}
