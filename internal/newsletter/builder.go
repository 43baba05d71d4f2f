// Package newsletter renders the digest report as an HTML email and
// delivers it to subscribers.
package newsletter

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"dotdigest/internal/report"
	"dotdigest/internal/score"
	"dotdigest/internal/signal"
)

type item struct {
	Title   string
	Meta    string
	Summary string
	URL     string
}

type data struct {
	Title            string
	Date             string
	CommunitySummary string
	TrendingKeywords []signal.TokenCount
	ImportantPosts   []item
	Governance       []item
	UnsubscribeLink  string
}

// Build renders the digest HTML for a report.
func Build(r *report.Report, now time.Time) (string, error) {
	d := data{
		Title:            fmt.Sprintf("Polkadot Forum Digest - %s", now.Format("January 2, 2006")),
		Date:             now.Format("January 2, 2006"),
		CommunitySummary: communitySummary(r),
		UnsubscribeLink:  "#unsubscribe",
	}

	if len(r.TrendingKeywords) > 15 {
		d.TrendingKeywords = r.TrendingKeywords[:15]
	} else {
		d.TrendingKeywords = r.TrendingKeywords
	}

	for i, topic := range r.TopTopics {
		if i >= 10 {
			break
		}
		d.ImportantPosts = append(d.ImportantPosts, item{
			Title: topic.Title,
			Meta: fmt.Sprintf("%d views | %d replies", topic.Views,
				max(0, topic.PostsCount-1)),
			Summary: fmt.Sprintf("Heat score: %.2f", topic.HeatScore),
			URL:     topic.URL,
		})
	}

	d.Governance = governanceItems(r)

	var b strings.Builder
	if err := digestTemplate.Execute(&b, d); err != nil {
		return "", fmt.Errorf("render newsletter: %w", err)
	}
	return b.String(), nil
}

func communitySummary(r *report.Report) string {
	var b strings.Builder

	if len(r.CategoryActivity) > 0 {
		names := make([]string, 0, 3)
		for i, cat := range r.CategoryActivity {
			if i >= 3 {
				break
			}
			names = append(names, cat.Name)
		}
		fmt.Fprintf(&b, "The Polkadot community had high activity in the categories %s. ",
			strings.Join(names, ", "))
	}

	fmt.Fprintf(&b, "The forum had %d active topics with %d posts from %d distinct users. ",
		r.Metrics.TotalTopics, r.Metrics.TotalPosts, r.Metrics.UniqueUsers)

	highRisk := 0
	for _, p := range r.RiskyProposals {
		if p.RiskLevel == score.RiskHigh || p.RiskLevel == score.RiskCritical {
			highRisk++
		}
	}
	fmt.Fprintf(&b, "There are %d active referenda at the moment, ", r.Metrics.TotalReferenda)
	if highRisk > 0 {
		fmt.Fprintf(&b, "with %d classified as high-risk. ", highRisk)
	} else {
		b.WriteString("all with moderate or low risk levels. ")
	}

	if len(r.TreasuryItems) > 0 {
		fmt.Fprintf(&b, "There are also %d treasury proposals in progress. ", len(r.TreasuryItems))
	}

	return strings.TrimSpace(b.String())
}

// governanceItems lists the high and critical risk referenda first, then
// the top treasury spends, capped at five entries total.
func governanceItems(r *report.Report) []item {
	var items []item
	for _, p := range r.RiskyProposals {
		if p.RiskLevel != score.RiskHigh && p.RiskLevel != score.RiskCritical {
			continue
		}
		items = append(items, item{
			Title: fmt.Sprintf("Referendum #%d - %s", p.Index, p.Call),
			Meta:  fmt.Sprintf("Track: %s", p.Track),
			Summary: fmt.Sprintf("Risk level: %s. Matched: %s.",
				strings.ToUpper(string(p.RiskLevel)), strings.Join(p.MatchedKeywords, ", ")),
			URL: p.URL,
		})
	}

	for i, t := range r.TreasuryItems {
		if i >= 3 {
			break
		}
		items = append(items, item{
			Title:   fmt.Sprintf("Treasury Proposal #%d - %.2f DOT", t.ID, t.ValueDOT),
			Summary: fmt.Sprintf("Beneficiary: %s", t.Beneficiary),
			URL:     t.URL,
		})
	}

	if len(items) > 5 {
		items = items[:5]
	}
	return items
}

var digestTemplate = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; margin-bottom: 30px; border-bottom: 2px solid #E6007A; padding-bottom: 10px; }
        .date { color: #666; font-style: italic; }
        h1 { color: #E6007A; }
        h2 { color: #172026; border-bottom: 1px solid #ddd; padding-bottom: 5px; margin-top: 25px; }
        .post { margin-bottom: 25px; padding: 15px; background-color: #f9f9f9; border-radius: 5px; }
        .post-title { font-weight: bold; font-size: 18px; margin-bottom: 5px; }
        .post-meta { font-size: 14px; color: #666; margin-bottom: 10px; }
        .post-link { display: inline-block; margin-top: 10px; color: #E6007A; text-decoration: none; font-weight: bold; }
        .section { margin-bottom: 30px; }
        .footer { margin-top: 50px; padding-top: 20px; border-top: 1px solid #ddd; font-size: 14px; color: #666; text-align: center; }
        .unsubscribe { color: #999; font-size: 12px; }
        .trending-keywords { display: flex; flex-wrap: wrap; gap: 10px; margin: 15px 0; }
        .keyword { background-color: #E6007A20; color: #E6007A; padding: 5px 10px; border-radius: 15px; font-size: 14px; }
        .summary-box { background-color: #f0f0f0; border-left: 4px solid #E6007A; padding: 15px; margin: 20px 0; }
    </style>
</head>
<body>
    <div class="header">
        <h1>{{.Title}}</h1>
        <p class="date">{{.Date}}</p>
    </div>

    {{if .CommunitySummary}}
    <div class="section">
        <h2>Community Summary</h2>
        <div class="summary-box"><p>{{.CommunitySummary}}</p></div>
    </div>
    {{end}}

    {{if .TrendingKeywords}}
    <div class="section">
        <h2>Trending Topics</h2>
        <div class="trending-keywords">
            {{range .TrendingKeywords}}<span class="keyword">{{.Token}} ({{.Count}})</span>{{end}}
        </div>
    </div>
    {{end}}

    {{if .ImportantPosts}}
    <div class="section">
        <h2>Key Posts of the Week</h2>
        {{range .ImportantPosts}}
        <div class="post">
            <div class="post-title">{{.Title}}</div>
            <div class="post-meta">{{.Meta}}</div>
            <div class="post-summary">{{.Summary}}</div>
            <a href="{{.URL}}" class="post-link">Read more &raquo;</a>
        </div>
        {{end}}
    </div>
    {{end}}

    {{if .Governance}}
    <div class="section">
        <h2>Active Governance Proposals</h2>
        {{range .Governance}}
        <div class="post">
            <div class="post-title">{{.Title}}</div>
            <div class="post-meta">{{.Meta}}</div>
            <div class="post-summary">{{.Summary}}</div>
            <a href="{{.URL}}" class="post-link">View complete proposal &raquo;</a>
        </div>
        {{end}}
    </div>
    {{end}}

    <div class="footer">
        <p>Polkadot Forum Digest</p>
        <p class="unsubscribe">If you no longer wish to receive these communications, <a href="{{.UnsubscribeLink}}">click here to unsubscribe</a>.</p>
    </div>
</body>
</html>`))
