package signal

import "sort"

// TokenCount is the fixed internal representation for ranked counters:
// an ordered (token, count) pair.
type TokenCount struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// TopTokens ranks a counter by count descending, breaking ties
// alphabetically so identical inputs always rank identically, and
// truncates to the top n. n <= 0 means no truncation.
func TopTokens(counts map[string]int, n int) []TokenCount {
	ranked := make([]TokenCount, 0, len(counts))
	for token, count := range counts {
		ranked = append(ranked, TokenCount{Token: token, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Token < ranked[j].Token
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
