package score

import "strings"

// RiskLevel is the discrete severity attached to a governance proposal.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Risk keywords with severity weights. Privileged-authority terms weigh
// 3, value/impact terms 2, scope terms 1. An extra match can only raise
// the total, so the level mapping below is monotonic.
var riskKeywords = []struct {
	term   string
	weight int
}{
	{"runtime upgrade", 3},
	{"sudo", 3},
	{"root", 3},
	{"force", 3},
	{"override", 3},
	{"emergency", 3},
	{"treasury", 2},
	{"high value", 2},
	{"privileged", 2},
	{"critical", 2},
	{"parachain", 1},
}

// RiskFlag records a proposal's severity level and the keywords that
// produced it. Recomputed every run, never stored.
type RiskFlag struct {
	Level   RiskLevel `json:"level"`
	Matched []string  `json:"matched_keywords"`
}

// AssessRisk scans the proposal's composed text case-insensitively for
// risk keywords (substring containment) and maps the summed weights to a
// level: 0 low, 1-2 medium, 3-5 high, 6+ critical.
func AssessRisk(composedText string) RiskFlag {
	text := strings.ToLower(composedText)

	total := 0
	var matched []string
	for _, kw := range riskKeywords {
		if strings.Contains(text, kw.term) {
			total += kw.weight
			matched = append(matched, kw.term)
		}
	}

	flag := RiskFlag{Matched: matched}
	switch {
	case total >= 6:
		flag.Level = RiskCritical
	case total >= 3:
		flag.Level = RiskHigh
	case total >= 1:
		flag.Level = RiskMedium
	default:
		flag.Level = RiskLow
	}
	return flag
}
