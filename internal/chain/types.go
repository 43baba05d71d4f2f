package chain

import (
	"fmt"
	"sort"
	"strings"
)

// Track identifies the OpenGov track a referendum runs on.
type Track struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DecodedCall is the decoded proposal call of a referendum.
type DecodedCall struct {
	Section string         `json:"section"`
	Method  string         `json:"method"`
	Args    map[string]any `json:"args"`
}

// Referendum is an ongoing on-chain referendum as reported by the node
// bridge script. Read-only input to the analysis run.
type Referendum struct {
	Index    int   `json:"index"`
	Track    Track `json:"track"`
	Proposal struct {
		DecodedCall DecodedCall `json:"decodedCall"`
	} `json:"proposal"`
	Status struct {
		Submitted string `json:"submitted"`
	} `json:"status"`
}

// TreasuryProposal is a pending treasury spend.
type TreasuryProposal struct {
	ID          int    `json:"proposal_id"`
	Value       string `json:"amount"`
	Beneficiary string `json:"beneficiary"`
}

// ComposedText flattens the decoded call into a single searchable string:
// section, method, then "key value" for every argument. Argument keys are
// sorted so the result is stable across runs.
func (r Referendum) ComposedText() string {
	decoded := r.Proposal.DecodedCall

	var b strings.Builder
	b.WriteString(decoded.Section)
	b.WriteString(" ")
	b.WriteString(decoded.Method)

	keys := make([]string, 0, len(decoded.Args))
	for k := range decoded.Args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(&b, " %s %v", k, decoded.Args[k])
	}
	return b.String()
}

// CallName is the "section.method" label used in reports.
func (r Referendum) CallName() string {
	decoded := r.Proposal.DecodedCall
	if decoded.Section == "" && decoded.Method == "" {
		return "unknown"
	}
	return fmt.Sprintf("%s.%s", decoded.Section, decoded.Method)
}
