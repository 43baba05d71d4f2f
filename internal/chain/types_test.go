package chain

import "testing"

func TestComposedText(t *testing.T) {
	var ref Referendum
	ref.Proposal.DecodedCall = DecodedCall{
		Section: "treasury",
		Method:  "spend",
		Args:    map[string]any{"beneficiary": "5Grw", "amount": 1000},
	}

	want := "treasury spend amount 1000 beneficiary 5Grw"
	if got := ref.ComposedText(); got != want {
		t.Errorf("ComposedText = %q, want %q", got, want)
	}
}

func TestComposedTextStable(t *testing.T) {
	var ref Referendum
	ref.Proposal.DecodedCall = DecodedCall{
		Section: "utility",
		Method:  "batch",
		Args:    map[string]any{"z": 1, "a": 2, "m": 3},
	}

	first := ref.ComposedText()
	for i := 0; i < 20; i++ {
		if got := ref.ComposedText(); got != first {
			t.Fatalf("composed text unstable: %q vs %q", got, first)
		}
	}
	if first != "utility batch a 2 m 3 z 1" {
		t.Errorf("arg keys not sorted: %q", first)
	}
}

func TestComposedTextNoArgs(t *testing.T) {
	var ref Referendum
	ref.Proposal.DecodedCall = DecodedCall{Section: "system", Method: "remark"}

	if got := ref.ComposedText(); got != "system remark" {
		t.Errorf("ComposedText = %q", got)
	}
}

func TestCallName(t *testing.T) {
	var ref Referendum
	if got := ref.CallName(); got != "unknown" {
		t.Errorf("CallName on undecoded proposal = %q, want unknown", got)
	}

	ref.Proposal.DecodedCall = DecodedCall{Section: "system", Method: "setCode"}
	if got := ref.CallName(); got != "system.setCode" {
		t.Errorf("CallName = %q", got)
	}
}
