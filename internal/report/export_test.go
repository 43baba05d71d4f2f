package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"forum analysis", "forum-analysis"},
		{"  Polkadot / Kusama!  ", "polkadot-kusama"},
		{"already-clean", "already-clean"},
	}

	for _, tt := range tests {
		if got := Slug(tt.name); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	when := time.Date(2024, 3, 15, 12, 30, 45, 0, time.UTC)

	r := &Report{GeneratedAt: when.Format(time.RFC3339)}
	path, err := r.Save(dir, "forum analysis", when)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	want := filepath.Join(dir, "forum-analysis_20240315_123045.json")
	if path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var loaded Report
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if loaded.GeneratedAt != r.GeneratedAt {
		t.Errorf("generated_at = %q, want %q", loaded.GeneratedAt, r.GeneratedAt)
	}
}
