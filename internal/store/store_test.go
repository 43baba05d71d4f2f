package store

import (
	"context"
	"database/sql"
	"reflect"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// Schema mirrors init.sql; the libsql dialect is sqlite, so an in-memory
// sqlite database exercises the same statements.
var testSchema = []string{
	`CREATE TABLE digest_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		generated_at TEXT NOT NULL,
		report TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`,
	`CREATE TABLE subscribers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		active INTEGER NOT NULL DEFAULT 1,
		subscribed_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`,
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	for _, stmt := range testSchema {
		if _, err := conn.Exec(stmt); err != nil {
			t.Fatalf("apply schema: %v", err)
		}
	}
	return &Store{conn: conn}
}

func TestSubscriberLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, email := range []string{"alice@example.com", "bob@example.com"} {
		if err := s.AddSubscriber(ctx, email); err != nil {
			t.Fatalf("AddSubscriber(%s): %v", email, err)
		}
	}

	active, err := s.ActiveSubscribers(ctx)
	if err != nil {
		t.Fatalf("ActiveSubscribers: %v", err)
	}
	want := []string{"alice@example.com", "bob@example.com"}
	if !reflect.DeepEqual(active, want) {
		t.Errorf("active = %v, want %v", active, want)
	}

	if err := s.Unsubscribe(ctx, "alice@example.com"); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}
	active, err = s.ActiveSubscribers(ctx)
	if err != nil {
		t.Fatalf("ActiveSubscribers: %v", err)
	}
	if !reflect.DeepEqual(active, []string{"bob@example.com"}) {
		t.Errorf("active after unsubscribe = %v", active)
	}
}

func TestAddSubscriberReactivates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.AddSubscriber(ctx, "alice@example.com"); err != nil {
		t.Fatalf("AddSubscriber: %v", err)
	}
	if err := s.Unsubscribe(ctx, "alice@example.com"); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}

	// Re-adding flips the existing row back to active instead of failing
	// on the unique email.
	if err := s.AddSubscriber(ctx, "alice@example.com"); err != nil {
		t.Fatalf("AddSubscriber after unsubscribe: %v", err)
	}

	active, err := s.ActiveSubscribers(ctx)
	if err != nil {
		t.Fatalf("ActiveSubscribers: %v", err)
	}
	if !reflect.DeepEqual(active, []string{"alice@example.com"}) {
		t.Errorf("active = %v, want alice reactivated", active)
	}

	var rows int
	if err := s.conn.QueryRow(`SELECT COUNT(*) FROM subscribers`).Scan(&rows); err != nil {
		t.Fatal(err)
	}
	if rows != 1 {
		t.Errorf("subscriber rows = %d, want 1 (no duplicate)", rows)
	}
}

func TestSaveAndLatestRun(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SaveRun(ctx, "2024-03-14T08:00:00Z", []byte(`{"run":1}`)); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if err := s.SaveRun(ctx, "2024-03-15T08:00:00Z", []byte(`{"run":2}`)); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	latest, err := s.LatestRun(ctx)
	if err != nil {
		t.Fatalf("LatestRun: %v", err)
	}
	if string(latest) != `{"run":2}` {
		t.Errorf("latest = %s, want the second run", latest)
	}
}
