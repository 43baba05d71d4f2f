// Package store persists digest runs and newsletter subscribers.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"dotdigest/config"
)

type Store struct {
	conn *sql.DB
}

func New(cfg *config.Config) (*Store, error) {
	connStr := cfg.Database.Url
	if cfg.Database.Token != "" {
		connStr = fmt.Sprintf("%s?authToken=%s", cfg.Database.Url, cfg.Database.Token)
	}

	conn, err := sql.Open("libsql", connStr)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		return nil, err
	}

	return &Store{conn: conn}, nil
}

// SaveRun stores one digest run's report JSON.
func (s *Store) SaveRun(ctx context.Context, generatedAt string, reportJSON []byte) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO digest_runs (generated_at, report) VALUES (?, ?)`,
		generatedAt, string(reportJSON))
	return err
}

// LatestRun returns the most recent stored report JSON.
func (s *Store) LatestRun(ctx context.Context) ([]byte, error) {
	var report string
	err := s.conn.QueryRowContext(ctx,
		`SELECT report FROM digest_runs ORDER BY id DESC LIMIT 1`).Scan(&report)
	if err != nil {
		return nil, err
	}
	return []byte(report), nil
}

// ActiveSubscribers lists the emails of everyone still subscribed.
func (s *Store) ActiveSubscribers(ctx context.Context) ([]string, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT email FROM subscribers WHERE active = 1 ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

// AddSubscriber registers an email; re-adding reactivates it.
func (s *Store) AddSubscriber(ctx context.Context, email string) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO subscribers (email, active) VALUES (?, 1)
		ON CONFLICT(email) DO UPDATE SET active = 1`,
		email)
	return err
}

// Unsubscribe deactivates an email without deleting its row.
func (s *Store) Unsubscribe(ctx context.Context, email string) error {
	_, err := s.conn.ExecContext(ctx,
		`UPDATE subscribers SET active = 0 WHERE email = ?`, email)
	return err
}

func (s *Store) Close() error {
	return s.conn.Close()
}
