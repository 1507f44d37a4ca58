package store

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

const dayLayout = "2006-01-02"

// AddEntry records an amount for a day, region and category
func (s *Store) AddEntry(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO report_entries (day, region, category, amount) VALUES (?, ?, ?, ?)`,
		e.Day.Format(dayLayout), e.Region, e.Category, e.Amount)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// Entries returns all entries on or after since, oldest first
func (s *Store) Entries(ctx context.Context, since time.Time) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT day, region, category, amount FROM report_entries WHERE day >= ? ORDER BY day, id`,
		since.Format(dayLayout))
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e   Entry
			day string
		)
		if err := rows.Scan(&day, &e.Region, &e.Category, &e.Amount); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if e.Day, err = time.Parse(dayLayout, day); err != nil {
			return nil, fmt.Errorf("parse day %q: %w", day, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Regions returns the distinct regions in first-seen order
func (s *Store) Regions(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "region")
}

// Categories returns the distinct categories in first-seen order
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	return s.distinct(ctx, "category")
}

func (s *Store) distinct(ctx context.Context, column string) ([]string, error) {
	// column is one of two constants above, never user input
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+column+` FROM report_entries GROUP BY `+column+` ORDER BY MIN(id)`)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", column, err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan %s: %w", column, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Seed fills the report table with days of synthetic entries ending at now
func (s *Store) Seed(ctx context.Context, now time.Time, days int, seed int64) (int, error) {
	regions := []string{"Norte", "Nordeste", "Centro-Oeste", "Sudeste", "Sul"}
	categories := []string{"Vendas", "Serviços", "Assinaturas", "Devoluções"}
	rng := rand.New(rand.NewSource(seed))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO report_entries (day, region, category, amount) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	n := 0
	for d := 0; d < days; d++ {
		day := now.AddDate(0, 0, -d).Format(dayLayout)
		for _, region := range regions {
			for _, category := range categories {
				amount := float64(rng.Intn(100000)) / 100
				if _, err := stmt.ExecContext(ctx, day, region, category, amount); err != nil {
					return n, fmt.Errorf("insert seed entry: %w", err)
				}
				n++
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return n, nil
}
