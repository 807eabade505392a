package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wrecklore/internal/store"
)

func (c *Client) UpsertEntity(ctx context.Context, rec store.EntityRecord) error {
	query := `
	INSERT INTO entities (uri, kind, slug, label, place_uri, year, document, loaded_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, datetime('now'))
	ON CONFLICT (uri) DO UPDATE SET
		kind = excluded.kind,
		slug = excluded.slug,
		label = excluded.label,
		place_uri = excluded.place_uri,
		year = excluded.year,
		document = excluded.document,
		loaded_at = datetime('now')
	`

	_, err := c.db.ExecContext(ctx, query,
		rec.URI,
		rec.Kind,
		rec.Slug,
		rec.Label,
		rec.PlaceURI,
		rec.Year,
		rec.Document,
	)
	if err != nil {
		return fmt.Errorf("upserting entity: %w", err)
	}
	return nil
}

func (c *Client) GetEntity(ctx context.Context, uri string) (*store.EntityRecord, error) {
	query := `
	SELECT uri, kind, slug, label, place_uri, year, document
	FROM entities
	WHERE uri = ?
	`

	var rec store.EntityRecord
	err := c.db.QueryRowContext(ctx, query, uri).Scan(
		&rec.URI,
		&rec.Kind,
		&rec.Slug,
		&rec.Label,
		&rec.PlaceURI,
		&rec.Year,
		&rec.Document,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting entity: %w", err)
	}
	return &rec, nil
}

func (c *Client) ListEntities(ctx context.Context, kind string) ([]store.EntitySummary, error) {
	query := `
	SELECT uri, kind, label, year
	FROM entities
	WHERE (? = '' OR kind = ?)
	ORDER BY kind, label
	`

	rows, err := c.db.QueryContext(ctx, query, kind, kind)
	if err != nil {
		return nil, fmt.Errorf("listing entities: %w", err)
	}
	defer rows.Close()

	var summaries []store.EntitySummary
	for rows.Next() {
		var s store.EntitySummary
		if err := rows.Scan(&s.URI, &s.Kind, &s.Label, &s.Year); err != nil {
			return nil, fmt.Errorf("scanning entity summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entity rows: %w", err)
	}

	if summaries == nil {
		summaries = []store.EntitySummary{}
	}

	return summaries, nil
}

func (c *Client) Counts(ctx context.Context) (map[string]int, error) {
	query := `SELECT kind, COUNT(*) FROM entities GROUP BY kind`

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting entities: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var n int
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[kind] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating count rows: %w", err)
	}

	return counts, nil
}
