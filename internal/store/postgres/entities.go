package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"wrecklore/internal/store"
)

func (c *Client) UpsertEntity(ctx context.Context, rec store.EntityRecord) error {
	sql := `
INSERT INTO entities (uri, kind, slug, label, place_uri, year, document, loaded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
ON CONFLICT (uri) DO UPDATE SET
    kind = EXCLUDED.kind,
    slug = EXCLUDED.slug,
    label = EXCLUDED.label,
    place_uri = EXCLUDED.place_uri,
    year = EXCLUDED.year,
    document = EXCLUDED.document,
    loaded_at = now()
`

	_, err := c.pool.Exec(ctx, sql,
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
	sql := `
SELECT uri, kind, slug, label, place_uri, year, document
FROM entities
WHERE uri = $1
`

	var rec store.EntityRecord
	err := c.pool.QueryRow(ctx, sql, uri).Scan(
		&rec.URI,
		&rec.Kind,
		&rec.Slug,
		&rec.Label,
		&rec.PlaceURI,
		&rec.Year,
		&rec.Document,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting entity: %w", err)
	}
	return &rec, nil
}

func (c *Client) ListEntities(ctx context.Context, kind string) ([]store.EntitySummary, error) {
	sql := `
SELECT uri, kind, label, year
FROM entities
WHERE ($1 = '' OR kind = $1)
ORDER BY kind, label
`

	rows, err := c.pool.Query(ctx, sql, kind)
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
	sql := `SELECT kind, COUNT(*) FROM entities GROUP BY kind`

	rows, err := c.pool.Query(ctx, sql)
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
