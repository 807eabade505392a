package postgres

import (
	"context"
	"fmt"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
CREATE TABLE IF NOT EXISTS entities (
    id        BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    uri       TEXT NOT NULL,
    kind      TEXT NOT NULL,
    slug      TEXT NOT NULL,
    label     TEXT NOT NULL,
    place_uri TEXT DEFAULT '',
    year      INTEGER DEFAULT 0,
    document  TEXT NOT NULL,
    loaded_at TIMESTAMPTZ DEFAULT now(),
    CONSTRAINT uq_entity_uri UNIQUE (uri)
);

ALTER TABLE entities ADD COLUMN IF NOT EXISTS search_vector TSVECTOR
    GENERATED ALWAYS AS (
        setweight(to_tsvector('english', label), 'A') ||
        setweight(to_tsvector('english', document), 'D')
    ) STORED;

CREATE INDEX IF NOT EXISTS idx_entities_search ON entities USING GIN (search_vector);
CREATE INDEX IF NOT EXISTS idx_entities_kind ON entities (kind);
CREATE INDEX IF NOT EXISTS idx_entities_slug ON entities (slug);
CREATE INDEX IF NOT EXISTS idx_entities_year ON entities (year);
CREATE INDEX IF NOT EXISTS idx_entities_place ON entities (place_uri);
`
	if _, err := c.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}
