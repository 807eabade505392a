package sqlite

import (
	"context"
	"fmt"
	"strings"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS entities (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		uri       TEXT NOT NULL,
		kind      TEXT NOT NULL,
		slug      TEXT NOT NULL,
		label     TEXT NOT NULL,
		place_uri TEXT DEFAULT '',
		year      INTEGER DEFAULT 0,
		document  TEXT NOT NULL,
		loaded_at TEXT DEFAULT (datetime('now')),
		CONSTRAINT uq_entity_uri UNIQUE (uri)
	);

	CREATE INDEX IF NOT EXISTS idx_entities_kind ON entities (kind);
	CREATE INDEX IF NOT EXISTS idx_entities_slug ON entities (slug);
	CREATE INDEX IF NOT EXISTS idx_entities_year ON entities (year);
	CREATE INDEX IF NOT EXISTS idx_entities_place ON entities (place_uri);

	CREATE VIRTUAL TABLE IF NOT EXISTS entities_fts USING fts5(
		label,
		document,
		content=entities,
		content_rowid=id
	);

	CREATE TRIGGER IF NOT EXISTS entities_ai AFTER INSERT ON entities BEGIN
		INSERT INTO entities_fts(rowid, label, document)
		VALUES (new.id, new.label, new.document);
	END;

	CREATE TRIGGER IF NOT EXISTS entities_ad AFTER DELETE ON entities BEGIN
		INSERT INTO entities_fts(entities_fts, rowid, label, document)
		VALUES ('delete', old.id, old.label, old.document);
	END;

	CREATE TRIGGER IF NOT EXISTS entities_au AFTER UPDATE ON entities BEGIN
		INSERT INTO entities_fts(entities_fts, rowid, label, document)
		VALUES ('delete', old.id, old.label, old.document);
		INSERT INTO entities_fts(rowid, label, document)
		VALUES (new.id, new.label, new.document);
	END;
	`

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range splitStatements(ddl) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema transaction: %w", err)
	}

	return nil
}

// splitStatements cuts the DDL block on statement-terminating semicolons so
// each statement can run separately. Triggers end in "END;" which is also a
// line of its own, so line-based splitting is safe here.
func splitStatements(ddl string) []string {
	var statements []string
	var current strings.Builder

	for _, line := range strings.Split(ddl, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(stripped, ";") && !insideTrigger(current.String(), stripped) {
			statements = append(statements, current.String())
			current.Reset()
		}
	}

	if strings.TrimSpace(current.String()) != "" {
		statements = append(statements, current.String())
	}

	return statements
}

// insideTrigger reports whether the semicolon on line belongs to a statement
// inside a CREATE TRIGGER body rather than terminating the trigger itself.
func insideTrigger(acc, line string) bool {
	if !strings.Contains(acc, "CREATE TRIGGER") {
		return false
	}
	return !strings.HasSuffix(strings.TrimSpace(line), "END;")
}
