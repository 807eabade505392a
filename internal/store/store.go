// Package store defines the catalog persisting converted entities for
// querying. Backends live in the sqlite and postgres subpackages; the DSN
// scheme selects one.
package store

import "context"

// Kind values stored with each record.
const (
	KindPlace = "place"
	KindEvent = "event"
)

type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	// UpsertEntity is idempotent by URI: reloading a conversion run
	// overwrites the previous snapshot of each record.
	UpsertEntity(ctx context.Context, rec EntityRecord) error

	GetEntity(ctx context.Context, uri string) (*EntityRecord, error)
	ListEntities(ctx context.Context, kind string) ([]EntitySummary, error)
	Search(ctx context.Context, query, kind string) ([]SearchResult, error)
	Counts(ctx context.Context) (map[string]int, error)
}
