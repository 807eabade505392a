package store

import (
	"context"
	"strings"
	"testing"

	"wrecklore/internal/linkedart"
)

type mockStore struct {
	schemaCalls int
	upserts     []EntityRecord
}

func (m *mockStore) Close(ctx context.Context) error { return nil }

func (m *mockStore) EnsureSchema(ctx context.Context) error {
	m.schemaCalls++
	return nil
}

func (m *mockStore) UpsertEntity(ctx context.Context, rec EntityRecord) error {
	m.upserts = append(m.upserts, rec)
	return nil
}

func (m *mockStore) GetEntity(ctx context.Context, uri string) (*EntityRecord, error) {
	return nil, nil
}

func (m *mockStore) ListEntities(ctx context.Context, kind string) ([]EntitySummary, error) {
	return nil, nil
}

func (m *mockStore) Search(ctx context.Context, query, kind string) ([]SearchResult, error) {
	return nil, nil
}

func (m *mockStore) Counts(ctx context.Context) (map[string]int, error) {
	return nil, nil
}

func TestRecord(t *testing.T) {
	event := linkedart.Entity{
		Context: linkedart.Context,
		ID:      "https://example.org/event/sinking/mary-1901",
		Type:    "Event",
		Label:   "Loss of Mary",
		TookPlaceAt: []linkedart.Ref{
			{ID: "https://example.org/place/shipwreck/cape-may", Type: "Place", Label: "Cape May"},
		},
		Timespan: &linkedart.TimeSpan{
			Type:  "TimeSpan",
			Begin: "1901-03-15T00:00:00Z",
			End:   "1901-03-15T23:59:59Z",
		},
	}

	rec, err := Record(&event, KindEvent)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.URI != event.ID {
		t.Errorf("uri = %q", rec.URI)
	}
	if rec.Kind != KindEvent {
		t.Errorf("kind = %q", rec.Kind)
	}
	if rec.Slug != "mary-1901" {
		t.Errorf("slug = %q", rec.Slug)
	}
	if rec.Year != 1901 {
		t.Errorf("year = %d", rec.Year)
	}
	if rec.PlaceURI != "https://example.org/place/shipwreck/cape-may" {
		t.Errorf("place_uri = %q", rec.PlaceURI)
	}
	if !strings.Contains(rec.Document, `"Loss of Mary"`) {
		t.Errorf("document missing label: %s", rec.Document)
	}
}

func TestLoad_PlacesBeforeEvents(t *testing.T) {
	place := linkedart.Entity{
		Context: linkedart.Context,
		ID:      "https://example.org/place/shipwreck/cape-may",
		Type:    "Place",
		Label:   "Cape May",
	}
	event := linkedart.Entity{
		Context: linkedart.Context,
		ID:      "https://example.org/event/sinking/mary-1901",
		Type:    "Event",
		Label:   "Loss of Mary",
	}

	m := &mockStore{}
	err := Load(context.Background(), m, []linkedart.Entity{place}, []linkedart.Entity{event})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.schemaCalls != 1 {
		t.Fatalf("schema calls = %d, want 1", m.schemaCalls)
	}
	if len(m.upserts) != 2 {
		t.Fatalf("upserts = %d, want 2", len(m.upserts))
	}
	if m.upserts[0].Kind != KindPlace || m.upserts[1].Kind != KindEvent {
		t.Fatalf("upsert order = %s, %s", m.upserts[0].Kind, m.upserts[1].Kind)
	}
}
