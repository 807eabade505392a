package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"wrecklore/internal/linkedart"
)

// Record flattens one Linked Art entity into a catalog record. The full
// JSON-LD document is kept verbatim; kind, slug, year and the primary place
// reference are lifted out for filtering.
func Record(entity *linkedart.Entity, kind string) (EntityRecord, error) {
	doc, err := json.Marshal(entity)
	if err != nil {
		return EntityRecord{}, fmt.Errorf("marshaling entity %s: %w", entity.ID, err)
	}

	rec := EntityRecord{
		URI:      entity.ID,
		Kind:     kind,
		Slug:     slugFromURI(entity.ID),
		Label:    entity.Label,
		Document: string(doc),
	}

	if len(entity.TookPlaceAt) > 0 {
		rec.PlaceURI = entity.TookPlaceAt[0].ID
	}
	if ts := entity.Timespan; ts != nil && len(ts.Begin) >= 4 {
		if year, err := strconv.Atoi(ts.Begin[:4]); err == nil {
			rec.Year = year
		}
	}

	return rec, nil
}

// Load upserts both collections from a conversion run, places first so
// events never reference a place the catalog has not seen.
func Load(ctx context.Context, s Store, places, events []linkedart.Entity) error {
	if err := s.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}

	for i := range places {
		rec, err := Record(&places[i], KindPlace)
		if err != nil {
			return err
		}
		if err := s.UpsertEntity(ctx, rec); err != nil {
			return fmt.Errorf("loading place %s: %w", rec.URI, err)
		}
	}

	for i := range events {
		rec, err := Record(&events[i], KindEvent)
		if err != nil {
			return err
		}
		if err := s.UpsertEntity(ctx, rec); err != nil {
			return fmt.Errorf("loading event %s: %w", rec.URI, err)
		}
	}

	return nil
}

func slugFromURI(uri string) string {
	if i := strings.LastIndex(uri, "/"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}
