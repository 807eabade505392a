package transform

import (
	"fmt"

	"wrecklore/internal/linkedart"
	"wrecklore/internal/normalize"
)

// PlaceCategory fixes the URI path segment and classification of a Place.
type PlaceCategory struct {
	Path  string
	Label string
	Vocab string
}

var (
	CategoryWreckSite = PlaceCategory{Path: "shipwreck", Label: "shipwreck sites", Vocab: linkedart.AATShipwreckSites}
	CategoryPort      = PlaceCategory{Path: "port", Label: "ports", Vocab: linkedart.AATPorts}
	CategoryShipyard  = PlaceCategory{Path: "shipyard", Label: "shipyards", Vocab: linkedart.AATShipyards}
)

// buildPlace creates or retrieves the Place for a normalized location name.
// Identical (name, category) pairs resolve to the same identifier, so the
// first row naming a place wins and later rows reuse it. Returns nil when the
// name is absent; callers must then skip linking.
func (t *Transformer) buildPlace(name, latitude, longitude string, category PlaceCategory) *linkedart.Entity {
	cleaned, ok := normalize.Clean(name)
	if !ok {
		return nil
	}

	id := fmt.Sprintf("%s/place/%s/%s", t.cfg.BaseURI, category.Path, normalize.Slug(cleaned))
	if cached, ok := t.places[id]; ok {
		return cached
	}

	place := &linkedart.Entity{
		Context: t.cfg.Context,
		ID:      id,
		Type:    "Place",
		Label:   cleaned,
		ClassifiedAs: []linkedart.TypeRef{
			linkedart.Classification(category.Vocab, category.Label),
		},
		IdentifiedBy: []linkedart.Name{
			{
				Type:    "Name",
				Content: cleaned,
				ClassifiedAs: []linkedart.TypeRef{
					linkedart.Classification(linkedart.AATPreferredTerms, "preferred terms"),
				},
			},
		},
	}

	lat, okLat := normalize.Coordinate(latitude)
	lon, okLon := normalize.Coordinate(longitude)
	if okLat && okLon {
		place.DefinedBy = linkedart.NewPoint(lon, lat)
	}

	if category == CategoryWreckSite && t.cfg.Region.Name != "" {
		place.PartOf = []linkedart.Ref{
			{
				ID:    fmt.Sprintf("%s/place/region/%s", t.cfg.BaseURI, t.cfg.Region.Slug),
				Type:  "Place",
				Label: t.cfg.Region.Name,
			},
		}
	}

	t.places[id] = place
	t.placeOrder = append(t.placeOrder, id)
	return place
}

func placeRef(place *linkedart.Entity) linkedart.Ref {
	return linkedart.Ref{ID: place.ID, Type: "Place", Label: place.Label}
}
