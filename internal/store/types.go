package store

// EntityRecord is one catalogued Linked Art entity. Document holds the full
// JSON-LD serialization; the remaining columns exist for filtering and
// search without unpacking it.
type EntityRecord struct {
	URI      string
	Kind     string
	Slug     string
	Label    string
	PlaceURI string
	Year     int
	Document string
}

type EntitySummary struct {
	URI   string
	Kind  string
	Label string
	Year  int
}

type SearchResult struct {
	URI   string
	Kind  string
	Label string
	Score float64
}
