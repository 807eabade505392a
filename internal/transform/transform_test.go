package transform

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wrecklore/internal/config"
	"wrecklore/internal/linkedart"
)

const testHeader = "shipsName,aka,locationLost,latitude,longitude,year,month,day,dateLost,causeOfLoss,master,numberOfCrew,numPass,livesLost,shipValue,cargoValue,natureOfCargo,vesselType,yearBuilt,whereBuilt,homeHailingPort,departurePort,destinationPort,construction,flag,length,beam,draft,grossTonnage,netTonnage,uslssStationName,lost,miscInformation"

func testTransformer(t *testing.T) *Transformer {
	t.Helper()
	cfg := config.Default()
	cfg.BaseURI = "https://example.org/test"
	return New(cfg)
}

func runCSV(t *testing.T, tr *Transformer, lines ...string) *Result {
	t.Helper()
	input := strings.Join(append([]string{testHeader}, lines...), "\n") + "\n"
	result, err := tr.Run(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return result
}

// row builds a CSV line from canonical column values, leaving the rest blank.
func row(t *testing.T, values map[string]string) string {
	t.Helper()
	columns := strings.Split(testHeader, ",")
	cells := make([]string, len(columns))
	for i, col := range columns {
		if v, ok := values[col]; ok {
			if strings.ContainsAny(v, ",\"") {
				v = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
			}
			cells[i] = v
		}
	}
	return strings.Join(cells, ",")
}

func TestRun_EndToEnd(t *testing.T) {
	tr := testTransformer(t)
	result := runCSV(t, tr, row(t, map[string]string{
		"shipsName":    "Example",
		"locationLost": "Cape May",
		"latitude":     "38.9",
		"longitude":    "-74.9",
		"year":         "1901",
		"month":        "3",
		"day":          "15",
		"causeOfLoss":  "Storm",
		"livesLost":    "4",
	}))

	if len(result.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(result.Events))
	}
	if len(result.Places) != 1 {
		t.Fatalf("expected 1 place, got %d", len(result.Places))
	}

	place := result.Places[0]
	if place.ID != "https://example.org/test/place/shipwreck/cape-may" {
		t.Errorf("unexpected place id: %s", place.ID)
	}
	if place.DefinedBy == nil {
		t.Fatalf("expected point geometry")
	}
	if got := place.DefinedBy.Coordinates; len(got) != 2 || got[0] != -74.9 || got[1] != 38.9 {
		t.Errorf("unexpected coordinates: %v", got)
	}

	event := result.Events[0]
	if event.Timespan == nil {
		t.Fatalf("expected timespan")
	}
	if event.Timespan.Begin != "1901-03-15T00:00:00Z" || event.Timespan.End != "1901-03-15T23:59:59Z" {
		t.Errorf("unexpected timespan: %+v", event.Timespan)
	}
	if len(event.CausedBy) != 1 || event.CausedBy[0].Label != "Storm" {
		t.Errorf("unexpected cause: %+v", event.CausedBy)
	}
	if len(event.TookPlaceAt) != 1 || event.TookPlaceAt[0].ID != place.ID {
		t.Errorf("event does not reference the place: %+v", event.TookPlaceAt)
	}

	var impact string
	for _, ref := range event.ReferredToBy {
		if strings.Contains(ref.Content, "Lives lost") {
			impact = ref.Content
		}
	}
	if !strings.Contains(impact, "Lives lost: 4") {
		t.Errorf("expected impact block with lives lost, got %q", impact)
	}

	if result.Stats.WithCoordinates != 1 || result.Stats.WithFullDate != 1 || result.Stats.WithCause != 1 {
		t.Errorf("unexpected stats: %+v", result.Stats)
	}
	if result.Stats.LivesLost != 4 {
		t.Errorf("expected 4 recorded lives lost, got %d", result.Stats.LivesLost)
	}
}

func TestRun_NoCoordinatesMeansNoGeometry(t *testing.T) {
	tr := testTransformer(t)
	result := runCSV(t, tr, row(t, map[string]string{
		"shipsName":    "Bare",
		"locationLost": "Somewhere",
	}))

	if len(result.Places) != 1 {
		t.Fatalf("expected 1 place, got %d", len(result.Places))
	}
	if result.Places[0].DefinedBy != nil {
		t.Fatalf("expected no geometry, got %+v", result.Places[0].DefinedBy)
	}
	if result.Stats.WithCoordinates != 0 {
		t.Fatalf("coordinates counted without coordinates present")
	}
}

func TestRun_PlaceDeduplication(t *testing.T) {
	tr := testTransformer(t)
	result := runCSV(t, tr,
		row(t, map[string]string{"shipsName": "First", "locationLost": "Cape May", "latitude": "38.9", "longitude": "-74.9"}),
		row(t, map[string]string{"shipsName": "Second", "locationLost": "CAPE MAY!"}),
	)

	if len(result.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(result.Events))
	}
	if len(result.Places) != 1 {
		t.Fatalf("expected deduplicated place, got %d", len(result.Places))
	}

	placeIDs := make(map[string]bool)
	for _, p := range result.Places {
		placeIDs[p.ID] = true
	}
	for _, e := range result.Events {
		if len(e.TookPlaceAt) != 1 {
			t.Fatalf("expected took_place_at on both events")
		}
		if !placeIDs[e.TookPlaceAt[0].ID] {
			t.Fatalf("event references place %s outside the collection", e.TookPlaceAt[0].ID)
		}
	}

	// First row wins: the cached place keeps its geometry.
	if result.Places[0].DefinedBy == nil {
		t.Fatalf("expected geometry from first row to survive")
	}
}

func TestRun_MissingLocationSkipsLinking(t *testing.T) {
	tr := testTransformer(t)
	result := runCSV(t, tr, row(t, map[string]string{"shipsName": "Adrift"}))

	if len(result.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(result.Events))
	}
	if len(result.Events[0].TookPlaceAt) != 0 {
		t.Fatalf("expected no took_place_at, got %+v", result.Events[0].TookPlaceAt)
	}
	if len(result.Places) != 0 {
		t.Fatalf("expected no places, got %d", len(result.Places))
	}
}

func TestRun_UnknownShipFallback(t *testing.T) {
	tr := testTransformer(t)
	result := runCSV(t, tr, row(t, map[string]string{"locationLost": "Barnegat"}))

	event := result.Events[0]
	if !strings.HasPrefix(event.Label, "Loss of Unknown") {
		t.Fatalf("unexpected label: %q", event.Label)
	}
	if !strings.HasSuffix(event.ID, "/event/sinking/unknown") {
		t.Fatalf("unexpected id: %q", event.ID)
	}
}

func TestRun_MonetaryAttribution(t *testing.T) {
	tr := testTransformer(t)
	result := runCSV(t, tr, row(t, map[string]string{
		"shipsName":  "Valued",
		"shipValue":  "$50,000",
		"cargoValue": "not a number",
	}))

	event := result.Events[0]
	if len(event.AttributedBy) != 1 {
		t.Fatalf("expected one valuation, got %d", len(event.AttributedBy))
	}
	assigned := event.AttributedBy[0].Assigned
	if len(assigned) != 1 || assigned[0].Value != 50000 {
		t.Fatalf("unexpected assigned amount: %+v", assigned)
	}
	if assigned[0].Label != "$50,000" {
		t.Fatalf("expected verbatim label, got %q", assigned[0].Label)
	}
}

func TestRun_SecondaryPlaces(t *testing.T) {
	tr := testTransformer(t)
	result := runCSV(t, tr, row(t, map[string]string{
		"shipsName":       "Wanderer",
		"locationLost":    "Absecon",
		"departurePort":   "New York",
		"destinationPort": "Philadelphia",
		"whereBuilt":      "Camden",
	}))

	ids := make(map[string]bool)
	for _, p := range result.Places {
		ids[p.ID] = true
	}
	for _, want := range []string{
		"https://example.org/test/place/shipwreck/absecon",
		"https://example.org/test/place/port/new-york",
		"https://example.org/test/place/port/philadelphia",
		"https://example.org/test/place/shipyard/camden",
	} {
		if !ids[want] {
			t.Errorf("missing place %s (have %v)", want, ids)
		}
	}
}

func TestRun_MalformedRowSkipped(t *testing.T) {
	tr := testTransformer(t)
	good := row(t, map[string]string{"shipsName": "Good", "locationLost": "Brigantine"})
	malformed := `"unterminated`
	input := strings.Join([]string{testHeader, good, malformed, good}, "\n") + "\n"

	result, err := tr.Run(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Errors) == 0 {
		t.Fatalf("expected a recorded row error")
	}
	if result.Skipped == 0 {
		t.Fatalf("expected skipped rows to be counted")
	}
	if result.Stats.Total != len(result.Events) {
		t.Fatalf("stats total %d != events %d", result.Stats.Total, len(result.Events))
	}
	if len(result.Events) == 0 {
		t.Fatalf("expected surviving rows to produce events")
	}
	for _, rowErr := range result.Errors {
		if !strings.Contains(rowErr.Error(), "row ") {
			t.Fatalf("row error missing index: %v", rowErr)
		}
	}
}

func TestRun_ReferenceSectionOrder(t *testing.T) {
	tr := testTransformer(t)
	result := runCSV(t, tr, row(t, map[string]string{
		"shipsName":       "Ordered",
		"departurePort":   "New York",
		"destinationPort": "Boston",
		"numberOfCrew":    "12",
		"natureOfCargo":   "coal",
		"cargoValue":      "$1,000",
		"vesselType":      "schooner",
		"miscInformation": "ran aground twice",
	}))

	refs := result.Events[0].ReferredToBy
	if len(refs) != 5 {
		t.Fatalf("expected 5 reference blocks, got %d", len(refs))
	}
	wantPrefixes := []string{
		"Voyage from New York to Boston",
		"Crew: 12",
		"Cargo: coal; Cargo value: $1,000",
		"Type: schooner",
		"ran aground twice",
	}
	for i, want := range wantPrefixes {
		if !strings.HasPrefix(refs[i].Content, want) {
			t.Errorf("block %d = %q, want prefix %q", i, refs[i].Content, want)
		}
	}
}

func TestWriteOutputs(t *testing.T) {
	tr := testTransformer(t)
	tr.cfg.SampleSize = 1
	result := runCSV(t, tr,
		row(t, map[string]string{"shipsName": "One", "locationLost": "Cape May", "year": "1901"}),
		row(t, map[string]string{"shipsName": "Two", "locationLost": "Barnegat", "year": "1902"}),
	)

	dir := t.TempDir()
	if err := tr.WriteOutputs(result, "input.csv", dir); err != nil {
		t.Fatalf("WriteOutputs: %v", err)
	}

	for _, name := range []string{PlacesFile, EventsFile, PlacesSampleFile, EventsSampleFile, ReportFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}

	report, err := os.ReadFile(filepath.Join(dir, ReportFile))
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	text := string(report)
	for _, section := range []string{"STATISTICS", "DATA COVERAGE", "OUTPUT FILES", "SCHEMA COMPLIANCE", "SAMPLE URIS"} {
		if !strings.Contains(text, section) {
			t.Errorf("report missing section %q", section)
		}
	}
	if !strings.Contains(text, "Total shipwrecks: 2") {
		t.Errorf("report missing totals:\n%s", text)
	}
	if !strings.Contains(text, "Year range: 1901-1902") {
		t.Errorf("report missing year range:\n%s", text)
	}

	var sample []linkedart.Entity
	data, err := os.ReadFile(filepath.Join(dir, EventsSampleFile))
	if err != nil {
		t.Fatalf("reading sample: %v", err)
	}
	if err := json.Unmarshal(data, &sample); err != nil {
		t.Fatalf("decoding sample: %v", err)
	}
	if len(sample) != 1 {
		t.Fatalf("expected sample of 1, got %d", len(sample))
	}
}
