// Package transform converts shipwreck registry rows into Linked Art Place
// and Event entities. One pass over the input: read row, normalize fields,
// build entities, accumulate. Rows that fail to build are recorded with
// their index and skipped; the run continues.
package transform

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"wrecklore/internal/config"
	"wrecklore/internal/linkedart"
	"wrecklore/internal/normalize"
)

type Transformer struct {
	cfg        *config.ProjectConfig
	places     map[string]*linkedart.Entity
	placeOrder []string
}

// New creates a Transformer with an empty place cache. The cache belongs to
// the Transformer value, so independent runs never share state.
func New(cfg *config.ProjectConfig) *Transformer {
	return &Transformer{
		cfg:    cfg,
		places: make(map[string]*linkedart.Entity),
	}
}

// Stats counts coverage across successfully transformed rows only.
type Stats struct {
	Total           int
	WithCoordinates int
	WithFullDate    int
	WithCause       int
	WithMaster      int
	WithCargo       int
	LivesLost       int
	EarliestYear    int
	LatestYear      int
}

type Result struct {
	Places  []linkedart.Entity
	Events  []linkedart.Entity
	Stats   Stats
	Skipped int
	Errors  []error
}

// Run reads the whole registry from r and builds both entity collections.
// The error return covers failures before the first row (unreadable header);
// per-row failures land in Result.Errors.
func (t *Transformer) Run(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("input has no columns")
	}

	result := &Result{}
	for rowIndex := 1; ; rowIndex++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("row %d: %w", rowIndex, err))
			result.Skipped++
			continue
		}

		row := make(Row, len(header))
		for i, column := range header {
			if i < len(record) {
				row[column] = record[i]
			}
		}

		event, place, err := t.transformRow(row)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("row %d: %w", rowIndex, err))
			result.Skipped++
			continue
		}

		result.Events = append(result.Events, *event)
		t.updateStats(&result.Stats, row, event, place)
	}

	for _, id := range t.placeOrder {
		result.Places = append(result.Places, *t.places[id])
	}

	return result, nil
}

// transformRow builds the entities for one row. A panic while building is
// converted to an error so a malformed row cannot abort the batch.
func (t *Transformer) transformRow(row Row) (event, place *linkedart.Entity, err error) {
	defer func() {
		if r := recover(); r != nil {
			event, place = nil, nil
			err = fmt.Errorf("building entities: %v", r)
		}
	}()

	place = t.buildPlace(
		row.Value(colLocationLost),
		row.Value(colLatitude),
		row.Value(colLongitude),
		CategoryWreckSite,
	)

	event = t.buildEvent(row, place)

	// Secondary places referenced by the row join the collection too.
	for _, portColumn := range []string{colHomeHailingPort, colDeparturePort, colDestinationPort} {
		t.buildPlace(row.Value(portColumn), "", "", CategoryPort)
	}
	t.buildPlace(row.Value(colWhereBuilt), "", "", CategoryShipyard)

	return event, place, nil
}

func (t *Transformer) updateStats(stats *Stats, row Row, event, place *linkedart.Entity) {
	stats.Total++

	_, okLat := normalize.Coordinate(row.Value(colLatitude))
	_, okLon := normalize.Coordinate(row.Value(colLongitude))
	if okLat && okLon {
		stats.WithCoordinates++
	}
	if ts := event.Timespan; ts != nil && len(ts.Begin) >= 10 && len(ts.End) >= 10 && ts.Begin[:10] == ts.End[:10] {
		// Begin and end on the same calendar day means full date precision.
		stats.WithFullDate++
	}
	if len(event.CausedBy) > 0 {
		stats.WithCause++
	}
	if len(event.CarriedOutBy) > 0 {
		stats.WithMaster++
	}
	if row.Has(colNatureOfCargo) {
		stats.WithCargo++
	}
	if impact := rowImpact(row); impact.LivesLost != nil && impact.LivesLost.IsNum {
		stats.LivesLost += impact.LivesLost.Count
	}
	if event.Timespan != nil && len(event.Timespan.Begin) >= 4 {
		if year, err := strconv.Atoi(event.Timespan.Begin[:4]); err == nil && year > 0 {
			if stats.EarliestYear == 0 || year < stats.EarliestYear {
				stats.EarliestYear = year
			}
			if year > stats.LatestYear {
				stats.LatestYear = year
			}
		}
	}
}
