// Package validate runs structural consistency checks over generated Place
// and Event collections. Checks inspect the structured fields only; nothing
// is ever parsed back out of generated description text.
package validate

import (
	"fmt"

	"wrecklore/internal/linkedart"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeMissingContext   = "missing_context"
	codeMissingID        = "missing_id"
	codeMissingLabel     = "missing_label"
	codeWrongType        = "wrong_type"
	codeUnclassified     = "unclassified"
	codeBadGeometry      = "bad_geometry"
	codeBadTimespan      = "bad_timespan"
	codeNegativeAmount   = "negative_amount"
	codeDanglingPlaceRef = "dangling_place_ref"
	codeDuplicateID      = "duplicate_id"
	codeMissingTimespan  = "missing_timespan"
	codeMissingPlaceRef  = "missing_place_ref"
)

type Issue struct {
	Severity Severity
	Code     string
	Entity   string
	Message  string
}

type Report struct {
	Issues []Issue
}

func (r *Report) Errors() []Issue   { return r.filter(SeverityError) }
func (r *Report) Warnings() []Issue { return r.filter(SeverityWarn) }

func (r *Report) filter(severity Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

// Run checks both collections from one conversion run. Places must contain
// every place the events reference.
func Run(places, events []linkedart.Entity) *Report {
	report := &Report{}

	placeIDs := make(map[string]struct{}, len(places))
	seen := make(map[string]struct{})

	for i := range places {
		place := &places[i]
		checkCommon(report, place, "Place")
		checkDuplicate(report, seen, place)
		placeIDs[place.ID] = struct{}{}

		if geom := place.DefinedBy; geom != nil {
			if geom.Type != "Point" || len(geom.Coordinates) != 2 {
				report.add(SeverityError, codeBadGeometry, place.ID,
					fmt.Sprintf("geometry must be a Point with 2 coordinates, got %s with %d", geom.Type, len(geom.Coordinates)))
			}
		}
	}

	for i := range events {
		event := &events[i]
		checkCommon(report, event, "Event")
		checkDuplicate(report, seen, event)

		if ts := event.Timespan; ts != nil {
			if ts.Type != "TimeSpan" {
				report.add(SeverityError, codeBadTimespan, event.ID, "timespan must have type TimeSpan")
			}
			if ts.Begin > ts.End {
				report.add(SeverityError, codeBadTimespan, event.ID,
					fmt.Sprintf("timespan begins %s after end %s", ts.Begin, ts.End))
			}
		} else {
			report.add(SeverityWarn, codeMissingTimespan, event.ID, "event has no timespan")
		}

		if len(event.TookPlaceAt) == 0 {
			report.add(SeverityWarn, codeMissingPlaceRef, event.ID, "event has no took_place_at")
		}
		for _, ref := range event.TookPlaceAt {
			if _, ok := placeIDs[ref.ID]; !ok {
				report.add(SeverityError, codeDanglingPlaceRef, event.ID,
					fmt.Sprintf("took_place_at references %s, absent from the place collection", ref.ID))
			}
		}

		for _, assignment := range event.AttributedBy {
			for _, amount := range assignment.Assigned {
				if amount.Value < 0 {
					report.add(SeverityError, codeNegativeAmount, event.ID,
						fmt.Sprintf("monetary amount %q is negative", amount.Label))
				}
			}
		}
	}

	return report
}

func checkCommon(report *Report, entity *linkedart.Entity, wantType string) {
	name := entity.ID
	if name == "" {
		name = entity.Label
	}
	if entity.Context == "" {
		report.add(SeverityError, codeMissingContext, name, "missing @context")
	}
	if entity.ID == "" {
		report.add(SeverityError, codeMissingID, name, "missing id")
	}
	if entity.Label == "" {
		report.add(SeverityError, codeMissingLabel, name, "missing _label")
	}
	if entity.Type != wantType {
		report.add(SeverityError, codeWrongType, name,
			fmt.Sprintf("type is %q, want %q", entity.Type, wantType))
	}
	if len(entity.ClassifiedAs) == 0 {
		report.add(SeverityWarn, codeUnclassified, name, "entity has no classified_as")
	}
}

func checkDuplicate(report *Report, seen map[string]struct{}, entity *linkedart.Entity) {
	if entity.ID == "" {
		return
	}
	if _, dup := seen[entity.ID]; dup {
		report.add(SeverityError, codeDuplicateID, entity.ID, "duplicate entity id")
		return
	}
	seen[entity.ID] = struct{}{}
}

func (r *Report) add(severity Severity, code, entity, message string) {
	r.Issues = append(r.Issues, Issue{Severity: severity, Code: code, Entity: entity, Message: message})
}
