package transform

import (
	"fmt"
	"strings"

	"wrecklore/internal/linkedart"
	"wrecklore/internal/normalize"
)

const sectionSeparator = "; "

// figure is a human-impact cell: the verbatim cleaned value plus the parsed
// count when the cell is numeric. Analytics read Count; rendered text reads
// Raw, so nothing ever parses numbers back out of generated prose.
type figure struct {
	Raw   string
	Count int
	IsNum bool
}

func rowFigure(row Row, column string) (figure, bool) {
	raw, ok := row.Clean(column)
	if !ok {
		return figure{}, false
	}
	f := figure{Raw: raw}
	if n, numeric := normalize.Integer(raw); numeric {
		f.Count = n
		f.IsNum = true
	}
	return f, true
}

// humanImpact carries the casualty columns in structured form.
type humanImpact struct {
	Crew       *figure
	Passengers *figure
	LivesLost  *figure
}

func rowImpact(row Row) humanImpact {
	var impact humanImpact
	if f, ok := rowFigure(row, colNumberOfCrew); ok {
		impact.Crew = &f
	}
	if f, ok := rowFigure(row, colNumPass); ok {
		impact.Passengers = &f
	}
	if f, ok := rowFigure(row, colLivesLost); ok {
		impact.LivesLost = &f
	}
	return impact
}

// buildEvent creates the loss Event for a row. place may be nil when the
// registry has no loss location; the event then carries no took_place_at.
func (t *Transformer) buildEvent(row Row, place *linkedart.Entity) *linkedart.Entity {
	ship, ok := row.Clean(colShipsName)
	if !ok {
		ship = "Unknown"
	}
	slug := normalize.Slug(ship)

	id := fmt.Sprintf("%s/event/sinking/%s", t.cfg.BaseURI, slug)
	if year, numeric := normalize.Integer(row.Value(colYear)); numeric {
		id = fmt.Sprintf("%s-%d", id, year)
	}

	label := "Loss of " + ship
	dateLost := row.Value(colDateLost)
	if dateLost != "" {
		label += " on " + dateLost
	}

	event := &linkedart.Entity{
		Context: t.cfg.Context,
		ID:      id,
		Type:    "Event",
		Label:   label,
		ClassifiedAs: []linkedart.TypeRef{
			linkedart.Classification(linkedart.AATShipwreckEvents, "shipwrecks (events)"),
		},
	}

	identifiedBy := []linkedart.Name{
		{
			Type:    "Name",
			Content: ship,
			ClassifiedAs: []linkedart.TypeRef{
				linkedart.Classification(linkedart.AATPreferredTerms, "preferred terms"),
			},
		},
	}
	if aka, ok := row.Clean(colAKA); ok {
		identifiedBy = append(identifiedBy, linkedart.Name{
			Type:    "Name",
			Content: aka,
			ClassifiedAs: []linkedart.TypeRef{
				linkedart.Classification(linkedart.AATAlternateNames, "alternate names"),
			},
		})
	}
	event.IdentifiedBy = identifiedBy

	if place != nil {
		event.TookPlaceAt = []linkedart.Ref{placeRef(place)}
	}

	event.Timespan = ResolveTimeSpan(row.Value(colYear), row.Value(colMonth), row.Value(colDay))

	if cause, ok := row.Clean(colCauseOfLoss); ok {
		event.CausedBy = []linkedart.SubEvent{
			{
				Type:  "Event",
				Label: cause,
				ClassifiedAs: []linkedart.TypeRef{
					linkedart.Classification(linkedart.AATMaritimeAccident, "maritime accidents"),
				},
			},
		}
	}

	event.UsedSpecificObject = []linkedart.ObjectRef{t.buildShipObject(row, ship, slug)}

	if master, ok := row.Clean(colMaster); ok {
		event.CarriedOutBy = []linkedart.ActorRef{
			{
				Type:  "Person",
				Label: master,
				ClassifiedAs: []linkedart.TypeRef{
					linkedart.Classification(linkedart.AATShipMasters, "ship masters"),
				},
			},
		}
	}

	event.AttributedBy = t.buildValuations(row)
	event.ReferredToBy = t.buildReferences(row, rowImpact(row))

	return event
}

func (t *Transformer) buildShipObject(row Row, ship, slug string) linkedart.ObjectRef {
	label := ship
	if vesselType, ok := row.Clean(colVesselType); ok {
		label += " (" + vesselType
		if yearBuilt, ok := row.Clean(colYearBuilt); ok {
			label += ", built " + yearBuilt
		}
		label += ")"
	}
	return linkedart.ObjectRef{
		ID:    fmt.Sprintf("%s/object/ship/%s", t.cfg.BaseURI, slug),
		Type:  "HumanMadeObject",
		Label: label,
		ClassifiedAs: []linkedart.TypeRef{
			linkedart.Classification(linkedart.AATShips, "ships (watercraft)"),
		},
	}
}

func (t *Transformer) buildValuations(row Row) []linkedart.AttributeAssignment {
	var assignments []linkedart.AttributeAssignment

	appendValuation := func(column, label string) {
		raw, ok := row.Clean(column)
		if !ok {
			return
		}
		amount, ok := normalize.Monetary(raw)
		if !ok {
			return
		}
		assignments = append(assignments, linkedart.AttributeAssignment{
			Type: "AttributeAssignment",
			ClassifiedAs: []linkedart.TypeRef{
				linkedart.Classification(linkedart.AATValuation, label),
			},
			Assigned: []linkedart.MonetaryAmount{
				{
					Type:     "MonetaryAmount",
					Label:    raw,
					Value:    amount,
					Currency: linkedart.USDollar,
				},
			},
		})
	}

	appendValuation(colShipValue, "Ship Value")
	appendValuation(colCargoValue, "Cargo Value")
	return assignments
}

// buildReferences assembles the free-text reference blocks. Sections appear
// in a fixed order and a section is emitted only when at least one of its
// constituent fields is present.
func (t *Transformer) buildReferences(row Row, impact humanImpact) []linkedart.LinguisticObject {
	var refs []linkedart.LinguisticObject

	appendSection := func(vocab, label string, parts []string) {
		if len(parts) == 0 {
			return
		}
		refs = append(refs, linkedart.LinguisticObject{
			Type:    "LinguisticObject",
			Content: strings.Join(parts, sectionSeparator),
			ClassifiedAs: []linkedart.TypeRef{
				linkedart.Classification(vocab, label),
			},
		})
	}

	// Voyage information.
	var voyage []string
	departure := row.Value(colDeparturePort)
	destination := row.Value(colDestinationPort)
	switch {
	case departure != "" && destination != "":
		voyage = append(voyage, fmt.Sprintf("Voyage from %s to %s", departure, destination))
	case departure != "":
		voyage = append(voyage, "Departed from "+departure)
	case destination != "":
		voyage = append(voyage, "Bound for "+destination)
	}
	if home, ok := row.Clean(colHomeHailingPort); ok {
		voyage = append(voyage, "Home port: "+home)
	}
	appendSection(linkedart.AATDescription, "voyage information", voyage)

	// Human impact.
	var casualties []string
	if impact.Crew != nil {
		casualties = append(casualties, "Crew: "+impact.Crew.Raw)
	}
	if impact.Passengers != nil {
		casualties = append(casualties, "Passengers: "+impact.Passengers.Raw)
	}
	if impact.LivesLost != nil {
		casualties = append(casualties, "Lives lost: "+impact.LivesLost.Raw)
	}
	appendSection(linkedart.AATCasualtyReport, "casualty report", casualties)

	// Cargo.
	var cargo []string
	if nature, ok := row.Clean(colNatureOfCargo); ok {
		cargo = append(cargo, "Cargo: "+nature)
	}
	if value, ok := row.Clean(colCargoValue); ok {
		cargo = append(cargo, "Cargo value: $"+strings.TrimPrefix(value, "$"))
	}
	appendSection(linkedart.AATCargoManifest, "cargo manifest", cargo)

	// Vessel specifications.
	var vessel []string
	for _, field := range []struct {
		column string
		label  string
	}{
		{colVesselType, "Type"},
		{colConstruction, "Construction"},
		{colFlag, "Flag"},
		{colLength, "Length"},
		{colBeam, "Beam"},
		{colDraft, "Draft"},
		{colGrossTonnage, "Gross tonnage"},
		{colNetTonnage, "Net tonnage"},
		{colYearBuilt, "Built"},
		{colWhereBuilt, "Built at"},
	} {
		if v, ok := row.Clean(field.column); ok {
			vessel = append(vessel, field.label+": "+v)
		}
	}
	appendSection(linkedart.AATVesselSpecs, "vessel specifications", vessel)

	// Rescue station.
	if station, ok := row.Clean(colUSLSSStationName); ok {
		appendSection(linkedart.AATDescription, "description", []string{"USLSS/USCG Station: " + station})
	}

	// Miscellaneous notes.
	var misc []string
	if notes, ok := row.Clean(colMiscInformation); ok {
		misc = append(misc, notes)
	}
	if lost, ok := row.Clean(colLost); ok && strings.EqualFold(lost, "Y") {
		misc = append(misc, "Status: Total loss")
	}
	appendSection(linkedart.AATDescription, "description", misc)

	return refs
}
