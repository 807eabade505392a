// Package linkedart defines the subset of the Linked Art model emitted by the
// converter: Place and Event entities plus the nested structures they carry.
// Optional fields are pointers or slices with omitempty so that an absent
// value never serialises as null or zero.
package linkedart

// Context is the JSON-LD context published with every top-level entity.
const Context = "https://linked.art/ns/v1/linked-art.json"

// Entity is a top-level Linked Art record. The same shape serves both Place
// and Event; builders populate only the fields valid for the entity class.
type Entity struct {
	Context            string                `json:"@context,omitempty"`
	ID                 string                `json:"id"`
	Type               string                `json:"type"`
	Label              string                `json:"_label"`
	ClassifiedAs       []TypeRef             `json:"classified_as,omitempty"`
	IdentifiedBy       []Name                `json:"identified_by,omitempty"`
	DefinedBy          *Geometry             `json:"defined_by,omitempty"`
	PartOf             []Ref                 `json:"part_of,omitempty"`
	TookPlaceAt        []Ref                 `json:"took_place_at,omitempty"`
	Timespan           *TimeSpan             `json:"timespan,omitempty"`
	CausedBy           []SubEvent            `json:"caused_by,omitempty"`
	UsedSpecificObject []ObjectRef           `json:"used_specific_object,omitempty"`
	CarriedOutBy       []ActorRef            `json:"carried_out_by,omitempty"`
	AttributedBy       []AttributeAssignment `json:"attributed_by,omitempty"`
	ReferredToBy       []LinguisticObject    `json:"referred_to_by,omitempty"`
}

// TypeRef classifies an entity against a vocabulary term.
type TypeRef struct {
	ID           string    `json:"id,omitempty"`
	Type         string    `json:"type"`
	Label        string    `json:"_label"`
	ClassifiedAs []TypeRef `json:"classified_as,omitempty"`
}

// Name is an appellation attached via identified_by.
type Name struct {
	Type         string    `json:"type"`
	Content      string    `json:"content"`
	ClassifiedAs []TypeRef `json:"classified_as,omitempty"`
}

// Ref is a bare reference to another entity emitted in the same run.
type Ref struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Label string `json:"_label"`
}

// Geometry is a GeoJSON point. Coordinates are [longitude, latitude].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// TimeSpan bounds an event in time. Begin and End are RFC 3339 UTC instants;
// Label carries the human-readable form at the precision that was available.
type TimeSpan struct {
	Type  string `json:"type"`
	Label string `json:"_label"`
	Begin string `json:"begin_of_the_begin,omitempty"`
	End   string `json:"end_of_the_end,omitempty"`
}

// SubEvent is an inline causal event without its own URI.
type SubEvent struct {
	Type         string    `json:"type"`
	Label        string    `json:"_label"`
	ClassifiedAs []TypeRef `json:"classified_as,omitempty"`
}

// ObjectRef points at a human-made object involved in an event.
type ObjectRef struct {
	ID           string    `json:"id,omitempty"`
	Type         string    `json:"type"`
	Label        string    `json:"_label"`
	ClassifiedAs []TypeRef `json:"classified_as,omitempty"`
}

// ActorRef points at a person or group that carried out an event.
type ActorRef struct {
	Type         string    `json:"type"`
	Label        string    `json:"_label"`
	ClassifiedAs []TypeRef `json:"classified_as,omitempty"`
}

// AttributeAssignment attaches an assigned value, here monetary amounts.
type AttributeAssignment struct {
	Type         string           `json:"type"`
	ClassifiedAs []TypeRef        `json:"classified_as,omitempty"`
	Assigned     []MonetaryAmount `json:"assigned"`
}

// MonetaryAmount is a parsed currency value with its verbatim source label.
type MonetaryAmount struct {
	Type     string   `json:"type"`
	Label    string   `json:"_label"`
	Value    float64  `json:"value"`
	Currency Currency `json:"currency"`
}

// Currency identifies the currency of a MonetaryAmount.
type Currency struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Label string `json:"_label"`
}

// LinguisticObject is a free-text reference block.
type LinguisticObject struct {
	Type         string    `json:"type"`
	Content      string    `json:"content"`
	ClassifiedAs []TypeRef `json:"classified_as,omitempty"`
}

func NewPoint(lon, lat float64) *Geometry {
	return &Geometry{Type: "Point", Coordinates: []float64{lon, lat}}
}
