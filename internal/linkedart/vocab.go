package linkedart

// Getty AAT identifiers used when classifying emitted entities.
const (
	AATShipwreckSites   = "http://vocab.getty.edu/aat/300008707"
	AATPorts            = "http://vocab.getty.edu/aat/300008738"
	AATShipyards        = "http://vocab.getty.edu/aat/300006999"
	AATShipwreckEvents  = "http://vocab.getty.edu/aat/300054734"
	AATPreferredTerms   = "http://vocab.getty.edu/aat/300404670"
	AATAlternateNames   = "http://vocab.getty.edu/aat/300404671"
	AATDescription      = "http://vocab.getty.edu/aat/300435430"
	AATCasualtyReport   = "http://vocab.getty.edu/aat/300435425"
	AATCargoManifest    = "http://vocab.getty.edu/aat/300435429"
	AATVesselSpecs      = "http://vocab.getty.edu/aat/300435432"
	AATMaritimeAccident = "http://vocab.getty.edu/aat/300054734"
	AATShips            = "http://vocab.getty.edu/aat/300178749"
	AATShipMasters      = "http://vocab.getty.edu/aat/300139460"
	AATValuation        = "http://vocab.getty.edu/aat/300404277"
	AATUSDollar         = "http://vocab.getty.edu/aat/300411994"
)

// USDollar is the currency attached to monetary attributions.
var USDollar = Currency{ID: AATUSDollar, Type: "Currency", Label: "US Dollar"}

// Classification builds a TypeRef for an AAT term.
func Classification(id, label string) TypeRef {
	return TypeRef{ID: id, Type: "Type", Label: label}
}
