package intent

import "strings"

// alias maps surface text to one canonical slot value. Tables are ordered:
// the first entry whose term appears in the utterance wins, so more specific
// entries must come before their substrings ("semi-gloss" before "gloss").
type alias struct {
	canonical string
	terms     []string
}

var colorAliases = []alias{
	{"blue", []string{"blue", "navy", "azure", "teal"}},
	{"green", []string{"green", "olive", "mint", "sage"}},
	{"red", []string{"red", "crimson", "scarlet"}},
	{"yellow", []string{"yellow", "mustard"}},
	{"orange", []string{"orange", "terracotta"}},
	{"purple", []string{"purple", "violet", "lilac", "lavender"}},
	{"pink", []string{"pink", "rose", "salmon"}},
	{"brown", []string{"brown", "chocolate", "coffee"}},
	{"beige", []string{"beige", "cream", "ivory", "sand"}},
	{"gray", []string{"gray", "grey", "charcoal", "graphite"}},
	{"white", []string{"white", "off-white", "snow"}},
	{"black", []string{"black"}},
}

var environmentAliases = []alias{
	{string(EnvExterior), []string{"exterior", "external", "outdoor", "outdoors", "outside"}},
	{string(EnvInterior), []string{"interior", "internal", "indoor", "indoors", "inside"}},
}

// Finish table is order sensitive: "semi-gloss" variants carry "gloss" as a
// substring and must be tried first.
var finishAliases = []alias{
	{string(FinishSemiGloss), []string{"semi-gloss", "semi gloss", "semigloss"}},
	{string(FinishSatin), []string{"satin", "eggshell", "velvet"}},
	{string(FinishGloss), []string{"gloss", "glossy", "shiny", "high shine"}},
	{string(FinishMatte), []string{"matte", "matt finish", "flat finish", "no shine"}},
}

// Surface table: material words before the generic "wall" family, so
// "wooden wall panels" resolves to wood.
var surfaceAliases = []alias{
	{"wood", []string{"wood", "wooden", "timber", "mdf", "plywood", "door", "doors", "furniture", "cabinet", "deck"}},
	{"metal", []string{"metal", "metallic", "iron", "steel", "aluminum", "aluminium", "gate", "railing", "grille"}},
	{"ceiling", []string{"ceiling"}},
	{"floor", []string{"floor", "flooring"}},
	// Location words the catalog does not use as surfaces. Kept distinct so
	// normalization can collapse them onto "wall" after merging.
	{"facade", []string{"facade", "front of the house", "outer wall", "outside wall", "external wall"}},
	{"fence", []string{"fence"}},
	{"wall", []string{"wall", "walls", "masonry", "plaster", "render", "drywall", "brick"}},
}

// surfaceNormalization collapses location-style surfaces onto the catalog
// surface vocabulary. Applied after every merge, to extracted and remembered
// values alike, so the mapping is idempotent across turns.
var surfaceNormalization = map[string]string{
	"facade": "wall",
	"fence":  "wall",
}

// roomAlias additionally carries the environment the room implies.
type roomAlias struct {
	canonical   string
	environment Environment
	terms       []string
}

var roomAliases = []roomAlias{
	{"bedroom", EnvInterior, []string{"bedroom", "bed room"}},
	{"living room", EnvInterior, []string{"living room", "livingroom", "lounge", "sitting room"}},
	{"kitchen", EnvInterior, []string{"kitchen"}},
	{"bathroom", EnvInterior, []string{"bathroom", "bath room", "washroom", "toilet"}},
	{"office", EnvInterior, []string{"office", "study", "home office"}},
	{"hallway", EnvInterior, []string{"hallway", "corridor", "hall"}},
	{"facade", EnvExterior, []string{"facade", "front of the house"}},
	{"balcony", EnvExterior, []string{"balcony", "terrace", "patio", "porch"}},
	{"garage", EnvExterior, []string{"garage"}},
}

var audienceAliases = []alias{
	{"infant", []string{"baby", "infant", "newborn", "nursery"}},
	{"teenager", []string{"teenager", "teen ", "adolescent"}},
	{"child", []string{"child", "children", "kid", "kids", "toddler", "son", "daughter", "my boy", "my girl"}},
}

var visualizationMarkers = []string{
	"show me",
	"visualize",
	"visualise",
	"how it would look",
	"how would it look",
	"see how it looks",
	"picture of",
	"render it",
	"simulate",
	"preview",
}

// lookupAlias returns the canonical value of the first table entry whose
// term occurs in msg, or "" when nothing matches. msg must be lowercased.
func lookupAlias(msg string, table []alias) string {
	for _, a := range table {
		for _, term := range a.terms {
			if strings.Contains(msg, term) {
				return a.canonical
			}
		}
	}
	return ""
}

func lookupRoom(msg string) (roomAlias, bool) {
	for _, r := range roomAliases {
		for _, term := range r.terms {
			if strings.Contains(msg, term) {
				return r, true
			}
		}
	}
	return roomAlias{}, false
}

// NormalizeSurface maps location-style surface values onto the catalog
// surface vocabulary. Values already canonical pass through unchanged.
func NormalizeSurface(surface string) string {
	if mapped, ok := surfaceNormalization[surface]; ok {
		return mapped
	}
	return surface
}
