package specialist

import (
	"context"

	"paint-advisor-be/pkg/advisor/intent"
	"paint-advisor-be/pkg/catalog"
)

// Consultation is the input every specialist sees: merged slots plus the
// feature intents mined from the utterance.
type Consultation struct {
	Slots          intent.SlotSet
	FeatureIntents []string
}

// AlternativeColorOffer is attached when a requested color produced no
// candidates but close substitutes exist in the catalog.
type AlternativeColorOffer struct {
	RequestedColor string
	Alternatives   []string
}

// Recommendation is one specialist's verdict: candidate products, the
// reasoning behind them and a confidence derived from candidate count.
type Recommendation struct {
	Source     string
	Reasoning  string
	Candidates []catalog.ProductRef
	Confidence float64
	Warnings   []string
	ColorOffer *AlternativeColorOffer
}

// Specialist is one scoring strategy. CanHelp is a cheap slot check;
// Analyze runs the catalog queries.
type Specialist interface {
	Name() string
	CanHelp(c Consultation) bool
	Analyze(ctx context.Context, c Consultation) (*Recommendation, error)
}

// confidence grows with candidate count and saturates at 1.
func confidence(candidates int) float64 {
	conf := float64(candidates) * 0.33
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}

// surfaceSynonyms widens a canonical surface to every catalog surface label
// it should match.
var surfaceSynonyms = map[string][]string{
	"metal": {"metal", "iron", "steel", "aluminum"},
	"wood":  {"wood", "mdf"},
	"wall":  {"wall", "masonry", "plaster", "render"},
}

// expandSurface returns the synonym set for a surface, falling back to the
// surface itself when no synonyms are registered.
func expandSurface(surface string) []string {
	if syn, ok := surfaceSynonyms[surface]; ok {
		return append([]string(nil), syn...)
	}
	return []string{surface}
}
