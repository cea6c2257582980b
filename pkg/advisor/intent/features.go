package intent

import "strings"

// featureIntent ties a canonical catalog feature to the phrasings users
// reach for when they mean it ("somewhere sunny" means UV resistance).
type featureIntent struct {
	canonical string
	terms     []string
}

var featureIntents = []featureIntent{
	{"washable", []string{"washable", "easy to clean", "wipe", "scrub", "stain"}},
	{"odor-free", []string{"odor", "odour", "smell", "fumes"}},
	{"anti-mold", []string{"mold", "mould", "mildew", "damp", "humid", "moisture"}},
	{"uv resistant", []string{"uv", "sun", "sunny", "sunlight", "fade"}},
	{"waterproof", []string{"waterproof", "water resistant", "rain", "splash"}},
	{"quick drying", []string{"quick drying", "dries fast", "dry quickly", "fast drying"}},
	{"high coverage", []string{"coverage", "one coat", "single coat"}},
}

// ExtractFeatureIntents scans an utterance for feature phrasings and returns
// the canonical feature names in table order. The order is stable so that
// downstream re-ranking stays deterministic.
func ExtractFeatureIntents(utterance string) []string {
	msg := strings.ToLower(utterance)
	var found []string
	for _, fi := range featureIntents {
		for _, term := range fi.terms {
			if strings.Contains(msg, term) {
				found = append(found, fi.canonical)
				break
			}
		}
	}
	return found
}

// MatchesFeature reports whether a product's comma-separated feature text
// satisfies one canonical feature intent.
func MatchesFeature(productFeatures, canonical string) bool {
	features := strings.ToLower(productFeatures)
	if strings.Contains(features, canonical) {
		return true
	}
	for _, fi := range featureIntents {
		if fi.canonical != canonical {
			continue
		}
		for _, term := range fi.terms {
			if strings.Contains(features, term) {
				return true
			}
		}
	}
	return false
}
