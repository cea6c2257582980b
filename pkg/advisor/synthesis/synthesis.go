package synthesis

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"

	"paint-advisor-be/pkg/advisor/intent"
	"paint-advisor-be/pkg/advisor/specialist"
	"paint-advisor-be/pkg/catalog"
)

// maxPresented caps how many products one reply presents.
const maxPresented = 3

// Result is the synthesized outcome of a consultation round.
type Result struct {
	Products   []catalog.ProductRef
	Sources    []string
	Warnings   []string
	ColorOffer *specialist.AlternativeColorOffer
	// SemanticFallback marks that the products came from the embedding
	// index rather than the specialists.
	SemanticFallback bool
}

// Synthesizer merges specialist recommendations into one ranked product
// list, reaching for the semantic index only when every strategy came back
// empty handed.
type Synthesizer struct {
	semantic catalog.SemanticSearch
	logger   *log.Logger
}

func New(semantic catalog.SemanticSearch, logger *log.Logger) *Synthesizer {
	return &Synthesizer{semantic: semantic, logger: logger}
}

// Synthesize flattens the recommendations in consultation order, dedupes by
// product id keeping the first occurrence, re-ranks by feature intents,
// pushes recently recommended products behind fresh ones and caps the list.
func (s *Synthesizer) Synthesize(
	ctx context.Context,
	utterance string,
	slots intent.SlotSet,
	featureIntents []string,
	recs []specialist.Recommendation,
	recentlyRecommended []uuid.UUID,
) Result {
	var result Result

	seen := make(map[uuid.UUID]bool)
	for _, rec := range recs {
		result.Sources = append(result.Sources, rec.Source)
		result.Warnings = append(result.Warnings, rec.Warnings...)
		if result.ColorOffer == nil && rec.ColorOffer != nil {
			result.ColorOffer = rec.ColorOffer
		}
		for _, p := range rec.Candidates {
			if seen[p.Id] {
				continue
			}
			seen[p.Id] = true
			result.Products = append(result.Products, p)
		}
	}

	// Only a fully empty round with no pending color question falls through
	// to the semantic index; its failures degrade to an empty result.
	if len(result.Products) == 0 && result.ColorOffer == nil && s.semantic != nil {
		found, err := s.semantic.Search(ctx, semanticQuery(slots, utterance), maxPresented)
		if err != nil {
			if s.logger != nil {
				s.logger.Printf("semantic fallback failed: %v", err)
			}
		} else if len(found) > 0 {
			result.Products = found
			result.SemanticFallback = true
		}
	}

	// Candidates in the requested color make a substitution offer noise.
	if len(result.Products) > 0 {
		result.ColorOffer = nil
	}

	rankByFeatureIntents(result.Products, featureIntents)
	deprioritizeRecent(result.Products, recentlyRecommended)

	if len(result.Products) > maxPresented {
		result.Products = result.Products[:maxPresented]
	}
	return result
}

// semanticQuery builds the fallback query from the merged slots so the
// index sees canonical vocabulary instead of conversational filler. The raw
// utterance is used only when no relevant slot survived extraction.
func semanticQuery(slots intent.SlotSet, utterance string) string {
	var parts []string
	if slots.Environment != intent.EnvUnknown {
		parts = append(parts, string(slots.Environment))
	}
	if slots.SurfaceType != "" {
		parts = append(parts, slots.SurfaceType)
	}
	if slots.Color != "" {
		parts = append(parts, slots.Color)
	}
	if len(parts) == 0 {
		return utterance
	}
	return strings.Join(parts, " ") + " paint"
}

// rankByFeatureIntents stable-sorts products by how many asked-for features
// they carry, descending. Ties keep consultation order.
func rankByFeatureIntents(products []catalog.ProductRef, intents []string) {
	if len(intents) == 0 {
		return
	}
	hits := func(p catalog.ProductRef) int {
		n := 0
		for _, want := range intents {
			if intent.MatchesFeature(p.Features, want) {
				n++
			}
		}
		return n
	}
	sort.SliceStable(products, func(i, j int) bool {
		return hits(products[i]) > hits(products[j])
	})
}

// deprioritizeRecent moves products already shown in the recent window
// behind fresh ones, stably, so a repeat is still possible when nothing
// else matches.
func deprioritizeRecent(products []catalog.ProductRef, recent []uuid.UUID) {
	if len(recent) == 0 {
		return
	}
	wasRecent := func(p catalog.ProductRef) bool {
		for _, id := range recent {
			if p.Id == id {
				return true
			}
		}
		return false
	}
	sort.SliceStable(products, func(i, j int) bool {
		return !wasRecent(products[i]) && wasRecent(products[j])
	})
}
