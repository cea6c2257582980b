package specialist

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"paint-advisor-be/pkg/catalog"
)

// ExteriorSpecialist handles outdoor jobs, where weather resistance matters
// more than anything the user said about looks.
type ExteriorSpecialist struct {
	catalog catalog.Query
}

func NewExteriorSpecialist(q catalog.Query) *ExteriorSpecialist {
	return &ExteriorSpecialist{catalog: q}
}

func (s *ExteriorSpecialist) Name() string { return "exterior" }

func (s *ExteriorSpecialist) CanHelp(c Consultation) bool {
	return c.Slots.Environment == "exterior"
}

func (s *ExteriorSpecialist) Analyze(ctx context.Context, c Consultation) (*Recommendation, error) {
	filter := catalog.Filter{
		Environment: "exterior",
		Color:       c.Slots.Color,
		Finish:      string(c.Slots.FinishType),
		Limit:       candidateLimit,
	}
	if c.Slots.SurfaceType != "" {
		filter.Surfaces = expandSurface(c.Slots.SurfaceType)
	}

	candidates, err := s.catalog.FilterBy(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("exterior specialist: %w", err)
	}
	candidates = dropWoodSpecific(candidates)
	preferWeatherResistant(candidates)

	rec := &Recommendation{
		Source:    s.Name(),
		Reasoning: "formulated for outdoor exposure",
	}

	if len(candidates) == 0 && filter.Color != "" {
		probe := filter
		probe.Color = ""
		without, err := s.catalog.FilterBy(ctx, probe)
		if err != nil {
			return nil, fmt.Errorf("exterior specialist probe: %w", err)
		}
		without = dropWoodSpecific(without)
		if len(without) > 0 {
			rec.Warnings = append(rec.Warnings,
				fmt.Sprintf("no exterior products available in %s", c.Slots.Color))
			rec.ColorOffer = buildColorOffer(ctx, s.catalog, c.Slots.Color)
		}
	}

	rec.Candidates = candidates
	rec.Confidence = confidence(len(candidates))
	return rec, nil
}

// dropWoodSpecific removes wood-only products from an exterior shortlist.
// Outdoor timber gets its products through the surface strategy instead.
func dropWoodSpecific(products []catalog.ProductRef) []catalog.ProductRef {
	var kept []catalog.ProductRef
	for _, p := range products {
		if containsSurface(surfaceSynonyms["wood"], p.SurfaceType) {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// preferWeatherResistant floats products whose feature text mentions sun or
// UV protection, stably, keeping the catalog order among equals.
func preferWeatherResistant(products []catalog.ProductRef) {
	mentions := func(p catalog.ProductRef) bool {
		features := strings.ToLower(p.Features)
		return strings.Contains(features, "uv") || strings.Contains(features, "sun")
	}
	sort.SliceStable(products, func(i, j int) bool {
		return mentions(products[i]) && !mentions(products[j])
	})
}

func containsSurface(surfaces []string, v string) bool {
	for _, s := range surfaces {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
