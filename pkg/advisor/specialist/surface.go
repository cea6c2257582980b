package specialist

import (
	"context"
	"fmt"

	"paint-advisor-be/pkg/catalog"
)

const candidateLimit = 5

// SurfaceSpecialist matches products to the material being painted. It is
// consulted first because surface compatibility is the hardest constraint:
// a wall paint on a metal gate fails regardless of color.
type SurfaceSpecialist struct {
	catalog catalog.Query
}

func NewSurfaceSpecialist(q catalog.Query) *SurfaceSpecialist {
	return &SurfaceSpecialist{catalog: q}
}

func (s *SurfaceSpecialist) Name() string { return "surface" }

func (s *SurfaceSpecialist) CanHelp(c Consultation) bool {
	return c.Slots.SurfaceType != ""
}

func (s *SurfaceSpecialist) Analyze(ctx context.Context, c Consultation) (*Recommendation, error) {
	filter := catalog.Filter{
		Environment: string(c.Slots.Environment),
		Surfaces:    expandSurface(c.Slots.SurfaceType),
		Color:       c.Slots.Color,
		Finish:      string(c.Slots.FinishType),
		Limit:       candidateLimit,
	}

	candidates, err := s.catalog.FilterBy(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("surface specialist: %w", err)
	}

	rec := &Recommendation{
		Source:    s.Name(),
		Reasoning: fmt.Sprintf("products compatible with %s surfaces", c.Slots.SurfaceType),
	}

	// When a requested color produced the miss, products in other colors
	// stay out of the candidate list. A colorless probe only tells the
	// caller whether the color was the blocker, so the reply can offer
	// substitutes instead of unrelated paints.
	if len(candidates) == 0 && filter.Color != "" {
		probe := filter
		probe.Color = ""
		without, err := s.catalog.FilterBy(ctx, probe)
		if err != nil {
			return nil, fmt.Errorf("surface specialist probe: %w", err)
		}
		if len(without) > 0 {
			rec.Warnings = append(rec.Warnings,
				fmt.Sprintf("no %s products available in %s", c.Slots.SurfaceType, c.Slots.Color))
			rec.ColorOffer = buildColorOffer(ctx, s.catalog, c.Slots.Color)
		}
	}

	rec.Candidates = candidates
	rec.Confidence = confidence(len(candidates))
	return rec, nil
}
