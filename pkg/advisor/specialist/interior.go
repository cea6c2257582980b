package specialist

import (
	"context"
	"fmt"
	"sort"

	"paint-advisor-be/pkg/advisor/intent"
	"paint-advisor-be/pkg/catalog"
)

// InteriorSpecialist handles indoor jobs. For rooms lived in by children it
// quietly prefers washable products, without ever filtering the rest out.
type InteriorSpecialist struct {
	catalog catalog.Query
}

func NewInteriorSpecialist(q catalog.Query) *InteriorSpecialist {
	return &InteriorSpecialist{catalog: q}
}

func (s *InteriorSpecialist) Name() string { return "interior" }

func (s *InteriorSpecialist) CanHelp(c Consultation) bool {
	return c.Slots.Environment == "interior" || c.Slots.RoomType != ""
}

func (s *InteriorSpecialist) Analyze(ctx context.Context, c Consultation) (*Recommendation, error) {
	filter := catalog.Filter{
		Environment: "interior",
		Color:       c.Slots.Color,
		Finish:      string(c.Slots.FinishType),
		Limit:       candidateLimit,
	}
	if c.Slots.SurfaceType != "" {
		filter.Surfaces = expandSurface(c.Slots.SurfaceType)
	}

	candidates, err := s.catalog.FilterBy(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("interior specialist: %w", err)
	}

	reasoning := "suitable for indoor use"
	if c.Slots.RoomType != "" {
		reasoning = fmt.Sprintf("suitable for a %s", c.Slots.RoomType)
	}
	rec := &Recommendation{Source: s.Name(), Reasoning: reasoning}

	if c.Slots.HasAudience() {
		sort.SliceStable(candidates, func(i, j int) bool {
			return intent.MatchesFeature(candidates[i].Features, "washable") &&
				!intent.MatchesFeature(candidates[j].Features, "washable")
		})
		rec.Reasoning += ", washable products first for a child's room"
	}

	if len(candidates) == 0 && filter.Color != "" {
		probe := filter
		probe.Color = ""
		without, err := s.catalog.FilterBy(ctx, probe)
		if err != nil {
			return nil, fmt.Errorf("interior specialist probe: %w", err)
		}
		if len(without) > 0 {
			rec.Warnings = append(rec.Warnings,
				fmt.Sprintf("no interior products available in %s", c.Slots.Color))
			rec.ColorOffer = buildColorOffer(ctx, s.catalog, c.Slots.Color)
		}
	}

	rec.Candidates = candidates
	rec.Confidence = confidence(len(candidates))
	return rec, nil
}
