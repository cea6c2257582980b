package specialist

import (
	"context"
	"fmt"

	"paint-advisor-be/pkg/catalog"
)

// ColorSpecialist anchors the consultation on the requested color. It is the
// one that turns a color miss into an alternative-color offer even when no
// other slot is filled.
type ColorSpecialist struct {
	catalog catalog.Query
}

func NewColorSpecialist(q catalog.Query) *ColorSpecialist {
	return &ColorSpecialist{catalog: q}
}

func (s *ColorSpecialist) Name() string { return "color" }

func (s *ColorSpecialist) CanHelp(c Consultation) bool {
	return c.Slots.Color != ""
}

func (s *ColorSpecialist) Analyze(ctx context.Context, c Consultation) (*Recommendation, error) {
	filter := catalog.Filter{
		Environment: string(c.Slots.Environment),
		Color:       c.Slots.Color,
		Limit:       candidateLimit,
	}

	candidates, err := s.catalog.FilterBy(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("color specialist: %w", err)
	}

	rec := &Recommendation{
		Source:     s.Name(),
		Reasoning:  fmt.Sprintf("available in %s", c.Slots.Color),
		Candidates: candidates,
		Confidence: confidence(len(candidates)),
	}

	if len(candidates) == 0 {
		rec.Warnings = append(rec.Warnings,
			fmt.Sprintf("no products available in %s", c.Slots.Color))
		rec.ColorOffer = buildColorOffer(ctx, s.catalog, c.Slots.Color)
	}
	return rec, nil
}
