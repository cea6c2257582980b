package specialist

import (
	"context"
	"log"

	"paint-advisor-be/pkg/catalog"
)

// Registry holds the specialists in a fixed consultation order so the same
// slots always produce the same sequence of recommendations.
type Registry struct {
	specialists []Specialist
	logger      *log.Logger
}

// NewRegistry wires the standard four strategies over one catalog.
// Consultation order is surface, exterior, interior, color: hardest
// constraint first, pure color preference last.
func NewRegistry(q catalog.Query, logger *log.Logger) *Registry {
	return &Registry{
		specialists: []Specialist{
			NewSurfaceSpecialist(q),
			NewExteriorSpecialist(q),
			NewInteriorSpecialist(q),
			NewColorSpecialist(q),
		},
		logger: logger,
	}
}

// NewRegistryWith builds a registry from explicit specialists, mainly for
// tests.
func NewRegistryWith(logger *log.Logger, specialists ...Specialist) *Registry {
	return &Registry{specialists: specialists, logger: logger}
}

// Consult runs every specialist whose CanHelp accepts the consultation.
// A failing specialist is logged and skipped; one broken strategy must not
// take the whole turn down.
func (r *Registry) Consult(ctx context.Context, c Consultation) []Recommendation {
	var recs []Recommendation
	for _, s := range r.specialists {
		if !s.CanHelp(c) {
			continue
		}
		rec, err := s.Analyze(ctx, c)
		if err != nil {
			if r.logger != nil {
				r.logger.Printf("specialist %s failed: %v", s.Name(), err)
			}
			continue
		}
		if rec != nil {
			recs = append(recs, *rec)
		}
	}
	return recs
}
