package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRef is the advisor-facing view of one catalog paint.
// It carries everything the scoring strategies need so they never
// reach back into the persistence layer.
type ProductRef struct {
	Id          uuid.UUID
	Name        string
	ColorName   string
	SurfaceType string
	Environment string // "interior", "exterior", "both"
	FinishType  string
	Line        string
	Features    string // comma-separated feature text
	Description string
	Price       float64
}

// Filter narrows a catalog query. Empty fields are ignored.
type Filter struct {
	Environment string
	Surface     string // matched against surface synonyms by the implementation caller
	Surfaces    []string
	Color       string // substring match on color name
	Finish      string
	Limit       int
}

// ColorCount reports how many active products carry a color.
type ColorCount struct {
	Name  string
	Count int
}

// Query is the catalog collaborator contract. Implementations are
// expected to be fast and local (a SQL table, an in-memory fixture).
type Query interface {
	FilterBy(ctx context.Context, filter Filter) ([]ProductRef, error)
	AvailableColors(ctx context.Context) ([]ColorCount, error)
	FindByIds(ctx context.Context, ids []uuid.UUID) ([]ProductRef, error)
}

// SemanticSearch is the best-effort embedding-backed candidate source.
// It must return an empty slice, not an error, when no index exists yet.
type SemanticSearch interface {
	Search(ctx context.Context, query string, limit int) ([]ProductRef, error)
}
