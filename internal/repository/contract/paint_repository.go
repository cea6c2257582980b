package contract

import (
	"context"

	"paint-advisor-be/internal/entity"
	"paint-advisor-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ColorAvailability is the per-color product count of the active catalog.
type ColorAvailability struct {
	ColorName string
	Count     int
}

type PaintRepository interface {
	Create(ctx context.Context, paint *entity.Paint) error
	Update(ctx context.Context, paint *entity.Paint) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Paint, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Paint, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountByColor(ctx context.Context) ([]ColorAvailability, error)
}
