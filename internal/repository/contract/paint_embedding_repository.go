package contract

import (
	"context"

	"paint-advisor-be/internal/entity"
	"paint-advisor-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredPaintEmbedding pairs an embedding row with its cosine similarity to
// a query vector.
type ScoredPaintEmbedding struct {
	Embedding  *entity.PaintEmbedding
	Similarity float64
}

type PaintEmbeddingRepository interface {
	CreateBulk(ctx context.Context, embeddings []*entity.PaintEmbedding) error
	DeleteByPaintId(ctx context.Context, paintId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PaintEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*ScoredPaintEmbedding, error)
}
