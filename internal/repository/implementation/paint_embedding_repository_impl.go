package implementation

import (
	"context"

	"paint-advisor-be/internal/entity"
	"paint-advisor-be/internal/mapper"
	"paint-advisor-be/internal/model"
	"paint-advisor-be/internal/repository/contract"
	"paint-advisor-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type PaintEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PaintEmbeddingMapper
}

func NewPaintEmbeddingRepository(db *gorm.DB) contract.PaintEmbeddingRepository {
	return &PaintEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewPaintEmbeddingMapper(),
	}
}

func (r *PaintEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PaintEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.PaintEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}
	models := make([]*model.PaintEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = r.mapper.ToModel(e)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *PaintEmbeddingRepositoryImpl) DeleteByPaintId(ctx context.Context, paintId uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("paint_id = ?", paintId).
		Delete(&model.PaintEmbedding{}).Error
}

func (r *PaintEmbeddingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PaintEmbedding, error) {
	var models []*model.PaintEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PaintEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PaintEmbedding{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SearchSimilar runs a cosine-distance scan over the embedding rows, joined
// to the catalog so soft-deleted paints never surface.
func (r *PaintEmbeddingRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredPaintEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.PaintEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	// Cosine distance in pgvector is 1 - cosine_similarity.
	err := r.db.WithContext(ctx).
		Table("paint_embeddings").
		Select("paint_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Joins("JOIN paints ON paints.id = paint_embeddings.paint_id").
		Where("paint_embeddings.deleted_at IS NULL").
		Where("paints.deleted_at IS NULL").
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredPaintEmbedding, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredPaintEmbedding{
			Embedding:  r.mapper.ToEntity(&res.PaintEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
