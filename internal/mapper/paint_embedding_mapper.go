package mapper

import (
	"time"

	"paint-advisor-be/internal/entity"
	"paint-advisor-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type PaintEmbeddingMapper struct{}

func NewPaintEmbeddingMapper() *PaintEmbeddingMapper {
	return &PaintEmbeddingMapper{}
}

func (m *PaintEmbeddingMapper) ToEntity(e *model.PaintEmbedding) *entity.PaintEmbedding {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.PaintEmbedding{
		Id:             e.Id,
		PaintId:        e.PaintId,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      e.DeletedAt.Valid,
	}
}

func (m *PaintEmbeddingMapper) ToModel(e *entity.PaintEmbedding) *model.PaintEmbedding {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.PaintEmbedding{
		Id:             e.Id,
		PaintId:        e.PaintId,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		ChunkIndex:     e.ChunkIndex,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *PaintEmbeddingMapper) ToEntities(embeddings []*model.PaintEmbedding) []*entity.PaintEmbedding {
	entities := make([]*entity.PaintEmbedding, len(embeddings))
	for i, e := range embeddings {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

func (m *PaintEmbeddingMapper) ToModels(embeddings []*entity.PaintEmbedding) []*model.PaintEmbedding {
	models := make([]*model.PaintEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = m.ToModel(e)
	}
	return models
}
