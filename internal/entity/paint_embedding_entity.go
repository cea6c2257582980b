package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaintEmbedding struct {
	Id             uuid.UUID
	PaintId        uuid.UUID
	Document       string
	EmbeddingValue []float32
	ChunkIndex     int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
