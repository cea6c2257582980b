package mapper

import (
	"time"

	"paint-advisor-be/internal/entity"
	"paint-advisor-be/internal/model"

	"gorm.io/gorm"
)

type PaintMapper struct{}

func NewPaintMapper() *PaintMapper {
	return &PaintMapper{}
}

func (m *PaintMapper) ToEntity(p *model.Paint) *entity.Paint {
	if p == nil {
		return nil
	}

	var deletedAt *time.Time
	if p.DeletedAt.Valid {
		t := p.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.Paint{
		Id:          p.Id,
		Name:        p.Name,
		ColorName:   p.ColorName,
		SurfaceType: p.SurfaceType,
		Environment: entity.PaintEnvironment(p.Environment),
		FinishType:  entity.PaintFinish(p.FinishType),
		Line:        entity.PaintLine(p.Line),
		Features:    p.Features,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   p.DeletedAt.Valid,
	}
}

func (m *PaintMapper) ToModel(p *entity.Paint) *model.Paint {
	if p == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if p.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *p.DeletedAt, Valid: true}
	} else if p.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.Paint{
		Id:          p.Id,
		Name:        p.Name,
		ColorName:   p.ColorName,
		SurfaceType: p.SurfaceType,
		Environment: string(p.Environment),
		FinishType:  string(p.FinishType),
		Line:        string(p.Line),
		Features:    p.Features,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *PaintMapper) ToEntities(paints []*model.Paint) []*entity.Paint {
	entities := make([]*entity.Paint, len(paints))
	for i, p := range paints {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *PaintMapper) ToModels(paints []*entity.Paint) []*model.Paint {
	models := make([]*model.Paint, len(paints))
	for i, p := range paints {
		models[i] = m.ToModel(p)
	}
	return models
}
