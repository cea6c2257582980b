package implementation

import (
	"context"
	"errors"

	"paint-advisor-be/internal/entity"
	"paint-advisor-be/internal/mapper"
	"paint-advisor-be/internal/model"
	"paint-advisor-be/internal/repository/contract"
	"paint-advisor-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaintRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PaintMapper
}

func NewPaintRepository(db *gorm.DB) contract.PaintRepository {
	return &PaintRepositoryImpl{
		db:     db,
		mapper: mapper.NewPaintMapper(),
	}
}

func (r *PaintRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PaintRepositoryImpl) Create(ctx context.Context, paint *entity.Paint) error {
	m := r.mapper.ToModel(paint)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*paint = *r.mapper.ToEntity(m)
	return nil
}

func (r *PaintRepositoryImpl) Update(ctx context.Context, paint *entity.Paint) error {
	m := r.mapper.ToModel(paint)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*paint = *r.mapper.ToEntity(m)
	return nil
}

func (r *PaintRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Paint{}, id).Error
}

func (r *PaintRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Paint, error) {
	var m model.Paint
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PaintRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Paint, error) {
	var models []*model.Paint
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PaintRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Paint{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PaintRepositoryImpl) CountByColor(ctx context.Context) ([]contract.ColorAvailability, error) {
	var results []contract.ColorAvailability
	err := r.db.WithContext(ctx).
		Model(&model.Paint{}).
		Select("color_name, COUNT(*) as count").
		Group("color_name").
		Order("count DESC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
