package service

import (
	"context"
	"log"

	"paint-advisor-be/internal/entity"
	"paint-advisor-be/internal/repository/specification"
	"paint-advisor-be/internal/repository/unitofwork"
	"paint-advisor-be/pkg/catalog"
	"paint-advisor-be/pkg/embedding"

	"github.com/google/uuid"
)

// CatalogService exposes the paint table to the advisor behind the
// catalog.Query and catalog.SemanticSearch contracts.
type CatalogService struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

var (
	_ catalog.Query          = &CatalogService{}
	_ catalog.SemanticSearch = &CatalogService{}
)

func NewCatalogService(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) *CatalogService {
	return &CatalogService{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (s *CatalogService) FilterBy(ctx context.Context, filter catalog.Filter) ([]catalog.ProductRef, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	surfaces := filter.Surfaces
	if len(surfaces) == 0 && filter.Surface != "" {
		surfaces = []string{filter.Surface}
	}

	specs := []specification.Specification{
		specification.ForEnvironment{Environment: filter.Environment},
		specification.ForSurfaces{Surfaces: surfaces},
		specification.ByColorLike{Color: filter.Color},
		specification.ByFinish{Finish: filter.Finish},
		specification.OrderBy{Field: "name"},
	}
	if filter.Limit > 0 {
		specs = append(specs, specification.Pagination{Limit: filter.Limit})
	}

	paints, err := uow.PaintRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return toProductRefs(paints), nil
}

func (s *CatalogService) AvailableColors(ctx context.Context) ([]catalog.ColorCount, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	counts, err := uow.PaintRepository().CountByColor(ctx)
	if err != nil {
		return nil, err
	}

	colors := make([]catalog.ColorCount, 0, len(counts))
	for _, c := range counts {
		colors = append(colors, catalog.ColorCount{Name: c.ColorName, Count: c.Count})
	}
	return colors, nil
}

func (s *CatalogService) FindByIds(ctx context.Context, ids []uuid.UUID) ([]catalog.ProductRef, error) {
	if len(ids) == 0 {
		return []catalog.ProductRef{}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	paints, err := uow.PaintRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}
	return toProductRefs(paints), nil
}

// Search embeds the utterance and walks the vector index. An empty or
// unreachable index degrades to no candidates instead of an error so the
// advisor can still answer from slots alone.
func (s *CatalogService) Search(ctx context.Context, query string, limit int) ([]catalog.ProductRef, error) {
	if s.embeddingProvider == nil {
		return []catalog.ProductRef{}, nil
	}

	res, err := s.embeddingProvider.Generate(ctx, query, embedding.TaskRetrievalQuery)
	if err != nil {
		log.Printf("[WARN] semantic search unavailable: %v", err)
		return []catalog.ProductRef{}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.PaintEmbeddingRepository().SearchSimilar(ctx, res.Embedding.Values, limit)
	if err != nil {
		log.Printf("[WARN] vector search failed: %v", err)
		return []catalog.ProductRef{}, nil
	}
	if len(scored) == 0 {
		return []catalog.ProductRef{}, nil
	}

	ids := make([]uuid.UUID, 0, len(scored))
	seen := make(map[uuid.UUID]bool, len(scored))
	for _, sc := range scored {
		if !seen[sc.Embedding.PaintId] {
			seen[sc.Embedding.PaintId] = true
			ids = append(ids, sc.Embedding.PaintId)
		}
	}

	paints, err := uow.PaintRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}

	// Preserve similarity order, FindAll returns rows in table order.
	byId := make(map[uuid.UUID]*entity.Paint, len(paints))
	for _, paint := range paints {
		byId[paint.Id] = paint
	}
	refs := make([]catalog.ProductRef, 0, len(ids))
	for _, id := range ids {
		if paint, ok := byId[id]; ok {
			refs = append(refs, toProductRef(paint))
		}
	}
	return refs, nil
}

func toProductRef(paint *entity.Paint) catalog.ProductRef {
	return catalog.ProductRef{
		Id:          paint.Id,
		Name:        paint.Name,
		ColorName:   paint.ColorName,
		SurfaceType: paint.SurfaceType,
		Environment: string(paint.Environment),
		FinishType:  string(paint.FinishType),
		Line:        string(paint.Line),
		Features:    paint.Features,
		Description: paint.Description,
		Price:       paint.Price,
	}
}

func toProductRefs(paints []*entity.Paint) []catalog.ProductRef {
	refs := make([]catalog.ProductRef, 0, len(paints))
	for _, paint := range paints {
		refs = append(refs, toProductRef(paint))
	}
	return refs
}
