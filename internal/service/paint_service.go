package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"paint-advisor-be/internal/dto"
	"paint-advisor-be/internal/entity"
	"paint-advisor-be/internal/repository/specification"
	"paint-advisor-be/internal/repository/unitofwork"
	"paint-advisor-be/pkg/embedding"
	"paint-advisor-be/pkg/events"
	pktNats "paint-advisor-be/pkg/nats"

	"github.com/google/uuid"
)

type IPaintService interface {
	Create(ctx context.Context, req *dto.CreatePaintRequest) (*dto.CreatePaintResponse, error)
	Update(ctx context.Context, req *dto.UpdatePaintRequest) (*dto.UpdatePaintResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Show(ctx context.Context, id uuid.UUID) (*dto.PaintResponse, error)
	List(ctx context.Context, req *dto.ListPaintsRequest) ([]dto.PaintResponse, error)
	SemanticSearch(ctx context.Context, query string, limit int) ([]dto.SemanticSearchPaintResponse, error)
}

type paintService struct {
	uowFactory        unitofwork.RepositoryFactory
	publisherService  IPublisherService
	embeddingProvider embedding.EmbeddingProvider
	eventPublisher    *pktNats.Publisher
}

func NewPaintService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	embeddingProvider embedding.EmbeddingProvider,
	eventPublisher *pktNats.Publisher,
) IPaintService {
	return &paintService{
		uowFactory:        uowFactory,
		publisherService:  publisherService,
		embeddingProvider: embeddingProvider,
		eventPublisher:    eventPublisher,
	}
}

func (s *paintService) Create(ctx context.Context, req *dto.CreatePaintRequest) (*dto.CreatePaintResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	paint := &entity.Paint{
		Id:          uuid.New(),
		Name:        req.Name,
		ColorName:   strings.ToLower(req.ColorName),
		SurfaceType: strings.ToLower(req.SurfaceType),
		Environment: entity.PaintEnvironment(req.Environment),
		FinishType:  entity.PaintFinish(req.FinishType),
		Line:        entity.PaintLine(req.Line),
		Features:    strings.Join(req.Features, ", "),
		Description: req.Description,
		Price:       req.Price,
		CreatedAt:   time.Now(),
	}

	if err := uow.PaintRepository().Create(ctx, paint); err != nil {
		return nil, err
	}

	s.requestEmbedding(ctx, paint.Id)
	s.publishEvent(ctx, events.NewPaintCreated(paint.Id, paint.Name))

	return &dto.CreatePaintResponse{Id: paint.Id}, nil
}

func (s *paintService) Update(ctx context.Context, req *dto.UpdatePaintRequest) (*dto.UpdatePaintResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	paint, err := uow.PaintRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if paint == nil {
		return nil, errors.New("paint not found")
	}

	now := time.Now()
	paint.Name = req.Name
	paint.ColorName = strings.ToLower(req.ColorName)
	paint.SurfaceType = strings.ToLower(req.SurfaceType)
	paint.Environment = entity.PaintEnvironment(req.Environment)
	paint.FinishType = entity.PaintFinish(req.FinishType)
	paint.Line = entity.PaintLine(req.Line)
	paint.Features = strings.Join(req.Features, ", ")
	paint.Description = req.Description
	paint.Price = req.Price
	paint.UpdatedAt = &now

	if err := uow.PaintRepository().Update(ctx, paint); err != nil {
		return nil, err
	}

	// Reindex so semantic search sees the new text.
	s.requestEmbedding(ctx, paint.Id)
	s.publishEvent(ctx, events.NewPaintUpdated(paint.Id, paint.Name))

	return &dto.UpdatePaintResponse{Id: paint.Id}, nil
}

func (s *paintService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	paint, err := uow.PaintRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if paint == nil {
		return errors.New("paint not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.PaintRepository().Delete(ctx, id); err != nil {
		return err
	}
	if err := uow.PaintEmbeddingRepository().DeleteByPaintId(ctx, id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishEvent(ctx, events.NewPaintDeleted(id))
	return nil
}

func (s *paintService) Show(ctx context.Context, id uuid.UUID) (*dto.PaintResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	paint, err := uow.PaintRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if paint == nil {
		return nil, errors.New("paint not found")
	}

	res := toPaintResponse(paint)
	return &res, nil
}

func (s *paintService) List(ctx context.Context, req *dto.ListPaintsRequest) ([]dto.PaintResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ForEnvironment{Environment: req.Environment},
		specification.ByColorLike{Color: req.Color},
		specification.ByFinish{Finish: req.Finish},
		specification.ByLine{Line: req.Line},
		specification.SearchText{Query: req.Search},
		specification.OrderBy{Field: "name"},
	}
	if req.Surface != "" {
		specs = append(specs, specification.ForSurfaces{Surfaces: []string{req.Surface}})
	}
	if req.Limit > 0 {
		specs = append(specs, specification.Pagination{Limit: req.Limit, Offset: req.Offset})
	}

	paints, err := uow.PaintRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PaintResponse, 0, len(paints))
	for _, paint := range paints {
		responses = append(responses, toPaintResponse(paint))
	}
	return responses, nil
}

func (s *paintService) SemanticSearch(ctx context.Context, query string, limit int) ([]dto.SemanticSearchPaintResponse, error) {
	if limit <= 0 {
		limit = 5
	}

	res, err := s.embeddingProvider.Generate(ctx, query, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.PaintEmbeddingRepository().SearchSimilar(ctx, res.Embedding.Values, limit)
	if err != nil {
		return nil, err
	}
	if len(scored) == 0 {
		return []dto.SemanticSearchPaintResponse{}, nil
	}

	// Chunks of the same paint collapse to the best-scoring one.
	bestByPaint := make(map[uuid.UUID]float64)
	order := make([]uuid.UUID, 0, len(scored))
	for _, sc := range scored {
		if _, seen := bestByPaint[sc.Embedding.PaintId]; !seen {
			order = append(order, sc.Embedding.PaintId)
			bestByPaint[sc.Embedding.PaintId] = sc.Similarity
		}
	}

	paints, err := uow.PaintRepository().FindAll(ctx, specification.ByIDs{IDs: order})
	if err != nil {
		return nil, err
	}
	byId := make(map[uuid.UUID]*entity.Paint, len(paints))
	for _, paint := range paints {
		byId[paint.Id] = paint
	}

	results := make([]dto.SemanticSearchPaintResponse, 0, len(order))
	for _, id := range order {
		paint, ok := byId[id]
		if !ok {
			continue
		}
		results = append(results, dto.SemanticSearchPaintResponse{
			Paint:          toPaintResponse(paint),
			RelevanceScore: bestByPaint[id],
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})
	return results, nil
}

func (s *paintService) requestEmbedding(ctx context.Context, paintId uuid.UUID) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(dto.PublishEmbedPaintMessage{PaintId: paintId})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		fmt.Printf("Failed to publish embed request for paint %s: %v\n", paintId, err)
	}
}

func (s *paintService) publishEvent(ctx context.Context, evt events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		fmt.Printf("Failed to publish %s: %v\n", evt.EventType(), err)
	}
}

func toPaintResponse(paint *entity.Paint) dto.PaintResponse {
	var features []string
	if paint.Features != "" {
		for _, f := range strings.Split(paint.Features, ",") {
			features = append(features, strings.TrimSpace(f))
		}
	}
	return dto.PaintResponse{
		Id:          paint.Id,
		Name:        paint.Name,
		ColorName:   paint.ColorName,
		SurfaceType: paint.SurfaceType,
		Environment: string(paint.Environment),
		FinishType:  string(paint.FinishType),
		Line:        string(paint.Line),
		Features:    features,
		Description: paint.Description,
		Price:       paint.Price,
		CreatedAt:   paint.CreatedAt,
		UpdatedAt:   paint.UpdatedAt,
	}
}
