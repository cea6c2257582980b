package service

import (
	"context"
	"fmt"
	"time"

	"paint-advisor-be/internal/constant"
	"paint-advisor-be/internal/dto"
	"paint-advisor-be/internal/entity"
	"paint-advisor-be/internal/pkg/logger"
	"paint-advisor-be/internal/repository/specification"
	"paint-advisor-be/internal/repository/unitofwork"
	"paint-advisor-be/pkg/advisor"
	"paint-advisor-be/pkg/events"
	pktNats "paint-advisor-be/pkg/nats"

	"github.com/google/uuid"
)

type IChatService interface {
	Advise(ctx context.Context, userId uuid.UUID, req *dto.AdvisorTurnRequest) (*dto.AdvisorTurnResponse, error)
	History(ctx context.Context, userId uuid.UUID) (*dto.ChatHistoryResponse, error)
	Reset(ctx context.Context, userId uuid.UUID) error
	Status(ctx context.Context) (*dto.AdvisorStatusResponse, error)
}

type chatService struct {
	engine         *advisor.Engine
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
	llmProvider    string
	llmAvailable   bool
}

func NewChatService(
	engine *advisor.Engine,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
	llmProvider string,
	llmAvailable bool,
) IChatService {
	return &chatService{
		engine:         engine,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		log:            log,
		llmProvider:    llmProvider,
		llmAvailable:   llmAvailable,
	}
}

// Advise runs one advisor turn for the user and persists both sides of the
// exchange. Persistence failures do not fail the turn, the in-memory
// session already moved on and the reply is still worth delivering.
func (s *chatService) Advise(ctx context.Context, userId uuid.UUID, req *dto.AdvisorTurnRequest) (*dto.AdvisorTurnResponse, error) {
	if req.ResetConversation {
		if err := s.Reset(ctx, userId); err != nil {
			return nil, err
		}
	}

	result, err := s.engine.HandleTurn(ctx, userId.String(), req.Message)
	if err != nil {
		return nil, err
	}

	s.persistTurn(ctx, userId, req.Message, result)
	s.publishTurnEvent(ctx, userId, result)

	paints := make([]dto.MentionedPaint, 0, len(result.Products))
	for _, p := range result.Products {
		paints = append(paints, dto.MentionedPaint{
			Id:        p.Id,
			Name:      p.Name,
			ColorName: p.ColorName,
			Finish:    p.FinishType,
			Price:     p.Price,
		})
	}

	res := &dto.AdvisorTurnResponse{
		Reply:                result.Reply,
		Paints:               paints,
		Mode:                 result.Mode,
		SpecialistsConsulted: result.SpecialistsConsulted,
	}
	if result.Pending != nil {
		res.PendingAction = &dto.PendingActionResponse{
			Kind:           string(result.Pending.Kind),
			RequestedColor: result.Pending.RequestedColor,
			Alternatives:   result.Pending.Alternatives,
		}
	}
	return res, nil
}

func (s *chatService) History(ctx context.Context, userId uuid.UUID) (*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ChatOwnedByUser{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ChatHistoryItem, 0, len(messages))
	for _, msg := range messages {
		items = append(items, dto.ChatHistoryItem{
			Id:        msg.Id,
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}
	return &dto.ChatHistoryResponse{Messages: items}, nil
}

// Reset drops both the live session and the stored transcript.
func (s *chatService) Reset(ctx context.Context, userId uuid.UUID) error {
	s.engine.Reset(userId.String())

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ChatMessageRepository().DeleteAllByUserId(ctx, userId)
}

func (s *chatService) Status(ctx context.Context) (*dto.AdvisorStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	indexed, err := uow.PaintEmbeddingRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	embeddingStatus := "ready"
	if indexed == 0 {
		embeddingStatus = "empty"
	}

	mode := advisor.ModeDeterministic
	if s.llmAvailable {
		mode = advisor.ModeEnhanced
	}

	return &dto.AdvisorStatusResponse{
		Mode:             mode,
		LlmProvider:      s.llmProvider,
		LlmAvailable:     s.llmAvailable,
		EmbeddingStatus:  embeddingStatus,
		IndexedDocuments: indexed,
	}, nil
}

func (s *chatService) persistTurn(ctx context.Context, userId uuid.UUID, message string, result *advisor.TurnResult) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	userMsg := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    userId,
		Role:      constant.ChatMessageRoleUser,
		Content:   message,
		CreatedAt: now,
	}

	meta := &entity.ChatTurnMeta{
		Specialists: result.SpecialistsConsulted,
		Mode:        result.Mode,
	}
	for _, p := range result.Products {
		meta.PaintIds = append(meta.PaintIds, p.Id)
	}
	if result.Pending != nil {
		meta.Pending = string(result.Pending.Kind)
	}

	assistantMsg := &entity.ChatMessage{
		Id:        uuid.New(),
		UserId:    userId,
		Role:      constant.ChatMessageRoleAssistant,
		Content:   result.Reply,
		Meta:      meta,
		CreatedAt: now,
	}

	if err := uow.Begin(ctx); err != nil {
		s.logError("Failed to begin transcript transaction", err, userId)
		return
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, userMsg); err != nil {
		s.logError("Failed to persist user message", err, userId)
		return
	}
	if err := uow.ChatMessageRepository().Create(ctx, assistantMsg); err != nil {
		s.logError("Failed to persist assistant message", err, userId)
		return
	}
	if err := uow.Commit(); err != nil {
		s.logError("Failed to commit transcript", err, userId)
	}
}

func (s *chatService) publishTurnEvent(ctx context.Context, userId uuid.UUID, result *advisor.TurnResult) {
	if s.eventPublisher == nil {
		return
	}

	paintIds := make([]uuid.UUID, 0, len(result.Products))
	for _, p := range result.Products {
		paintIds = append(paintIds, p.Id)
	}

	evt := events.NewChatTurnCompleted(userId, result.Mode, paintIds, result.SpecialistsConsulted)
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logError("Failed to publish CHAT_TURN_COMPLETED", err, userId)
	}
}

func (s *chatService) logError(message string, err error, userId uuid.UUID) {
	if s.log == nil {
		fmt.Printf("%s: %v\n", message, err)
		return
	}
	s.log.Error("chat", message, map[string]interface{}{
		"error":   err.Error(),
		"user_id": userId.String(),
	})
}
