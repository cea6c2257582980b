package service

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"paint-advisor-be/internal/constant"
	"paint-advisor-be/internal/dto"
	"paint-advisor-be/internal/entity"
	"paint-advisor-be/pkg/advisor"
	"paint-advisor-be/pkg/advisor/response"
	"paint-advisor-be/pkg/advisor/specialist"
	"paint-advisor-be/pkg/advisor/synthesis"
	"paint-advisor-be/pkg/catalog"

	"paint-advisor-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChatService(uow *fakeUow, products ...catalog.ProductRef) IChatService {
	quiet := log.New(io.Discard, "", 0)
	cat := &fakeCatalog{products: products}

	engine := advisor.NewEngine(
		memory.NewSessionRepository(),
		specialist.NewRegistry(cat, quiet),
		synthesis.New(nil, quiet),
		response.NewEnhancer(nil, time.Second, quiet),
		quiet,
	)
	return NewChatService(engine, uow, nil, nil, "ollama", false)
}

func wallPaint(name, colorName string) catalog.ProductRef {
	return catalog.ProductRef{
		Id:          uuid.New(),
		Name:        name,
		ColorName:   colorName,
		SurfaceType: "wall",
		Environment: "interior",
		FinishType:  "matte",
		Line:        "Standard",
		Features:    "washable",
		Price:       29.90,
	}
}

func TestChatService_AdvisePersistsBothSides(t *testing.T) {
	uow := newFakeUow()
	svc := newTestChatService(uow, wallPaint("Morning Sky", "blue"))
	userId := uuid.New()

	res, err := svc.Advise(context.Background(), userId, &dto.AdvisorTurnRequest{
		Message: "I want to paint my bedroom walls blue",
	})
	require.NoError(t, err)
	require.Len(t, res.Paints, 1)
	assert.Equal(t, "Morning Sky", res.Paints[0].Name)
	assert.Equal(t, advisor.ModeDeterministic, res.Mode)
	assert.NotEmpty(t, res.SpecialistsConsulted)

	require.Len(t, uow.chats.messages, 2)
	userMsg, assistantMsg := uow.chats.messages[0], uow.chats.messages[1]
	assert.Equal(t, constant.ChatMessageRoleUser, userMsg.Role)
	assert.Equal(t, "I want to paint my bedroom walls blue", userMsg.Content)
	assert.Equal(t, constant.ChatMessageRoleAssistant, assistantMsg.Role)
	assert.Equal(t, res.Reply, assistantMsg.Content)

	require.NotNil(t, assistantMsg.Meta)
	assert.Equal(t, []uuid.UUID{res.Paints[0].Id}, assistantMsg.Meta.PaintIds)
	assert.Equal(t, advisor.ModeDeterministic, assistantMsg.Meta.Mode)
}

func TestChatService_AdviseReportsPendingColorOffer(t *testing.T) {
	uow := newFakeUow()
	svc := newTestChatService(uow,
		wallPaint("Morning Sky", "blue"),
		wallPaint("Blush Rose", "pink"),
	)

	res, err := svc.Advise(context.Background(), uuid.New(), &dto.AdvisorTurnRequest{
		Message: "I want purple paint for my bedroom walls",
	})
	require.NoError(t, err)

	assert.Empty(t, res.Paints)
	require.NotNil(t, res.PendingAction)
	assert.Equal(t, "SUGGEST_ALTERNATIVE_COLORS", res.PendingAction.Kind)
	assert.Equal(t, "purple", res.PendingAction.RequestedColor)
	assert.Contains(t, res.PendingAction.Alternatives, "blue")
}

func TestChatService_HistoryIsScopedToUser(t *testing.T) {
	uow := newFakeUow()
	svc := newTestChatService(uow, wallPaint("Morning Sky", "blue"))
	alice, bob := uuid.New(), uuid.New()

	_, err := svc.Advise(context.Background(), alice, &dto.AdvisorTurnRequest{Message: "blue walls in my bedroom"})
	require.NoError(t, err)
	_, err = svc.Advise(context.Background(), bob, &dto.AdvisorTurnRequest{Message: "blue walls in my kitchen"})
	require.NoError(t, err)

	history, err := svc.History(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, history.Messages, 2)
	assert.Equal(t, "blue walls in my bedroom", history.Messages[0].Content)
}

func TestChatService_ResetClearsTranscriptAndSession(t *testing.T) {
	uow := newFakeUow()
	svc := newTestChatService(uow, wallPaint("Morning Sky", "blue"))
	userId := uuid.New()

	_, err := svc.Advise(context.Background(), userId, &dto.AdvisorTurnRequest{Message: "blue walls in my bedroom"})
	require.NoError(t, err)
	require.NotEmpty(t, uow.chats.messages)

	require.NoError(t, svc.Reset(context.Background(), userId))

	history, err := svc.History(context.Background(), userId)
	require.NoError(t, err)
	assert.Empty(t, history.Messages)

	// A follow-up after reset reads as a fresh request with no memory.
	res, err := svc.Advise(context.Background(), userId, &dto.AdvisorTurnRequest{Message: "and in green?"})
	require.NoError(t, err)
	assert.Empty(t, res.Paints)
}

func TestChatService_AdviseResetConversationStartsFresh(t *testing.T) {
	uow := newFakeUow()
	svc := newTestChatService(uow, wallPaint("Morning Sky", "blue"))
	userId := uuid.New()

	_, err := svc.Advise(context.Background(), userId, &dto.AdvisorTurnRequest{Message: "blue walls in my bedroom"})
	require.NoError(t, err)

	// The flag wipes the transcript before the new turn is appended.
	res, err := svc.Advise(context.Background(), userId, &dto.AdvisorTurnRequest{
		Message:           "and in green?",
		ResetConversation: true,
	})
	require.NoError(t, err)
	assert.Empty(t, res.Paints)

	history, err := svc.History(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, history.Messages, 2)
	assert.Equal(t, "and in green?", history.Messages[0].Content)
}

func TestChatService_StatusReflectsIndex(t *testing.T) {
	uow := newFakeUow()
	svc := newTestChatService(uow)

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ollama", status.LlmProvider)
	assert.False(t, status.LlmAvailable)
	assert.Equal(t, "empty", status.EmbeddingStatus)
	assert.EqualValues(t, 0, status.IndexedDocuments)

	uow.embeddings.rows = append(uow.embeddings.rows, &entity.PaintEmbedding{Id: uuid.New()})
	status, err = svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ready", status.EmbeddingStatus)
	assert.EqualValues(t, 1, status.IndexedDocuments)
}
