package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"paint-advisor-be/internal/constant"
	"paint-advisor-be/internal/dto"
	"paint-advisor-be/internal/entity"
	"paint-advisor-be/internal/repository/specification"
	"paint-advisor-be/internal/repository/unitofwork"
	"paint-advisor-be/pkg/embedding"
	"paint-advisor-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService is the embedding worker. It turns each paint into a
// retrieval document, chunks it and replaces the paint's vector rows.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedPaintMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal embed request: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Indexing paint %s", payload.PaintId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	paint, err := uow.PaintRepository().FindOne(ctx, specification.ByID{ID: payload.PaintId})
	if err != nil {
		log.Printf("[ERROR] Failed to load paint %s: %v", payload.PaintId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if paint == nil {
		// Deleted between publish and consume. Nothing to index.
		msg.Ack()
		return
	}

	content := renderPaintDocument(paint)
	chunks := utils.SplitText(content, constant.EmbeddingChunkSize, constant.EmbeddingChunkOverlap)

	var newEmbeddings []*entity.PaintEmbedding
	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(ctx, chunk, embedding.TaskRetrievalDocument)
		if err != nil {
			log.Printf("[ERROR] Failed to embed chunk %d of paint %s: %v", i, payload.PaintId, err)
			msg.Nack()
			return
		}

		newEmbeddings = append(newEmbeddings, &entity.PaintEmbedding{
			Id:             uuid.New(),
			PaintId:        paint.Id,
			Document:       chunk,
			EmbeddingValue: res.Embedding.Values,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	if err := uow.PaintEmbeddingRepository().DeleteByPaintId(ctx, paint.Id); err != nil {
		log.Printf("[ERROR] Failed to delete old embeddings: %v", err)
		msg.Nack()
		return
	}

	if len(newEmbeddings) > 0 {
		if err := uow.PaintEmbeddingRepository().CreateBulk(ctx, newEmbeddings); err != nil {
			log.Printf("[ERROR] Failed to create embeddings: %v", err)
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit embeddings: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Paint %s indexed in %d chunks", payload.PaintId, len(newEmbeddings))
	msg.Ack()
}

func renderPaintDocument(paint *entity.Paint) string {
	return fmt.Sprintf(constant.PaintDocumentTemplate,
		paint.Name,
		paint.ColorName,
		paint.SurfaceType,
		paint.Environment,
		paint.FinishType,
		paint.Line,
		paint.Features,
		paint.Description,
	)
}
