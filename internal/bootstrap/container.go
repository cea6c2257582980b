package bootstrap

import (
	"context"
	"log"

	"paint-advisor-be/internal/config"
	"paint-advisor-be/internal/controller"
	"paint-advisor-be/internal/pkg/logger"
	"paint-advisor-be/internal/repository/memory"
	"paint-advisor-be/internal/repository/unitofwork"
	"paint-advisor-be/internal/service"
	"paint-advisor-be/pkg/advisor"
	"paint-advisor-be/pkg/advisor/response"
	"paint-advisor-be/pkg/advisor/specialist"
	"paint-advisor-be/pkg/advisor/synthesis"
	"paint-advisor-be/pkg/embedding"
	"paint-advisor-be/pkg/events"
	"paint-advisor-be/pkg/llm/factory"

	pktNats "paint-advisor-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController  controller.IAuthController
	PaintController controller.IPaintController
	ChatController  controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Shared infrastructure main.go may need to close.
	NatsPublisher  *pktNats.Publisher
	NatsSubscriber *pktNats.Subscriber
	Logger         logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Audit consumer: every domain event lands in the structured log.
	var natsSub *pktNats.Subscriber
	if natsPub != nil {
		natsSub, err = pktNats.NewSubscriber(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
		} else {
			err = natsSub.Subscribe("events.>", "paint-advisor-audit", func(ctx context.Context, event events.Event) error {
				sysLogger.Info("events", "Event received: "+event.EventType(), event.Payload())
				return nil
			})
			if err != nil {
				log.Printf("[WARN] Failed to start audit consumer: %v", err)
			}
		}
	}

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiApiKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiApiKey,
	)
	if err != nil {
		// The advisor still works fully deterministic without a writer.
		log.Printf("[WARN] LLM Provider unavailable, replies stay deterministic: %v", err)
		llmProvider = nil
	} else {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	// 4. Advisor pipeline
	sessionRepo := memory.NewSessionRepository()
	catalogService := service.NewCatalogService(uowFactory, embeddingProvider)

	advisorLog := log.Default()
	registry := specialist.NewRegistry(catalogService, advisorLog)
	synthesizer := synthesis.New(catalogService, advisorLog)
	enhancer := response.NewEnhancer(
		service.NewLLMWriter(llmProvider),
		cfg.Ai.WriterTimeout,
		advisorLog,
	)
	engine := advisor.NewEngine(sessionRepo, registry, synthesizer, enhancer, advisorLog)

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Ai.EmbedPaintTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Ai.EmbedPaintTopic,
		uowFactory,
		embeddingProvider,
	)

	authService := service.NewAuthService(uowFactory, cfg.Auth.JwtSecret, cfg.Auth.TokenExpiry, natsPub)
	paintService := service.NewPaintService(uowFactory, publisherService, embeddingProvider, natsPub)
	chatService := service.NewChatService(
		engine,
		uowFactory,
		natsPub,
		sysLogger,
		cfg.Ai.LLMProvider,
		llmProvider != nil,
	)

	// 6. Controllers
	return &Container{
		AuthController:  controller.NewAuthController(authService),
		PaintController: controller.NewPaintController(paintService),
		ChatController:  controller.NewChatController(chatService),

		ConsumerService: consumerService,
		NatsPublisher:   natsPub,
		NatsSubscriber:  natsSub,
		Logger:          sysLogger,
	}
}
