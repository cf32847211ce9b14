package bootstrap

import (
	"context"
	"log"

	"ai-companion-be/internal/config"
	"ai-companion-be/internal/controller"
	"ai-companion-be/internal/pkg/logger"
	"ai-companion-be/internal/repository/contract"
	"ai-companion-be/internal/repository/gormrepo"
	"ai-companion-be/internal/repository/memory"
	"ai-companion-be/internal/repository/redisrepo"
	"ai-companion-be/internal/repository/store"
	"ai-companion-be/internal/service"
	"ai-companion-be/pkg/agent"
	"ai-companion-be/pkg/speech"
	"ai-companion-be/pkg/vision"

	pktNats "ai-companion-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"google.golang.org/genai"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SessionController controller.ISessionController
	ChatController    controller.IChatController
	HealthController  controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Storage backend, selected by driver
	sessionRepo, messageRepo := newRepositories(db, cfg)
	sessionStore := store.NewSessionStore(sessionRepo, messageRepo)
	messageStore := store.NewMessageStore(sessionRepo, messageRepo)

	// 3. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 4. AI collaborators
	genaiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.Keys.GoogleGemini,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Gemini client: %v", err)
	}

	transcriber := speech.NewWhisperTranscriber(cfg.Keys.OpenAI)
	synthesizer := speech.NewGeminiSynthesizer(genaiClient, cfg.Ai.TtsModel)
	captioner := vision.NewGeminiCaptioner(genaiClient, cfg.Ai.CaptionModel)
	generator := vision.NewGeminiGenerator(genaiClient, cfg.Ai.ImageModel, cfg.App.ImageOutputDir)

	chatAgent := agent.NewGeminiAgent(
		genaiClient,
		cfg.Ai.ChatModel,
		cfg.Ai.RouterModel,
		synthesizer,
		generator,
	)

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.ChatEventTopicName)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ChatEventTopicName, natsPub, sysLogger)

	sessionService := service.NewSessionService(sessionStore, publisherService, sysLogger)
	chatService := service.NewChatService(
		sessionStore,
		messageStore,
		chatAgent,
		transcriber,
		captioner,
		publisherService,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		SessionController: controller.NewSessionController(sessionService),
		ChatController:    controller.NewChatController(chatService),
		HealthController:  controller.NewHealthController(),
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}

// newRepositories picks the storage backend. Postgres is the production
// driver; redis and memory exist for lighter deployments and tests.
func newRepositories(db *gorm.DB, cfg *config.Config) (contract.ChatSessionRepository, contract.MessageRepository) {
	switch cfg.Database.Driver {
	case "redis":
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		return redisrepo.NewChatSessionRepository(rdb), redisrepo.NewMessageRepository(rdb)
	case "memory":
		return memory.NewChatSessionRepository(), memory.NewMessageRepository()
	default:
		return gormrepo.NewChatSessionRepository(db), gormrepo.NewMessageRepository(db)
	}
}
