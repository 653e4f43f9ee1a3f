package bootstrap

import (
	"context"
	"log"
	"time"

	"smartnotes-be/internal/config"
	"smartnotes-be/internal/controller"
	"smartnotes-be/internal/pkg/logger"
	"smartnotes-be/internal/pkg/mailer"
	"smartnotes-be/internal/repository/unitofwork"
	"smartnotes-be/internal/service"
	"smartnotes-be/internal/session"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	NoteController    controller.INoteController
	ApiAuthController controller.IApiAuthController
	ApiNoteController controller.IApiNoteController

	// Session manager, shared with the server middleware
	Sessions *session.Manager

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Session Storage based on Config
	var sessionStore session.Store
	if cfg.App.SessionStore == "redis" {
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
		sessionStore = session.NewRedisStore(rdb)
		log.Printf("[INFO] Using Session Store: REDIS")
	} else {
		sessionStore = session.NewMemoryStore(time.Duration(cfg.Auth.SessionTTLHours) * time.Hour)
		log.Printf("[INFO] Using Session Store: MEMORY")
	}

	sessions := session.NewManager(
		sessionStore,
		cfg.Auth.SessionSecret,
		time.Duration(cfg.Auth.SessionTTLHours)*time.Hour,
	)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.EventTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.EventTopic,
		emailService,
		sysLogger,
	)

	authService := service.NewAuthService(uowFactory, publisherService)
	noteService := service.NewNoteService(uowFactory)

	// 5. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService, sessions),
		NoteController:    controller.NewNoteController(noteService),
		ApiAuthController: controller.NewApiAuthController(authService),
		ApiNoteController: controller.NewApiNoteController(noteService),

		Sessions: sessions,

		ConsumerService: consumerService,
	}
}
