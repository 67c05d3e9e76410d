package bootstrap

import (
	"context"
	"log"
	"time"

	"notekeep-be/internal/config"
	"notekeep-be/internal/controller"
	"notekeep-be/internal/pkg/logger"
	"notekeep-be/internal/repository/localstore"
	"notekeep-be/internal/repository/unitofwork"
	"notekeep-be/internal/service"
	"notekeep-be/internal/websocket"
	"notekeep-be/pkg/events"

	pktNats "notekeep-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController   controller.INoteController
	FolderController controller.IFolderController
	LabelController  controller.ILabelController
	AuthController   controller.IAuthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub

	Logger logger.ILogger
}

// NewContainer wires the application. A nil db selects the local JSON
// store instead of Postgres.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	var uowFactory unitofwork.RepositoryFactory
	if db != nil {
		uowFactory = unitofwork.NewRepositoryFactory(db)
	} else {
		store, err := localstore.Open(cfg.Database.LocalStorePath)
		if err != nil {
			log.Fatalf("[FATAL] Failed to open local store %s: %v", cfg.Database.LocalStorePath, err)
		}
		uowFactory = localstore.NewRepositoryFactory(store)
		log.Printf("[INFO] Using local JSON store at %s", cfg.Database.LocalStorePath)
	}
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS relay is optional; the in-process feed works without it.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// Redis fans websocket events across instances; optional too.
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
			rdb = nil
		}
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/changes.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(events.Topic, pubSub, natsPub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, events.Topic, wsHub, wsLogger)

	treeTTL := time.Duration(cfg.App.FolderTreeTTLSecs) * time.Second
	folderService := service.NewFolderService(uowFactory, publisherService, treeTTL)
	noteService := service.NewNoteService(uowFactory, publisherService)
	labelService := service.NewLabelService(uowFactory, publisherService)
	authService := service.NewAuthService(uowFactory, cfg.Auth.JWTSecret)

	// 4. Controllers
	return &Container{
		NoteController:   controller.NewNoteController(noteService),
		FolderController: controller.NewFolderController(folderService),
		LabelController:  controller.NewLabelController(labelService),
		AuthController:   controller.NewAuthController(authService),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
		Logger:          sysLogger,
	}
}
