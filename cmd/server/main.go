package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/brainboard/backend/api/handler"
	"github.com/brainboard/backend/internal/config"
	"github.com/brainboard/backend/internal/infrastructure/jsonstore"
	"github.com/brainboard/backend/internal/middleware"
	"github.com/brainboard/backend/internal/router"
	"github.com/brainboard/backend/internal/services"
	"github.com/brainboard/backend/internal/services/lifecycle"
	"github.com/brainboard/backend/pkg/httpcontext"
	"github.com/brainboard/backend/pkg/logger"
	"github.com/brainboard/backend/repository/jsonfile"
	messageUC "github.com/brainboard/backend/usecase/message"
	notificationUC "github.com/brainboard/backend/usecase/notification"
	searchUC "github.com/brainboard/backend/usecase/search"
	statsUC "github.com/brainboard/backend/usecase/stats"
	taskUC "github.com/brainboard/backend/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	appCtx, cancel := manager.Context(context.Background())
	defer cancel()

	store := jsonstore.Open(cfg.Storage.DataFile, zapLogger)
	manager.Register("store", func(ctx context.Context) error {
		return store.Close()
	})

	store.View(func(doc *jsonstore.Document) {
		zapLogger.Info("data file loaded",
			zap.String("path", cfg.Storage.DataFile),
			zap.Int("tasks", len(doc.Tasks)),
			zap.Int("notifications", len(doc.Notifications)),
			zap.Int("messages", len(doc.Messages)))
	})

	notificationRepo := jsonfile.NewNotificationRepository(store)
	messageRepo := jsonfile.NewMessageRepository(store)
	taskRepo := jsonfile.NewTaskRepository(store)
	searchItemRepo := jsonfile.NewSearchItemRepository(store)

	notificationUseCase := notificationUC.New(notificationRepo, zapLogger)
	messageUseCase := messageUC.New(messageRepo, zapLogger)
	taskUseCase := taskUC.New(taskRepo, zapLogger)
	searchUseCase := searchUC.New(taskRepo, notificationRepo, messageRepo, searchItemRepo, zapLogger)
	statsUseCase := statsUC.New(notificationRepo, messageRepo, taskRepo)

	assistant := services.NewAssistant(messageRepo, taskRepo, zapLogger, services.AssistantConfig{
		Name:         cfg.Reminder.AssistantName,
		Interval:     cfg.Reminder.Interval,
		StartupDelay: cfg.Reminder.StartupDelay,
	})
	assistant.Start()
	manager.Register("assistant", func(ctx context.Context) error {
		assistant.Stop(ctx)
		return nil
	})

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Notification: apiHandler.NewNotificationHandler(notificationUseCase, ctxAdapter, zapLogger),
		Message:      apiHandler.NewMessageHandler(messageUseCase, assistant, ctxAdapter, zapLogger),
		Task:         apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Search:       apiHandler.NewSearchHandler(searchUseCase, ctxAdapter, zapLogger),
		Utility:      apiHandler.NewUtilityHandler(statsUseCase, notificationUseCase, messageUseCase, ctxAdapter, zapLogger),
		Health:       apiHandler.NewHealthHandler(store, ctxAdapter, zapLogger),
	}

	cors := middleware.CORS(cfg.HTTP.AllowedOrigins, zapLogger)
	r := router.New(handlers)

	server := &fasthttp.Server{
		Handler:      cors(r.Handler),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
