// File: voicesalon/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"voicesalon/config"
	"voicesalon/cron"
	"voicesalon/handlers"
	"voicesalon/middleware"
	"voicesalon/routes"
	"voicesalon/services/appointment"
	"voicesalon/services/calendar"
	"voicesalon/services/conversation"
	"voicesalon/services/notification"
	"voicesalon/services/salondata"
	"voicesalon/services/tasks"
	"voicesalon/services/voiceai"
	"voicesalon/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	loc, err := time.LoadLocation(cfg.SalonTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: unknown SALON_TIMEZONE %q: %v", cfg.SalonTimezone, err)
	}

	// Missing data files are logged inside Load and answered with empty data.
	directory, _ := salondata.Load(cfg.DataDir, logger)

	appCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// services.
	mailer := notification.New(notification.ResendConfig{
		APIKey:     cfg.ResendAPIKey,
		From:       cfg.EmailFrom,
		SalonEmail: cfg.SalonEmail,
		SalonName:  cfg.SalonName,
		Location:   directory.Schedule.Location,
	}, logger)
	events := calendar.New(appCtx, cfg.GoogleCredentialsFile, cfg.GoogleCalendarID, loc, logger)

	var (
		reminders    appointment.ReminderScheduler
		queueClient  *asynq.Client
		reminderSrv  *asynq.Server
		contextStore conversation.Store
	)
	ttl := time.Duration(cfg.ConversationTTLMin) * time.Minute
	if config.RedisEnabled() {
		queueClient = asynq.NewClient(cron.RedisQueueOpt())
		reminders = tasks.NewReminderScheduler(queueClient, loc, time.Duration(cfg.ReminderLeadHr)*time.Hour, logger)
		reminderSrv = cron.InitReminderWorker(mailer, logger)
	} else {
		logger.Info("main: REDIS_ADDR not set, reminders disabled and conversation context kept in memory")
	}
	if client := utils.GetContextCacheClient(); client != nil {
		contextStore = conversation.NewRedisStore(client, ttl)
		utils.StartHealthMonitor(appCtx, client, 30*time.Second)
	} else {
		contextStore = conversation.NewMemoryStore(ttl)
	}

	parser := appointment.NewParser(loc)
	appointmentSvc := appointment.NewService(parser, directory.Hours(), events, mailer, reminders, logger)

	dispatcher := voiceai.NewDispatcher(logger)
	elevenLabs := voiceai.NewElevenLabsClient(cfg.ElevenLabsBaseURL, cfg.ElevenLabsAPIKey, cfg.ElevenLabsAgentID, nil)

	handlerBundle, err := handlers.NewHandlerBundle(handlers.Deps{
		SalonName:    cfg.SalonName,
		Directory:    directory,
		TimeZone:     loc,
		Appointments: appointmentSvc,
		ElevenLabs:   elevenLabs,
		Dispatcher:   dispatcher,
		Tracker:      conversation.NewTracker(contextStore, logger),
		VapiSecret:   cfg.VapiWebhookSecret,
		BaseURL:      cfg.APIBaseURL,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: failed to build handlers: %v", err)
	}
	if missing := dispatcher.Missing(); len(missing) > 0 {
		logger.Warn("main: voice tools without a handler", zap.Strings("tools", missing))
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	router.Use(middleware.Language())

	routes.RegisterRoutes(router, handlerBundle)

	port := cfg.AppPort
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting %s on %s...", cfg.SalonName, srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if reminderSrv != nil {
		reminderSrv.Shutdown()
	}
	if queueClient != nil {
		_ = queueClient.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
