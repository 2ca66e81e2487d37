// File: tutorhq/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tutorhq/config"
	"tutorhq/cron"
	"tutorhq/database"
	availabilityRepoPkg "tutorhq/database/repository/availability"
	bookingRepoPkg "tutorhq/database/repository/booking"
	contentRepoPkg "tutorhq/database/repository/content"
	leadRepoPkg "tutorhq/database/repository/lead"
	siteRepoPkg "tutorhq/database/repository/site"
	studentRepoPkg "tutorhq/database/repository/student"
	tutorRepoPkg "tutorhq/database/repository/tutor"
	"tutorhq/handlers"
	"tutorhq/routes"
	"tutorhq/services/content"
	"tutorhq/services/crm"
	"tutorhq/services/portal"
	"tutorhq/services/scheduling"
	"tutorhq/services/site"
	"tutorhq/services/tutor"
	"tutorhq/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	tutorRepo := tutorRepoPkg.NewMongoTutorRepo()
	siteRepo := siteRepoPkg.NewMongoSiteRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	leadRepo := leadRepoPkg.NewMongoLeadRepo()
	studentRepo := studentRepoPkg.NewMongoStudentRepo()
	contentRepo := contentRepoPkg.NewMongoContentRepo()

	// task queue client for follow-up reminders.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	// services.
	tutorService := &tutor.DefaultTutorService{Repo: tutorRepo}
	siteService := &site.DefaultSiteService{Repo: siteRepo, TutorRepo: tutorRepo}
	schedulingService := &scheduling.DefaultSchedulingService{
		TutorRepo:        tutorRepo,
		SiteRepo:         siteRepo,
		AvailabilityRepo: availabilityRepo,
		BookingRepo:      bookingRepo,
		LeadRepo:         leadRepo,
		LookaheadDays:    config.AppConfig.BookingLookaheadDays,
	}
	crmService := &crm.DefaultCRMService{Repo: leadRepo, AsynqClient: asynqClient}
	contentService := &content.DefaultContentService{
		Repo:      contentRepo,
		TutorRepo: tutorRepo,
		Generator: content.NewGeminiClient(config.AppConfig.GeminiAPIKey),
	}
	portalService := &portal.DefaultPortalService{Repo: studentRepo, Storage: storageService}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		TutorSvc:      tutorService,
		SchedulingSvc: schedulingService,
		SiteSvc:       siteService,
		CRMSvc:        crmService,
		ContentSvc:    contentService,
		PortalSvc:     portalService,
	}

	routes.RegisterRoutes(router, handlerBundle, tutorRepo)

	// Background follow-up worker and dependency health monitor.
	cron.InitFollowUpWorker(leadRepo)
	utils.StartHealthMonitor([]*redis.Client{utils.CacheClient, utils.AuthCacheClient}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
