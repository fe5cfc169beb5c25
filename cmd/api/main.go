package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"skillbridge/internal/app"
	"skillbridge/internal/config"
	"skillbridge/internal/database"
	apphttp "skillbridge/internal/http"
	"skillbridge/internal/http/handlers"
	httpmw "skillbridge/internal/http/middleware"
	"skillbridge/internal/observability"
	"skillbridge/internal/repository/mongodb"
	"skillbridge/internal/security"
	"skillbridge/internal/storage"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	db := database.NewMongo(database.MongoConfig{
		URI:      cfg.MongoURI,
		Database: cfg.MongoDB,
	})
	if err := mongodb.EnsureIndexes(db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	learnerRepo := mongodb.NewLearnerRepository(db)
	employerRepo := mongodb.NewEmployerRepository(db)
	skillSetRepo := mongodb.NewSkillSetRepository(db)
	questionRepo := mongodb.NewQuestionRepository(db)

	var store storage.Store
	if cfg.StorageDriver == "s3" {
		store = storage.NewS3Store(storage.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	} else {
		store = storage.NewDiskStore(cfg.UploadDir)
	}

	identity := security.NewEmailBearer()
	authService := app.NewAuthService(learnerRepo, employerRepo, identity, logger, cfg.BcryptCost)
	profileService := app.NewProfileService(learnerRepo, logger, cfg.SaveRetries)
	jobService := app.NewJobService(employerRepo, learnerRepo, logger, cfg.SaveRetries)
	catalogService := app.NewCatalogService(skillSetRepo, questionRepo)

	var limiter httpmw.Limiter = httpmw.NewRateLimiter()
	if cfg.RedisAddr != "" {
		limiter = httpmw.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:    handlers.NewAuthHandler(authService, limiter),
		ProfileHandler: handlers.NewProfileHandler(profileService),
		UploadHandler:  handlers.NewUploadHandler(profileService, store, cfg.MaxUploadBytes),
		JobHandler:     handlers.NewJobHandler(jobService),
		CatalogHandler: handlers.NewCatalogHandler(catalogService),
		Limiter:        limiter,
		Logger:         logger,
		MaxBodyBytes:   cfg.MaxUploadBytes,
		RequestTimeout: cfg.RequestTimeout,
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
