package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/namdhoang/portfolio-hub/adapters/event"
	httpAdapter "github.com/namdhoang/portfolio-hub/adapters/http"
	"github.com/namdhoang/portfolio-hub/adapters/persistence"
	profileUC "github.com/namdhoang/portfolio-hub/internal/application/usecase/profile"
	queryUC "github.com/namdhoang/portfolio-hub/internal/application/usecase/query"
	"github.com/namdhoang/portfolio-hub/internal/config"
	"github.com/namdhoang/portfolio-hub/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	queryRepo := persistence.NewPostgresQueryRepo(dbPool, appLogger)
	stats := persistence.NewRedisStats(redisClient)

	// Use cases
	createProfileUseCase := profileUC.NewCreateProfileUseCase(profileRepo, kafkaClient, appLogger)
	getProfileUseCase := profileUC.NewGetProfileUseCase(profileRepo, stats, appLogger)
	listProfilesUseCase := profileUC.NewListProfilesUseCase(profileRepo)
	updateProfileUseCase := profileUC.NewUpdateProfileUseCase(profileRepo, kafkaClient, appLogger)
	deleteProfileUseCase := profileUC.NewDeleteProfileUseCase(profileRepo, kafkaClient, appLogger)
	profileViewsUseCase := profileUC.NewProfileViewsUseCase(profileRepo, stats)

	listProjectsUseCase := queryUC.NewListProjectsUseCase(queryRepo)
	topSkillsUseCase := queryUC.NewTopSkillsUseCase(queryRepo)
	searchProfilesUseCase := queryUC.NewSearchProfilesUseCase(queryRepo)

	// HTTP handlers
	profileHandler := httpAdapter.NewProfileHandler(
		createProfileUseCase,
		getProfileUseCase,
		listProfilesUseCase,
		updateProfileUseCase,
		deleteProfileUseCase,
		profileViewsUseCase,
		appLogger,
	)
	queryHandler := httpAdapter.NewQueryHandler(
		listProjectsUseCase,
		topSkillsUseCase,
		searchProfilesUseCase,
		appLogger,
	)

	router := httpAdapter.NewRouter(profileHandler, queryHandler, appLogger)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", err)
	}
}
