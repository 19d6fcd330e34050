package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linkhub/internal/config"
	"linkhub/internal/handler"
	"linkhub/internal/mq"
	"linkhub/internal/repository"
	"linkhub/internal/service"
	"linkhub/internal/worker"
	"linkhub/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title LinkHub API
// @version 1.0
// @description Link-in-bio backend with click and view analytics

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3001
// @BasePath /api
func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.Server.Mode)
	startedAt := time.Now()
	settings := service.SettingsFromConfig(cfg)

	// Repositories
	redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
	defer redisRepo.Close()

	mysqlRepo := repository.NewMySQLRepository(&cfg.Database.MySQL)
	defer mysqlRepo.Close()

	// Services
	visitorFilter := service.NewVisitorFilter(redisRepo.GetClient(), &cfg.Bloom)
	if !visitorFilter.IsAvailable(context.Background()) {
		log.Warn().Msg("RedisBloom not available, unique visitors are tracked with plain keys")
	}
	trafficSvc := service.NewTrafficService(redisRepo, visitorFilter, settings.Location)
	linkSvc := service.NewLinkService(mysqlRepo, redisRepo, settings)
	aggregator := service.NewAggregator(mysqlRepo, redisRepo, settings)
	querySvc := service.NewQueryService(mysqlRepo, trafficSvc, settings)

	initCtx, initCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := aggregator.Init(initCtx); err != nil {
		initCancel()
		log.Fatal().Err(err).Msg("Failed to initialize analytics summary")
	}
	if seeded, err := linkSvc.SeedDefaults(initCtx, cfg.Links.Seed); err != nil {
		log.Error().Err(err).Msg("Failed to seed default links")
	} else if seeded > 0 {
		log.Info().Int("count", seeded).Msg("Default links created")
	}
	initCancel()

	// MQ is optional; without it traffic stats are recorded in-process
	var publisher mq.ProducerInterface
	var mqProducer *mq.Producer
	var mqConsumer mq.ConsumerInterface
	if cfg.RocketMQ.NameServer != "" {
		mqProducer, err = mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, running without MQ")
		} else {
			publisher = mqProducer
		}

		consumer, err := mq.NewConsumer(&cfg.RocketMQ, func(ctx context.Context, msg *mq.TrackEventMessage) error {
			return trafficSvc.RecordTraffic(ctx, msg.ToTrafficEvent())
		})
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			mqConsumer = consumer
			go func() {
				if err := consumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
		}
	}

	// Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	handlers := &handler.Handlers{
		Links:     handler.NewLinkHandler(linkSvc),
		Track:     handler.NewTrackHandler(aggregator, trafficSvc, publisher),
		Analytics: handler.NewAnalyticsHandler(querySvc, aggregator),
		Health:    handler.NewHealthHandler(startedAt),
	}
	handlers.Register(router.Group(cfg.Server.BasePath))
	setupSwagger(router)

	// Rollups
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	rollup := worker.NewRollupWorker(aggregator, cfg.Analytics.RollupInterval)
	go rollup.Start(workerCtx)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	if mqConsumer != nil {
		if err := mqConsumer.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close RocketMQ consumer")
		}
	}
	if mqProducer != nil {
		if err := mqProducer.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close RocketMQ producer")
		}
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		return
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
