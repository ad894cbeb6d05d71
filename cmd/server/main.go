package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/saikrishna-79/portfolio-pro/adapters/event"
	httpAdapter "github.com/saikrishna-79/portfolio-pro/adapters/http"
	"github.com/saikrishna-79/portfolio-pro/adapters/persistence"
	authUC "github.com/saikrishna-79/portfolio-pro/internal/application/usecase/auth"
	linkUC "github.com/saikrishna-79/portfolio-pro/internal/application/usecase/link"
	profileUC "github.com/saikrishna-79/portfolio-pro/internal/application/usecase/profile"
	projectUC "github.com/saikrishna-79/portfolio-pro/internal/application/usecase/project"
	searchUC "github.com/saikrishna-79/portfolio-pro/internal/application/usecase/search"
	skillUC "github.com/saikrishna-79/portfolio-pro/internal/application/usecase/skill"
	workUC "github.com/saikrishna-79/portfolio-pro/internal/application/usecase/work"
	"github.com/saikrishna-79/portfolio-pro/internal/config"
	"github.com/saikrishna-79/portfolio-pro/pkg/auth"
	"github.com/saikrishna-79/portfolio-pro/pkg/logger"
	"github.com/saikrishna-79/portfolio-pro/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	log := logger.NewZapLogger(cfg.App.Env)
	log.Info("starting portfolio API server", zap.String("env", cfg.App.Env))

	tp, err := tracing.NewTracerProvider(cfg, log, cfg.App.ServiceName)
	if err != nil {
		log.Fatal("cannot init tracer provider", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Error("tracer provider shutdown failed", err)
		}
	}()

	dbPool, err := persistence.NewPostgresPool(cfg, log)
	if err != nil {
		log.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		log.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg, log)
	if err != nil {
		log.Fatal("cannot init Kafka producer", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, log)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, log)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, log)
	workRepo := persistence.NewPostgresWorkRepo(dbPool, log)
	linkRepo := persistence.NewPostgresLinkRepo(dbPool, log)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	viewCache := persistence.NewRedisCache(redisClient)

	// Use cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, log)
	profileUseCase := profileUC.NewUseCase(profileRepo, skillRepo, projectRepo, workRepo, linkRepo, viewCache, kafkaClient, log)
	skillUseCase := skillUC.NewUseCase(skillRepo, kafkaClient, log)
	projectUseCase := projectUC.NewUseCase(projectRepo, kafkaClient, log)
	workUseCase := workUC.NewUseCase(workRepo, kafkaClient, log)
	linkUseCase := linkUC.NewUseCase(linkRepo, kafkaClient, log)
	searchUseCase := searchUC.NewUseCase(profileRepo, skillRepo, projectRepo, workRepo, linkRepo, log)

	// HTTP handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase)
	healthHandler := httpAdapter.NewHealthHandler(cfg)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase)
	skillHandler := httpAdapter.NewSkillHandler(skillUseCase)
	projectHandler := httpAdapter.NewProjectHandler(projectUseCase)
	workHandler := httpAdapter.NewWorkHandler(workUseCase)
	linkHandler := httpAdapter.NewLinkHandler(linkUseCase)
	searchHandler := httpAdapter.NewSearchHandler(searchUseCase)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(httpAdapter.ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler.Check)
		api.POST("/auth/login", authHandler.Login)

		private := api.Group("/")
		private.Use(httpAdapter.AuthMiddleware(jwtSvc))
		{
			private.POST("/profile", profileHandler.Create)
			private.GET("/profile", profileHandler.Get)
			private.PUT("/profile", profileHandler.Update)
			private.DELETE("/profile", profileHandler.Delete)

			skills := private.Group("/skills")
			{
				skills.POST("", skillHandler.Create)
				skills.GET("", skillHandler.List)
				skills.GET("/top", skillHandler.Top)
				skills.GET("/:id", skillHandler.Get)
				skills.PUT("/:id", skillHandler.Update)
				skills.DELETE("/:id", skillHandler.Delete)
			}

			projects := private.Group("/projects")
			{
				projects.POST("", projectHandler.Create)
				projects.GET("", projectHandler.List)
				projects.GET("/:id", projectHandler.Get)
				projects.PUT("/:id", projectHandler.Update)
				projects.DELETE("/:id", projectHandler.Delete)
			}

			work := private.Group("/work")
			{
				work.POST("", workHandler.Create)
				work.GET("", workHandler.List)
				work.GET("/:id", workHandler.Get)
				work.PUT("/:id", workHandler.Update)
				work.DELETE("/:id", workHandler.Delete)
			}

			links := private.Group("/links")
			{
				links.POST("", linkHandler.Create)
				links.GET("", linkHandler.List)
				links.GET("/:id", linkHandler.Get)
				links.PUT("/:id", linkHandler.Update)
				links.DELETE("/:id", linkHandler.Delete)
			}

			private.GET("/search", searchHandler.Search)
		}
	}

	log.Info("server listening", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatal("cannot run server", err)
	}
}
