package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Gabriel-Dorassi/tvtec-portal/api/swagger"
	"github.com/Gabriel-Dorassi/tvtec-portal/internal/handler"
	"github.com/Gabriel-Dorassi/tvtec-portal/internal/middleware"
	"github.com/Gabriel-Dorassi/tvtec-portal/internal/service"
	"github.com/Gabriel-Dorassi/tvtec-portal/internal/session"
	"github.com/Gabriel-Dorassi/tvtec-portal/internal/upstream"
	"github.com/Gabriel-Dorassi/tvtec-portal/pkg/config"
	"github.com/Gabriel-Dorassi/tvtec-portal/pkg/logger"
	corsmiddleware "github.com/Gabriel-Dorassi/tvtec-portal/pkg/middleware/cors"
	reqidmiddleware "github.com/Gabriel-Dorassi/tvtec-portal/pkg/middleware/requestid"
)

// @title TVTEC Portal Gateway
// @version 0.1.0
// @description Gateway for the TVTEC course catalog and enrollment portal
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	client := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, logr)

	var redisClient *redis.Client
	if cfg.Session.Store == config.SessionStoreRedis {
		redisClient, err = session.NewRedisClient(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to redis", "error", err)
		}
	}

	var store session.Store
	if redisClient != nil {
		store = session.NewRedisStore(redisClient)
	} else {
		store = session.NewFileStore(cfg.Session.FilePath)
	}

	sessions := session.NewManager(store, client, logr, cfg.Session.RequireExp)

	validate := validator.New()
	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(sessions, validate, logr)
	courseSvc := service.NewCourseService(client, sessions, redisClient, cfg.Courses.CacheTTL, metricsSvc, validate, logr)
	enrollmentSvc := service.NewEnrollmentService(courseSvc, client, sessions, metricsSvc, logr)
	reportSvc := service.NewReportService(client, sessions, metricsSvc, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	courseHandler := handler.NewCourseHandler(courseSvc)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc)
	reportHandler := handler.NewReportHandler(reportSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if cfg.Metrics.Enabled {
		r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		auth := api.Group("/auth")
		auth.POST("/login", authHandler.Login)
		auth.GET("/session", authHandler.Session)
		auth.DELETE("/session", authHandler.Logout)
		auth.GET("/validate", authHandler.Validate)

		api.GET("/cursos", courseHandler.List)
		api.POST("/inscricoes", enrollmentHandler.Submit)
		api.POST("/inscricoes/validar", enrollmentHandler.Assist)

		admin := api.Group("/admin", middleware.RequireAdmin(sessions))
		admin.POST("/cursos", courseHandler.Create)
		admin.DELETE("/cursos/:id", courseHandler.Delete)
		admin.GET("/inscricoes", enrollmentHandler.List)
		admin.DELETE("/inscricoes/:id", enrollmentHandler.Delete)
		admin.POST("/relatorio", reportHandler.Generate)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("gateway starting", "addr", addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("gateway failed", "error", err)
	}
}
