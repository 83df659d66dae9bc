package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contribhub/internal/config"
	"contribhub/internal/github"
	"contribhub/internal/handler"
	"contribhub/internal/middleware"
	"contribhub/internal/model"
	"contribhub/internal/repository"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Logger *zap.Logger
}

func Init(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	if cfg.Migrate {
		if err := repository.Migrate(cfg.MigrationURL()); err != nil {
			return nil, fmt.Errorf("failed to migrate DB: %w", err)
		}
		logger.Info("database schema up to date")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	logger.Info("connected to database", zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))

	if err := handler.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.GinZapMiddleware(logger))

	storage := repository.NewStorage(db)

	taskHandler := handler.NewTaskHandler(storage, storage.ProjectManagers(),
		func(ctx context.Context, token string) model.IssueFinder {
			return github.NewIssues(github.NewJSONResources(ctx, token), cfg.GithubAPIURL)
		})
	orgHandler := handler.NewOrganizationHandler(storage.Users(), storage,
		func(ctx context.Context, token string) github.Resources {
			return github.NewJSONResources(ctx, token)
		}, cfg.GithubAPIURL)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	{
		// Task routes
		authorized.GET("/tasks", taskHandler.List)
		authorized.GET("/tasks/lookup", taskHandler.GetByID)
		authorized.POST("/tasks", taskHandler.Register)

		// Organization routes
		authorized.GET("/orgs", orgHandler.List)
		authorized.GET("/orgs/:login/repos", orgHandler.Repos)
	}

	return &Server{
		Engine: r,
		DB:     db,
		Config: cfg,
		Logger: logger,
	}, nil
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.Logger.Info("server running", zap.String("port", s.Config.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Fatal("failed to listen", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.Logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	s.Logger.Info("server exited properly")
}
