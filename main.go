package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"notemark/config"
	"notemark/handler"
	"notemark/middleware"
	"notemark/repository"
	"notemark/services"
	"notemark/usecase"
)

func setupRouter(cfg *config.Config, store *repository.Store, titleCache *redis.Client, logger *zap.Logger) *gin.Engine {
	tokens := services.NewTokenService(cfg.JWT)
	fetcher := services.NewTitleFetcher(cfg.Fetch.Timeout, titleCache, logger)

	userService := &usecase.UserService{
		Repo:   repository.GetUsersRepo(store),
		Tokens: tokens,
	}
	noteService := &usecase.NoteService{
		Repo: repository.GetNotesRepo(store),
	}
	bookmarkService := &usecase.BookmarkService{
		Repo:    repository.GetBookmarksRepo(store),
		Fetcher: fetcher,
	}

	authHandler := handler.NewAuthHandler(userService, logger)
	notesHandler := handler.NewNotesHandler(noteService, logger)
	bookmarksHandler := handler.NewBookmarksHandler(bookmarkService, logger)
	titleHandler := handler.NewTitleHandler(fetcher, logger)
	healthHandler := handler.NewHealthHandler(store)

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.RequestLoggingMiddleware(logger))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestSizeLimiter(middleware.MaxRequestBodyBytes))
	router.Use(middleware.MetricsMiddleware())

	// Public routes
	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.AuthMiddleware(tokens), authHandler.Me)
	}

	router.POST("/fetch-title", titleHandler.FetchTitle)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected resource routes
	notes := router.Group("/notes")
	notes.Use(middleware.AuthMiddleware(tokens))
	{
		notes.GET("", notesHandler.List)
		notes.POST("", notesHandler.Create)
		notes.GET("/:id", notesHandler.Get)
		notes.PUT("/:id", notesHandler.Update)
		notes.DELETE("/:id", notesHandler.Delete)
	}

	bookmarks := router.Group("/bookmarks")
	bookmarks.Use(middleware.AuthMiddleware(tokens))
	{
		bookmarks.GET("", bookmarksHandler.List)
		bookmarks.POST("", bookmarksHandler.Create)
		bookmarks.GET("/:id", bookmarksHandler.Get)
		bookmarks.PUT("/:id", bookmarksHandler.Update)
		bookmarks.DELETE("/:id", bookmarksHandler.Delete)
	}

	return router
}

func main() {
	// A missing .env is fine; the environment may be set by the host.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		panic(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load(logger)

	ctx := context.Background()

	store, err := repository.NewStore(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to initialize store", zap.Error(err))
	}

	if err := repository.SetupIndexes(store.Database()); err != nil {
		logger.Fatal("failed to create indexes", zap.Error(err))
	}

	var titleCache *redis.Client
	if cfg.RedisURL != "" {
		titleCache, err = services.NewTitleCache(cfg.RedisURL)
		if err != nil {
			logger.Warn("title cache unavailable, continuing without it", zap.Error(err))
			titleCache = nil
		}
	}

	router := setupRouter(cfg, store, titleCache, logger)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	sig := <-signalChan
	logger.Info("shutting down", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if titleCache != nil {
		if err := titleCache.Close(); err != nil {
			logger.Error("redis close failed", zap.Error(err))
		}
	}
	if err := store.Close(shutdownCtx); err != nil {
		logger.Error("store close failed", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
