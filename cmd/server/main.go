package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/amribrahim/goshop/internal/config"
	"github.com/amribrahim/goshop/internal/es"
	"github.com/amribrahim/goshop/internal/events"
	"github.com/amribrahim/goshop/internal/httpserver"
	"github.com/amribrahim/goshop/internal/logging"
	loggingmw "github.com/amribrahim/goshop/internal/middleware/logging"
	"github.com/amribrahim/goshop/internal/repo"
	"github.com/amribrahim/goshop/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)

	db, err := config.InitDB(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("db init failed", "error", err)
		os.Exit(1)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	esClient, err := es.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
	if err != nil {
		logger.Error("elasticsearch init failed", "error", err)
		os.Exit(1)
	}

	r := repo.New(db)

	authSvc := &service.AuthService{Repo: r, JWTSecret: cfg.JWTSecret, Producer: producer}
	userSvc := &service.UserService{Repo: r}
	categorySvc := &service.CategoryService{Repo: r}
	productSvc := &service.ProductService{Repo: r, Producer: producer, ES: esClient, ESIndex: "products"}
	reviewSvc := &service.ReviewService{Repo: r}
	cartSvc := &service.CartService{Repo: r, Producer: producer}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		JWTSecret:       cfg.JWTSecret,
		AuthHandler:     &httpserver.AuthHandler{Svc: authSvc},
		UserHandler:     &httpserver.UserHandler{Users: userSvc, Auth: authSvc},
		CategoryHandler: &httpserver.CategoryHandler{Svc: categorySvc},
		ProductHandler:  &httpserver.ProductHandler{Svc: productSvc},
		ReviewHandler:   &httpserver.ReviewHandler{Svc: reviewSvc},
		CartHandler:     &httpserver.CartHandler{Svc: cartSvc},
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
