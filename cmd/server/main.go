package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/marianaviana/atelie-catalog/internal/config"
	"github.com/marianaviana/atelie-catalog/internal/events"
	"github.com/marianaviana/atelie-catalog/internal/handlers"
	"github.com/marianaviana/atelie-catalog/internal/httpserver"
	"github.com/marianaviana/atelie-catalog/internal/logging"
	loggingmw "github.com/marianaviana/atelie-catalog/internal/middleware/logging"
	"github.com/marianaviana/atelie-catalog/internal/search"
	"github.com/marianaviana/atelie-catalog/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	config.MustNonEmpty(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	store := storage.NewGormStore(db)
	jwtSecret := []byte(cfg.JWTSecret)

	var producer events.Publisher
	if cfg.KafkaAddress != "" {
		producer = events.NewKafkaProducer([]string{cfg.KafkaAddress})
	}

	var indexer *search.Indexer
	var searchHandler *handlers.SearchHandler
	if cfg.ESURL != "" {
		esClient, err := search.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init: %v", err)
		}
		indexer = &search.Indexer{ES: esClient, Index: "products"}
		searchHandler = &handlers.SearchHandler{ES: esClient, Index: "products"}
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler:     &handlers.AuthHandler{Store: store, JWTSecret: jwtSecret},
		CategoryHandler: &handlers.CategoryHandler{Store: store, Events: producer},
		ProductHandler:  &handlers.ProductHandler{Store: store, Events: producer, Indexer: indexer},
		OrderHandler:    &handlers.OrderHandler{Store: store, Events: producer},
		ContentHandler:  &handlers.ContentHandler{Store: store},
		FaqHandler:      &handlers.FaqHandler{Store: store},
		SearchHandler:   searchHandler,
		JWTSecret:       jwtSecret,
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db handle error: %v", err)
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("producer close error: %v", err)
		}
	}

	logger.Info("shutdown complete")
}
