package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/kmdeleon/ordering_service/internal/authgate"
	"github.com/kmdeleon/ordering_service/internal/config"
	pkgdb "github.com/kmdeleon/ordering_service/internal/db"
	"github.com/kmdeleon/ordering_service/internal/events"
	"github.com/kmdeleon/ordering_service/internal/httpserver"
	"github.com/kmdeleon/ordering_service/internal/logging"
	loggingmw "github.com/kmdeleon/ordering_service/internal/middleware/logging"
	"github.com/kmdeleon/ordering_service/internal/repo"
	"github.com/kmdeleon/ordering_service/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	var producer events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kp := events.NewKafkaPublisher(cfg.KafkaBrokers)
		defer kp.Close()
		producer = kp
	}

	repo := &repo.GormRepo{DB: db}
	svc := &service.DeliveryService{Repo: repo}
	handler := &httpserver.DeliveryHTTP{Svc: svc, Producer: producer}

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	gate := authgate.NewGate(authgate.NewClient(cfg.AuthHTTPURL))

	httpserver.Register(e, &httpserver.Deps{
		DeliveryHandler: handler,
		Gate:            gate,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("delivery listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("delivery stopped")
}
