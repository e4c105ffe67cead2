package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"eventline/config"
	"eventline/internal/adapters/email"
	httpdelivery "eventline/internal/delivery/http"
	"eventline/internal/delivery/http/controllers"
	"eventline/internal/delivery/http/middleware"
	"eventline/internal/repository/mongodb"
	"eventline/internal/services"
)

// @title Eventline API
// @version 1.0
// @description Events listing and booking API backed by a MongoDB document store.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

const serviceTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger()

	// The connector is lazy: nothing is dialed until the first repository
	// call needs the client.
	conn := mongodb.NewConnector(cfg.MongoURI)
	eventRepo := mongodb.NewEventRepository(conn, cfg.DBName)
	bookingRepo := mongodb.NewBookingRepository(conn, cfg.DBName)

	// Index creation is best effort at startup; if the store is not up yet
	// the first write still works once it is, minus the unique backstop
	// until the next boot.
	idxCtx, cancel := context.WithTimeout(context.Background(), serviceTimeout)
	if err := mongodb.EnsureIndexes(idxCtx, conn, cfg.DBName); err != nil {
		logger.Warn("could not ensure indexes", "err", err)
	}
	cancel()

	mailer := email.NewMailer(email.Config{
		Provider:        cfg.EmailProvider,
		FromAddress:     cfg.EmailFrom,
		FromName:        cfg.EmailFromName,
		Region:          cfg.SESRegion,
		AccessKeyID:     cfg.SESAccessKeyID,
		SecretAccessKey: cfg.SESSecretKey,
	}, logger)

	eventService := services.NewEventService(eventRepo, serviceTimeout)
	bookingService := services.NewBookingService(bookingRepo, eventRepo, mailer, logger, serviceTimeout)

	router := httpdelivery.NewRouter(
		controllers.NewEventController(logger, eventService),
		controllers.NewBookingController(logger, bookingService),
	)

	handler := middleware.Logging(logger, router)
	if len(cfg.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.AllowedOrigins, handler)
	}

	addr := ":" + cfg.Port
	logger.Info("server listening", "addr", addr, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
