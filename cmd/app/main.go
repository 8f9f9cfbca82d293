package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"procurement/cmd"
	"procurement/internal/adapters/in/http/openapi"
	"procurement/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := cmd.NewLogger(configs.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	publisher, closePublisher, err := cmd.NewOrderEventPublisher(configs, logger)
	if err != nil {
		log.Fatalf("Error creating event publisher: %v", err)
	}
	defer func() {
		if closeErr := closePublisher(); closeErr != nil {
			logger.Error("Failed to close event publisher", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(configs, gormDB, publisher, logger)

	if configs.AdminUsername != "" {
		userHandler := app.CreateUserCommandHandler()
		if err = userHandler.Bootstrap(ctx, configs.AdminUsername); err != nil {
			log.Fatalf("Error bootstrapping admin %q: %v", configs.AdminUsername, err)
		}
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort)
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string) {
	doc, err := openapi.Load(ctx)
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}
	if err = openapi.Register(doc); err != nil {
		log.Fatalf("Error registering OpenAPI document: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	server, err := app.CreateHTTPServer(registry)
	if err != nil {
		log.Fatalf("Error creating HTTP server: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	server.Register(e)

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
