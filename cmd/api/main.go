package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"smart-quick-add/config"
	_ "smart-quick-add/docs" // Swagger docs
	"smart-quick-add/internal/category"
	"smart-quick-add/internal/datetime"
	"smart-quick-add/internal/detector"
	"smart-quick-add/internal/httpserver"
	"smart-quick-add/internal/quickadd/usecase"
	"smart-quick-add/pkg/datemath"
	"smart-quick-add/pkg/log"
	"smart-quick-add/pkg/postag"
)

// @title       Smart Quick-Add API
// @description Natural-language quick-add parsing: free text in, structured reminder or event out.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Println("Failed to load .env: ", err)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Quick-Add...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Parsing primitives
	dateParser, err := datemath.NewEngine(cfg.Parser.DateEngine, cfg.Parser.Timezone, datemath.WithDefaultHour(cfg.Parser.DefaultHour))
	if err != nil {
		logger.Warnf(ctx, "Date engine %q in %q unavailable, falling back to rules/UTC: %v", cfg.Parser.DateEngine, cfg.Parser.Timezone, err)
		dateParser, _ = datemath.NewEngine(datemath.EngineRules, "UTC", datemath.WithDefaultHour(cfg.Parser.DefaultHour))
	}
	logger.Infof(ctx, "Date engine: %s (%s)", cfg.Parser.DateEngine, cfg.Parser.Timezone)

	tagger, err := postag.New(cfg.Parser.POSTagger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize POS tagger: ", err)
		return
	}

	categories, err := category.NewFromConfig(cfg.Categories.File)
	if err != nil {
		logger.Error(ctx, "Failed to load categories: ", err)
		return
	}

	// 4. Quick-add UseCase
	quickAddUC := usecase.New(
		detector.New(tagger, logger),
		datetime.New(dateParser, logger),
		categories,
		usecase.Config{
			EventDuration: cfg.Parser.EventDuration(),
			SessionSize:   cfg.Session.Size,
			SessionTTL:    cfg.Session.TTL,
		},
		logger,
	)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		QuickAddUseCase: quickAddUC,
		RateLimitPerMin: cfg.RateLimit.PerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
