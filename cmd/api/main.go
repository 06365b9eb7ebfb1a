package main

import (
	"context"
	"fmt"

	"planboard/config"
	_ "planboard/docs" // Swagger docs
	actionItemRepo "planboard/internal/actionitem/repository/cached"
	actionItemPlanner "planboard/internal/actionitem/repository/planner"
	actionItemUsecase "planboard/internal/actionitem/usecase"
	assistantPlanner "planboard/internal/assistant/repository/planner"
	assistantStore "planboard/internal/assistant/store"
	assistantUsecase "planboard/internal/assistant/usecase"
	planPlanner "planboard/internal/businessplan/repository/planner"
	planUsecase "planboard/internal/businessplan/usecase"
	categoryUsecase "planboard/internal/category/usecase"
	"planboard/internal/httpserver"
	"planboard/internal/middleware"
	selectionStore "planboard/internal/selection/store"
	selectionUsecase "planboard/internal/selection/usecase"
	"planboard/pkg/deepseek"
	"planboard/pkg/log"
	"planboard/pkg/planapi"
	"planboard/pkg/suggest"
)

// @title       Planboard API
// @description Business plan and action item service: derived categories, selection sync, and an AI writing assistant over an upstream planner API.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
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

	ctx := context.Background()
	logger.Info(ctx, "Starting Planboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Planner URL: %s", cfg.Planner.URL)

	// 3. Upstream client
	plannerClient := planapi.NewClient(cfg.Planner.URL, cfg.Planner.AccessToken)

	// 4. Repositories
	itemRepo := actionItemRepo.New(
		actionItemPlanner.New(plannerClient, logger),
		cfg.Cache.ListTTL,
		logger,
	)
	planRepo := planPlanner.New(plannerClient, logger)
	conversationRepo := assistantPlanner.New(plannerClient, logger)

	// 5. Use cases
	actionItemUC := actionItemUsecase.New(itemRepo, logger)
	categoryUC := categoryUsecase.New(itemRepo, logger)
	planUC := planUsecase.New(planRepo, logger)
	selectionUC := selectionUsecase.New(selectionStore.New(cfg.Session.SelectionTTL), categoryUC, logger)

	// 6. Suggestion provider chain: the planner API first, DeepSeek as
	// fallback when a key is configured.
	providers := []suggest.Provider{suggest.NewRemoteProvider(plannerClient)}
	if cfg.Suggest.DeepSeek.APIKey != "" {
		dsClient, dsErr := deepseek.New(deepseek.Config{
			APIKey:  cfg.Suggest.DeepSeek.APIKey,
			BaseURL: cfg.Suggest.DeepSeek.BaseURL,
			Model:   cfg.Suggest.DeepSeek.Model,
		})
		if dsErr != nil {
			logger.Warnf(ctx, "DeepSeek fallback not available: %v", dsErr)
		} else {
			providers = append(providers, suggest.NewDeepSeekProvider(dsClient))
			logger.Info(ctx, "DeepSeek fallback provider enabled")
		}
	}
	suggester := suggest.NewManager(providers, &suggest.Config{
		FallbackEnabled: cfg.Suggest.FallbackEnabled,
		RetryAttempts:   cfg.Suggest.RetryAttempts,
		RetryDelay:      cfg.Suggest.RetryDelay,
		MaxTotalTimeout: cfg.Suggest.MaxTotalTimeout,
	}, logger)

	assistantUC := assistantUsecase.New(
		conversationRepo,
		assistantStore.New(cfg.Session.AssistantTTL),
		planUC,
		suggester,
		logger,
	)

	// 7. HTTP Server
	mw := middleware.New(logger, cfg.Auth.APIKey, cfg.RateLimit.PerMin)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   mw,
		ActionItemUC: actionItemUC,
		CategoryUC:   categoryUC,
		PlanUC:       planUC,
		SelectionUC:  selectionUC,
		AssistantUC:  assistantUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
