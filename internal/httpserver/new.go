package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"planboard/internal/actionitem"
	"planboard/internal/assistant"
	"planboard/internal/businessplan"
	"planboard/internal/category"
	"planboard/internal/middleware"
	"planboard/internal/selection"
	"planboard/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	// Domain use cases
	actionItemUC actionitem.UseCase
	categoryUC   category.UseCase
	planUC       businessplan.UseCase
	selectionUC  selection.UseCase
	assistantUC  assistant.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	ActionItemUC actionitem.UseCase
	CategoryUC   category.UseCase
	PlanUC       businessplan.UseCase
	SelectionUC  selection.UseCase
	AssistantUC  assistant.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.Default(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		mw:           cfg.Middleware,
		actionItemUC: cfg.ActionItemUC,
		categoryUC:   cfg.CategoryUC,
		planUC:       cfg.PlanUC,
		selectionUC:  cfg.SelectionUC,
		assistantUC:  cfg.AssistantUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.actionItemUC == nil || srv.categoryUC == nil || srv.planUC == nil ||
		srv.selectionUC == nil || srv.assistantUC == nil {
		return errors.New("all domain use cases are required")
	}
	return nil
}
