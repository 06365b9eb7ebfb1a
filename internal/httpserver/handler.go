package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	actionItemHTTP "planboard/internal/actionitem/delivery/http"
	assistantHTTP "planboard/internal/assistant/delivery/http"
	planHTTP "planboard/internal/businessplan/delivery/http"
	categoryHTTP "planboard/internal/category/delivery/http"
	"planboard/internal/model"
	selectionHTTP "planboard/internal/selection/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api/v1")

	actionItemHTTP.RegisterRoutes(api, actionItemHTTP.New(srv.l, srv.actionItemUC), srv.mw)
	categoryHTTP.RegisterRoutes(api, categoryHTTP.New(srv.l, srv.categoryUC), srv.mw)
	planHTTP.RegisterRoutes(api, planHTTP.New(srv.l, srv.planUC), srv.mw)
	selectionHTTP.RegisterRoutes(api, selectionHTTP.New(srv.l, srv.selectionUC), srv.mw)
	assistantHTTP.RegisterRoutes(api, assistantHTTP.New(srv.l, srv.assistantUC), srv.mw)
}
