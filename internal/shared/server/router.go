package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerhub-backend/internal/shared/config"
	"careerhub-backend/internal/shared/metrics"
	"careerhub-backend/internal/shared/server/middleware"
	"careerhub-backend/internal/shared/server/respond"
)

// RouteRegistrar is implemented by every feature handler.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config config.Config

	// Open routes: no identity required.
	AnalysisHandler RouteRegistrar
	ExtractHandler  RouteRegistrar

	// Personalized routes: identity required.
	ProfileHandler  RouteRegistrar
	LearningHandler RouteRegistrar
	CareerHandler   RouteRegistrar
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Identity(),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())

	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}
	if deps.ExtractHandler != nil {
		deps.ExtractHandler.RegisterRoutes(api)
	}

	personalized := api.Group("")
	personalized.Use(middleware.RequireIdentity())
	if deps.ProfileHandler != nil {
		deps.ProfileHandler.RegisterRoutes(personalized)
	}
	if deps.LearningHandler != nil {
		deps.LearningHandler.RegisterRoutes(personalized)
	}
	if deps.CareerHandler != nil {
		deps.CareerHandler.RegisterRoutes(personalized)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
