package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/discovery-engine/config"
	"github.com/campusconnect/discovery-engine/internal/engine"
	"github.com/campusconnect/discovery-engine/internal/metrics"
	"github.com/campusconnect/discovery-engine/internal/ranking"
	"github.com/campusconnect/discovery-engine/internal/search"
	"github.com/campusconnect/discovery-engine/store"
)

// API holds dependencies for API handlers: the index engine, the record
// store it rebuilds from, and the search/ranking services.
type API struct {
	engine   *engine.Engine
	store    *store.RecordStore
	searcher *search.Service
	ranker   *ranking.Service
	metrics  *metrics.Metrics
	cfg      config.Config
}

// NewAPI creates a new API handler structure.
func NewAPI(eng *engine.Engine, recordStore *store.RecordStore, cfg config.Config, metricsCollector *metrics.Metrics) (*API, error) {
	searcher, err := search.NewService(eng, recordStore, cfg.SuggestionLimit)
	if err != nil {
		return nil, err
	}
	return &API{
		engine:   eng,
		store:    recordStore,
		searcher: searcher,
		ranker:   ranking.NewService(),
		metrics:  metricsCollector,
		cfg:      cfg,
	}, nil
}

// SetupRoutes defines all the API routes for the discovery engine.
func SetupRoutes(router *gin.Engine, apiHandler *API) {
	router.Use(CORSMiddleware())
	router.Use(RequestSizeLimitMiddleware(apiHandler.cfg.MaxRequestBodyBytes))

	// Health check and metrics
	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Search routes
	router.GET("/search", apiHandler.SearchHandler)
	router.GET("/search/autocomplete", apiHandler.AutocompleteHandler)

	// Personalized recommendations
	router.POST("/recommendations", apiHandler.RecommendationsHandler)

	// Index management routes
	indexRoutes := router.Group("/indexes")
	{
		indexRoutes.POST("/rebuild", apiHandler.RebuildHandler) // Full async rebuild
	}

	// Job management routes
	jobRoutes := router.Group("/jobs")
	{
		jobRoutes.GET("", apiHandler.ListJobsHandler)
		jobRoutes.GET("/:jobId", apiHandler.GetJobHandler)
	}

	// Record management routes; every mutation triggers a category rebuild
	eventRoutes := router.Group("/events")
	{
		eventRoutes.GET("", apiHandler.ListEventsHandler)
		eventRoutes.POST("", apiHandler.PutEventHandler)
		eventRoutes.GET("/:id", apiHandler.GetEventHandler)
		eventRoutes.PUT("/:id", apiHandler.PutEventHandler)
		eventRoutes.DELETE("/:id", apiHandler.DeleteEventHandler)
	}
	orgRoutes := router.Group("/organizations")
	{
		orgRoutes.GET("", apiHandler.ListOrganizationsHandler)
		orgRoutes.POST("", apiHandler.PutOrganizationHandler)
		orgRoutes.GET("/:id", apiHandler.GetOrganizationHandler)
		orgRoutes.PUT("/:id", apiHandler.PutOrganizationHandler)
		orgRoutes.DELETE("/:id", apiHandler.DeleteOrganizationHandler)
	}
}

// HealthCheckHandler reports liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
