package api

import (
	"github.com/gin-gonic/gin"

	"fieldmap/internal/importer"
	"fieldmap/internal/store"
)

// Handler serves the dashboard API.
type Handler struct {
	store       *store.Store
	coordinator *importer.Coordinator
}

// NewHandler creates the API handler.
func NewHandler(store *store.Store, coordinator *importer.Coordinator) *Handler {
	return &Handler{
		store:       store,
		coordinator: coordinator,
	}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	// Ingestion (SSE progress stream)
	router.POST("/import", h.Import)

	// Derived views for the presentation layer
	router.GET("/records", h.ListRecords)
	router.GET("/projects", h.ListProjects)
	router.GET("/summary", h.GetSummary)
	router.GET("/trends", h.GetTrends)
}
