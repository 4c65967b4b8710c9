package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fieldmap/internal/api"
	"fieldmap/internal/config"
	"fieldmap/internal/enricher"
	"fieldmap/internal/geocode"
	"fieldmap/internal/importer"
	"fieldmap/internal/store"
)

// Server is the HTTP server hosting the ingestion and dashboard API.
type Server struct {
	router *gin.Engine
	store  *store.Store
}

// NewServer wires the pipeline and the API around a fresh in-memory store.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataStore := store.New()

	// Every run gets its own resolver so the geocode cache is scoped to the
	// ingestion run, never shared across uploads.
	geocodeCfg := cfg.Geocode
	newEnricher := func() *enricher.Enricher {
		client := geocode.NewClient(geocode.ClientOptions{
			BaseURL:        geocodeCfg.BaseURL,
			UserAgent:      geocodeCfg.UserAgent,
			AcceptLanguage: geocodeCfg.AcceptLanguage,
			Timeout:        geocodeCfg.Timeout(),
		})
		resolver := geocode.NewResolver(client, geocodeCfg.RequestDelay())
		return enricher.New(resolver, geocodeCfg.MinAddressLen)
	}

	coordinator := importer.NewCoordinator(dataStore, newEnricher)
	handler := api.NewHandler(dataStore, coordinator)

	s := &Server{
		router: gin.Default(),
		store:  dataStore,
	}

	s.router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	apiGroup := s.router.Group("/api")
	{
		handler.RegisterRoutes(apiGroup)
	}

	return s
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// GetStore exposes the dataset store (used by tests).
func (s *Server) GetStore() *store.Store {
	return s.store
}
