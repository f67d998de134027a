package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/theoremus-urban-solutions/gtfslake-realtime/cache"
	"github.com/theoremus-urban-solutions/gtfslake-realtime/config"
	"github.com/theoremus-urban-solutions/gtfslake-realtime/lake"
)

// Server serves the three GTFS-Realtime feed endpoints.
type Server struct {
	cfg     *config.AppConfig
	lake    *lake.Lake
	store   cache.Store
	handler http.Handler
	http    *http.Server
}

// New wires a server from the configuration. When caching is enabled the
// response cache is backed by the configured memcached endpoint.
func New(cfg *config.AppConfig, lk *lake.Lake) *Server {
	var store cache.Store
	if cfg.App.CachingEnabled {
		store = cache.NewMemcached(cfg.Caching.ServerEndpoint)
	}
	return NewWithStore(cfg, lk, store)
}

// NewWithStore wires a server with an explicit cache store; a nil store
// disables caching. Tests use this with an in-memory store.
func NewWithStore(cfg *config.AppConfig, lk *lake.Lake, store cache.Store) *Server {
	s := &Server{cfg: cfg, lake: lk, store: store}

	mux := http.NewServeMux()
	mux.HandleFunc(cfg.App.Routing.ServiceAlertsEndpoint, s.handleServiceAlerts)
	mux.HandleFunc(cfg.App.Routing.TripUpdatesEndpoint, s.handleTripUpdates)
	mux.HandleFunc(cfg.App.Routing.VehiclePositionsEndpoint, s.handleVehiclePositions)

	s.handler = http.Handler(mux)
	if cfg.App.CorsEnabled {
		s.handler = cors.New(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{http.MethodGet},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}).Handler(s.handler)
	}

	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler returns the route handler, including the CORS wrapper when
// enabled.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins serving in the background.
func (s *Server) Start() {
	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", s.http.Addr)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, then drains the
// server.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	} else {
		log.Printf("server shut down successfully")
	}
}
