package rest

import (
	"context"
	"net/http"
	"time"

	"listing-service/internal/adapters/metrics"
	core_port "listing-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// RouterConfig - параметры HTTP-слоя, не зависящие от обработчиков
type RouterConfig struct {
	RequestTimeout time.Duration
	AllowedOrigins []string
}

// NewRouter собирает маршруты сервиса. m может быть nil, тогда /metrics не публикуется.
func NewRouter(
	cfg RouterConfig,
	listingHandlers *ListingHandler,
	ingestHandlers *IngestHandler,
	healthHandlers *HealthHandler,
	m *metrics.Metrics,
	baseLogger core_port.LoggerPort,
) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
			ExposedHeaders: []string{"X-Trace-ID", "X-Total-Count"},
			MaxAge:         300,
		}))
	}
	if m != nil {
		r.Use(m.Middleware)
	}

	r.Get("/", healthHandlers.Root)
	r.Get("/healthz", healthHandlers.Healthz)
	if m != nil {
		r.Handle("/metrics", m.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if cfg.RequestTimeout > 0 {
				r.Use(middleware.Timeout(cfg.RequestTimeout))
			}
			r.Get("/listings", listingHandlers.FindListings)
			r.Get("/listings/export.csv", listingHandlers.ExportListings)
			r.Get("/listings/{id}", listingHandlers.GetListing)
		})

		// Ингест большого фида идет дольше RequestTimeout, поэтому без дедлайна
		r.Post("/listings/ingest", ingestHandlers.Ingest)
	})

	return r
}

func NewServer(port string, handler http.Handler, baseLogger core_port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
