package server

import (
	"context"
	"net/http"

	"github.com/club59/pongking/internal/app/club"
	"github.com/club59/pongking/internal/notify"
	"github.com/club59/pongking/pkg/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type server struct {
	address  string
	config   Config
	upgrader websocket.Upgrader

	service  *club.Service
	notifier *notify.RedisNotifier
}

// NewServer wires the HTTP surface around an already-constructed
// service. The notifier may be nil for single-instance runs.
func NewServer(cfg Config, service *club.Service, notifier *notify.RedisNotifier) *server {
	return &server{
		address: "0.0.0.0:" + cfg.Port,
		config:  cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins
			},
		},
		service:  service,
		notifier: notifier,
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/players", func(r chi.Router) {
		r.Get("/", s.handlePlayerList)
		r.Post("/", s.handlePlayerCreate)
		r.Get("/{id}", s.handlePlayerGet)
		r.Patch("/{id}", s.handlePlayerUpdate)
		r.Delete("/{id}", s.handlePlayerDelete)
		r.Post("/{id}/scouting", s.handlePlayerScouting)
	})

	r.Route("/matches", func(r chi.Router) {
		r.Get("/", s.handleMatchList)
		r.Post("/", s.handleMatchSubmit)
		r.Get("/{id}", s.handleMatchGet)
		r.Delete("/{id}", s.handleMatchDelete)
		r.Post("/preview", s.handleMatchPreview)
	})

	r.Get("/rankings", s.handleRankings)
	r.Get("/live", s.handleLive)

	return r
}

// Start runs the change-notification worker (when configured) and
// serves until the listener fails.
func (s *server) Start(ctx context.Context) error {
	if s.notifier != nil {
		go s.notifier.Listen(ctx, func(collection string) {
			logging.Info("remote change received", zap.String("collection", collection))
			if err := s.service.Refresh(ctx); err != nil {
				logging.Error("failed to refresh after remote change", zap.Error(err))
			}
		})
	}

	httpServer := &http.Server{
		Addr:        s.address,
		Handler:     s.routes(),
		IdleTimeout: s.config.IdleTimeout,
	}
	logging.Info("server started", zap.String("port", s.config.Port))
	return httpServer.ListenAndServe()
}
