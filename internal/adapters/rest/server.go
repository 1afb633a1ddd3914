package rest

import (
	"context"
	"fmt"
	"net/http"

	core_ports "darna-client-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_ports.LoggerPort
}

func NewServer(port string, corsOrigins []string, handlers *MarketHandlers, baseLogger core_ports.LoggerPort) *Server {
	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger)) // Логирует каждый запрос (метод, путь, время выполнения)
	r.Use(middleware.Recoverer)         // Перехватывает паники и возвращает 500 ошибку, чтобы сервер не упал
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ads", handlers.HandleGetAds)
		r.Get("/ads/{id}", handlers.HandleGetAdByID)
		r.Get("/sellers/{id}/profile", handlers.HandleGetSellerProfile)
		r.Post("/purchases", handlers.HandleStartPurchase)

		r.Route("/session", func(r chi.Router) {
			r.Post("/login", handlers.HandleLogin)
			r.Post("/logout", handlers.HandleLogout)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

// Start запускает HTTP-сервер
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_ports.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
