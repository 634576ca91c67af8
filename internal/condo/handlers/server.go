// Package handlers exposes the registry over HTTP with gin, bridging the
// transport layer and the controller services and translating the sentinel
// error taxonomy into status codes.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/auth"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/controller"
	"go.uber.org/zap"
)

// Services bundles the controller services the routes dispatch to.
type Services struct {
	Users       *controller.UserService
	Condominios *controller.CondominioService
	Unidades    *controller.UnidadeService
	Veiculos    *controller.VeiculoService
	Visitantes  *controller.VisitanteService
	Encomendas  *controller.EncomendaService
	Espacos     *controller.EspacoService
	Reservas    *controller.ReservaService
	Avisos      *controller.AvisoService
	Eventos     *controller.EventoService
	Dashboard   *controller.DashboardService
}

// Server wraps the HTTP server and the gin engine.
type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	logger     *zap.Logger
	endpoint   string
}

// NewServer builds the server and mounts every route.
func NewServer(port int, services Services, jwtSecret string, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:   engine,
		logger:   logger.Named("http_server"),
		endpoint: fmt.Sprintf(":%d", port),
	}
	s.httpServer = &http.Server{
		Addr:    s.endpoint,
		Handler: engine,
	}

	h := &Handler{services: services, jwtSecret: jwtSecret, logger: s.logger}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.POST("/auth/login", h.Login)

	api := engine.Group("/v1")
	api.Use(auth.Middleware(jwtSecret))
	h.registerRoutes(api)

	return s
}

// Start serves HTTP until the listener fails or the server is stopped.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("endpoint", s.endpoint))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP serve error: %w", err)
	}
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop() {
	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	s.logger.Info("Server stopped")
}
