package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/grachmannico95/decline-analytics-be/internal/config"
	"github.com/grachmannico95/decline-analytics-be/internal/handler"
	"github.com/grachmannico95/decline-analytics-be/internal/middleware"
	"github.com/grachmannico95/decline-analytics-be/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo             *echo.Echo
	cfg              *config.Config
	logger           *logger.Logger
	analyticsHandler *handler.AnalyticsHandler
	healthHandler    *handler.HealthHandler
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	analyticsHandler *handler.AnalyticsHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &Server{
		echo:             e,
		cfg:              cfg,
		logger:           log,
		analyticsHandler: analyticsHandler,
		healthHandler:    healthHandler,
	}
}

func (s *Server) Start() error {
	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: s.cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)

	api := s.echo.Group("/api/analytics")
	api.GET("/overview", s.analyticsHandler.GetOverview)
	api.GET("/breakdown", s.analyticsHandler.GetBreakdown)
	api.GET("/timeseries", s.analyticsHandler.GetTimeSeries)
	api.GET("/decline-codes", s.analyticsHandler.GetDeclineCodes)
}

func (s *Server) Handler() *echo.Echo {
	s.setupMiddleware()
	s.setupRoutes()
	return s.echo
}
