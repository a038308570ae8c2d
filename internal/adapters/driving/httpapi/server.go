// Package httpapi exposes the orientation pipeline over a JSON HTTP API,
// serving the mobile clients on site.
package httpapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/lumar-safety/orient/internal/core/ports/driving"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// Deps are the driving-port services the API exposes.
type Deps struct {
	Reports   driving.ReportGenerator
	Extractor driving.AddressExtractor
	Chat      driving.FirstAidChat
	Logger    zerolog.Logger
}

// Server is the HTTP API server.
type Server struct {
	echo *echo.Echo
	deps Deps
}

// NewServer builds the echo instance with middleware and routes.
func NewServer(deps Deps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(recovery(deps.Logger))
	e.Use(echomw.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echomw.BodyLimit("8M")) // photo turns are the largest payload

	s := &Server{echo: e, deps: deps}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.echo.GET("/healthz", s.health)

	api := s.echo.Group("/api/v1")
	api.POST("/reports", s.generateReport)
	api.POST("/address/extract", s.extractAddress)
	api.POST("/chat/sessions", s.createSession)
	api.GET("/chat/sessions/:id", s.sessionHistory)
	api.POST("/chat/sessions/:id/messages", s.sendMessage)
	api.DELETE("/chat/sessions/:id", s.closeSession)
}

// Start blocks serving on addr until Shutdown.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": Version,
	})
}
