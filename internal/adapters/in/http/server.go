// Package http exposes the service's operational HTTP surface. The bots are
// the product interface; HTTP carries only liveness information for process
// supervisors.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

// Server serves the health endpoint.
type Server struct {
	echo *echo.Echo
	db   *gorm.DB
	log  *slog.Logger
}

// NewServer creates the operational HTTP server.
func NewServer(db *gorm.DB, log *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo: e,
		db:   db,
		log:  log.With("component", "http"),
	}

	e.GET("/health", s.health)
	return s
}

// Start serves on the given address until Shutdown. Blocks.
func (s *Server) Start(address string) error {
	s.log.Info("http server started", "address", address)

	if err := s.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server, letting in-flight requests finish.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	return s.echo.Shutdown(ctx)
}

// health reports liveness. The database check covers the only hard
// dependency; Telegram connectivity is reported by the agents' own logs.
func (s *Server) health(c echo.Context) error {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
