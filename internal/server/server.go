package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Server wraps the HTTP server around the configured router.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New creates a new server instance for the given router.
func New(router *gin.Engine) *Server {
	return &Server{router: router}
}

// Start runs the server on the given port and blocks until it stops.
func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
