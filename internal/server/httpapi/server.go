// Package httpapi exposes the authentication use cases over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/calidadsoft/loginbackend/internal/logging"
	"github.com/calidadsoft/loginbackend/internal/server/auth"
	"github.com/gin-gonic/gin"
)

type Server struct {
	address string
	auth    *auth.Service
	logger  logging.Logger
}

func NewServer(address string, l logging.Logger, as *auth.Service) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		auth:    as,
	}
}

// Router builds the gin engine with all routes registered. Exposed separately
// from Run so handler tests can drive it through httptest.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	r.GET("/health", s.health)

	authGroup := r.Group("/auth")
	authGroup.POST("/login", s.login)
	authGroup.POST("/reset-password", s.resetPassword)
	authGroup.GET("/password-requirements", s.passwordRequirements)

	return r
}

// corsMiddleware allows any origin: the login form is served from a separate
// front end.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
