// Package http exposes the ledger, its reports and the insight requester as
// a JSON API on a gin engine.
package http

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	applog "financas/internal/log"
	"financas/internal/middleware/ratelimit"
	"financas/internal/middleware/security"
	"financas/internal/middleware/trace"
)

const (
	// ShutdownTimeout bounds the graceful shutdown of the listener.
	ShutdownTimeout = 30 * time.Second

	MaxRequestBodyBytes = 64 << 10
)

// Options configures the engine around the handlers.
type Options struct {
	Addr               string
	AllowedOrigins     []string
	RateLimitPerMinute int
	Logger             *applog.Logger
}

type Server struct {
	http.Server
	engine  *gin.Engine
	limiter *ratelimit.Limiter
}

// NewServer wires the middleware chain and routes. Call Shutdown to stop
// the listener and the rate limiter.
func NewServer(opts Options, h *Handler) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}

	engine := gin.New()
	_ = engine.SetTrustedProxies(security.TrustedProxyCIDRs)

	limiter := ratelimit.NewLimiter(ratelimit.Config{RequestsPerMinute: opts.RateLimitPerMinute})
	detector := security.NewDetector()

	engine.Use(
		gin.Recovery(),
		trace.Middleware(logger),
		security.Headers(security.DefaultHeadersConfig()),
		detector.Middleware(),
		cors.New(corsConfig(opts.AllowedOrigins)),
		limiter.Middleware(http.MethodPost, http.MethodDelete),
		limitBody(MaxRequestBodyBytes),
	)

	engine.GET("/healthz", h.Health)
	engine.GET("/readyz", h.Ready)

	api := engine.Group("/api")
	api.GET("/categories", h.Categories)
	api.GET("/view", h.View)
	api.GET("/transactions", h.ListTransactions)
	api.POST("/transactions", h.CreateTransaction)
	api.DELETE("/transactions/:id", h.DeleteTransaction)
	api.GET("/dashboard", h.Dashboard)
	api.GET("/reports/years", h.ReportYears)
	api.GET("/reports/:year", h.AnnualReport)
	api.GET("/reports/:year/export", h.ExportReport)
	api.POST("/insights", h.Insights)

	return &Server{
		Server: http.Server{
			Addr:              opts.Addr,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		engine:  engine,
		limiter: limiter,
	}
}

func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", trace.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// Engine returns the gin engine, mostly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.limiter.Stop()
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown stops the rate limiter and the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.Server.Shutdown(ctx)
}
