// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lessonbox/src/app/http/handler"
	"lessonbox/src/app/http/response"
	"lessonbox/src/app/middleware"
	"lessonbox/src/core/ports"
	"lessonbox/src/core/usecase"
	"lessonbox/src/infra/config"
	"lessonbox/src/infra/logger"
	"lessonbox/src/infra/metrics"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg     *config.Config
	log     *slog.Logger
	router  *gin.Engine
	http    *http.Server
	metrics *metrics.Metrics

	healthHandler     *handler.HealthHandler
	memberHandler     *handler.MemberHandler
	accountHandler    *handler.AccountHandler
	animalHandler     *handler.AnimalHandler
	calculatorHandler *handler.CalculatorHandler
}

// New creates a new Server with all dependencies wired up. m may be nil, in
// which case nothing is recorded and /metrics is not served.
func New(cfg *config.Config, log *slog.Logger, store ports.Store, m *metrics.Metrics) *Server {
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	log = logger.WithComponent(log, "http")

	healthService := usecase.NewHealthService(log, map[string]ports.ExternalService{
		"storage": store,
	})
	memberService := usecase.NewMemberService(store, log)
	accountService := usecase.NewAccountService(store, log)
	animalService := usecase.NewAnimalService(log)
	calculatorService := usecase.NewCalculatorService(log)

	s := &Server{
		cfg:               cfg,
		log:               log,
		router:            router,
		metrics:           m,
		healthHandler:     handler.NewHealthHandler(healthService),
		memberHandler:     handler.NewMemberHandler(memberService),
		accountHandler:    handler.NewAccountHandler(accountService),
		animalHandler:     handler.NewAnimalHandler(animalService),
		calculatorHandler: handler.NewCalculatorHandler(calculatorService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware. Recovery sits inside
// Metrics and Logging so a recovered panic is still counted and logged.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID())
	if s.metrics != nil {
		s.router.Use(middleware.Metrics(s.metrics))
	}
	s.router.Use(middleware.Logging(s.log))
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.CORS())
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)
	if s.metrics != nil && s.cfg.Metrics.Enabled {
		s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	v1 := s.router.Group("/v1")
	{
		v1.POST("/members", s.memberHandler.Register)
		member := v1.Group("/members/:"+handler.MemberParam, middleware.UUIDParam(handler.MemberParam))
		member.GET("", s.memberHandler.Get)
		member.PUT("/age", s.memberHandler.SetAge)

		v1.POST("/accounts", s.accountHandler.Open)
		account := v1.Group("/accounts/:"+handler.AccountParam, middleware.UUIDParam(handler.AccountParam))
		account.GET("", s.accountHandler.Get)
		account.POST("/deposit", s.accountHandler.Deposit)
		account.POST("/withdraw", s.accountHandler.Withdraw)

		v1.POST("/animals/speak", s.animalHandler.Speak)
		v1.GET("/calculator/divide", s.calculatorHandler.Divide)
	}

	s.router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "The requested resource was not found", middleware.GetRequestID(c))
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// down gracefully. Callers own signal handling.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.log.Info("starting HTTP server", "addr", s.cfg.Server.Addr())
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info("received shutdown signal", "cause", context.Cause(ctx))
	case err := <-errCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// WaitForReady waits until the server is ready to accept connections.
// Useful for integration tests.
func (s *Server) WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/health", s.cfg.Server.Addr()))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}
