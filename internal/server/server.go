// Package server assembles the HTTP API: repositories, services, handlers and middleware.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"fleet-admin/internal/config"
	"fleet-admin/internal/database"
	"fleet-admin/internal/handlers"
	"fleet-admin/internal/middleware"
	"fleet-admin/internal/repositories"
	"fleet-admin/internal/services"

	"github.com/labstack/echo/v4"
	echoMid "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const visitorCleanupInterval = time.Minute

// Options selects where metrics are registered and gathered from. Zero values use the
// prometheus defaults.
type Options struct {
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	Logger     *slog.Logger
}

// Server is the configured echo instance
type Server struct {
	e        *echo.Echo
	cfg      *config.Config
	logger   *slog.Logger
	limiters []*middleware.RateLimiter
	stop     chan struct{}
}

// New wires the API against db
func New(cfg *config.Config, db *database.DB, opts Options) *Server {
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	logger := opts.Logger

	// repositories
	accountRepo := repositories.NewAccountRepository(db.DB)
	userRepo := repositories.NewUserRepository(db.DB)
	customerRepo := repositories.NewCustomerRepository(db.DB)

	// services
	metrics := services.NewPrometheusMetricsWith(opts.Registerer)
	exportLogger := services.NewExportLogger(logger)
	tokenService := services.NewTokenService(&cfg.JWT)
	hierarchyService := services.NewAccountHierarchyService(accountRepo, logger)
	accountService := services.NewAccountService(accountRepo, userRepo, customerRepo, hierarchyService, exportLogger, metrics, logger)
	userService := services.NewUserService(userRepo, customerRepo, exportLogger, metrics, logger)
	customerService := services.NewCustomerService(customerRepo, logger)
	exportService := services.NewExportService(accountService, userService, customerService, cfg.Export, exportLogger, metrics, logger)

	// handlers
	accountHandler := handlers.NewAccountHandler(accountService, exportService, cfg.Pagination)
	userHandler := handlers.NewUserHandler(userService, exportService, cfg.Pagination)
	customerHandler := handlers.NewCustomerHandler(customerService, exportService, cfg.Pagination)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echoMid.CORSWithConfig(echoMid.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{echo.HeaderContentDisposition, middleware.TraceIDHeader},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))

	apiLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond, 0)
	exportLimiter := middleware.NewRateLimiter(cfg.Security.ExportRateLimitPerSecond, 0)
	exportMW := exportLimiter.Middleware()

	v1 := e.Group("/api/v1",
		apiLimiter.Middleware(),
		middleware.RequireAuth(tokenService, userRepo, metrics),
	)

	v1.GET("/customers", customerHandler.ListCustomers)
	v1.GET("/customers/export", customerHandler.ExportCustomers, exportMW)
	v1.GET("/customers/:customerId", customerHandler.GetCustomer)
	v1.GET("/customers/:customerId/accounts", accountHandler.ListCustomerAccounts)
	v1.GET("/customers/:customerId/accounts/export", accountHandler.ExportCustomerAccounts, exportMW)
	v1.GET("/customers/:customerId/users", userHandler.ListCustomerUsers)
	v1.GET("/customers/:customerId/users/export", userHandler.ExportCustomerUsers, exportMW)

	v1.GET("/users/:userId/accounts", accountHandler.ListUserAccounts)
	v1.GET("/users/:userId/accounts/export", accountHandler.ExportUserAccounts, exportMW)

	v1.GET("/accounts/:accountId", accountHandler.GetAccountDetail)
	v1.GET("/accounts/:accountId/secondary-contacts", userHandler.ListSecondaryContacts)
	v1.GET("/accounts/:accountId/secondary-contacts/export", userHandler.ExportSecondaryContacts, exportMW)

	return &Server{
		e:        e,
		cfg:      cfg,
		logger:   logger,
		limiters: []*middleware.RateLimiter{apiLimiter, exportLimiter},
		stop:     make(chan struct{}),
	}
}

// Handler exposes the router
func (s *Server) Handler() http.Handler {
	return s.e
}

// Start serves until Shutdown. A clean shutdown returns nil.
func (s *Server) Start() error {
	for _, rl := range s.limiters {
		go rl.RunCleanup(visitorCleanupInterval, s.stop)
	}

	addr := net.JoinHostPort(s.cfg.Server.Host, s.cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	s.logger.Info("http server listening", "addr", addr, "environment", s.cfg.Server.Environment)
	if err := s.e.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops background work
func (s *Server) Shutdown(ctx context.Context) error {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
	return s.e.Shutdown(ctx)
}
