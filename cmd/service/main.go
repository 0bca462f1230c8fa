package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "foxboard/internal/app"
	"foxboard/internal/entities"
	"foxboard/internal/handlers/rest/admin_user_post"
	"foxboard/internal/handlers/rest/companies_get"
	"foxboard/internal/handlers/rest/company_metrics_get"
	"foxboard/internal/handlers/rest/dashboard_metrics_get"
	"foxboard/internal/handlers/rest/database_delete"
	"foxboard/internal/handlers/rest/driver_stats_get"
	"foxboard/internal/handlers/rest/drivers_get"
	"foxboard/internal/handlers/rest/healthcheck_head"
	"foxboard/internal/handlers/rest/locations_get"
	"foxboard/internal/handlers/rest/login_post"
	"foxboard/internal/handlers/rest/logout_post"
	"foxboard/internal/handlers/rest/ping_get"
	"foxboard/internal/handlers/rest/records_get"
	"foxboard/internal/handlers/rest/register_post"
	"foxboard/internal/handlers/rest/session_get"
	"foxboard/internal/handlers/rest/status_get"
	"foxboard/internal/handlers/rest/temporal_get"
	"foxboard/internal/handlers/rest/upload_post"
	"foxboard/internal/handlers/rest/user_delete"
	"foxboard/internal/handlers/rest/users_get"
	"foxboard/internal/pkg/config"
	"foxboard/internal/pkg/dotenv"
	metrics_system "foxboard/internal/pkg/metrics"
	"foxboard/internal/pkg/middlewares/authz"
	"foxboard/internal/pkg/middlewares/graceful_shutdown"
	"foxboard/internal/pkg/middlewares/metrics"
	"foxboard/internal/pkg/middlewares/rate_limiter"
	"foxboard/internal/pkg/middlewares/request_id"
	"foxboard/internal/pkg/middlewares/timeout"
	"foxboard/internal/pkg/tokenstore"
	"foxboard/pkg/logger"
	"foxboard/pkg/logger/zap_adapter"
	"foxboard/pkg/token_bucket"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting foxboard application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	tokens, err := tokenstore.New(ctx, cfg.Session.TokenStorePath)
	if err != nil {
		return fmt.Errorf("token store: %w", err)
	}
	defer func() {
		if err := tokens.Close(); err != nil {
			runLog.Error("failed to close token store",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, tokens, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	// Инициализация сессии идет в фоне: сервис принимает трафик сразу,
	// защищенные маршруты отвечают 503 до завершения перехода.
	go businessApp.Sessions.Init(ctx)

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(request_id.Middleware())
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	sessions := app.Sessions
	anyAuthenticated := authz.Middleware(log, sessions, "")
	adminOnly := authz.Middleware(log, sessions, entities.RoleAdmin)

	router.Handle("/auth/login", login_post.New(log, sessions)).Methods("POST")
	router.Handle("/auth/register", register_post.New(log, sessions)).Methods("POST")
	router.Handle("/auth/logout", anyAuthenticated(logout_post.New(log, sessions))).Methods("POST")
	router.Handle("/auth/session", session_get.New(log, sessions)).Methods("GET")

	router.Handle("/admin/users", adminOnly(users_get.New(log, sessions))).Methods("GET")
	router.Handle("/admin/users", adminOnly(admin_user_post.New(log, sessions))).Methods("POST")
	router.Handle("/admin/users/{id}", adminOnly(user_delete.New(log, sessions))).Methods("DELETE")

	router.Handle("/dashboard/status", anyAuthenticated(status_get.New(log, app.ServiceDashboard))).Methods("GET")
	router.Handle("/dashboard/records", adminOnly(records_get.New(log, app.ServiceDashboard))).Methods("GET")
	router.Handle("/dashboard/metrics", anyAuthenticated(dashboard_metrics_get.New(log, app.ServiceDashboard, sessions))).Methods("GET")
	router.Handle("/dashboard/companies", adminOnly(companies_get.New(log, app.ServiceDashboard))).Methods("GET")
	router.Handle("/dashboard/drivers", adminOnly(drivers_get.New(log, app.ServiceDashboard))).Methods("GET")
	router.Handle("/dashboard/locations", adminOnly(locations_get.New(log, app.ServiceDashboard))).Methods("GET")
	router.Handle("/dashboard/temporal", adminOnly(temporal_get.New(log, app.ServiceDashboard))).Methods("GET")
	router.Handle("/dashboard/driver-stats", adminOnly(driver_stats_get.New(log, app.ServiceDashboard))).Methods("GET")
	router.Handle("/dashboard/company-metrics", anyAuthenticated(company_metrics_get.New(log, app.ServiceDashboard, sessions))).Methods("GET")

	router.Handle("/dashboard/upload", adminOnly(upload_post.New(log, app.ServiceIngest))).Methods("POST")
	router.Handle("/dashboard/database", adminOnly(database_delete.New(log, app.ServiceIngest))).Methods("DELETE")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
