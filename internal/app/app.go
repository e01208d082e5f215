package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"todoList/internal/config"
	"todoList/internal/console"
	"todoList/internal/logger"
	"todoList/internal/metrics"
	"todoList/internal/repository"
	"todoList/internal/service"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config    *config.Config
	metrics   *metrics.Metrics
	backend   *backend
	service   *service.TaskService
	handler   http.Handler
	shutdowns []func() // run in reverse order by Close
}

func New(cfg *config.Config) *App {
	return &App{
		config:    cfg,
		shutdowns: make([]func(), 0),
	}
}

// Init sets up logging, opens the configured storage backend and builds
// the service and HTTP handler on top of it.
func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development, a.config.Logging.Level); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.shutdowns = append(a.shutdowns, func() {
		logger.Info("Shutting down logger")
		logger.Sync()
	})

	a.metrics = metrics.New()

	b, err := openStorage(ctx, a.config.Storage)
	if err != nil {
		return err
	}
	a.backend = b
	a.shutdowns = append(a.shutdowns, b.close)

	repo := repository.NewTaskRepository(metrics.InstrumentStorage(b.storage, a.metrics))
	a.service = service.NewTaskService(repo)

	router := newRouter(a.config.Server, a.service, b.checker, a.metrics)
	a.handler = otelhttp.NewHandler(router, "todo",
		otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/health" && r.URL.Path != "/metrics"
		}),
	)
	return nil
}

func (a *App) Handler() http.Handler {
	return a.handler
}

// Run listens on the configured address until ctx is cancelled, then shuts
// the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.config.GetServerAddr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.config.GetServerAddr(), err)
	}
	return a.Serve(ctx, ln)
}

func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:      a.handler,
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server started", zap.String("addr", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown failed", err)
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("Server stopped gracefully")
		return nil
	})

	return g.Wait()
}

// RunDemo plays the scripted console walkthrough against the configured
// storage, writing to out.
func (a *App) RunDemo(ctx context.Context, out io.Writer) error {
	return console.New(a.service, out).RunDemo(ctx)
}

func (a *App) Close() {
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		a.shutdowns[i]()
	}
	a.shutdowns = nil
}
