package fakeapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/jobboard/internal/logging"
)

// App runs the development server until a signal arrives or ctx is done.
type App struct {
	config *Config
	logger logging.Logger
	server *Server
}

func NewApp(c *Config, logger logging.Logger) *App {
	s := New(NewJobStore(SeedJobs()...), []byte(c.SecretKey),
		WithUser(DemoEmail, DemoPassword),
		WithTokenTTL(c.TokenTTL),
		WithLogger(logger),
	)
	return &App{config: c, logger: logger, server: s}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves on the configured address. It returns nil after a clean
// shutdown.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()
	app.initSignalHandler(cancelFunc)

	ln, err := net.Listen("tcp", app.config.Addr)
	if err != nil {
		return err
	}
	return app.Serve(ctx, ln)
}

// Serve runs on ln until ctx is done.
func (app *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: app.server.Router(), ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "dev server listening", "addr", ln.Addr().String(), "user", DemoEmail)
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
