// Package server initializes and runs the intranet API server: it wires
// the PostgreSQL repositories, the domain services and the HTTP endpoint,
// and handles graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dserranox/blschool-intranet/internal/logging"
	"github.com/dserranox/blschool-intranet/internal/server/alumnos"
	"github.com/dserranox/blschool-intranet/internal/server/comisiones"
	"github.com/dserranox/blschool-intranet/internal/server/config"
	"github.com/dserranox/blschool-intranet/internal/server/cursos"
	"github.com/dserranox/blschool-intranet/internal/server/db"
	"github.com/dserranox/blschool-intranet/internal/server/docentes"
	"github.com/dserranox/blschool-intranet/internal/server/httpapi"
	"github.com/dserranox/blschool-intranet/internal/server/usuarios"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  db.RepositoryManager
	server *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	repos, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	server := httpapi.NewServer(&httpapi.Options{
		Addr:       c.Addr,
		SecretKey:  c.SecretKey,
		Logger:     logger,
		Usuarios:   usuarios.NewService(repos.Usuarios(), c),
		Alumnos:    alumnos.NewService(repos.Alumnos()),
		Docentes:   docentes.NewService(repos.Docentes()),
		Cursos:     cursos.NewService(repos.Cursos()),
		Comisiones: comisiones.NewService(repos.Comisiones()),
	})

	return &App{config: c, logger: logger, repos: repos, server: server}, nil
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

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.Addr)

	app.initSignalHandler(cancelFunc)

	go func() {
		if err := app.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, err.Error())
	}
	if err := app.repos.Close(); err != nil {
		app.logger.Error(shutdownCtx, err.Error())
	}

	app.logger.Info(shutdownCtx, "Server stopped")
}
