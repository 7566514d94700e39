package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"confgen/pkg/server"
)

type App struct {
	name    string
	servers []server.Server
}

type Option func(a *App)

func NewApp(opts ...Option) *App {
	a := &App{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func WithServer(servers ...server.Server) Option {
	return func(a *App) {
		a.servers = servers
	}
}

func WithName(name string) Option {
	return func(a *App) {
		a.name = name
	}
}

// Run starts every server and blocks until SIGINT/SIGTERM, then stops them.
func (a *App) Run(ctx context.Context) error {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	for _, srv := range a.servers {
		go func(srv server.Server) {
			if err := srv.Start(ctx); err != nil {
				errCh <- err
			}
		}(srv)
	}

	select {
	case err := <-errCh:
		return err
	case <-signals:
	case <-ctx.Done():
	}

	for _, srv := range a.servers {
		if err := srv.Stop(ctx); err != nil {
			return err
		}
	}
	return nil
}
