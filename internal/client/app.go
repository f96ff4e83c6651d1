package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmaraujo/gymkeeper/internal/adapter"
	"github.com/dmaraujo/gymkeeper/internal/config"
	"github.com/dmaraujo/gymkeeper/internal/tui"
)

type App struct {
	server adapter.ServerAdapter
	tui    *tui.TUI
}

func NewApp(cfg config.ClientAdapter) (*App, error) {
	serverURL := cfg.HTTPAddress
	if serverURL == "" {
		serverURL = getenv("GYMKEEPER_SERVER_URL", "http://localhost:8080")
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: serverURL,
		Timeout: timeout,
	})

	return &App{
		server: serverAdapter,
		tui:    tui.New(serverAdapter),
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	if err := a.tui.LoginFlow(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("login flow: %w", err)
	}

	logout, err := a.tui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		// back to the login screen for the next account
		return a.Run()
	}

	return nil
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
