// Package tui implements the interactive terminal client of the gym
// management service. It is organised as small Bubble Tea models, one per
// screen, routed by [RootModel].
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmaraujo/gymkeeper/internal/adapter"
)

var ErrUserQuit = errors.New("saiu do programa")

type TUI struct {
	server adapter.ServerAdapter
}

func New(server adapter.ServerAdapter) *TUI {
	return &TUI{server: server}
}

// LoginFlow runs the pre-session screens (menu, login, register) and blocks
// until the user authenticates or quits.
func (t *TUI) LoginFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(ctx, t.server),
		"login":    NewLoginModel(ctx, t.server),
		"register": NewRegisterModel(ctx, t.server),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

// MainLoop runs the resource browser until the user logs out or quits.
// It reports logout=true when the session ended by an explicit logout, in
// which case the caller may restart the login flow.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.server)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(*mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
