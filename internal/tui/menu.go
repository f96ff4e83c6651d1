package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmaraujo/gymkeeper/internal/adapter"
	"github.com/dmaraujo/gymkeeper/models"
)

type MenuModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	items  []string
	idx    int
	status string

	serverStatus   *models.Status
	serverStatusOn bool
}

func NewMenuModel(ctx context.Context, server adapter.ServerAdapter) *MenuModel {
	return &MenuModel{
		ctx:    ctx,
		server: server,
		items:  []string{"Entrar", "Registrar"},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case RegisterSuccessNotice:
		if typed.Email != "" {
			m.status = "Conta " + typed.Email + " registrada com sucesso"
		} else {
			m.status = "Registro concluído com sucesso"
		}
		return m, nil

	case statusLoadedMsg:
		if typed.err != nil {
			m.status = "Servidor indisponível: " + typed.err.Error()
			return m, nil
		}
		m.serverStatus = &typed.status
		m.serverStatusOn = true
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.serverStatusOn {
		if keyMsg.String() == "esc" {
			m.serverStatusOn = false
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "s":
		return m, m.cmdStatus()
	case "enter":
		if m.idx == 0 {
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		}
		return m, func() tea.Msg { return NavigateTo{Page: "register"} }
	}

	return m, nil
}

func (m *MenuModel) View() string {
	if m.serverStatusOn && m.serverStatus != nil {
		s := m.serverStatus
		body := fmt.Sprintf(
			"Status:  %s\nVersão:  %s\nUptime:  %s\nBanco:   %s\n\nesc: fechar",
			s.Status, valueOrDash(s.Version), valueOrDash(s.Uptime), s.Database,
		)
		return appStyle.Render(overlayBoxStyle.Render(body))
	}

	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, item))
	}

	return renderPage("ACADEMIA — MENU PRINCIPAL", strings.TrimRight(b.String(), "\n"),
		"enter: selecionar │ ↑/↓: navegar │ s: status do servidor")
}

func (m *MenuModel) cmdStatus() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		status, err := server.Status(ctx)
		return statusLoadedMsg{status: status, err: err}
	}
}
