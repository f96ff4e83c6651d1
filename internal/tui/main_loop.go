package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmaraujo/gymkeeper/internal/adapter"
)

type browseStage int

const (
	stageResourceMenu browseStage = iota
	stageList
	stageDetail
	stageConfirmDelete
)

// mainLoopModel is the authenticated resource browser. It cycles through a
// resource menu, a listing, a detail view and a delete confirmation.
type mainLoopModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	kinds   []resourceKind
	kindIdx int

	stage   browseStage
	rows    []resourceRow
	rowIdx  int
	detail  []string
	loading bool
	spin    spinner.Model
	status  string
	errMsg  string

	logout bool
}

func newMainLoopModel(ctx context.Context, server adapter.ServerAdapter) *mainLoopModel {
	return &mainLoopModel{
		ctx:    ctx,
		server: server,
		kinds:  resourceKinds(server),
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *mainLoopModel) Init() tea.Cmd {
	return nil
}

func (m *mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if typed.err != nil {
			m.errMsg = typed.err.Error()
			return m, nil
		}
		m.rows = typed.rows
		if m.rowIdx >= len(m.rows) {
			m.rowIdx = 0
		}
		m.stage = stageList
		return m, nil

	case detailLoadedMsg:
		m.loading = false
		if typed.err != nil {
			m.errMsg = typed.err.Error()
			return m, nil
		}
		m.detail = typed.lines
		m.stage = stageDetail
		return m, nil

	case itemDeletedMsg:
		m.loading = false
		if typed.err != nil {
			m.errMsg = typed.err.Error()
			m.stage = stageList
			return m, nil
		}
		m.status = "Registro removido"
		m.stage = stageList
		return m, m.cmdLoadList()

	case copiedMsg:
		m.status = "ID copiado para a área de transferência"
		return m, nil

	case loggedOutMsg:
		m.logout = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(typed)
		if m.loading {
			return m, cmd
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.loading {
		return m, nil
	}

	// hotkeys of every stage
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "l":
		if m.stage == stageResourceMenu {
			m.loading = true
			return m, tea.Batch(m.spin.Tick, m.cmdLogout())
		}
	}

	switch m.stage {
	case stageResourceMenu:
		return m.updateResourceMenu(keyMsg)
	case stageList:
		return m.updateList(keyMsg)
	case stageDetail:
		return m.updateDetail(keyMsg)
	case stageConfirmDelete:
		return m.updateConfirmDelete(keyMsg)
	}

	return m, nil
}

func (m *mainLoopModel) updateResourceMenu(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.kindIdx > 0 {
			m.kindIdx--
		}
	case "down", "j":
		if m.kindIdx < len(m.kinds)-1 {
			m.kindIdx++
		}
	case "enter":
		m.errMsg = ""
		m.status = ""
		m.rowIdx = 0
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadList())
	}
	return m, nil
}

func (m *mainLoopModel) updateList(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.stage = stageResourceMenu
		m.errMsg = ""
		m.status = ""
	case "up", "k":
		if m.rowIdx > 0 {
			m.rowIdx--
		}
	case "down", "j":
		if m.rowIdx < len(m.rows)-1 {
			m.rowIdx++
		}
	case "r":
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.cmdLoadList())
	case "c":
		if row, ok := m.selectedRow(); ok {
			return m, cmdCopy(row.id)
		}
	case "d":
		if _, ok := m.selectedRow(); ok {
			m.stage = stageConfirmDelete
		}
	case "enter":
		if _, ok := m.selectedRow(); ok {
			m.loading = true
			return m, tea.Batch(m.spin.Tick, m.cmdLoadDetail())
		}
	}
	return m, nil
}

func (m *mainLoopModel) updateDetail(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.stage = stageList
	case "c":
		if row, ok := m.selectedRow(); ok {
			return m, cmdCopy(row.id)
		}
	case "d":
		m.stage = stageConfirmDelete
	}
	return m, nil
}

func (m *mainLoopModel) updateConfirmDelete(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "y":
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.cmdDelete())
	case "n", "esc":
		m.stage = stageList
	}
	return m, nil
}

func (m *mainLoopModel) View() string {
	kind := m.kinds[m.kindIdx]

	if m.loading {
		return renderPage(strings.ToUpper(kind.title), m.spin.View()+" carregando...", "")
	}

	var b strings.Builder
	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n\n")
	}

	switch m.stage {
	case stageResourceMenu:
		for i, k := range m.kinds {
			cursor := " "
			if i == m.kindIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, k.title))
		}
		return renderPage("RECURSOS", strings.TrimRight(b.String(), "\n"),
			"enter: abrir │ ↑/↓: navegar │ l: sair da conta │ q: sair")

	case stageList:
		if len(m.rows) == 0 {
			b.WriteString("Nenhum registro ainda.\n")
		}
		for i, row := range m.rows {
			cursor := " "
			if i == m.rowIdx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %s │ %s\n", cursor, fitText(row.id, 12), fitText(row.label, 54)))
		}
		return renderPage(strings.ToUpper(kind.title), strings.TrimRight(b.String(), "\n"),
			"enter: detalhes │ d: remover │ c: copiar id │ r: recarregar │ esc: voltar")

	case stageDetail:
		b.WriteString(strings.Join(m.detail, "\n"))
		return renderPage(strings.ToUpper(kind.title)+" — DETALHES", b.String(),
			"d: remover │ c: copiar id │ esc: voltar")

	case stageConfirmDelete:
		row, _ := m.selectedRow()
		b.WriteString("Remover o registro ")
		b.WriteString(row.id)
		b.WriteString("?\n")
		return renderPage(strings.ToUpper(kind.title)+" — CONFIRMAR", strings.TrimRight(b.String(), "\n"),
			"y: sim │ n: não")
	}

	return renderPage("RECURSOS", "", "")
}

func (m *mainLoopModel) selectedRow() (resourceRow, bool) {
	if m.rowIdx < 0 || m.rowIdx >= len(m.rows) {
		return resourceRow{}, false
	}
	return m.rows[m.rowIdx], true
}

func (m *mainLoopModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	kind := m.kinds[m.kindIdx]

	return func() tea.Msg {
		rows, err := kind.list(ctx)
		return listLoadedMsg{rows: rows, err: err}
	}
}

func (m *mainLoopModel) cmdLoadDetail() tea.Cmd {
	ctx := m.ctx
	kind := m.kinds[m.kindIdx]
	row, _ := m.selectedRow()

	return func() tea.Msg {
		lines, err := kind.detail(ctx, row.id)
		return detailLoadedMsg{lines: lines, err: err}
	}
}

func (m *mainLoopModel) cmdDelete() tea.Cmd {
	ctx := m.ctx
	kind := m.kinds[m.kindIdx]
	row, _ := m.selectedRow()

	return func() tea.Msg {
		return itemDeletedMsg{err: kind.remove(ctx, row.id)}
	}
}

func (m *mainLoopModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		return loggedOutMsg{err: server.Logout(ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return itemDeletedMsg{err: fmt.Errorf("copiar para a área de transferência: %w", err)}
		}
		return copiedMsg{}
	}
}
