package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wricardo/tty-fifteen/game/engine"
	"github.com/wricardo/tty-fifteen/game/service"
)

// Model is the Bubble Tea model for one game
type Model struct {
	ctx     context.Context
	svc     service.GameService
	keys    KeyMap
	styles  Styles
	help    help.Model
	info    *service.StateInfo
	message string
	err     error
}

// New creates a model over svc using the default keys and styles
func New(ctx context.Context, svc service.GameService) (Model, error) {
	info, err := svc.State(ctx)
	if err != nil {
		return Model{}, fmt.Errorf("failed to read game state: %w", err)
	}

	return Model{
		ctx:    ctx,
		svc:    svc,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		help:   help.New(),
		info:   info,
	}, nil
}

// Err returns the error that stopped the model, if any
func (m Model) Err() error {
	return m.err
}

// Won reports whether the displayed game is solved
func (m Model) Won() bool {
	return m.info.State == service.Won
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.err = m.svc.Quit(m.ctx)
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Restart):
		info, err := m.svc.Restart(m.ctx)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.info = info
		m.message = ""

	default:
		dir, ok := m.keys.direction(keyMsg)
		if !ok {
			return m, nil
		}
		result, err := m.svc.Move(m.ctx, dir)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.message = ""
		if result.State == service.Won && !result.Success {
			m.message = result.Message
		}
		return m.refresh()
	}

	return m, nil
}

// refresh reloads the state after a move
func (m Model) refresh() (tea.Model, tea.Cmd) {
	info, err := m.svc.State(m.ctx)
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	m.info = info
	return m, nil
}

func (m Model) View() string {
	view := m.info.View

	lines := make([]string, 0, view.Lines)
	for line := 0; line < view.Lines; line++ {
		var b strings.Builder
		for _, tile := range view.Grid[line*view.Rows : (line+1)*view.Rows] {
			b.WriteString("|" + m.styles.Tile.Render(engine.TileLabel(tile)) + "|")
		}
		lines = append(lines, b.String())
	}
	board := strings.Join(lines, "\n")

	side := []string{m.styles.Moves.Render(fmt.Sprintf("Moves: %d", view.Moves))}
	if m.Won() {
		side = append(side, m.styles.Win.Render("WIN !"))
	}

	var s strings.Builder
	s.WriteString("\n")
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, " ", strings.Join(side, "\n")))
	s.WriteString("\n\n")
	if m.message != "" {
		s.WriteString(m.styles.Message.Render(m.message) + "\n")
	}
	s.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	s.WriteString("\n")

	return s.String()
}
