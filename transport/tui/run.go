package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/wricardo/tty-fifteen/game/service"
)

// Run plays one game in the terminal until the player quits or ctx is
// cancelled. The terminal is restored and the game quit on every path.
func Run(ctx context.Context, svc service.GameService, opts ...tea.ProgramOption) error {
	defer svc.Quit(context.Background())

	m, err := New(ctx, svc)
	if err != nil {
		return err
	}

	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}

	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
