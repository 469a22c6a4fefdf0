package app

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/quickrun/internal/menu"
	"github.com/atomicstack/quickrun/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	CatalogPath string
	Width       int
	Height      int
	ShowFooter  bool
	PrintOnly   bool
}

// Run bootstraps and executes the Bubble Tea program over the given
// catalog. It returns the committed item, or nil when the session was
// cancelled. Context cancellation (the signal path) counts as a
// cancel, not an error.
func Run(ctx context.Context, cfg Config, catalog *menu.Catalog) (*menu.Item, error) {
	model := ui.NewModel(catalog, cfg.Width, cfg.Height, cfg.ShowFooter)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := program.Run()
	// A canceled context surfaces as ErrProgramKilled; a SIGINT delivered
	// from outside the terminal surfaces as ErrInterrupted. Both mean the
	// session ended without a selection.
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if m, ok := final.(*ui.Model); ok {
		return m.Selection(), nil
	}
	return nil, nil
}
