package system

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rutina-app/rutina/internal/cli"
	"github.com/rutina-app/rutina/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	model := tui.New(ctx.Store, ctx.Habits, ctx.Theme.Effective())
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
