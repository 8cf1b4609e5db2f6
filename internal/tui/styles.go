package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rutina-app/rutina/internal/constants"
)

type styles struct {
	doc    lipgloss.Style
	status lipgloss.Style
	errMsg lipgloss.Style
}

func stylesFor(theme string) styles {
	if theme == constants.ThemeDark {
		return styles{
			doc:    lipgloss.NewStyle().Padding(1, 2),
			status: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			errMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		}
	}
	return styles{
		doc:    lipgloss.NewStyle().Padding(1, 2),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		errMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
	}
}
