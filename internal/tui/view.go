package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rutina-app/rutina/internal/habits"
	"github.com/rutina-app/rutina/internal/models"
)

func (m Model) View() string {
	if m.state == stateAddHabit {
		return m.styles.doc.Render(m.form.View())
	}

	status := m.styles.status.Render(m.completionLine())
	if m.errMsg != "" {
		status = m.styles.errMsg.Render(m.errMsg)
	}

	return m.styles.doc.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.list.View(),
		status,
		m.help.View(m.keys),
	))
}

func (m Model) completionLine() string {
	all := make([]models.Habit, 0, len(m.list.Items()))
	for _, item := range m.list.Items() {
		if it, ok := item.(Item); ok {
			all = append(all, it.Habit)
		}
	}
	if len(all) == 0 {
		return "Sin hábitos. Pulsa 'a' para crear uno."
	}
	return fmt.Sprintf("Completado: %d%%", habits.CompletionPercentage(all))
}
