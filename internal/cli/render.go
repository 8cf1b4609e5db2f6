package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rutina-app/rutina/internal/calendar"
	"github.com/rutina-app/rutina/internal/constants"
)

type calendarPalette struct {
	completed lipgloss.Style
	partial   lipgloss.Style
	empty     lipgloss.Style
	future    lipgloss.Style
	header    lipgloss.Style
}

func paletteFor(theme string) calendarPalette {
	if theme == constants.ThemeDark {
		return calendarPalette{
			completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
			partial:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			future:    lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
			header:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		}
	}
	return calendarPalette{
		completed: lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
		partial:   lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		future:    lipgloss.NewStyle().Foreground(lipgloss.Color("254")),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("26")).Bold(true),
	}
}

var weekdayHeaders = []string{"Do", "Lu", "Ma", "Mi", "Ju", "Vi", "Sá"}

// RenderCalendar draws a window of dates as complete Sunday-start weeks.
// Future dates carry no entry and render dimmed; when the window contains
// any, a legend line labels them with nodata.
func RenderCalendar(window []time.Time, entries map[string]calendar.Entry, theme, nodata string) string {
	p := paletteFor(theme)

	var b strings.Builder
	for _, h := range weekdayHeaders {
		b.WriteString(p.header.Render(fmt.Sprintf("%3s", h)))
	}
	b.WriteString("\n")

	for i, d := range window {
		key := calendar.DayKey(d)
		cell := fmt.Sprintf("%3d", d.Day())
		if entry, ok := entries[key]; ok {
			switch {
			case entry.Completed:
				b.WriteString(p.completed.Render(cell))
			case entry.Value > 0:
				b.WriteString(p.partial.Render(cell))
			default:
				b.WriteString(p.empty.Render(cell))
			}
		} else {
			b.WriteString(p.future.Render(cell))
		}
		if (i+1)%7 == 0 {
			b.WriteString("\n")
		}
	}
	if len(entries) < len(window) {
		b.WriteString(p.future.Render("· " + nodata))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderStats formats window aggregates on one line.
func RenderStats(stats calendar.Stats, unit string) string {
	if unit == "" {
		unit = "total"
	}
	return fmt.Sprintf("✔ %d día(s) · %d%% · %d %s", stats.CompletedDays, stats.CompletionPercentage, stats.TotalValue, unit)
}
