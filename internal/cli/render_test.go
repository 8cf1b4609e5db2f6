package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/rutina-app/rutina/internal/calendar"
	"github.com/rutina-app/rutina/internal/constants"
)

func TestRenderCalendar_FutureLegend(t *testing.T) {
	today := time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC) // a Wednesday
	week := calendar.WeekWindow(today)

	partial := map[string]calendar.Entry{}
	for _, d := range week[:4] {
		partial[calendar.DayKey(d)] = calendar.Entry{}
	}
	out := RenderCalendar(week[:], partial, constants.ThemeLight, "sin datos")
	if !strings.Contains(out, "sin datos") {
		t.Errorf("expected the no-data legend when the window has future days:\n%s", out)
	}

	full := map[string]calendar.Entry{}
	for _, d := range week {
		full[calendar.DayKey(d)] = calendar.Entry{}
	}
	out = RenderCalendar(week[:], full, constants.ThemeLight, "sin datos")
	if strings.Contains(out, "sin datos") {
		t.Errorf("legend must not appear when every day has an entry:\n%s", out)
	}
}

func TestRenderStats_DefaultUnit(t *testing.T) {
	out := RenderStats(calendar.Stats{CompletedDays: 2, CompletionPercentage: 67, TotalValue: 21}, "")
	if !strings.Contains(out, "21 total") {
		t.Errorf("expected the default unit label, got %q", out)
	}
}
