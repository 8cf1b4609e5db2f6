// Package calendar projects habit history onto display windows: a
// Sunday-start week or a full month grid. Entries are a read model
// computed on demand from an external source, never authoritative state.
package calendar

import (
	"math"
	"time"

	"github.com/rutina-app/rutina/internal/constants"
	"github.com/rutina-app/rutina/internal/models"
)

// ViewMode selects the window size for projection and navigation.
type ViewMode string

const (
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// Entry is one day's derived progress for a habit within a window.
type Entry struct {
	Completed bool
	Value     int
	Target    int
}

// Stats aggregates a projected window.
type Stats struct {
	CompletedDays        int
	CompletionPercentage int
	TotalValue           int
}

// EntrySource supplies the recorded values for a day range. The store's
// habit_entries table implements it; tests use in-memory fakes.
type EntrySource interface {
	GetHabitEntries(habitID, startDay, endDay string) ([]models.HabitEntry, error)
}

// WeekWindow returns the Sunday-start week containing date, index 0 being
// Sunday and 6 Saturday regardless of locale.
func WeekWindow(date time.Time) [7]time.Time {
	start := Normalize(date).AddDate(0, 0, -int(date.Weekday()))
	var week [7]time.Time
	for i := range week {
		week[i] = start.AddDate(0, 0, i)
	}
	return week
}

// MonthWindow returns the full grid for the month containing date:
// left-padded back to the preceding Sunday and right-padded until the
// length is a multiple of 7, so the grid always renders complete weeks.
func MonthWindow(date time.Time) []time.Time {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := first.AddDate(0, 1, 0) // first day of next month

	var window []time.Time
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		window = append(window, d)
	}
	for len(window)%7 != 0 {
		window = append(window, window[len(window)-1].AddDate(0, 0, 1))
	}
	return window
}

// Project produces a date-keyed entry map for habit over window. Every
// window date up to and including today gets an entry; future dates are
// absent from the map (rendered as "no data", never as zero). Days with no
// recorded history yield a zero-valued entry carrying the habit's target.
// The boundary check is date-only, so clock time cannot shift it.
func Project(habit models.Habit, window []time.Time, today time.Time, source EntrySource) (map[string]Entry, error) {
	if len(window) == 0 {
		return map[string]Entry{}, nil
	}

	today = Normalize(today)
	startDay := DayKey(window[0])
	endDay := DayKey(window[len(window)-1])
	if last := Normalize(window[len(window)-1]); last.After(today) {
		endDay = DayKey(today)
	}

	recorded, err := source.GetHabitEntries(habit.ID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]models.HabitEntry, len(recorded))
	for _, e := range recorded {
		byDay[e.Day] = e
	}

	entries := make(map[string]Entry)
	for _, d := range window {
		if Normalize(d).After(today) {
			continue
		}
		key := DayKey(d)
		entry := Entry{Target: habit.Target}
		if rec, ok := byDay[key]; ok {
			entry.Completed = rec.Completed
			entry.Value = rec.Value
		}
		entries[key] = entry
	}
	return entries, nil
}

// PeriodStats aggregates projected entries. An empty map yields zero
// percent, not a division by zero.
func PeriodStats(entries map[string]Entry) Stats {
	stats := Stats{}
	for _, e := range entries {
		if e.Completed {
			stats.CompletedDays++
		}
		stats.TotalValue += e.Value
	}
	if len(entries) > 0 {
		stats.CompletionPercentage = int(math.Round(100 * float64(stats.CompletedDays) / float64(len(entries))))
	}
	return stats
}

// ShiftWindow moves the anchor one window in direction: ±7 days for week
// view, ±1 calendar month for month view with standard time.AddDate
// semantics.
func ShiftWindow(anchor time.Time, mode ViewMode, direction int) time.Time {
	if mode == ViewMonth {
		return anchor.AddDate(0, direction, 0)
	}
	return anchor.AddDate(0, 0, 7*direction)
}

// Normalize strips the time of day, keeping the location.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey formats t as the YYYY-MM-DD map key.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}
