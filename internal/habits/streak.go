package habits

import (
	"sort"
	"time"

	"github.com/rutina-app/rutina/internal/constants"
)

// Streak statistics are derived from completed history days at display
// time. The persisted Habit.Streak field belongs to an external policy and
// is never written here.

// CurrentStreak counts consecutive completed days ending today or
// yesterday. A most recent completion older than yesterday means the run
// is broken.
func CurrentStreak(days []string, today time.Time) int {
	parsed := parseDays(days)
	if len(parsed) == 0 {
		return 0
	}

	today = truncateDay(today)
	yesterday := today.AddDate(0, 0, -1)
	last := parsed[len(parsed)-1]
	if last.Before(yesterday) {
		return 0
	}

	streak := 1
	current := last
	for i := len(parsed) - 2; i >= 0; i-- {
		if parsed[i].Equal(current.AddDate(0, 0, -1)) {
			streak++
			current = parsed[i]
		} else {
			break
		}
	}
	return streak
}

// LongestStreak is the longest consecutive run anywhere in the history.
func LongestStreak(days []string) int {
	parsed := parseDays(days)
	if len(parsed) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(parsed); i++ {
		if parsed[i].Equal(parsed[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			if run > longest {
				longest = run
			}
			run = 1
		}
	}
	if run > longest {
		longest = run
	}
	return longest
}

func parseDays(days []string) []time.Time {
	parsed := make([]time.Time, 0, len(days))
	for _, d := range days {
		t, err := time.Parse(constants.DateFormat, d)
		if err != nil {
			continue
		}
		parsed = append(parsed, t)
	}
	sort.Slice(parsed, func(i, j int) bool { return parsed[i].Before(parsed[j]) })
	return parsed
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
