package habits

import (
	"testing"
	"time"
)

func TestCurrentStreak(t *testing.T) {
	today := time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		days []string
		want int
	}{
		{"no history", nil, 0},
		{"ends today", []string{"2024-06-13", "2024-06-14", "2024-06-15"}, 3},
		{"ends yesterday still counts", []string{"2024-06-13", "2024-06-14"}, 2},
		{"broken before yesterday", []string{"2024-06-10", "2024-06-11"}, 0},
		{"gap resets", []string{"2024-06-10", "2024-06-12", "2024-06-14", "2024-06-15"}, 2},
		{"unsorted input", []string{"2024-06-15", "2024-06-13", "2024-06-14"}, 3},
		{"single day today", []string{"2024-06-15"}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CurrentStreak(tc.days, today); got != tc.want {
				t.Errorf("CurrentStreak(%v) = %d, want %d", tc.days, got, tc.want)
			}
		})
	}
}

func TestLongestStreak(t *testing.T) {
	cases := []struct {
		name string
		days []string
		want int
	}{
		{"no history", nil, 0},
		{"single run", []string{"2024-06-01", "2024-06-02", "2024-06-03"}, 3},
		{"longest in the middle", []string{"2024-05-01", "2024-06-01", "2024-06-02", "2024-06-03", "2024-06-10"}, 3},
		{"final run longest", []string{"2024-06-01", "2024-06-05", "2024-06-06"}, 2},
		{"invalid dates skipped", []string{"not-a-date", "2024-06-01"}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := LongestStreak(tc.days); got != tc.want {
				t.Errorf("LongestStreak(%v) = %d, want %d", tc.days, got, tc.want)
			}
		})
	}
}
