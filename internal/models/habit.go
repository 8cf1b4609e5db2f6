package models

import "time"

// Frequency is how often a habit is meant to be performed. The values are
// the user-facing Spanish labels and are stored verbatim; anything outside
// this set is treated as a custom frequency.
type Frequency = string

const (
	FrequencyDaily    Frequency = "Diario"
	FrequencyWeekly   Frequency = "Semanal"
	FrequencyMonthly  Frequency = "Mensual"
	FrequencyWeekdays Frequency = "Lunes a Viernes"
	FrequencyWeekends Frequency = "Fines de semana"
)

// PredefinedFrequencies lists the built-in frequency choices in display order.
var PredefinedFrequencies = []Frequency{
	FrequencyDaily,
	FrequencyWeekly,
	FrequencyMonthly,
	FrequencyWeekdays,
	FrequencyWeekends,
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "fácil"
	DifficultyMedium Difficulty = "media"
	DifficultyHard   Difficulty = "difícil"
)

type Priority string

const (
	PriorityHigh   Priority = "alta"
	PriorityMedium Priority = "media"
	PriorityLow    Priority = "baja"
)

// PredefinedCategories lists the built-in habit categories.
var PredefinedCategories = []string{
	"Salud",
	"Ejercicio",
	"Productividad",
	"Aprendizaje",
	"Bienestar",
	"Finanzas",
}

// KnownIcons are the stable icon identifiers offered by the creation form.
// The core never holds a renderable handle, only these names; resolving an
// identifier to an actual glyph happens at the UI boundary.
var KnownIcons = []string{
	"Droplets",
	"Book",
	"Dumbbell",
	"Moon",
	"Sun",
	"Heart",
	"Leaf",
	"Coffee",
	"Pencil",
	"Wallet",
}

// Reminder is an optional time-of-day nudge for a habit.
type Reminder struct {
	Time    string `json:"time,omitempty"` // HH:MM format
	Enabled bool   `json:"enabled"`
}

// Habit represents a recurring user goal with a target, frequency, and
// completion state.
//
// Completed and Current/Target are deliberately independent: Completed flips
// only on explicit user action and is never derived from Current reaching
// Target. Streak is likewise never written by the progress model itself;
// only display-time statistics derive streaks from history.
type Habit struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Icon          string     `json:"icon"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags,omitempty"`
	Target        int        `json:"target"`
	TargetUnit    string     `json:"target_unit,omitempty"`
	Current       int        `json:"current"`
	Completed     bool       `json:"completed"`
	Streak        int        `json:"streak"`
	Frequency     Frequency  `json:"frequency"`
	Difficulty    Difficulty `json:"difficulty,omitempty"`
	Priority      Priority   `json:"priority,omitempty"`
	Reminder      *Reminder  `json:"reminder,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	LastCompleted *time.Time `json:"last_completed,omitempty"`
}

// HabitEntry is one day's recorded progress for a habit. Day uses the
// YYYY-MM-DD format. Entries are the real history behind calendar
// projections and streak statistics.
type HabitEntry struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Day       string    `json:"day"`
	Value     int       `json:"value"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
