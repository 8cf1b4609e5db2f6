package storage

import "github.com/rutina-app/rutina/internal/models"

// Provider is the persistence boundary of the application. The core domain
// packages depend on narrow slices of it; the concrete implementation lives
// in the sqlite subpackage.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error

	// Habit entries (per-day history)
	UpsertHabitEntry(models.HabitEntry) error
	GetHabitEntry(habitID, day string) (models.HabitEntry, error)
	GetHabitEntries(habitID, startDay, endDay string) ([]models.HabitEntry, error)
	GetHabitEntryDays(habitID string) ([]string, error)

	// Areas and their tasks. DeleteArea cascades to the area's tasks.
	AddArea(models.Area) error
	GetArea(id string) (models.Area, error)
	GetAreaByName(name string) (models.Area, error)
	GetAllAreas() ([]models.Area, error)
	DeleteArea(id string) error
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetTasks(areaID string) ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error

	// Preferences: string-valued key/value pairs. Get reports absence via
	// the bool instead of an error so callers can fail soft.
	GetPreference(key string) (string, bool, error)
	SetPreference(key, value string) error

	// Utils
	GetConfigPath() string
}
