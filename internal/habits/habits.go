// Package habits owns the habit collection and is its only writer. All
// mutation funnels through the Service so the creation validation and the
// independent completed/current contract hold everywhere.
package habits

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rutina-app/rutina/internal/constants"
	"github.com/rutina-app/rutina/internal/models"
)

// Store is the slice of the persistence layer the service needs. Lookups
// report absence with sql.ErrNoRows; any other error is a storage failure.
type Store interface {
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	UpsertHabitEntry(models.HabitEntry) error
	GetHabitEntry(habitID, day string) (models.HabitEntry, error)
}

// ValidationError names the first creation field that was missing or
// invalid. Required fields are checked in the fixed order name, icon,
// category, frequency.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "is required"
	}
	return fmt.Sprintf("invalid habit: %s %s", e.Field, reason)
}

// NotFoundError reports an operation against an unknown habit id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("habit %q not found", e.ID)
}

// CreateSpec is the validated input for creating a habit. Category and
// Frequency may each be one of the predefined choices or a custom
// non-empty string supplied in the corresponding Custom field.
type CreateSpec struct {
	Name            string
	Description     string
	Icon            string
	Category        string
	CustomCategory  string
	Frequency       string
	CustomFrequency string
	Target          int
	TargetUnit      string
	Difficulty      models.Difficulty
	Priority        models.Priority
	Tags            []string
	Reminder        *models.Reminder
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Create validates spec and persists a new habit. New habits always start
// pending: completed=false, streak=0, current=0.
func (s *Service) Create(spec CreateSpec) (models.Habit, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return models.Habit{}, &ValidationError{Field: "name"}
	}
	if strings.TrimSpace(spec.Icon) == "" {
		return models.Habit{}, &ValidationError{Field: "icon"}
	}
	category := resolveChoice(spec.Category, spec.CustomCategory)
	if category == "" {
		return models.Habit{}, &ValidationError{Field: "category"}
	}
	frequency := resolveChoice(spec.Frequency, spec.CustomFrequency)
	if frequency == "" {
		return models.Habit{}, &ValidationError{Field: "frequency"}
	}
	if spec.Reminder != nil {
		if _, err := time.Parse(constants.TimeFormat, spec.Reminder.Time); err != nil {
			return models.Habit{}, &ValidationError{Field: "reminder", Reason: fmt.Sprintf("%q is not an HH:MM time", spec.Reminder.Time)}
		}
	}

	target := spec.Target
	if target < 1 {
		target = 1
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(spec.Name),
		Description: strings.TrimSpace(spec.Description),
		Icon:        spec.Icon,
		Category:    category,
		Tags:        spec.Tags,
		Target:      target,
		TargetUnit:  spec.TargetUnit,
		Current:     0,
		Completed:   false,
		Streak:      0,
		Frequency:   frequency,
		Difficulty:  spec.Difficulty,
		Priority:    spec.Priority,
		Reminder:    spec.Reminder,
		CreatedAt:   s.now(),
	}

	if err := s.store.AddHabit(habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// Toggle flips the completed flag of the habit. Current and Streak are left
// untouched; completion is an explicit user action, never derived from
// progress. Today's history entry is updated to match so calendar
// projections reflect the toggle.
func (s *Service) Toggle(id string) (models.Habit, error) {
	habit, err := s.store.GetHabit(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, &NotFoundError{ID: id}
	}
	if err != nil {
		return models.Habit{}, err
	}

	habit.Completed = !habit.Completed
	if habit.Completed {
		now := s.now()
		habit.LastCompleted = &now
	}

	if err := s.store.UpdateHabit(habit); err != nil {
		return models.Habit{}, err
	}
	if err := s.recordToday(habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// LogProgress upserts the history entry for the given day with the value.
// Future days are rejected; logging for today also advances the habit's
// current counter. A past day's recorded completion is never rewritten,
// only its value.
func (s *Service) LogProgress(id, day string, value int) (models.HabitEntry, error) {
	habit, err := s.store.GetHabit(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HabitEntry{}, &NotFoundError{ID: id}
	}
	if err != nil {
		return models.HabitEntry{}, err
	}

	if day == "" {
		day = s.now().Format(constants.DateFormat)
	}
	if _, err := time.Parse(constants.DateFormat, day); err != nil {
		return models.HabitEntry{}, fmt.Errorf("invalid day %q (expected YYYY-MM-DD)", day)
	}
	today := s.now().Format(constants.DateFormat)
	if day > today {
		return models.HabitEntry{}, fmt.Errorf("cannot log progress for future day %s", day)
	}

	entry, err := s.upsertEntry(habit.ID, day, value, habit.Completed && day == today, day != today)
	if err != nil {
		return models.HabitEntry{}, err
	}

	if day == today {
		habit.Current = value
		if err := s.store.UpdateHabit(habit); err != nil {
			return models.HabitEntry{}, err
		}
	}
	return entry, nil
}

func (s *Service) recordToday(habit models.Habit) error {
	day := s.now().Format(constants.DateFormat)
	_, err := s.upsertEntry(habit.ID, day, habit.Current, habit.Completed, false)
	return err
}

// upsertEntry writes the day's record. With preserveCompleted set, an
// existing entry keeps its recorded completed flag instead of taking the
// caller's.
func (s *Service) upsertEntry(habitID, day string, value int, completed, preserveCompleted bool) (models.HabitEntry, error) {
	now := s.now()
	entry := models.HabitEntry{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		Day:       day,
		Value:     value,
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing, err := s.store.GetHabitEntry(habitID, day); err == nil {
		entry.ID = existing.ID
		entry.CreatedAt = existing.CreatedAt
		if preserveCompleted {
			entry.Completed = existing.Completed
		}
	}
	if err := s.store.UpsertHabitEntry(entry); err != nil {
		return models.HabitEntry{}, err
	}
	return entry, nil
}

// AdjustTarget applies delta to a target value with a floor of 1. The
// increment and decrement controls can never drive a target below 1.
func AdjustTarget(current, delta int) int {
	v := current + delta
	if v < 1 {
		return 1
	}
	return v
}

// CompletionPercentage is the rounded percentage of completed habits.
// An empty collection is 0, not a division by zero.
func CompletionPercentage(habits []models.Habit) int {
	if len(habits) == 0 {
		return 0
	}
	completed := 0
	for _, h := range habits {
		if h.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(habits))))
}

// AddTag appends newTag preserving insertion order. Empty (after trimming)
// or already-present tags are a no-op; comparison is case-sensitive.
func AddTag(tags []string, newTag string) []string {
	newTag = strings.TrimSpace(newTag)
	if newTag == "" {
		return tags
	}
	for _, t := range tags {
		if t == newTag {
			return tags
		}
	}
	return append(tags, newTag)
}

func resolveChoice(predefined, custom string) string {
	if v := strings.TrimSpace(predefined); v != "" {
		return v
	}
	return strings.TrimSpace(custom)
}
