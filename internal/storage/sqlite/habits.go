package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rutina-app/rutina/internal/models"
)

const habitColumns = `id, name, description, icon, category, tags, target, target_unit,
	current, completed, streak, frequency, difficulty, priority,
	reminder_time, reminder_enabled, created_at, last_completed`

func (s *Store) AddHabit(habit models.Habit) error {
	return s.UpdateHabit(habit)
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE id = ?`, id)
	return scanHabit(row)
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	row := s.db.QueryRow(`SELECT `+habitColumns+` FROM habits WHERE name = ?`, name)
	return scanHabit(row)
}

func (s *Store) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`SELECT ` + habitColumns + ` FROM habits ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	tags, err := json.Marshal(habit.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	var reminderTime sql.NullString
	reminderEnabled := false
	if habit.Reminder != nil {
		reminderTime = sql.NullString{String: habit.Reminder.Time, Valid: true}
		reminderEnabled = habit.Reminder.Enabled
	}

	var lastCompleted sql.NullString
	if habit.LastCompleted != nil {
		lastCompleted = sql.NullString{String: habit.LastCompleted.Format(time.RFC3339), Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO habits (`+habitColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		habit.ID, habit.Name, habit.Description, habit.Icon, habit.Category,
		string(tags), habit.Target, habit.TargetUnit, habit.Current,
		habit.Completed, habit.Streak, habit.Frequency, string(habit.Difficulty),
		string(habit.Priority), reminderTime, reminderEnabled,
		habit.CreatedAt.Format(time.RFC3339), lastCompleted)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var tags, createdAt string
	var reminderTime, lastCompleted sql.NullString
	var reminderEnabled bool

	err := row.Scan(&h.ID, &h.Name, &h.Description, &h.Icon, &h.Category,
		&tags, &h.Target, &h.TargetUnit, &h.Current, &h.Completed, &h.Streak,
		&h.Frequency, &h.Difficulty, &h.Priority, &reminderTime,
		&reminderEnabled, &createdAt, &lastCompleted)
	if err != nil {
		return models.Habit{}, err
	}

	if err := json.Unmarshal([]byte(tags), &h.Tags); err != nil {
		return models.Habit{}, fmt.Errorf("failed to decode tags for habit %s: %w", h.ID, err)
	}
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}
	if reminderTime.Valid {
		h.Reminder = &models.Reminder{Time: reminderTime.String, Enabled: reminderEnabled}
	}
	if lastCompleted.Valid {
		t, err := time.Parse(time.RFC3339, lastCompleted.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("failed to parse last_completed for habit %s: %w", h.ID, err)
		}
		h.LastCompleted = &t
	}

	return h, nil
}
