package sqlite

import (
	"fmt"
	"time"

	"github.com/rutina-app/rutina/internal/models"
)

func (s *Store) UpsertHabitEntry(entry models.HabitEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO habit_entries (id, habit_id, day, value, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (habit_id, day) DO UPDATE SET
			value = excluded.value,
			completed = excluded.completed,
			updated_at = excluded.updated_at`,
		entry.ID, entry.HabitID, entry.Day, entry.Value, entry.Completed,
		entry.CreatedAt.Format(time.RFC3339), entry.UpdatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetHabitEntry(habitID, day string) (models.HabitEntry, error) {
	row := s.db.QueryRow(`
		SELECT id, habit_id, day, value, completed, created_at, updated_at
		FROM habit_entries WHERE habit_id = ? AND day = ?`, habitID, day)

	var e models.HabitEntry
	var createdAt, updatedAt string
	if err := row.Scan(&e.ID, &e.HabitID, &e.Day, &e.Value, &e.Completed, &createdAt, &updatedAt); err != nil {
		return models.HabitEntry{}, err
	}
	return parseEntryTimes(e, createdAt, updatedAt)
}

func (s *Store) GetHabitEntries(habitID, startDay, endDay string) ([]models.HabitEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, day, value, completed, created_at, updated_at
		FROM habit_entries
		WHERE habit_id = ? AND day >= ? AND day <= ?
		ORDER BY day`, habitID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.HabitEntry
	for rows.Next() {
		var e models.HabitEntry
		var createdAt, updatedAt string
		if err := rows.Scan(&e.ID, &e.HabitID, &e.Day, &e.Value, &e.Completed, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		e, err = parseEntryTimes(e, createdAt, updatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) GetHabitEntryDays(habitID string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT day FROM habit_entries
		WHERE habit_id = ? AND completed = 1
		ORDER BY day`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func parseEntryTimes(e models.HabitEntry, createdAt, updatedAt string) (models.HabitEntry, error) {
	var err error
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.HabitEntry{}, fmt.Errorf("failed to parse created_at for entry %s: %w", e.ID, err)
	}
	e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.HabitEntry{}, fmt.Errorf("failed to parse updated_at for entry %s: %w", e.ID, err)
	}
	return e, nil
}
