package sqlite

import (
	"fmt"
	"time"

	"github.com/rutina-app/rutina/internal/models"
)

func (s *Store) AddArea(area models.Area) error {
	_, err := s.db.Exec(`
		INSERT INTO areas (id, name, color, emoji, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		area.ID, area.Name, area.Color, area.Emoji, area.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetArea(id string) (models.Area, error) {
	row := s.db.QueryRow(`SELECT id, name, color, emoji, created_at FROM areas WHERE id = ?`, id)
	return scanArea(row)
}

func (s *Store) GetAreaByName(name string) (models.Area, error) {
	row := s.db.QueryRow(`SELECT id, name, color, emoji, created_at FROM areas WHERE name = ?`, name)
	return scanArea(row)
}

func (s *Store) GetAllAreas() ([]models.Area, error) {
	rows, err := s.db.Query(`SELECT id, name, color, emoji, created_at FROM areas ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []models.Area
	for rows.Next() {
		a, err := scanArea(rows)
		if err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

// DeleteArea removes an area together with every task it owns. The cascade
// runs in one transaction so a failure leaves both tables untouched.
func (s *Store) DeleteArea(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM tasks WHERE area_id = ?`, id); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec(`DELETE FROM areas WHERE id = ?`, id); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *Store) AddTask(task models.Task) error {
	_, err := s.db.Exec(`
		INSERT INTO tasks (id, area_id, text, completed, priority, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.AreaID, task.Text, task.Completed, string(task.Priority),
		task.Position, task.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`
		SELECT id, area_id, text, completed, priority, position, created_at
		FROM tasks WHERE id = ?`, id)

	var t models.Task
	var createdAt string
	if err := row.Scan(&t.ID, &t.AreaID, &t.Text, &t.Completed, &t.Priority, &t.Position, &createdAt); err != nil {
		return models.Task{}, err
	}
	return parseTaskTime(t, createdAt)
}

func (s *Store) GetTasks(areaID string) ([]models.Task, error) {
	rows, err := s.db.Query(`
		SELECT id, area_id, text, completed, priority, position, created_at
		FROM tasks WHERE area_id = ? ORDER BY position, created_at`, areaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		var createdAt string
		if err := rows.Scan(&t.ID, &t.AreaID, &t.Text, &t.Completed, &t.Priority, &t.Position, &createdAt); err != nil {
			return nil, err
		}
		t, err = parseTaskTime(t, createdAt)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) UpdateTask(task models.Task) error {
	_, err := s.db.Exec(`
		UPDATE tasks SET text = ?, completed = ?, priority = ?, position = ?
		WHERE id = ?`,
		task.Text, task.Completed, string(task.Priority), task.Position, task.ID)
	return err
}

func (s *Store) DeleteTask(id string) error {
	_, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	return err
}

func scanArea(row rowScanner) (models.Area, error) {
	var a models.Area
	var createdAt string
	if err := row.Scan(&a.ID, &a.Name, &a.Color, &a.Emoji, &createdAt); err != nil {
		return models.Area{}, err
	}
	var err error
	a.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Area{}, fmt.Errorf("failed to parse created_at for area %s: %w", a.ID, err)
	}
	return a, nil
}

func parseTaskTime(t models.Task, createdAt string) (models.Task, error) {
	var err error
	t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to parse created_at for task %s: %w", t.ID, err)
	}
	return t, nil
}
