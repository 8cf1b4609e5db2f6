package models

import "time"

// TaskPriority is the urgency label of a to-do task.
type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "alta"
	TaskPriorityMedium TaskPriority = "media"
	TaskPriorityLow    TaskPriority = "baja"
)

// Area is a named grouping of to-do tasks with display metadata. Tasks are
// owned exclusively by their area; deleting an area cascades to its tasks.
type Area struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	Emoji     string    `json:"emoji,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Task is a single to-do item inside an area.
type Task struct {
	ID        string       `json:"id"`
	AreaID    string       `json:"area_id"`
	Text      string       `json:"text"`
	Completed bool         `json:"completed"`
	Priority  TaskPriority `json:"priority"`
	Position  int          `json:"position"`
	CreatedAt time.Time    `json:"created_at"`
}
