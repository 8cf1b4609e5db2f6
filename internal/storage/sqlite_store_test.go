package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rutina-app/rutina/internal/models"
)

func newTestStore(t *testing.T) Provider {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "rutina.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleHabit(id, name string) models.Habit {
	return models.Habit{
		ID:         id,
		Name:       name,
		Icon:       "Droplets",
		Category:   "Salud",
		Tags:       []string{"mañana", "salud"},
		Target:     8,
		TargetUnit: "vasos",
		Frequency:  models.FrequencyDaily,
		CreatedAt:  time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestLoad_RequiresInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Fatal("Load on an uninitialized path should fail")
	}
}

func TestHabitRoundtrip(t *testing.T) {
	store := newTestStore(t)

	habit := sampleHabit("h1", "Beber agua")
	habit.Reminder = &models.Reminder{Time: "08:00", Enabled: true}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("AddHabit failed: %v", err)
	}

	got, err := store.GetHabit("h1")
	if err != nil {
		t.Fatalf("GetHabit failed: %v", err)
	}
	if got.Name != habit.Name || got.Target != 8 || got.Frequency != models.FrequencyDaily {
		t.Errorf("unexpected habit: %+v", got)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "mañana" {
		t.Errorf("tags not preserved: %v", got.Tags)
	}
	if got.Reminder == nil || got.Reminder.Time != "08:00" || !got.Reminder.Enabled {
		t.Errorf("reminder not preserved: %+v", got.Reminder)
	}
	if !got.CreatedAt.Equal(habit.CreatedAt) {
		t.Errorf("created_at not preserved: %v", got.CreatedAt)
	}

	byName, err := store.GetHabitByName("Beber agua")
	if err != nil || byName.ID != "h1" {
		t.Errorf("GetHabitByName = %+v, %v", byName, err)
	}

	got.Completed = true
	got.Current = 5
	if err := store.UpdateHabit(got); err != nil {
		t.Fatalf("UpdateHabit failed: %v", err)
	}
	updated, _ := store.GetHabit("h1")
	if !updated.Completed || updated.Current != 5 {
		t.Errorf("update not persisted: %+v", updated)
	}

	all, err := store.GetAllHabits()
	if err != nil || len(all) != 1 {
		t.Errorf("GetAllHabits = %d habits, %v", len(all), err)
	}
}

func TestHabitEntries(t *testing.T) {
	store := newTestStore(t)
	if err := store.AddHabit(sampleHabit("h1", "Leer")); err != nil {
		t.Fatal(err)
	}

	now := time.Date(2024, 6, 15, 20, 0, 0, 0, time.UTC)
	for i, day := range []string{"2024-06-12", "2024-06-13", "2024-06-15"} {
		entry := models.HabitEntry{
			ID:        day,
			HabitID:   "h1",
			Day:       day,
			Value:     i + 1,
			Completed: i != 1,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.UpsertHabitEntry(entry); err != nil {
			t.Fatalf("UpsertHabitEntry failed: %v", err)
		}
	}

	// Upsert on the same day updates in place.
	if err := store.UpsertHabitEntry(models.HabitEntry{
		ID: "other-id", HabitID: "h1", Day: "2024-06-13", Value: 9, Completed: true,
		CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		t.Fatalf("upsert update failed: %v", err)
	}
	entry, err := store.GetHabitEntry("h1", "2024-06-13")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Value != 9 || !entry.Completed {
		t.Errorf("upsert did not update: %+v", entry)
	}

	entries, err := store.GetHabitEntries("h1", "2024-06-13", "2024-06-15")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries in range, got %d", len(entries))
	}
	if entries[0].Day != "2024-06-13" || entries[1].Day != "2024-06-15" {
		t.Errorf("entries not ordered by day: %v, %v", entries[0].Day, entries[1].Day)
	}

	days, err := store.GetHabitEntryDays("h1")
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 3 {
		t.Errorf("expected 3 completed days, got %v", days)
	}
}

func TestAreaCascadeDelete(t *testing.T) {
	store := newTestStore(t)

	area := models.Area{ID: "a1", Name: "Hogar", Emoji: "🏠", CreatedAt: time.Now().UTC()}
	if err := store.AddArea(area); err != nil {
		t.Fatalf("AddArea failed: %v", err)
	}
	other := models.Area{ID: "a2", Name: "Trabajo", CreatedAt: time.Now().UTC()}
	if err := store.AddArea(other); err != nil {
		t.Fatal(err)
	}

	for i, text := range []string{"Lavar platos", "Regar plantas"} {
		task := models.Task{
			ID: text, AreaID: "a1", Text: text,
			Priority: models.TaskPriorityMedium, Position: i, CreatedAt: time.Now().UTC(),
		}
		if err := store.AddTask(task); err != nil {
			t.Fatalf("AddTask failed: %v", err)
		}
	}
	keep := models.Task{ID: "t-keep", AreaID: "a2", Text: "Informe", Priority: models.TaskPriorityHigh, CreatedAt: time.Now().UTC()}
	if err := store.AddTask(keep); err != nil {
		t.Fatal(err)
	}

	if err := store.DeleteArea("a1"); err != nil {
		t.Fatalf("DeleteArea failed: %v", err)
	}

	if _, err := store.GetArea("a1"); err == nil {
		t.Error("deleted area still present")
	}
	tasks, err := store.GetTasks("a1")
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 0 {
		t.Errorf("cascade delete left %d tasks", len(tasks))
	}
	remaining, err := store.GetTasks("a2")
	if err != nil || len(remaining) != 1 {
		t.Errorf("other area's tasks affected: %d, %v", len(remaining), err)
	}
}

func TestTaskUpdateAndDelete(t *testing.T) {
	store := newTestStore(t)
	if err := store.AddArea(models.Area{ID: "a1", Name: "Hogar", CreatedAt: time.Now().UTC()}); err != nil {
		t.Fatal(err)
	}
	task := models.Task{ID: "t1", AreaID: "a1", Text: "Lavar platos", Priority: models.TaskPriorityLow, CreatedAt: time.Now().UTC()}
	if err := store.AddTask(task); err != nil {
		t.Fatal(err)
	}

	task.Completed = true
	task.Priority = models.TaskPriorityHigh
	if err := store.UpdateTask(task); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	got, err := store.GetTask("t1")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Completed || got.Priority != models.TaskPriorityHigh {
		t.Errorf("update not persisted: %+v", got)
	}

	if err := store.DeleteTask("t1"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.GetTask("t1"); err == nil {
		t.Error("deleted task still present")
	}
}

func TestPreferences(t *testing.T) {
	store := newTestStore(t)

	if _, ok, err := store.GetPreference("theme_mode"); err != nil || ok {
		t.Errorf("absent key should report ok=false without error, got ok=%v err=%v", ok, err)
	}

	if err := store.SetPreference("theme_mode", "dark"); err != nil {
		t.Fatalf("SetPreference failed: %v", err)
	}
	value, ok, err := store.GetPreference("theme_mode")
	if err != nil || !ok || value != "dark" {
		t.Errorf("GetPreference = %q, %v, %v", value, ok, err)
	}

	if err := store.SetPreference("theme_mode", "system"); err != nil {
		t.Fatal(err)
	}
	value, _, _ = store.GetPreference("theme_mode")
	if value != "system" {
		t.Errorf("overwrite failed, got %q", value)
	}
}

func TestInit_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rutina.db")

	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	if err := store.AddHabit(sampleHabit("h1", "Leer")); err != nil {
		t.Fatal(err)
	}
	store.Close()

	again := NewSQLiteStore(path)
	if err := again.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	defer again.Close()
	if _, err := again.GetHabit("h1"); err != nil {
		t.Errorf("data lost after re-init: %v", err)
	}
}
