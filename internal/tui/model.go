package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rutina-app/rutina/internal/habits"
	"github.com/rutina-app/rutina/internal/models"
	"github.com/rutina-app/rutina/internal/storage"
)

type sessionState int

const (
	stateBoard sessionState = iota
	stateAddHabit
)

// Item adapts a habit for the bubbles list.
type Item struct {
	Habit models.Habit
}

func (i Item) Title() string {
	status := "○"
	if i.Habit.Completed {
		status = "✓"
	}
	return fmt.Sprintf("%s %s", status, i.Habit.Name)
}

func (i Item) Description() string {
	return fmt.Sprintf("%s · %s · %d/%d %s", i.Habit.Category, i.Habit.Frequency, i.Habit.Current, i.Habit.Target, i.Habit.TargetUnit)
}

func (i Item) FilterValue() string { return i.Habit.Name }

type Model struct {
	store   storage.Provider
	service *habits.Service
	state   sessionState
	list    list.Model
	keys    KeyMap
	help    help.Model
	form    *huh.Form
	spec    *habits.CreateSpec
	styles  styles
	errMsg  string
	width   int
	height  int
}

// New builds the habit board. The effective theme picks the palette.
func New(store storage.Provider, service *habits.Service, theme string) Model {
	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, 0, 0)
	l.Title = "Hábitos"
	l.SetShowHelp(false)

	return Model{
		store:   store,
		service: service,
		state:   stateBoard,
		list:    l,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		styles:  stylesFor(theme),
	}
}

func (m Model) Init() tea.Cmd {
	return m.reload()
}

type habitsLoadedMsg struct {
	habits []models.Habit
	err    error
}

func (m Model) reload() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		all, err := store.GetAllHabits()
		return habitsLoadedMsg{habits: all, err: err}
	}
}
