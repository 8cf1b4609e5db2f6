package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/rutina-app/rutina/internal/habits"
	"github.com/rutina-app/rutina/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h, v := m.styles.doc.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-2)
	case habitsLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.habits))
		for _, h := range msg.habits {
			items = append(items, Item{Habit: h})
		}
		return m, m.list.SetItems(items)
	}

	if m.state == stateAddHabit {
		return m.updateForm(msg)
	}
	return m.updateBoard(msg)
}

func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			if item, ok := m.list.SelectedItem().(Item); ok {
				if _, err := m.service.Toggle(item.Habit.ID); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
				m.errMsg = ""
				return m, m.reload()
			}
			return m, nil
		case key.Matches(msg, m.keys.Add):
			m.state = stateAddHabit
			// The form holds pointers into the CreateSpec, and bubbletea
			// copies the model between updates, so it must live on the heap.
			m.spec = &habits.CreateSpec{Target: 1}
			m.form = newHabitForm(m.spec)
			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = stateBoard
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.state = stateBoard
		if _, err := m.service.Create(*m.spec); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.errMsg = ""
		return m, m.reload()
	}
	return m, cmd
}

func newHabitForm(spec *habits.CreateSpec) *huh.Form {
	iconOptions := make([]huh.Option[string], 0, len(models.KnownIcons))
	for _, icon := range models.KnownIcons {
		iconOptions = append(iconOptions, huh.NewOption(icon, icon))
	}
	categoryOptions := make([]huh.Option[string], 0, len(models.PredefinedCategories))
	for _, cat := range models.PredefinedCategories {
		categoryOptions = append(categoryOptions, huh.NewOption(cat, cat))
	}
	frequencyOptions := make([]huh.Option[string], 0, len(models.PredefinedFrequencies))
	for _, freq := range models.PredefinedFrequencies {
		frequencyOptions = append(frequencyOptions, huh.NewOption(freq, freq))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Nombre").Value(&spec.Name),
			huh.NewSelect[string]().Title("Icono").Options(iconOptions...).Value(&spec.Icon),
			huh.NewSelect[string]().Title("Categoría").Options(categoryOptions...).Value(&spec.Category),
			huh.NewSelect[string]().Title("Frecuencia").Options(frequencyOptions...).Value(&spec.Frequency),
		),
	)
}
