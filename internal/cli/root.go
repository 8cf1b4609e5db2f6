package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rutina-app/rutina/internal/constants"
	"github.com/rutina-app/rutina/internal/habits"
	"github.com/rutina-app/rutina/internal/i18n"
	"github.com/rutina-app/rutina/internal/models"
	"github.com/rutina-app/rutina/internal/prefs"
	"github.com/rutina-app/rutina/internal/storage"
)

// Context is the shared state handed to every command's Run method.
type Context struct {
	Store    storage.Provider
	Habits   *habits.Service
	Theme    *prefs.Resolver
	Language *prefs.Resolver
}

// NewContext wires the domain services and preference resolvers over the
// store. The theme probe asks the terminal, the language probe the
// process environment; both are re-read on every resolve.
func NewContext(store storage.Provider) *Context {
	kv := prefStore{provider: store}
	return &Context{
		Store:    store,
		Habits:   habits.NewService(store),
		Theme:    prefs.NewResolver(models.PreferenceTheme, kv, probeSystemTheme),
		Language: prefs.NewResolver(models.PreferenceLanguage, kv, probeSystemLanguage),
	}
}

// T translates a message key using the effective language.
func (c *Context) T(key string) string {
	return i18n.T(c.Language.Effective(), key)
}

// HabitByName resolves a habit for a command, reporting absence as a
// user-facing error. Storage failures pass through untouched.
func (c *Context) HabitByName(name string) (models.Habit, error) {
	habit, err := c.Store.GetHabitByName(name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, fmt.Errorf("habit %q not found", name)
	}
	return habit, err
}

// AreaByName resolves an area for a command, reporting absence as a
// user-facing error. Storage failures pass through untouched.
func (c *Context) AreaByName(name string) (models.Area, error) {
	area, err := c.Store.GetAreaByName(name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Area{}, fmt.Errorf("area %q not found", name)
	}
	return area, err
}

// prefStore adapts the storage Provider to the narrow KV contract the
// preference resolver consumes.
type prefStore struct {
	provider storage.Provider
}

func (s prefStore) Get(key string) (string, bool, error) {
	return s.provider.GetPreference(key)
}

func (s prefStore) Set(key, value string) error {
	return s.provider.SetPreference(key, value)
}

func probeSystemTheme() string {
	if lipgloss.HasDarkBackground() {
		return constants.ThemeDark
	}
	return constants.ThemeLight
}

func probeSystemLanguage() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := strings.ToLower(os.Getenv(env))
		if strings.HasPrefix(v, "en") {
			return constants.LanguageEnglish
		}
		if strings.HasPrefix(v, "es") {
			return constants.LanguageSpanish
		}
	}
	return constants.DefaultSystemLanguage
}
