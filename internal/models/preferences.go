package models

import "github.com/rutina-app/rutina/internal/constants"

// PreferenceKind distinguishes the two persisted preferences.
type PreferenceKind string

const (
	PreferenceTheme    PreferenceKind = "theme"
	PreferenceLanguage PreferenceKind = "language"
)

// PreferenceState holds the persisted user choice for one preference kind.
// The resolved value is never stored; it is recomputed from Mode and the
// live device default at read time.
type PreferenceState struct {
	Mode string `json:"mode"`
}

// StorageKey returns the preferences-table key for the kind.
func (k PreferenceKind) StorageKey() string {
	if k == PreferenceLanguage {
		return constants.PrefKeyLanguageMode
	}
	return constants.PrefKeyThemeMode
}

// ValidModes returns the enumerated legal mode strings for the kind.
func (k PreferenceKind) ValidModes() []string {
	if k == PreferenceLanguage {
		return []string{constants.ModeSystem, constants.LanguageSpanish, constants.LanguageEnglish}
	}
	return []string{constants.ModeSystem, constants.ThemeLight, constants.ThemeDark}
}

// DefaultSystemValue is the device default assumed before any live system
// value has been observed.
func (k PreferenceKind) DefaultSystemValue() string {
	if k == PreferenceLanguage {
		return constants.DefaultSystemLanguage
	}
	return constants.DefaultSystemTheme
}
