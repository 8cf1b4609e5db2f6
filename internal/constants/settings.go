package constants

const (
	// Preference keys. Each holds one mode string verbatim in the preferences table.
	PrefKeyThemeMode    = "theme_mode"
	PrefKeyLanguageMode = "language_mode"

	// ModeSystem means "follow the device default" for either preference kind.
	ModeSystem = "system"

	// Theme modes
	ThemeLight = "light"
	ThemeDark  = "dark"

	// Language modes
	LanguageSpanish = "es"
	LanguageEnglish = "en"

	// Device defaults assumed when no live system value has been observed
	DefaultSystemTheme    = ThemeLight
	DefaultSystemLanguage = LanguageSpanish
)
