// Package i18n is a static key lookup for the two supported languages.
// It is deliberately not an i18n engine: no plurals, no interpolation
// rules, just tables.
package i18n

import "github.com/rutina-app/rutina/internal/constants"

var messages = map[string]map[string]string{
	constants.LanguageSpanish: {
		"habit.added":        "Hábito creado: %s",
		"habit.toggled.on":   "Hábito completado: %s",
		"habit.toggled.off":  "Hábito pendiente: %s",
		"habit.none":         "No hay hábitos todavía.",
		"habit.logged":       "Progreso registrado: %s = %d (%s)",
		"habit.tag.added":    "Etiqueta añadida a %s: %s",
		"habit.target.set":   "Meta de %s ahora es %d",
		"area.added":         "Área creada: %s",
		"area.deleted":       "Área eliminada (con sus tareas): %s",
		"area.none":          "No hay áreas todavía.",
		"task.added":         "Tarea añadida a %s",
		"task.toggled":       "Tarea actualizada",
		"stats.completion":   "Completado: %d%%",
		"stats.streak":       "Racha actual: %d día(s), mejor racha: %d día(s)",
		"calendar.nodata":    "sin datos",
		"config.theme":       "Tema: modo=%s, efectivo=%s",
		"config.language":    "Idioma: modo=%s, efectivo=%s",
		"config.updated":     "Preferencia actualizada: %s",
	},
	constants.LanguageEnglish: {
		"habit.added":        "Habit created: %s",
		"habit.toggled.on":   "Habit completed: %s",
		"habit.toggled.off":  "Habit pending: %s",
		"habit.none":         "No habits yet.",
		"habit.logged":       "Progress logged: %s = %d (%s)",
		"habit.tag.added":    "Tag added to %s: %s",
		"habit.target.set":   "Target for %s is now %d",
		"area.added":         "Area created: %s",
		"area.deleted":       "Area deleted (with its tasks): %s",
		"area.none":          "No areas yet.",
		"task.added":         "Task added to %s",
		"task.toggled":       "Task updated",
		"stats.completion":   "Completion: %d%%",
		"stats.streak":       "Current streak: %d day(s), longest: %d day(s)",
		"calendar.nodata":    "no data",
		"config.theme":       "Theme: mode=%s, effective=%s",
		"config.language":    "Language: mode=%s, effective=%s",
		"config.updated":     "Preference updated: %s",
	},
}

// T looks up key for lang, falling back to Spanish and then to the key
// itself so a missing translation never hides output.
func T(lang, key string) string {
	if table, ok := messages[lang]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[constants.LanguageSpanish][key]; ok {
		return msg
	}
	return key
}
