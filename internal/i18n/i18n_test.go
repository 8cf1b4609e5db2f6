package i18n

import (
	"testing"

	"github.com/rutina-app/rutina/internal/constants"
)

func TestT_Lookup(t *testing.T) {
	if got := T(constants.LanguageSpanish, "habit.none"); got != "No hay hábitos todavía." {
		t.Errorf("es lookup = %q", got)
	}
	if got := T(constants.LanguageEnglish, "habit.none"); got != "No habits yet." {
		t.Errorf("en lookup = %q", got)
	}
}

func TestT_FallsBackToSpanish(t *testing.T) {
	if got := T("fr", "habit.none"); got != "No hay hábitos todavía." {
		t.Errorf("unknown language should fall back to Spanish, got %q", got)
	}
}

func TestT_FallsBackToKey(t *testing.T) {
	if got := T(constants.LanguageSpanish, "no.such.key"); got != "no.such.key" {
		t.Errorf("missing key should echo the key, got %q", got)
	}
}

func TestT_TablesCoverSameKeys(t *testing.T) {
	es := messages[constants.LanguageSpanish]
	en := messages[constants.LanguageEnglish]
	for key := range es {
		if _, ok := en[key]; !ok {
			t.Errorf("key %q missing from the English table", key)
		}
	}
	for key := range en {
		if _, ok := es[key]; !ok {
			t.Errorf("key %q missing from the Spanish table", key)
		}
	}
}
