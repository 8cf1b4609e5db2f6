package prefs

import (
	"errors"
	"testing"

	"github.com/rutina-app/rutina/internal/constants"
	"github.com/rutina-app/rutina/internal/models"
)

type fakeKV struct {
	values  map[string]string
	failGet bool
	failSet bool
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: make(map[string]string)}
}

func (f *fakeKV) Get(key string) (string, bool, error) {
	if f.failGet {
		return "", false, errors.New("disk exploded")
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeKV) Set(key, value string) error {
	if f.failSet {
		return errors.New("disk exploded")
	}
	f.values[key] = value
	return nil
}

func TestResolve_Pure(t *testing.T) {
	system := models.PreferenceState{Mode: constants.ModeSystem}
	for _, live := range []string{constants.ThemeLight, constants.ThemeDark} {
		if got := Resolve(system, live); got != live {
			t.Errorf("Resolve(system, %q) = %q, want the live value", live, got)
		}
	}

	dark := models.PreferenceState{Mode: constants.ThemeDark}
	for _, live := range []string{constants.ThemeLight, constants.ThemeDark} {
		if got := Resolve(dark, live); got != constants.ThemeDark {
			t.Errorf("Resolve(dark, %q) = %q, want dark", live, got)
		}
	}
}

func TestLoad_DefaultsToSystem(t *testing.T) {
	r := NewResolver(models.PreferenceTheme, newFakeKV(), nil)

	state := r.Load()
	if state.Mode != constants.ModeSystem {
		t.Errorf("expected system default, got %q", state.Mode)
	}
}

func TestLoad_SoftFailsOnReadError(t *testing.T) {
	kv := newFakeKV()
	kv.failGet = true
	r := NewResolver(models.PreferenceTheme, kv, nil)

	state := r.Load()
	if state.Mode != constants.ModeSystem {
		t.Errorf("read failure must degrade to system default, got %q", state.Mode)
	}
}

func TestLoad_IgnoresUnknownPersistedMode(t *testing.T) {
	kv := newFakeKV()
	kv.values[constants.PrefKeyThemeMode] = "sepia"
	r := NewResolver(models.PreferenceTheme, kv, nil)

	if state := r.Load(); state.Mode != constants.ModeSystem {
		t.Errorf("unknown persisted mode must degrade to system, got %q", state.Mode)
	}
}

func TestSetMode_RejectsInvalid(t *testing.T) {
	kv := newFakeKV()
	r := NewResolver(models.PreferenceTheme, kv, nil)
	if err := r.SetMode(constants.ThemeDark); err != nil {
		t.Fatal(err)
	}

	if err := r.SetMode("sepia"); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
	// Prior state must be retained.
	if r.Mode() != constants.ThemeDark {
		t.Errorf("state changed after invalid SetMode: %q", r.Mode())
	}
	if kv.values[constants.PrefKeyThemeMode] != constants.ThemeDark {
		t.Errorf("persisted value changed after invalid SetMode: %q", kv.values[constants.PrefKeyThemeMode])
	}
}

func TestSetMode_PersistsAndApplies(t *testing.T) {
	kv := newFakeKV()
	r := NewResolver(models.PreferenceTheme, kv, func() string { return constants.ThemeLight })

	if err := r.SetMode(constants.ThemeDark); err != nil {
		t.Fatal(err)
	}

	// A fresh resolver over the same store sees the persisted mode, and
	// the explicit override wins over the simulated OS default.
	r2 := NewResolver(models.PreferenceTheme, kv, func() string { return constants.ThemeLight })
	if state := r2.Load(); state.Mode != constants.ThemeDark {
		t.Errorf("expected persisted dark mode, got %q", state.Mode)
	}
	if got := r2.Effective(); got != constants.ThemeDark {
		t.Errorf("expected dark effective value, got %q", got)
	}
}

func TestSetMode_SoftFailsOnWriteError(t *testing.T) {
	kv := newFakeKV()
	kv.failSet = true
	r := NewResolver(models.PreferenceTheme, kv, nil)

	if err := r.SetMode(constants.ThemeDark); err != nil {
		t.Fatalf("write failure must not surface: %v", err)
	}
	if r.Mode() != constants.ThemeDark {
		t.Errorf("in-memory state must still apply, got %q", r.Mode())
	}
}

func TestOnSystemChange_PullBasedResolution(t *testing.T) {
	r := NewResolver(models.PreferenceTheme, newFakeKV(), nil)

	if got := r.Effective(); got != constants.DefaultSystemTheme {
		t.Errorf("expected assumed default %q, got %q", constants.DefaultSystemTheme, got)
	}

	r.OnSystemChange(constants.ThemeDark)
	if got := r.Effective(); got != constants.ThemeDark {
		t.Errorf("next resolve must reflect the new system value, got %q", got)
	}

	// An explicit mode is unaffected by system changes.
	if err := r.SetMode(constants.ThemeLight); err != nil {
		t.Fatal(err)
	}
	r.OnSystemChange(constants.ThemeDark)
	if got := r.Effective(); got != constants.ThemeLight {
		t.Errorf("explicit mode must ignore system changes, got %q", got)
	}
}

func TestLanguageModes(t *testing.T) {
	r := NewResolver(models.PreferenceLanguage, newFakeKV(), func() string { return constants.LanguageSpanish })

	if err := r.SetMode(constants.LanguageEnglish); err != nil {
		t.Fatal(err)
	}
	if got := r.Effective(); got != constants.LanguageEnglish {
		t.Errorf("expected en, got %q", got)
	}
	if err := r.SetMode(constants.ThemeDark); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("theme mode must be invalid for the language kind, got %v", err)
	}
}
