// Package prefs is the single source of truth for the effective theme and
// language: a persisted user mode reconciled against the live device
// default. Resolution is pull-based; each Resolve re-reads the live value
// instead of pushing updates, so an OS change racing a load cannot be lost.
package prefs

import (
	"errors"

	"github.com/rutina-app/rutina/internal/constants"
	"github.com/rutina-app/rutina/internal/logger"
	"github.com/rutina-app/rutina/internal/models"
)

// ErrInvalidMode rejects a mode outside the kind's enumerated set. The
// prior state is left unchanged.
var ErrInvalidMode = errors.New("invalid preference mode")

// Store is the minimal key-value contract the resolver consumes. Get
// reports absence through the bool; both operations may fail, and every
// failure degrades to a default rather than surfacing to callers.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Resolver resolves one preference kind (theme or language).
type Resolver struct {
	kind   models.PreferenceKind
	store  Store
	state  models.PreferenceState
	loaded bool

	// systemFn probes the live device value when available; lastSystem
	// holds the most recent observed value otherwise.
	systemFn   func() string
	lastSystem string
}

// NewResolver creates a resolver for kind. systemFn may be nil, in which
// case the device value is whatever OnSystemChange last reported, starting
// from the kind's assumed default.
func NewResolver(kind models.PreferenceKind, store Store, systemFn func() string) *Resolver {
	return &Resolver{
		kind:       kind,
		store:      store,
		systemFn:   systemFn,
		lastSystem: kind.DefaultSystemValue(),
	}
}

// Load reads the persisted mode. A missing key, an unreadable store, or a
// value outside the enumerated set all degrade to the system default; a
// storage read failure is never fatal.
func (r *Resolver) Load() models.PreferenceState {
	if r.loaded {
		return r.state
	}

	state := models.PreferenceState{Mode: constants.ModeSystem}
	value, ok, err := r.store.Get(r.kind.StorageKey())
	if err != nil {
		logger.Warn("Failed to read preference, using default", "kind", r.kind, "error", err)
	} else if ok {
		if r.isValidMode(value) {
			state.Mode = value
		} else {
			logger.Warn("Ignoring unknown persisted preference mode", "kind", r.kind, "mode", value)
		}
	}

	r.state = state
	r.loaded = true
	return r.state
}

// SetMode validates, persists, and applies mode synchronously. Invalid
// modes return ErrInvalidMode with the prior state retained. A persistence
// write failure is logged and the in-memory state still updates, matching
// the soft-fail contract of the store.
func (r *Resolver) SetMode(mode string) error {
	if !r.isValidMode(mode) {
		return ErrInvalidMode
	}

	if err := r.store.Set(r.kind.StorageKey(), mode); err != nil {
		logger.Warn("Failed to persist preference", "kind", r.kind, "mode", mode, "error", err)
	}
	r.state = models.PreferenceState{Mode: mode}
	r.loaded = true
	return nil
}

// OnSystemChange records a newly observed device value. When the mode is
// system, the next Resolve reflects it; no push to subscribers happens.
func (r *Resolver) OnSystemChange(value string) {
	r.lastSystem = value
}

// Effective returns the concrete value in effect right now.
func (r *Resolver) Effective() string {
	return Resolve(r.Load(), r.systemValue())
}

// Mode returns the persisted mode currently in effect.
func (r *Resolver) Mode() string {
	return r.Load().Mode
}

func (r *Resolver) systemValue() string {
	if r.systemFn != nil {
		return r.systemFn()
	}
	return r.lastSystem
}

func (r *Resolver) isValidMode(mode string) bool {
	for _, m := range r.kind.ValidModes() {
		if m == mode {
			return true
		}
	}
	return false
}

// Resolve is the pure resolution rule: system follows the live device
// value verbatim, any explicit mode is its own concrete value.
func Resolve(state models.PreferenceState, live string) string {
	if state.Mode == constants.ModeSystem {
		return live
	}
	return state.Mode
}
