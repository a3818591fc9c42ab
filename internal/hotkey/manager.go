package hotkey

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ErrNotRegistered is returned when unregistering a combo that has no binding.
var ErrNotRegistered = errors.New("hotkey: combo not registered")

// Backend registers a single combo with the OS. fire is invoked from the
// backend's own goroutine every time the combo is pressed.
type Backend interface {
	Register(c Combo, fire func()) (Binding, error)
}

// Binding is a live registration returned by a Backend.
type Binding interface {
	Unregister() error
}

// ReleaseTimeout bounds how long Close waits for bindings to be released.
const ReleaseTimeout = 500 * time.Millisecond

// ErrReleasePending is returned by Close when some bindings were still being
// released after ReleaseTimeout.
var ErrReleasePending = errors.New("hotkey: release still pending")

// Manager owns the current combo bindings.
type Manager struct {
	mu       sync.Mutex
	backend  Backend
	bindings map[string]*entry
	releases sync.WaitGroup
	log      zerolog.Logger
}

// entry is one registered combo. The backend fires entry.fire, so the action
// can be swapped or disabled without touching the OS registration.
type entry struct {
	binding Binding

	mu     sync.Mutex
	action func()
	live   bool
}

func (e *entry) fire() {
	e.mu.Lock()
	action, live := e.action, e.live
	e.mu.Unlock()
	if live && action != nil {
		action()
	}
}

func (e *entry) setAction(action func()) {
	e.mu.Lock()
	e.action = action
	e.mu.Unlock()
}

func (e *entry) disable() {
	e.mu.Lock()
	e.live = false
	e.mu.Unlock()
}

// NewManager creates a manager over the given backend
func NewManager(backend Backend, log zerolog.Logger) *Manager {
	return &Manager{
		backend:  backend,
		bindings: make(map[string]*entry),
		log:      log.With().Str("component", "hotkey").Logger(),
	}
}

// Rebind moves action from the old combo to the new one. The new combo is
// registered before the old one is dropped, so a failed registration leaves
// the old binding working. A not-registered old combo is ignored and an
// invalid new combo leaves the bindings untouched. The old binding stops
// firing immediately; its OS registration is released in the background.
// It returns the canonical form of the new combo.
func (m *Manager) Rebind(oldCombo, newCombo string, action func()) (string, error) {
	next, err := ParseCombo(newCombo)
	if err != nil {
		return "", err
	}
	key := next.String()

	m.mu.Lock()
	if current, ok := m.bindings[key]; ok {
		// Same combo: swap the action instead of stacking a duplicate.
		current.setAction(action)
	} else {
		e := &entry{action: action, live: true}
		binding, err := m.backend.Register(next, e.fire)
		if err != nil {
			m.mu.Unlock()
			return "", fmt.Errorf("register %s: %w", key, err)
		}
		e.binding = binding
		m.bindings[key] = e
	}

	var stale *entry
	oldKey, err := Canonical(oldCombo)
	if err == nil && oldKey != key {
		stale = m.detachLocked(oldKey)
	}
	m.mu.Unlock()

	if stale != nil {
		m.release(oldKey, stale)
	}
	m.log.Info().Str("combo", key).Msg("Hotkey registered")
	return key, nil
}

// Unregister removes the binding for combo and waits for the backend to
// release it.
func (m *Manager) Unregister(combo string) error {
	key, err := Canonical(combo)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNotRegistered, combo)
	}

	m.mu.Lock()
	e := m.detachLocked(key)
	m.mu.Unlock()

	if e == nil {
		return fmt.Errorf("%w: %s", ErrNotRegistered, key)
	}
	if err := e.binding.Unregister(); err != nil {
		return fmt.Errorf("unregister %s: %w", key, err)
	}
	m.log.Debug().Str("combo", key).Msg("Hotkey unregistered")
	return nil
}

// detachLocked removes and disables the entry for key, if any.
func (m *Manager) detachLocked(key string) *entry {
	e, ok := m.bindings[key]
	if !ok {
		return nil
	}
	delete(m.bindings, key)
	e.disable()
	return e
}

// release unregisters e on its own goroutine. Backends may block here, the
// X11 one until the combo is next released by the user.
func (m *Manager) release(key string, e *entry) {
	m.releases.Add(1)
	go func() {
		defer m.releases.Done()
		if err := e.binding.Unregister(); err != nil {
			m.log.Warn().Err(err).Str("combo", key).Msg("Failed to release hotkey")
			return
		}
		m.log.Debug().Str("combo", key).Msg("Hotkey released")
	}()
}

// Bound reports whether combo currently has a binding.
func (m *Manager) Bound(combo string) bool {
	key, err := Canonical(combo)
	if err != nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.bindings[key]
	return ok
}

// Close disables every binding and waits up to ReleaseTimeout for the
// backend to release them.
func (m *Manager) Close() error {
	m.mu.Lock()
	for key := range m.bindings {
		if e := m.detachLocked(key); e != nil {
			m.release(key, e)
		}
	}
	m.mu.Unlock()

	done := make(chan struct{})
	go func() {
		m.releases.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(ReleaseTimeout):
		return ErrReleasePending
	}
}
