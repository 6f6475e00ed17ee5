package status

import "sync"

// Initial values shown before anything reports progress.
const (
	DefaultMessage    = "Ready"
	DefaultAppVersion = "v1.0.0"
)

// State is a snapshot of the status bar contents.
type State struct {
	Message    string
	AppVersion string
}

// Store holds the status message and application version.
// Setters are the only mutation surface; last write wins.
type Store struct {
	mu        sync.RWMutex
	state     State
	listeners []func(State)
}

// NewStore creates a store with the default message and version.
func NewStore() *Store {
	return &Store{state: State{Message: DefaultMessage, AppVersion: DefaultAppVersion}}
}

// SetStatus replaces the status message.
func (s *Store) SetStatus(message string) {
	s.mu.Lock()
	s.state.Message = message
	snap := s.state
	listeners := s.listeners
	s.mu.Unlock()
	notify(listeners, snap)
}

// SetAppVersion replaces the application version string.
func (s *Store) SetAppVersion(version string) {
	s.mu.Lock()
	s.state.AppVersion = version
	snap := s.state
	listeners := s.listeners
	s.mu.Unlock()
	notify(listeners, snap)
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// OnChange registers fn to be called after every setter with the new state.
// Listeners run on the caller's goroutine, outside the lock.
func (s *Store) OnChange(fn func(State)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func notify(listeners []func(State), st State) {
	for _, fn := range listeners {
		fn(st)
	}
}
